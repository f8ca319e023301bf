package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/adexaja/trade-analysis-ai/cache"
	"github.com/adexaja/trade-analysis-ai/customerrors"
	"github.com/adexaja/trade-analysis-ai/middleware"
	"github.com/adexaja/trade-analysis-ai/model"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const marketDataSource = "market-data"

// MarketDataFetcher supplies the price and candle context of a prompt.
type MarketDataFetcher interface {
	FetchSnapshot(ctx context.Context, asset string) (*model.MarketSnapshot, error)
}

type YahooClient struct {
	client *resty.Client
	cfg    model.MarketDataConfig
	store  cache.CandleStore
	logger zerolog.Logger
	now    func() time.Time
}

// NewYahooClient builds a chart API client. store may be nil to disable caching.
func NewYahooClient(cfg model.MarketDataConfig, store cache.CandleStore) *YahooClient {
	client := resty.New().
		SetBaseURL(cfg.BaseUrl).
		SetTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second).
		SetHeaders(map[string]string{
			"Accept":          "application/json",
			"Accept-Encoding": "gzip, br",
			"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		})

	client.OnAfterResponse(middleware.DecompressMiddleware)

	return &YahooClient{
		client: client,
		cfg:    cfg,
		store:  store,
		logger: log.With().Str("component", "yahoo_client").Logger(),
		now:    time.Now,
	}
}

// YahooSymbol maps pair notation (BTC/USDT) to Yahoo's dash notation.
func YahooSymbol(asset string) string {
	return strings.ReplaceAll(strings.TrimSpace(asset), "/", "-")
}

// FetchSnapshot loads the configured lookback of candles for asset. The last
// close and volume come from the newest candle and are zero when there is none.
func (y *YahooClient) FetchSnapshot(ctx context.Context, asset string) (*model.MarketSnapshot, error) {
	symbol := YahooSymbol(asset)
	cacheKey := "yahoo_chart_" + symbol + "_" + y.cfg.Interval + "_" + strconv.Itoa(y.cfg.LookbackMonths)

	if y.cacheEnabled() {
		if snap, found := y.store.Get(ctx, cacheKey); found {
			y.logger.Debug().Str("symbol", symbol).Msg("candle cache hit")
			return snap, nil
		}
	}

	now := y.now()
	resp, err := y.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"period1":        strconv.FormatInt(now.AddDate(0, -y.cfg.LookbackMonths, 0).Unix(), 10),
			"period2":        strconv.FormatInt(now.Unix(), 10),
			"interval":       y.cfg.Interval,
			"includePrePost": "false",
		}).
		Get("/" + url.PathEscape(symbol))

	if err != nil {
		y.logger.Error().Err(err).Str("symbol", symbol).Msg("yahoo request failed")
		return nil, &customerrors.UpstreamFetchError{Source: marketDataSource, Err: err}
	}

	var chart model.YahooChartResponse
	if err := json.Unmarshal(resp.Body(), &chart); err != nil {
		if !resp.IsSuccess() {
			return nil, &customerrors.UpstreamFetchError{Source: marketDataSource, Err: fmt.Errorf("yahoo returned status %d", resp.StatusCode())}
		}
		return nil, &customerrors.UpstreamFetchError{Source: marketDataSource, Err: fmt.Errorf("chart decode error: %w", err)}
	}

	if chart.Chart.Error != nil {
		return nil, &customerrors.UpstreamFetchError{
			Source: marketDataSource,
			Err:    fmt.Errorf("yahoo error %s: %s", chart.Chart.Error.Code, chart.Chart.Error.Description),
		}
	}
	if !resp.IsSuccess() {
		return nil, &customerrors.UpstreamFetchError{Source: marketDataSource, Err: fmt.Errorf("yahoo returned status %d", resp.StatusCode())}
	}
	if len(chart.Chart.Result) == 0 {
		return nil, &customerrors.UpstreamFetchError{Source: marketDataSource, Err: fmt.Errorf("no chart data for %s", symbol)}
	}

	snap := toSnapshot(symbol, chart.Chart.Result[0])

	if y.cacheEnabled() {
		y.store.Set(ctx, cacheKey, snap, time.Duration(y.cfg.CacheTtlSeconds)*time.Second)
	}

	y.logger.Info().Str("symbol", symbol).Int("candles", len(snap.Candles)).Msg("market data fetched")
	return snap, nil
}

func (y *YahooClient) cacheEnabled() bool {
	return y.store != nil && y.cfg.CacheTtlSeconds > 0
}

func toSnapshot(symbol string, result model.Result) *model.MarketSnapshot {
	snap := &model.MarketSnapshot{
		Symbol:   symbol,
		Currency: result.Meta.Currency,
		Candles:  make([]model.Candle, 0, len(result.Timestamp)),
	}
	if result.Meta.Symbol != "" {
		snap.Symbol = result.Meta.Symbol
	}
	if len(result.Indicators.Quote) == 0 {
		return snap
	}

	q := result.Indicators.Quote[0]
	for i, ts := range result.Timestamp {
		if i >= len(q.Open) || i >= len(q.High) || i >= len(q.Low) || i >= len(q.Close) {
			break
		}
		// null sessions decode as zero prices
		if q.Open[i] == 0 || q.Close[i] == 0 {
			continue
		}
		var volume int64
		if i < len(q.Volume) {
			volume = q.Volume[i]
		}
		snap.Candles = append(snap.Candles, model.Candle{
			Date:   time.Unix(ts, 0).UTC().Format("2006-01-02"),
			Open:   q.Open[i],
			High:   q.High[i],
			Low:    q.Low[i],
			Close:  q.Close[i],
			Volume: volume,
		})
	}

	if n := len(snap.Candles); n > 0 {
		snap.LastClose = snap.Candles[n-1].Close
		snap.LastVolume = snap.Candles[n-1].Volume
	}
	return snap
}
