package service

import (
	"context"

	"github.com/adexaja/trade-analysis-ai/client"
	"github.com/adexaja/trade-analysis-ai/model"
)

type fakeGenerator struct {
	completion *model.Completion
	err        error
	calls      int
	lastReq    client.CompletionRequest
}

func (f *fakeGenerator) Complete(_ context.Context, req client.CompletionRequest) (*model.Completion, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.completion, nil
}

func (f *fakeGenerator) Provider() string { return "fake" }

type fakeFetcher struct {
	snap   *model.MarketSnapshot
	err    error
	calls  int
	assets []string
}

func (f *fakeFetcher) FetchSnapshot(_ context.Context, asset string) (*model.MarketSnapshot, error) {
	f.calls++
	f.assets = append(f.assets, asset)
	if f.err != nil {
		return nil, f.err
	}
	return f.snap, nil
}

const conformantText = `{"trade_analysis":{"asset":"AAPL","date_time":"2025-09-22 21:30:00",
"market_conditions":{"trend":"uptrend","support_levels":[220],"resistance_levels":[235],"breakout_points":[236],"breakdown_points":[214],"divergences":"none","volume_analysis":"steady"},
"technical_indicators":{"moving_averages":{"MA20":228.1,"MA50":224.3,"MA200":210.7},"RSI":61.2,"MACD":{"value":1.25,"signal":0.98},"bollinger_bands":{"upper":236.4,"middle":228.1,"lower":219.8}},
"trade_plan":{"direction":"long","entry_zone":{"min":224,"max":228},"stop_loss":218,"take_profit_targets":[236,242],"position_size_lot":4,"lot_size_basis":"1 lot = 1 share","estimated_capital_used":912,"risk_reward_ratio":2.1,"risk_percent":1.5},
"simple_conclusion":{"summary":"Buy the pullback.","entry":"224-228","stop_loss":218,"take_profit":[236,242],"decision":"Buy","suggested_lot":4,"buy_price_per_share":226,"total_buy_cost":904,"sell_targets":[236,242],"currency":"USD","confidence":0.7,"broker_note":"Use a limit order."}}}`
