package view

import (
	"math"

	"github.com/adexaja/trade-analysis-ai/model"

	"github.com/jinzhu/copier"
	"github.com/mitchellh/mapstructure"
	"github.com/rs/zerolog/log"
)

// Style is the icon and color pair of a derived classification.
type Style struct {
	Label string
	Icon  string
	Color string
}

// Dashboard is the render-ready form of an analysis outcome.
type Dashboard struct {
	Kind model.OutcomeKind
	// Unverified is set for best-effort results that skipped validation.
	Unverified bool
	// Missing means there is no trade_analysis to show.
	Missing bool
	Failure *model.FailureDiagnostics

	Analysis model.TradeAnalysis

	Decision          Style
	ConfidencePercent int
	EntryPrice        string
	StopLoss          string
	TakeProfit        string

	Trend            Style
	SupportLevels    []string
	ResistanceLevels []string

	MA20, MA50, MA200                               string
	RSI                                             string
	RSIStyle                                        Style
	MACDValue, MACDSignal                           string
	BollingerUpper, BollingerMiddle, BollingerLower string

	PositionSize string
	CapitalUsed  string
	RiskReward   string
	RiskPercent  string
}

func DecisionStyle(decision string) Style {
	switch model.Decision(decision) {
	case model.DecisionBuy:
		return Style{Label: decision, Icon: "trending-up", Color: "success"}
	case model.DecisionSell:
		return Style{Label: decision, Icon: "trending-down", Color: "destructive"}
	default:
		return Style{Label: decision, Icon: "minus", Color: "muted"}
	}
}

func TrendStyle(trend string) Style {
	switch model.Trend(trend) {
	case model.TrendUp:
		return Style{Label: trend, Icon: "trending-up", Color: "success"}
	case model.TrendDown:
		return Style{Label: trend, Icon: "trending-down", Color: "destructive"}
	default:
		return Style{Label: trend, Icon: "minus", Color: "muted"}
	}
}

// RSIStyle labels the RSI reading; the 70 and 30 bounds themselves are Neutral.
func RSIStyle(rsi float64) Style {
	switch {
	case rsi > 70:
		return Style{Label: "Overbought", Color: "destructive"}
	case rsi < 30:
		return Style{Label: "Oversold", Color: "success"}
	default:
		return Style{Label: "Neutral", Color: "foreground"}
	}
}

// ConfidencePercent converts a [0,1] confidence into a bar width.
func ConfidencePercent(confidence float64) int {
	if math.IsNaN(confidence) {
		return 0
	}
	return int(math.Round(math.Max(0, math.Min(1, confidence)) * 100))
}

// BuildDashboard never modifies the outcome; the analysis is deep-copied
// before anything is derived from it.
func BuildDashboard(outcome model.AnalysisOutcome, f *Formatter) Dashboard {
	d := Dashboard{Kind: outcome.Kind}

	var analysis *model.TradeAnalysis
	switch outcome.Kind {
	case model.OutcomeConformant:
		if outcome.Analysis != nil {
			analysis = &outcome.Analysis.TradeAnalysis
		}
	case model.OutcomeBestEffort:
		d.Unverified = true
		analysis = decodeBestEffort(outcome.Raw)
	default:
		d.Failure = outcome.Failure
		return d
	}

	if analysis == nil {
		d.Missing = true
		return d
	}

	if err := copier.CopyWithOption(&d.Analysis, analysis, copier.Option{DeepCopy: true}); err != nil {
		log.Warn().Err(err).Msg("could not copy analysis for display")
		d.Missing = true
		return d
	}
	fill(&d, f)
	return d
}

func fill(d *Dashboard, f *Formatter) {
	a := d.Analysis
	sc, mc, ti, tp := a.SimpleConclusion, a.MarketConditions, a.TechnicalIndicators, a.TradePlan

	d.Decision = DecisionStyle(sc.Decision)
	d.ConfidencePercent = ConfidencePercent(sc.Confidence)
	d.EntryPrice = f.Integer(sc.BuyPricePerShare)
	d.StopLoss = f.Integer(sc.StopLoss)
	d.TakeProfit = "N/A"
	if len(sc.TakeProfit) > 0 && sc.TakeProfit[0] != 0 {
		d.TakeProfit = f.Integer(sc.TakeProfit[0])
	}

	d.Trend = TrendStyle(mc.Trend)
	d.SupportLevels = integers(f, mc.SupportLevels)
	d.ResistanceLevels = integers(f, mc.ResistanceLevels)

	d.MA20 = f.Integer(ti.MovingAverages.MA20)
	d.MA50 = f.Integer(ti.MovingAverages.MA50)
	d.MA200 = f.Integer(ti.MovingAverages.MA200)
	d.RSI = f.Fixed(ti.RSI, 1)
	d.RSIStyle = RSIStyle(ti.RSI)
	d.MACDValue = f.Fixed(ti.MACD.Value, 3)
	d.MACDSignal = f.Fixed(ti.MACD.Signal, 3)
	d.BollingerUpper = f.Fixed(ti.BollingerBands.Upper, 3)
	d.BollingerMiddle = f.Fixed(ti.BollingerBands.Middle, 3)
	d.BollingerLower = f.Fixed(ti.BollingerBands.Lower, 3)

	d.PositionSize = f.Integer(tp.PositionSizeLot) + " lots"
	d.CapitalUsed = f.Money(tp.EstimatedCapitalUsed)
	d.RiskReward = "1:" + f.Fixed(tp.RiskRewardRatio, 1)
	d.RiskPercent = f.Fixed(tp.RiskPercent, 1) + "%"
}

func integers(f *Formatter, values []float64) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, f.Integer(v))
	}
	return out
}

// decodeBestEffort reads whatever matches the analysis shape out of an
// unvalidated value. Mismatched fields stay zero.
func decodeBestEffort(raw any) *model.TradeAnalysis {
	root, ok := raw.(map[string]any)
	if !ok {
		return nil
	}
	section, ok := root["trade_analysis"].(map[string]any)
	if !ok {
		return nil
	}

	var analysis model.TradeAnalysis
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           &analysis,
	})
	if err != nil {
		return nil
	}
	if err := decoder.Decode(section); err != nil {
		log.Debug().Err(err).Msg("best-effort analysis only partly decoded")
	}
	return &analysis
}
