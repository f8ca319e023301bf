package model

type Trend string

const (
	TrendUp       Trend = "uptrend"
	TrendDown     Trend = "downtrend"
	TrendSideways Trend = "sideways"
)

type Direction string

const (
	DirectionLong  Direction = "long"
	DirectionShort Direction = "short"
)

type Decision string

const (
	DecisionBuy  Decision = "Buy"
	DecisionSell Decision = "Sell"
	DecisionWait Decision = "Wait"
)

// TradeAnalysisEnvelope is the top-level object the model must produce.
type TradeAnalysisEnvelope struct {
	TradeAnalysis TradeAnalysis `json:"trade_analysis" zog:"trade_analysis"`
}

type TradeAnalysis struct {
	Asset               string              `json:"asset" zog:"asset"`
	DateTime            string              `json:"date_time" zog:"date_time"`
	MarketConditions    MarketConditions    `json:"market_conditions" zog:"market_conditions"`
	TechnicalIndicators TechnicalIndicators `json:"technical_indicators" zog:"technical_indicators"`
	TradePlan           TradePlan           `json:"trade_plan" zog:"trade_plan"`
	SimpleConclusion    SimpleConclusion    `json:"simple_conclusion" zog:"simple_conclusion"`
}

type MarketConditions struct {
	Trend            string    `json:"trend" zog:"trend" enum:"uptrend,downtrend,sideways"`
	SupportLevels    []float64 `json:"support_levels" zog:"support_levels"`
	ResistanceLevels []float64 `json:"resistance_levels" zog:"resistance_levels"`
	BreakoutPoints   []float64 `json:"breakout_points" zog:"breakout_points"`
	BreakdownPoints  []float64 `json:"breakdown_points" zog:"breakdown_points"`
	Divergences      string    `json:"divergences" zog:"divergences"`
	VolumeAnalysis   string    `json:"volume_analysis" zog:"volume_analysis"`
}

type MovingAverages struct {
	MA20  float64 `json:"MA20" zog:"MA20"`
	MA50  float64 `json:"MA50" zog:"MA50"`
	MA200 float64 `json:"MA200" zog:"MA200"`
}

type MACD struct {
	Value  float64 `json:"value" zog:"value"`
	Signal float64 `json:"signal" zog:"signal"`
}

type BollingerBands struct {
	Upper  float64 `json:"upper" zog:"upper"`
	Middle float64 `json:"middle" zog:"middle"`
	Lower  float64 `json:"lower" zog:"lower"`
}

type TechnicalIndicators struct {
	MovingAverages MovingAverages `json:"moving_averages" zog:"moving_averages"`
	RSI            float64        `json:"RSI" zog:"RSI"`
	MACD           MACD           `json:"MACD" zog:"MACD"`
	BollingerBands BollingerBands `json:"bollinger_bands" zog:"bollinger_bands"`
}

// EntryZone is expected to satisfy Min <= Max; nothing enforces it.
type EntryZone struct {
	Min float64 `json:"min" zog:"min"`
	Max float64 `json:"max" zog:"max"`
}

type TradePlan struct {
	Direction            string    `json:"direction" zog:"direction" enum:"long,short"`
	EntryZone            EntryZone `json:"entry_zone" zog:"entry_zone"`
	StopLoss             float64   `json:"stop_loss" zog:"stop_loss"`
	TakeProfitTargets    []float64 `json:"take_profit_targets" zog:"take_profit_targets"`
	PositionSizeLot      float64   `json:"position_size_lot" zog:"position_size_lot"`
	LotSizeBasis         string    `json:"lot_size_basis" zog:"lot_size_basis"`
	EstimatedCapitalUsed float64   `json:"estimated_capital_used" zog:"estimated_capital_used"`
	RiskRewardRatio      float64   `json:"risk_reward_ratio" zog:"risk_reward_ratio"`
	RiskPercent          float64   `json:"risk_percent" zog:"risk_percent"`
}

// SimpleConclusion restates parts of TradePlan for display. The two sections are
// generated independently and are never cross-checked.
type SimpleConclusion struct {
	Summary          string    `json:"summary" zog:"summary"`
	Entry            string    `json:"entry" zog:"entry"`
	StopLoss         float64   `json:"stop_loss" zog:"stop_loss"`
	TakeProfit       []float64 `json:"take_profit" zog:"take_profit"`
	Decision         string    `json:"decision" zog:"decision" enum:"Buy,Sell,Wait"`
	SuggestedLot     float64   `json:"suggested_lot" zog:"suggested_lot"`
	BuyPricePerShare float64   `json:"buy_price_per_share" zog:"buy_price_per_share"`
	TotalBuyCost     float64   `json:"total_buy_cost" zog:"total_buy_cost"`
	SellTargets      []float64 `json:"sell_targets" zog:"sell_targets"`
	Currency         string    `json:"currency" zog:"currency"`
	Confidence       float64   `json:"confidence" zog:"confidence"`
	BrokerNote       string    `json:"broker_note" zog:"broker_note"`
}
