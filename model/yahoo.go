package model

type YahooInterval string

const (
	Interval1h  YahooInterval = "1h"
	Interval1d  YahooInterval = "1d"
	Interval1wk YahooInterval = "1wk"
)

// YahooChartResponse is the top-level container of /v8/finance/chart
type YahooChartResponse struct {
	Chart ChartData `json:"chart"`
}

type ChartData struct {
	Result []Result         `json:"result"`
	Error  *YahooChartError `json:"error"`
}

type YahooChartError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type Result struct {
	Meta       ChartMeta  `json:"meta"`
	Timestamp  []int64    `json:"timestamp"`
	Indicators Indicators `json:"indicators"`
}

type ChartMeta struct {
	Symbol             string  `json:"symbol"`
	Currency           string  `json:"currency"`
	ExchangeName       string  `json:"exchangeName"`
	RegularMarketPrice float64 `json:"regularMarketPrice"`
}

type Indicators struct {
	Quote []Quote `json:"quote"`
}

// Quote holds parallel OHLCV arrays; Yahoo sends null for missing sessions,
// which decode as zero.
type Quote struct {
	Low    []float64 `json:"low"`
	High   []float64 `json:"high"`
	Open   []float64 `json:"open"`
	Volume []int64   `json:"volume"`
	Close  []float64 `json:"close"`
}
