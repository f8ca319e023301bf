package model

// Candle is one OHLCV sample as embedded in the prompt.
type Candle struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}

// MarketSnapshot is the market data used to enrich a prompt.
type MarketSnapshot struct {
	Symbol     string   `json:"symbol"`
	Currency   string   `json:"currency"`
	LastClose  float64  `json:"lastClose"`
	LastVolume int64    `json:"lastVolume"`
	Candles    []Candle `json:"candles"`
}
