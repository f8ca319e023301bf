package model

// AnalyzeTradeRequest is the payload posted by the UI.
type AnalyzeTradeRequest struct {
	Asset      string  `json:"asset" mapstructure:"asset"`
	Investment float64 `json:"investment" mapstructure:"investment"`
}

// --- Huma Structs ---

// AnalyzeTradeInput takes the raw body so that missing or mistyped fields are
// answered with the route's own error payloads instead of huma's 422.
type AnalyzeTradeInput struct {
	RawBody []byte `contentType:"application/json"`
}

// AnalyzeTradeOutput carries a dynamic status; Body is one of the shapes of
// an AnalysisOutcome.
type AnalyzeTradeOutput struct {
	Status int
	Body   any
}

type DemoAnalysisOutput struct {
	Body TradeAnalysisEnvelope
}
