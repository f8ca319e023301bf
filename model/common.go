package model

// HealthStatus is the body of GET /api/health.
type HealthStatus struct {
	Status     string `json:"status" example:"ok"`
	Provider   string `json:"provider" example:"deepseek"`
	Model      string `json:"model" example:"deepseek-chat"`
	MarketData bool   `json:"marketData"`
	SchemaMode string `json:"schemaMode" example:"permissive"`
}
