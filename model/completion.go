package model

// TokenUsage mirrors the usage block every provider reports.
type TokenUsage struct {
	PromptTokens     int `json:"promptTokens"`
	CompletionTokens int `json:"completionTokens"`
	TotalTokens      int `json:"totalTokens"`
}

// Completion is the raw text answer of one generation call.
type Completion struct {
	Model        string     `json:"model"`
	Text         string     `json:"text"`
	FinishReason string     `json:"finishReason"`
	Usage        TokenUsage `json:"usage"`
}
