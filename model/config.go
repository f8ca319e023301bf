package model

// --- SYSTEM CONFIG ---
// EnvConfig is decoded from the JSON document in the `config` environment variable.
type EnvConfig struct {
	Port         string           `json:"port"`
	Environment  string           `json:"environment"`
	LogLevel     string           `json:"logLevel"`
	FrontendUrls []string         `json:"frontendUrls"`
	RateLimiter  bool             `json:"rateLimiter"`
	RedisUrl     string           `json:"redisUrl"`
	SchemaMode   string           `json:"schemaMode"`
	Currency     string           `json:"currency"`
	Locale       string           `json:"locale"`
	LLM          LLMConfig        `json:"llm"`
	MarketData   MarketDataConfig `json:"marketData"`
}

type LLMConfig struct {
	Provider        string  `json:"provider"`
	BaseUrl         string  `json:"baseUrl"`
	ApiKey          string  `json:"apiKey"`
	Model           string  `json:"model"`
	ResponseFormat  string  `json:"responseFormat"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
	Temperature     float32 `json:"temperature"`
	TimeoutSeconds  int     `json:"timeoutSeconds"`
}

type MarketDataConfig struct {
	Enabled         bool   `json:"enabled"`
	BaseUrl         string `json:"baseUrl"`
	LookbackMonths  int    `json:"lookbackMonths"`
	Interval        string `json:"interval"`
	TimeoutSeconds  int    `json:"timeoutSeconds"`
	CacheTtlSeconds int    `json:"cacheTtlSeconds"`
}

const (
	ProviderOpenAI    = "openai"
	ProviderDeepSeek  = "deepseek"
	ProviderAnthropic = "anthropic"

	ResponseFormatJSONObject = "json_object"
	ResponseFormatJSONSchema = "json_schema"

	SchemaModePermissive = "permissive"
	SchemaModeStrict     = "strict"
)
