package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/adexaja/trade-analysis-ai/model"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type SystemConfigs struct {
	Config *model.EnvConfig
}

// DefaultEnvConfig is the configuration used for every field the `config`
// document leaves out.
func DefaultEnvConfig() model.EnvConfig {
	return model.EnvConfig{
		Port:         "8080",
		Environment:  "development",
		LogLevel:     "info",
		FrontendUrls: []string{"http://localhost:3000"},
		RateLimiter:  false,
		SchemaMode:   model.SchemaModePermissive,
		Currency:     "IDR",
		Locale:       "id-ID",
		LLM: model.LLMConfig{
			Provider:       model.ProviderDeepSeek,
			BaseUrl:        "https://api.deepseek.com/v1",
			Model:          "deepseek-chat",
			ResponseFormat: model.ResponseFormatJSONObject,
			Temperature:    0.2,
			TimeoutSeconds: 120,
		},
		MarketData: model.MarketDataConfig{
			Enabled:         true,
			BaseUrl:         "https://query1.finance.yahoo.com/v8/finance/chart",
			LookbackMonths:  3,
			Interval:        string(model.Interval1d),
			TimeoutSeconds:  10,
			CacheTtlSeconds: 60,
		},
	}
}

func LoadConfigs() (*SystemConfigs, error) {
	godotenv.Load()

	envCfg := DefaultEnvConfig()

	rawJson := os.Getenv("config")
	if rawJson == "" {
		log.Warn().Msg("environment variable 'config' is empty, using defaults")
	} else if err := json.Unmarshal([]byte(rawJson), &envCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if key := os.Getenv("LLM_API_KEY"); key != "" {
		envCfg.LLM.ApiKey = key
	}

	if err := validate(&envCfg); err != nil {
		return nil, err
	}

	return &SystemConfigs{
		Config: &envCfg,
	}, nil
}

func validate(cfg *model.EnvConfig) error {
	switch cfg.SchemaMode {
	case model.SchemaModePermissive, model.SchemaModeStrict:
	default:
		return fmt.Errorf("unknown schemaMode %q", cfg.SchemaMode)
	}

	switch cfg.LLM.Provider {
	case model.ProviderOpenAI, model.ProviderDeepSeek, model.ProviderAnthropic:
	default:
		return fmt.Errorf("unknown llm provider %q", cfg.LLM.Provider)
	}

	switch cfg.LLM.ResponseFormat {
	case model.ResponseFormatJSONObject, model.ResponseFormatJSONSchema:
	default:
		return fmt.Errorf("unknown llm responseFormat %q", cfg.LLM.ResponseFormat)
	}

	if cfg.MarketData.LookbackMonths <= 0 {
		return fmt.Errorf("marketData.lookbackMonths must be positive")
	}
	return nil
}

type ConfigManager struct {
	value atomic.Value
}

func NewConfigManager(initial *model.EnvConfig) *ConfigManager {
	cm := &ConfigManager{}
	cm.value.Store(initial)
	return cm
}

func (cm *ConfigManager) GetConfig() *model.EnvConfig {
	return cm.value.Load().(*model.EnvConfig)
}

func (cm *ConfigManager) UpdateConfig(newCfg *model.EnvConfig) {
	cm.value.Store(newCfg)
}
