package config

import (
	"testing"

	"github.com/adexaja/trade-analysis-ai/model"
)

func TestLoadConfigs_Defaults(t *testing.T) {
	t.Setenv("config", "")
	t.Setenv("LLM_API_KEY", "")

	cfg, err := LoadConfigs()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c := cfg.Config
	if c.Port != "8080" {
		t.Errorf("Expected Port '8080', got '%s'", c.Port)
	}
	if c.SchemaMode != model.SchemaModePermissive {
		t.Errorf("Expected permissive schema mode, got '%s'", c.SchemaMode)
	}
	if !c.MarketData.Enabled {
		t.Error("Expected market data to be enabled by default")
	}
	if c.LLM.Provider != model.ProviderDeepSeek {
		t.Errorf("Expected deepseek provider, got '%s'", c.LLM.Provider)
	}
	if c.Currency != "IDR" {
		t.Errorf("Expected currency IDR, got '%s'", c.Currency)
	}
	if c.RateLimiter {
		t.Error("Expected the rate limiter to be opt-in")
	}
}

func TestLoadConfigs_PartialDocumentKeepsDefaults(t *testing.T) {
	t.Setenv("config", `{"port":"9090","marketData":{"enabled":false},"llm":{"maxOutputTokens":2048}}`)
	t.Setenv("LLM_API_KEY", "sk-test")

	cfg, err := LoadConfigs()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c := cfg.Config
	if c.Port != "9090" {
		t.Errorf("Expected Port '9090', got '%s'", c.Port)
	}
	if c.MarketData.Enabled {
		t.Error("Expected market data to be disabled")
	}
	if c.MarketData.LookbackMonths != 3 {
		t.Errorf("Expected default lookback 3, got %d", c.MarketData.LookbackMonths)
	}
	if c.LLM.MaxOutputTokens != 2048 {
		t.Errorf("Expected maxOutputTokens 2048, got %d", c.LLM.MaxOutputTokens)
	}
	if c.LLM.Model != "deepseek-chat" {
		t.Errorf("Expected default model, got '%s'", c.LLM.Model)
	}
	if c.LLM.ApiKey != "sk-test" {
		t.Errorf("Expected api key from LLM_API_KEY, got '%s'", c.LLM.ApiKey)
	}
}

func TestLoadConfigs_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"malformed json", `{"port":`},
		{"unknown schema mode", `{"schemaMode":"lenient"}`},
		{"unknown provider", `{"llm":{"provider":"mistral"}}`},
		{"unknown response format", `{"llm":{"responseFormat":"xml"}}`},
		{"bad lookback", `{"marketData":{"lookbackMonths":0}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("config", tt.raw)
			if _, err := LoadConfigs(); err == nil {
				t.Errorf("Expected error for %s", tt.raw)
			}
		})
	}
}

func TestConfigManager(t *testing.T) {
	first := DefaultEnvConfig()
	cm := NewConfigManager(&first)

	if cm.GetConfig().Port != "8080" {
		t.Fatalf("Expected initial config")
	}

	second := DefaultEnvConfig()
	second.RateLimiter = true
	cm.UpdateConfig(&second)

	if !cm.GetConfig().RateLimiter {
		t.Error("Expected updated config to be returned")
	}
}
