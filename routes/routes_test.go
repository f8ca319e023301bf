package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/adexaja/trade-analysis-ai/config"
	"github.com/adexaja/trade-analysis-ai/model"

	"github.com/gin-gonic/gin"
)

func newManager(mutate func(*model.EnvConfig)) *config.ConfigManager {
	cfg := config.DefaultEnvConfig()
	cfg.LLM.ApiKey = "sk-test"
	cfg.MarketData.Enabled = false
	if mutate != nil {
		mutate(&cfg)
	}
	return config.NewConfigManager(&cfg)
}

func TestBuildAnalysisService(t *testing.T) {
	svc, err := BuildAnalysisService(context.Background(), newManager(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc.MarketDataEnabled() {
		t.Error("Expected market data to be off")
	}

	svc, err = BuildAnalysisService(context.Background(), newManager(func(c *model.EnvConfig) { c.MarketData.Enabled = true }))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !svc.MarketDataEnabled() {
		t.Error("Expected market data to be on")
	}

	_, err = BuildAnalysisService(context.Background(), newManager(func(c *model.EnvConfig) {
		c.MarketData.Enabled = true
		c.RedisUrl = "not a url"
	}))
	if err == nil {
		t.Error("Expected an invalid redis url to fail")
	}
}

func TestSetupRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cm := newManager(nil)
	svc, err := BuildAnalysisService(context.Background(), cm)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r, err := SetupRouter(cm, svc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		method string
		path   string
		body   string
		status int
	}{
		{http.MethodGet, "/api/health", "", http.StatusOK},
		{http.MethodGet, "/api/analyze-trade/demo", "", http.StatusOK},
		{http.MethodPost, "/api/analyze-trade", `{}`, http.StatusBadRequest},
		{http.MethodGet, "/", "", http.StatusOK},
		{http.MethodGet, "/demo", "", http.StatusOK},
		{http.MethodGet, "/openapi.json", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			if tt.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tt.status {
				t.Errorf("Expected %d, got %d: %s", tt.status, w.Code, w.Body.String())
			}
		})
	}
}

const analysisText = `{"trade_analysis":{"asset":"BBCA.JK","date_time":"2025-09-22 09:00:00",
"market_conditions":{"trend":"sideways","support_levels":[9800],"resistance_levels":[10250],"breakout_points":[10300],"breakdown_points":[9750],"divergences":"none","volume_analysis":"flat"},
"technical_indicators":{"moving_averages":{"MA20":10010,"MA50":9985,"MA200":9700},"RSI":48.5,"MACD":{"value":1.5,"signal":2.25},"bollinger_bands":{"upper":10280,"middle":10010,"lower":9740}},
"trade_plan":{"direction":"long","entry_zone":{"min":9850,"max":9900},"stop_loss":9700,"take_profit_targets":[10200],"position_size_lot":10,"lot_size_basis":"1 lot = 100 shares","estimated_capital_used":9875000,"risk_reward_ratio":1.7,"risk_percent":1.5},
"simple_conclusion":{"summary":"Wait for support.","entry":"9850-9900","stop_loss":9700,"take_profit":[10200],"decision":"Wait","suggested_lot":10,"buy_price_per_share":9875,"total_buy_cost":9875000,"sell_targets":[10200],"currency":"IDR","confidence":0.55,"broker_note":"Use limit orders."}}}`

// chatServer answers every chat completion with content.
func chatServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp, _ := json.Marshal(map[string]any{
			"id":    "cmpl-1",
			"model": "deepseek-chat",
			"choices": []any{map[string]any{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": content},
				"finish_reason": "stop",
			}},
			"usage": map[string]any{"prompt_tokens": 10, "completion_tokens": 20, "total_tokens": 30},
		})
		w.Header().Set("Content-Type", "application/json")
		w.Write(resp)
	}))
}

func TestSetupRouter_AnalyzeTradeContract(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var analysis any
	json.Unmarshal([]byte(analysisText), &analysis)

	closed := chatServer(t, "")
	closed.Close()

	tests := []struct {
		name       string
		content    string
		baseURL    string
		body       string
		wantStatus int
		check      func(t *testing.T, got map[string]any)
	}{
		{
			name:       "missing input",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			check: func(t *testing.T, got map[string]any) {
				want := map[string]any{"error": "Asset and investment amount are required"}
				if !reflect.DeepEqual(got, want) {
					t.Errorf("Unexpected body %v", got)
				}
			},
		},
		{
			name:       "malformed body",
			body:       `{"asset":`,
			wantStatus: http.StatusInternalServerError,
			check: func(t *testing.T, got map[string]any) {
				if got["error"] != "Failed to analyze trade" || got["details"] == "" {
					t.Errorf("Unexpected body %v", got)
				}
			},
		},
		{
			name:       "conformant analysis",
			content:    analysisText,
			body:       `{"asset":"BBCA.JK","investment":10000000}`,
			wantStatus: http.StatusOK,
			check: func(t *testing.T, got map[string]any) {
				if !reflect.DeepEqual(any(got), analysis) {
					t.Errorf("Expected the analysis unchanged, got %v", got)
				}
			},
		},
		{
			name:       "prose answer",
			content:    "Buy around 9,850.",
			body:       `{"asset":"BBCA.JK","investment":10000000}`,
			wantStatus: http.StatusOK,
			check: func(t *testing.T, got map[string]any) {
				if got["error"] != "Failed to generate structured response" || got["raw_text"] != "Buy around 9,850." {
					t.Errorf("Unexpected body %v", got)
				}
			},
		},
		{
			name:       "generation unreachable",
			baseURL:    closed.URL,
			body:       `{"asset":"BBCA.JK","investment":10000000}`,
			wantStatus: http.StatusInternalServerError,
			check: func(t *testing.T, got map[string]any) {
				details, _ := got["details"].(string)
				if got["error"] != "Failed to generate analysis" || details == "" {
					t.Errorf("Unexpected body %v", got)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			baseURL := tt.baseURL
			if baseURL == "" {
				srv := chatServer(t, tt.content)
				defer srv.Close()
				baseURL = srv.URL
			}

			cm := newManager(func(c *model.EnvConfig) { c.LLM.BaseUrl = baseURL + "/v1" })
			svc, err := BuildAnalysisService(context.Background(), cm)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			r, err := SetupRouter(cm, svc)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/analyze-trade", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("Expected %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
			var got map[string]any
			if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
				t.Fatalf("Expected a JSON object, got %q", w.Body.String())
			}
			tt.check(t, got)
		})
	}
}

func TestSetupRouter_NoRateLimitByDefault(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cm := newManager(nil)
	svc, err := BuildAnalysisService(context.Background(), cm)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r, err := SetupRouter(cm, svc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < 20; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/analyze-trade", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		req.RemoteAddr = "192.0.2.44:5000"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("request %d: expected 400, got %d", i, w.Code)
		}
	}
}
