package prompt

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/adexaja/trade-analysis-ai/model"
)

func TestBuildTradePrompt_WithoutMarketData(t *testing.T) {
	p, err := BuildTradePrompt(TradePromptInput{Asset: "BTC/USDT", Investment: 1000000, Currency: "IDR"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mustContain := []string{
		`"BTC/USDT"`,
		"IDR 1000000",
		"Act as an experienced day trader and trading coach",
		"MA, RSI, MACD, Bollinger Bands, Fibonacci",
		"respond with ONLY a valid JSON object",
		ExampleEnvelope,
	}
	for _, s := range mustContain {
		if !strings.Contains(p, s) {
			t.Errorf("Expected prompt to contain %q", s)
		}
	}

	for _, s := range []string{"Current price", "Current volume", "Recent OHLC"} {
		if strings.Contains(p, s) {
			t.Errorf("Did not expect %q without market data", s)
		}
	}
}

func TestBuildTradePrompt_WithMarketData(t *testing.T) {
	candles := make([]model.Candle, 40)
	for i := range candles {
		candles[i] = model.Candle{
			Date:   fmt.Sprintf("2025-08-%02d", i%28+1),
			Open:   float64(100 + i),
			High:   float64(102 + i),
			Low:    float64(99 + i),
			Close:  float64(101 + i),
			Volume: int64(1000 * (i + 1)),
		}
	}
	snap := &model.MarketSnapshot{Symbol: "AAPL", LastClose: 140.5, LastVolume: 40000, Candles: candles}

	p, err := BuildTradePrompt(TradePromptInput{Asset: "AAPL", Investment: 2500.75, Currency: "USD", Market: snap})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(p, "USD 2500.75") {
		t.Error("Expected investment with currency in prompt")
	}
	if !strings.Contains(p, "Current price: 140.5") {
		t.Error("Expected current price line")
	}
	if !strings.Contains(p, "Current volume: 40000") {
		t.Error("Expected current volume line")
	}

	recent, _ := json.Marshal(candles[10:])
	if !strings.Contains(p, string(recent)) {
		t.Error("Expected the last 30 candles serialized as JSON")
	}
	old, _ := json.Marshal(candles[9])
	if strings.Contains(p, string(old)) {
		t.Error("Did not expect candles older than the last 30")
	}

	if strings.Index(p, "Recent OHLC") > strings.Index(p, "IMPORTANT") {
		t.Error("Expected market data before the output instruction")
	}
}

func TestBuildTradePrompt_EmptySnapshot(t *testing.T) {
	p, err := BuildTradePrompt(TradePromptInput{Asset: "XYZ", Investment: 10, Currency: "IDR", Market: &model.MarketSnapshot{}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(p, "Recent OHLC (last 0 candles): []") {
		t.Error("Expected an empty candle list")
	}
	if !strings.Contains(p, "Current price: 0") {
		t.Error("Expected zero price when no candles are known")
	}
}

func TestFormatAmount(t *testing.T) {
	tests := map[float64]string{
		1000000: "1000000",
		2500.75: "2500.75",
		0.5:     "0.5",
		1e12:    "1000000000000",
	}
	for in, want := range tests {
		if got := FormatAmount(in); got != want {
			t.Errorf("FormatAmount(%v) = %q, want %q", in, got, want)
		}
	}
}
