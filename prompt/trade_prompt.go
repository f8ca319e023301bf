package prompt

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/adexaja/trade-analysis-ai/model"
)

// RecentCandles is how many of the latest candles are embedded in the prompt.
const RecentCandles = 30

// SystemPrompt is sent alongside the user prompt by providers that take one.
const SystemPrompt = "You are a trading analysis engine. You answer with a single JSON object and nothing else."

const preamble = `Act as an experienced day trader and trading coach. Your objective is to analyze the price and volume patterns of "%s" for a potential trade with an investment amount of %s %s to identify potential buying or selling opportunities.
Utilize advanced charting tools and technical indicators to scrutinize both short-term and long-term patterns, taking into account historical data and recent market movements.
Assess the correlation between price and volume to gauge the strength or weakness of a particular price trend.
Provide a comprehensive analysis report that details potential breakout or breakdown points, support and resistance levels, and any anomalies or divergences noticed.
Your analysis should be backed by logical reasoning and should include potential risk and reward scenarios. Always adhere to best practices in technical analysis and maintain the highest standards of accuracy and objectivity.
For the asset and investment amount, analyze its price and volume patterns to identify trading opportunities. Use technical indicators (MA, RSI, MACD, Bollinger Bands, Fibonacci, volume analysis, etc.) and determine the overall trend, support/resistance, breakout/breakdown points, and divergences.
`

const jsonOnly = `IMPORTANT: You must respond with ONLY a valid JSON object, no additional text before or after and no markdown code fences. The response must strictly follow this exact format:
`

// ExampleEnvelope is the literal shape shown to the model, with type hints in
// place of values.
const ExampleEnvelope = `{
  "trade_analysis": {
    "asset": "string",
    "date_time": "YYYY-MM-DD HH:MM:SS",
    "market_conditions": {
      "trend": "uptrend | downtrend | sideways",
      "support_levels": [ "float" ],
      "resistance_levels": [ "float" ],
      "breakout_points": [ "float" ],
      "breakdown_points": [ "float" ],
      "divergences": "string",
      "volume_analysis": "string"
    },
    "technical_indicators": {
      "moving_averages": {
        "MA20": "float",
        "MA50": "float",
        "MA200": "float"
      },
      "RSI": "float",
      "MACD": { "value": "float", "signal": "float" },
      "bollinger_bands": { "upper": "float", "middle": "float", "lower": "float" }
    },
    "trade_plan": {
      "direction": "long | short",
      "entry_zone": { "min": "float", "max": "float" },
      "stop_loss": "float",
      "take_profit_targets": [ "float" ],
      "position_size_lot": "int",
      "lot_size_basis": "string",
      "estimated_capital_used": "float",
      "risk_reward_ratio": "float",
      "risk_percent": "float"
    },
    "simple_conclusion": {
      "summary": "string",
      "entry": "float range",
      "stop_loss": "float",
      "take_profit": [ "float" ],
      "decision": "Buy | Sell | Wait",
      "suggested_lot": "int",
      "buy_price_per_share": "float",
      "total_buy_cost": "float",
      "sell_targets": [ "float" ],
      "currency": "string",
      "confidence": "float",
      "broker_note": "string"
    }
  }
}`

type TradePromptInput struct {
	Asset      string
	Investment float64
	Currency   string
	// Market is nil when market data is disabled.
	Market *model.MarketSnapshot
}

// BuildTradePrompt renders the user prompt for one analysis request.
func BuildTradePrompt(in TradePromptInput) (string, error) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(preamble, in.Asset, in.Currency, FormatAmount(in.Investment)))

	if in.Market != nil {
		candles := in.Market.Candles
		if len(candles) > RecentCandles {
			candles = candles[len(candles)-RecentCandles:]
		}
		if candles == nil {
			candles = []model.Candle{}
		}
		raw, err := json.Marshal(candles)
		if err != nil {
			return "", fmt.Errorf("encode candles: %w", err)
		}

		sb.WriteString("\nCurrent price: " + FormatAmount(in.Market.LastClose) + "\n")
		sb.WriteString("Current volume: " + strconv.FormatInt(in.Market.LastVolume, 10) + "\n")
		sb.WriteString(fmt.Sprintf("Recent OHLC (last %d candles): %s\n", len(candles), raw))
	}

	sb.WriteString("\n" + jsonOnly)
	sb.WriteString(ExampleEnvelope)
	sb.WriteString("\n")

	return sb.String(), nil
}

// FormatAmount prints a number the way the user typed it: no exponent, no
// trailing zeros.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
