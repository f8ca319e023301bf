package view

import "github.com/adexaja/trade-analysis-ai/model"

// DemoAnalysis is the fixed analysis shown on the demo pages.
func DemoAnalysis() model.TradeAnalysisEnvelope {
	return model.TradeAnalysisEnvelope{
		TradeAnalysis: model.TradeAnalysis{
			Asset:    "BTC/USDT",
			DateTime: "2025-09-22 21:30:00",
			MarketConditions: model.MarketConditions{
				Trend:            string(model.TrendSideways),
				SupportLevels:    []float64{60800, 58500},
				ResistanceLevels: []float64{63500, 65200},
				BreakoutPoints:   []float64{63600},
				BreakdownPoints:  []float64{60500},
				Divergences:      "RSI shows mild bearish divergence while MACD histogram is flattening, indicating loss of momentum.",
				VolumeAnalysis:   "Volume decreasing during recent upward moves, showing weak buying pressure; sideways accumulation likely before next trend.",
			},
			TechnicalIndicators: model.TechnicalIndicators{
				MovingAverages: model.MovingAverages{MA20: 62100, MA50: 61550, MA200: 59000},
				RSI:            52.4,
				MACD:           model.MACD{Value: 48, Signal: 50},
				BollingerBands: model.BollingerBands{Upper: 63550, Middle: 62100, Lower: 60650},
			},
			TradePlan: model.TradePlan{
				Direction:            string(model.DirectionLong),
				EntryZone:            model.EntryZone{Min: 61000, Max: 61800},
				StopLoss:             60200,
				TakeProfitTargets:    []float64{63200, 64800},
				PositionSizeLot:      0,
				LotSizeBasis:         "fractional BTC (satoshi) purchase",
				EstimatedCapitalUsed: 1000000,
				RiskRewardRatio:      1.8,
				RiskPercent:          2.0,
			},
			SimpleConclusion: model.SimpleConclusion{
				Summary:          "BTC is consolidating sideways near 62K with narrowing Bollinger Bands. Best strategy is buy on weakness around 61K–61.8K with tight stop loss below 60.2K.",
				Entry:            "61000–61800",
				StopLoss:         60200,
				TakeProfit:       []float64{63200, 64800},
				Decision:         string(model.DecisionBuy),
				SuggestedLot:     1,
				BuyPricePerShare: 61500,
				TotalBuyCost:     1000000,
				SellTargets:      []float64{63200, 64800},
				Currency:         "IDR",
				Confidence:       0.72,
				BrokerNote:       "Use fractional BTC purchase since capital is small; prioritize tight stop-loss management.",
			},
		},
	}
}
