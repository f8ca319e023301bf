package validator

import (
	"encoding/json"
	"sort"

	"github.com/adexaja/trade-analysis-ai/customerrors"
	"github.com/adexaja/trade-analysis-ai/model"

	"github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zconst"
)

type fieldKind int

const (
	kindString fieldKind = iota
	kindEnum
	kindNumber
	kindNumbers
	kindObject
)

// fieldRule is one row of the policy table. Optional leaves carry the default
// used in permissive mode; strict mode ignores every default.
type fieldRule struct {
	Key      string
	Field    string
	Kind     fieldKind
	Required bool
	Default  any
	Enum     []string
	Children []fieldRule
}

func str(key, field string, required bool) fieldRule {
	return fieldRule{Key: key, Field: field, Kind: kindString, Required: required, Default: ""}
}

func enum(key, field string, values ...string) fieldRule {
	return fieldRule{Key: key, Field: field, Kind: kindEnum, Required: true, Enum: values}
}

func num(key, field string, required bool, def float64) fieldRule {
	return fieldRule{Key: key, Field: field, Kind: kindNumber, Required: required, Default: def}
}

func nums(key, field string) fieldRule {
	return fieldRule{Key: key, Field: field, Kind: kindNumbers, Default: []float64{}}
}

func object(key, field string, children ...fieldRule) fieldRule {
	return fieldRule{Key: key, Field: field, Kind: kindObject, Required: true, Children: children}
}

// tradeAnalysisRules is the single source of truth for which fields of the
// analysis are required and what optional ones default to.
func tradeAnalysisRules(currency string) []fieldRule {
	return []fieldRule{
		object("trade_analysis", "TradeAnalysis",
			str("asset", "Asset", true),
			str("date_time", "DateTime", true),
			object("market_conditions", "MarketConditions",
				enum("trend", "Trend", string(model.TrendUp), string(model.TrendDown), string(model.TrendSideways)),
				nums("support_levels", "SupportLevels"),
				nums("resistance_levels", "ResistanceLevels"),
				nums("breakout_points", "BreakoutPoints"),
				nums("breakdown_points", "BreakdownPoints"),
				str("divergences", "Divergences", false),
				str("volume_analysis", "VolumeAnalysis", false),
			),
			object("technical_indicators", "TechnicalIndicators",
				object("moving_averages", "MovingAverages",
					num("MA20", "MA20", false, 0),
					num("MA50", "MA50", false, 0),
					num("MA200", "MA200", false, 0),
				),
				num("RSI", "RSI", false, 50),
				object("MACD", "MACD",
					num("value", "Value", false, 0),
					num("signal", "Signal", false, 0),
				),
				object("bollinger_bands", "BollingerBands",
					num("upper", "Upper", false, 0),
					num("middle", "Middle", false, 0),
					num("lower", "Lower", false, 0),
				),
			),
			object("trade_plan", "TradePlan",
				enum("direction", "Direction", string(model.DirectionLong), string(model.DirectionShort)),
				object("entry_zone", "EntryZone",
					num("min", "Min", true, 0),
					num("max", "Max", true, 0),
				),
				num("stop_loss", "StopLoss", true, 0),
				nums("take_profit_targets", "TakeProfitTargets"),
				num("position_size_lot", "PositionSizeLot", false, 0),
				str("lot_size_basis", "LotSizeBasis", false),
				num("estimated_capital_used", "EstimatedCapitalUsed", false, 0),
				num("risk_reward_ratio", "RiskRewardRatio", false, 0),
				num("risk_percent", "RiskPercent", false, 0),
			),
			object("simple_conclusion", "SimpleConclusion",
				str("summary", "Summary", true),
				str("entry", "Entry", true),
				num("stop_loss", "StopLoss", true, 0),
				nums("take_profit", "TakeProfit"),
				enum("decision", "Decision", string(model.DecisionBuy), string(model.DecisionSell), string(model.DecisionWait)),
				num("suggested_lot", "SuggestedLot", false, 0),
				num("buy_price_per_share", "BuyPricePerShare", false, 0),
				num("total_buy_cost", "TotalBuyCost", false, 0),
				nums("sell_targets", "SellTargets"),
				fieldRule{Key: "currency", Field: "Currency", Kind: kindString, Default: currency},
				num("confidence", "Confidence", false, 0),
				str("broker_note", "BrokerNote", false),
			),
		),
	}
}

// TradeAnalysisValidator checks decoded model output against the analysis
// schema and fills defaults for optional leaves.
type TradeAnalysisValidator struct {
	rules  []fieldRule
	schema *zog.StructSchema
}

func NewTradeAnalysisValidator(mode, currency string) *TradeAnalysisValidator {
	strict := mode == model.SchemaModeStrict
	rules := tradeAnalysisRules(currency)
	return &TradeAnalysisValidator{
		rules:  rules,
		schema: zog.Struct(buildShape(rules, strict)),
	}
}

// Validate returns a conformant envelope or a *customerrors.SchemaError naming
// every offending path. Unknown keys are dropped.
func (v *TradeAnalysisValidator) Validate(candidate any) (*model.TradeAnalysisEnvelope, error) {
	data, ok := candidate.(map[string]any)
	if !ok {
		return nil, &customerrors.SchemaError{Issues: []customerrors.SchemaIssue{
			{Path: "$", Message: "expected a JSON object"},
		}}
	}

	issues := checkTypes(data, v.rules, "")
	if len(issues) > 0 {
		return nil, &customerrors.SchemaError{Issues: issues}
	}

	var envelope model.TradeAnalysisEnvelope
	if errs := v.schema.Parse(data, &envelope); len(errs) > 0 {
		return nil, schemaError(errs)
	}

	return &envelope, nil
}

func buildShape(rules []fieldRule, strict bool) zog.Shape {
	shape := zog.Shape{}
	for _, r := range rules {
		required := r.Required || strict
		switch r.Kind {
		case kindObject:
			shape[r.Field] = zog.Struct(buildShape(r.Children, strict))
		case kindEnum:
			shape[r.Field] = zog.String().OneOf(r.Enum).Required()
		case kindString:
			s := zog.String()
			if required {
				s = s.Required()
			} else {
				s = s.Default(r.Default.(string))
			}
			shape[r.Field] = s
		case kindNumber:
			n := zog.Float64()
			if required {
				n = n.Required()
			} else {
				n = n.Default(r.Default.(float64))
			}
			shape[r.Field] = n
		case kindNumbers:
			s := zog.Slice(zog.Float64())
			if required {
				s = s.Required()
			} else {
				s = s.Default(r.Default.([]float64))
			}
			shape[r.Field] = s
		}
	}
	return shape
}

func schemaError(errs zog.ZogIssueMap) *customerrors.SchemaError {
	schemaErr := &customerrors.SchemaError{}
	for key, list := range errs {
		if key == zconst.ISSUE_KEY_FIRST {
			continue
		}
		for _, issue := range list {
			schemaErr.Issues = append(schemaErr.Issues, customerrors.SchemaIssue{
				Path:    issue.Path,
				Message: issue.Message,
			})
		}
	}
	sort.Slice(schemaErr.Issues, func(i, j int) bool {
		return schemaErr.Issues[i].Path < schemaErr.Issues[j].Path
	})
	return schemaErr
}

// checkTypes reports nested objects that are absent or not objects, and
// present leaves whose JSON type does not match the rule. zog would accept a
// missing object whose leaves all have defaults, and coerces numbers to
// strings and numeric strings to numbers.
func checkTypes(data map[string]any, rules []fieldRule, prefix string) []customerrors.SchemaIssue {
	var issues []customerrors.SchemaIssue
	for _, r := range rules {
		path := r.Key
		if prefix != "" {
			path = prefix + "." + r.Key
		}

		raw, present := data[r.Key]
		if r.Kind == kindObject {
			if !present || raw == nil {
				issues = append(issues, customerrors.SchemaIssue{Path: path, Message: "is required"})
				continue
			}
			child, ok := raw.(map[string]any)
			if !ok {
				issues = append(issues, customerrors.SchemaIssue{Path: path, Message: "expected an object"})
				continue
			}
			issues = append(issues, checkTypes(child, r.Children, path)...)
			continue
		}

		if !present {
			continue
		}
		if msg, ok := leafType(r.Kind, raw); !ok {
			issues = append(issues, customerrors.SchemaIssue{Path: path, Message: msg})
		}
	}
	return issues
}

func leafType(kind fieldKind, raw any) (string, bool) {
	switch kind {
	case kindString, kindEnum:
		_, ok := raw.(string)
		return "expected a string", ok
	case kindNumber:
		return "expected a number", isNumber(raw)
	case kindNumbers:
		switch list := raw.(type) {
		case []float64:
			return "", true
		case []any:
			for _, item := range list {
				if !isNumber(item) {
					return "expected an array of numbers", false
				}
			}
			return "", true
		}
		return "expected an array of numbers", false
	}
	return "", true
}

func isNumber(raw any) bool {
	switch raw.(type) {
	case float64, float32, int, int64, json.Number:
		return true
	}
	return false
}
