package validator

import "github.com/Oudwins/zog"

// AnalyzeTradeShape mirrors the UI's check: both fields must be present and
// non-zero.
var AnalyzeTradeShape = zog.Shape{
	"Asset":      zog.String().Required(zog.Message("asset is required")),
	"Investment": zog.Float64().Required(zog.Message("investment is required")),
}

var AnalyzeTradeSchema = zog.Struct(AnalyzeTradeShape)
