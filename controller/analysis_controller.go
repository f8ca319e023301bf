package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/adexaja/trade-analysis-ai/middleware"
	"github.com/adexaja/trade-analysis-ai/model"
	"github.com/adexaja/trade-analysis-ai/service"
	"github.com/adexaja/trade-analysis-ai/view"

	"github.com/danielgtaylor/huma/v2"
)

type AnalysisController struct {
	analysisSvc service.AnalysisService
}

func NewAnalysisController(analysisSvc service.AnalysisService) *AnalysisController {
	return &AnalysisController{analysisSvc: analysisSvc}
}

func (ctrl *AnalysisController) RegisterRoutes(api huma.API) {
	requestLogger := middleware.HumaRequestLogger()

	huma.Register(api, huma.Operation{
		OperationID: "analyze-trade",
		Method:      http.MethodPost,
		Path:        "/api/analyze-trade",
		Summary:     "Generate a trade analysis",
		Description: "Answers 200 with the analysis (or a best-effort object, or {error, raw_text, suggestion}), 400 for missing input and 500 with {error, details} otherwise.",
		Middlewares: huma.Middlewares{requestLogger},
		Tags:        []string{"Analysis"},
		// the raw body is decoded and checked by the analysis service so
		// malformed or incomplete input keeps the 400/500 payloads
		SkipValidateBody: true,
	}, ctrl.analyzeTrade)

	huma.Register(api, huma.Operation{
		OperationID: "demo-analysis",
		Method:      http.MethodGet,
		Path:        "/api/analyze-trade/demo",
		Summary:     "Fixed demo analysis",
		Tags:        []string{"Analysis"},
	}, ctrl.demoAnalysis)
}

func (ctrl *AnalysisController) analyzeTrade(ctx context.Context, input *model.AnalyzeTradeInput) (*model.AnalyzeTradeOutput, error) {
	outcome := ctrl.analysisSvc.AnalyzeRaw(ctx, input.RawBody)

	body := outcome.Body()
	if body == nil {
		// a recovered JSON null
		body = json.RawMessage("null")
	}
	return &model.AnalyzeTradeOutput{Status: outcome.Status(), Body: body}, nil
}

func (ctrl *AnalysisController) demoAnalysis(ctx context.Context, input *struct{}) (*model.DemoAnalysisOutput, error) {
	return &model.DemoAnalysisOutput{Body: view.DemoAnalysis()}, nil
}
