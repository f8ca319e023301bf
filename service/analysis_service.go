package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/adexaja/trade-analysis-ai/client"
	"github.com/adexaja/trade-analysis-ai/customerrors"
	"github.com/adexaja/trade-analysis-ai/model"
	"github.com/adexaja/trade-analysis-ai/prompt"
	"github.com/adexaja/trade-analysis-ai/validator"

	"github.com/mitchellh/mapstructure"
	"github.com/rs/zerolog"
)

const (
	msgAnalyzeFailed     = "Failed to analyze trade"
	msgGenerationFailed  = "Failed to generate analysis"
	msgNoValidResponse   = "No valid response generated"
	detailsNoContent     = "The AI model didn't return any usable content"
	msgStructuredFailed  = "Failed to generate structured response"
	suggestionMismatched = "The AI provided a response but it doesn't match the expected format"
)

type AnalysisService interface {
	// AnalyzeRaw decodes a JSON request body and runs Analyze.
	AnalyzeRaw(ctx context.Context, body []byte) model.AnalysisOutcome
	Analyze(ctx context.Context, req model.AnalyzeTradeRequest) model.AnalysisOutcome
	MarketDataEnabled() bool
}

type AnalysisServiceImpl struct {
	fetcher    client.MarketDataFetcher
	generation GenerationService
	currency   string
}

// NewAnalysisService wires the pipeline. A nil fetcher runs it without
// market data.
func NewAnalysisService(fetcher client.MarketDataFetcher, generation GenerationService, currency string) AnalysisService {
	return &AnalysisServiceImpl{fetcher: fetcher, generation: generation, currency: currency}
}

func (s *AnalysisServiceImpl) MarketDataEnabled() bool {
	return s.fetcher != nil
}

func (s *AnalysisServiceImpl) AnalyzeRaw(ctx context.Context, body []byte) model.AnalysisOutcome {
	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("request body is not JSON")
		return model.NewFailure(http.StatusInternalServerError, msgAnalyzeFailed, err.Error())
	}

	var req model.AnalyzeTradeRequest
	// Anything that is not an object has neither field.
	if fields, ok := raw.(map[string]any); ok {
		if err := mapstructure.WeakDecode(fields, &req); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Msg("request fields not decodable")
			req = model.AnalyzeTradeRequest{}
		}
	}
	return s.Analyze(ctx, req)
}

func (s *AnalysisServiceImpl) Analyze(ctx context.Context, req model.AnalyzeTradeRequest) model.AnalysisOutcome {
	logger := zerolog.Ctx(ctx)

	if issues := validator.AnalyzeTradeSchema.Validate(&req); len(issues) > 0 {
		return model.NewFailure(http.StatusBadRequest, customerrors.ErrMissingInput.Error(), "")
	}

	input := prompt.TradePromptInput{Asset: req.Asset, Investment: req.Investment, Currency: s.currency}
	if s.fetcher != nil {
		snap, err := s.fetcher.FetchSnapshot(ctx, req.Asset)
		if err != nil {
			logger.Error().Err(err).Str("asset", req.Asset).Msg("Error analyzing trade")
			return model.NewFailure(http.StatusInternalServerError, msgAnalyzeFailed, err.Error())
		}
		input.Market = snap
	}

	userPrompt, err := prompt.BuildTradePrompt(input)
	if err != nil {
		logger.Error().Err(err).Msg("Error analyzing trade")
		return model.NewFailure(http.StatusInternalServerError, msgAnalyzeFailed, err.Error())
	}

	envelope, err := s.generation.GenerateObject(ctx, userPrompt)
	if err != nil {
		return recoverOutcome(logger, err)
	}
	return model.AnalysisOutcome{Kind: model.OutcomeConformant, Analysis: envelope}
}

// recoverOutcome maps a generation error to the response the caller gets.
// Text recovered from a non-conformant reply is returned as parsed, without
// validating it again.
func recoverOutcome(logger *zerolog.Logger, err error) model.AnalysisOutcome {
	var noObject *customerrors.NoObjectGeneratedError
	if !errors.As(err, &noObject) {
		logger.Error().Err(err).Msg("generation failed")
		return model.NewFailure(http.StatusInternalServerError, msgGenerationFailed, err.Error())
	}

	if noObject.Text == "" {
		return model.NewFailure(http.StatusInternalServerError, msgNoValidResponse, detailsNoContent)
	}

	var parsed any
	if parseErr := json.Unmarshal([]byte(noObject.Text), &parsed); parseErr != nil {
		logger.Warn().Err(parseErr).Msg("Failed to parse response as JSON")
		return model.AnalysisOutcome{
			Kind: model.OutcomeFailure,
			Failure: &model.FailureDiagnostics{
				Status:     http.StatusOK,
				Error:      msgStructuredFailed,
				RawText:    noObject.Text,
				Suggestion: suggestionMismatched,
			},
		}
	}

	logger.Info().Msg("returning best-effort analysis recovered from raw text")
	return model.AnalysisOutcome{Kind: model.OutcomeBestEffort, Raw: parsed}
}
