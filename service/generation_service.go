package service

import (
	"context"
	"encoding/json"

	"github.com/adexaja/trade-analysis-ai/client"
	"github.com/adexaja/trade-analysis-ai/customerrors"
	"github.com/adexaja/trade-analysis-ai/model"
	"github.com/adexaja/trade-analysis-ai/prompt"
	"github.com/adexaja/trade-analysis-ai/validator"

	"github.com/rs/zerolog"
)

type GenerationService interface {
	// GenerateObject makes exactly one model call. A reply that is not a
	// conformant analysis yields *customerrors.NoObjectGeneratedError; transport
	// failures are returned as they come from the client.
	GenerateObject(ctx context.Context, userPrompt string) (*model.TradeAnalysisEnvelope, error)
}

type GenerationServiceImpl struct {
	generator client.TextGenerator
	validator *validator.TradeAnalysisValidator
}

func NewGenerationService(generator client.TextGenerator, v *validator.TradeAnalysisValidator) GenerationService {
	return &GenerationServiceImpl{generator: generator, validator: v}
}

func (s *GenerationServiceImpl) GenerateObject(ctx context.Context, userPrompt string) (*model.TradeAnalysisEnvelope, error) {
	completion, err := s.generator.Complete(ctx, client.CompletionRequest{
		System: prompt.SystemPrompt,
		Prompt: userPrompt,
	})
	if err != nil {
		return nil, err
	}

	noObject := func(cause error) error {
		e := &customerrors.NoObjectGeneratedError{
			Text:         completion.Text,
			Cause:        cause,
			FinishReason: completion.FinishReason,
			Usage:        completion.Usage,
		}
		logNoObject(zerolog.Ctx(ctx), e)
		return e
	}

	if completion.Text == "" {
		return nil, noObject(customerrors.ErrEmptyOutput)
	}

	var candidate any
	if err := json.Unmarshal([]byte(completion.Text), &candidate); err != nil {
		return nil, noObject(err)
	}

	envelope, err := s.validator.Validate(candidate)
	if err != nil {
		return nil, noObject(err)
	}

	zerolog.Ctx(ctx).Info().
		Str("asset", envelope.TradeAnalysis.Asset).
		Str("decision", envelope.TradeAnalysis.SimpleConclusion.Decision).
		Int("total_tokens", completion.Usage.TotalTokens).
		Msg("analysis generated")
	return envelope, nil
}

func logNoObject(logger *zerolog.Logger, e *customerrors.NoObjectGeneratedError) {
	logger.Warn().
		AnErr("cause", e.Cause).
		Str("text", e.Text).
		Str("finish_reason", e.FinishReason).
		Int("prompt_tokens", e.Usage.PromptTokens).
		Int("completion_tokens", e.Usage.CompletionTokens).
		Int("total_tokens", e.Usage.TotalTokens).
		Msg("NoObjectGenerated")
}
