package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/adexaja/trade-analysis-ai/customerrors"
	"github.com/adexaja/trade-analysis-ai/model"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
)

const (
	generationSource         = "generation"
	defaultAnthropicMaxToken = 4096
)

type CompletionRequest struct {
	System string
	Prompt string
}

// TextGenerator performs one completion call against a hosted model.
// An answer without text is not an error; callers decide what it means.
type TextGenerator interface {
	Complete(ctx context.Context, req CompletionRequest) (*model.Completion, error)
	Provider() string
}

// NewTextGenerator picks the client for cfg.Provider.
func NewTextGenerator(cfg model.LLMConfig) (TextGenerator, error) {
	switch cfg.Provider {
	case model.ProviderOpenAI, model.ProviderDeepSeek:
		return NewOpenAIClient(cfg)
	case model.ProviderAnthropic:
		return NewAnthropicClient(cfg), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}

// OpenAIClient talks to any OpenAI-compatible chat completions API,
// DeepSeek included.
type OpenAIClient struct {
	client         *openai.Client
	cfg            model.LLMConfig
	responseFormat *openai.ChatCompletionResponseFormat
	logger         zerolog.Logger
}

func NewOpenAIClient(cfg model.LLMConfig) (*OpenAIClient, error) {
	oc := openai.DefaultConfig(cfg.ApiKey)
	if cfg.BaseUrl != "" {
		oc.BaseURL = strings.TrimSuffix(cfg.BaseUrl, "/")
	}
	oc.HTTPClient = &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second}

	format, err := responseFormat(cfg.ResponseFormat)
	if err != nil {
		return nil, err
	}

	return &OpenAIClient{
		client:         openai.NewClientWithConfig(oc),
		cfg:            cfg,
		responseFormat: format,
		logger:         log.With().Str("component", "openai_client").Str("model", cfg.Model).Logger(),
	}, nil
}

func responseFormat(kind string) (*openai.ChatCompletionResponseFormat, error) {
	switch kind {
	case "", model.ResponseFormatJSONObject:
		return &openai.ChatCompletionResponseFormat{Type: openai.ChatCompletionResponseFormatTypeJSONObject}, nil
	case model.ResponseFormatJSONSchema:
		schema, err := jsonschema.GenerateSchemaForType(model.TradeAnalysisEnvelope{})
		if err != nil {
			return nil, fmt.Errorf("generate response schema: %w", err)
		}
		return &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   "trade_analysis",
				Schema: schema,
				Strict: true,
			},
		}, nil
	default:
		return nil, fmt.Errorf("unknown response format %q", kind)
	}
}

func (c *OpenAIClient) Provider() string {
	return c.cfg.Provider
}

func (c *OpenAIClient) Complete(ctx context.Context, req CompletionRequest) (*model.Completion, error) {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: req.System})
	}
	messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: req.Prompt})

	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:          c.cfg.Model,
		Messages:       messages,
		Temperature:    c.cfg.Temperature,
		MaxTokens:      c.cfg.MaxOutputTokens,
		ResponseFormat: c.responseFormat,
	})
	if err != nil {
		c.logger.Error().Err(err).Dur("latency", time.Since(start)).Msg("chat completion failed")
		return nil, &customerrors.UpstreamFetchError{Source: generationSource, Err: err}
	}

	completion := &model.Completion{
		Model: resp.Model,
		Usage: model.TokenUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}
	if len(resp.Choices) == 0 {
		c.logger.Warn().Msg("chat completion returned no choices")
		return completion, nil
	}
	completion.Text = resp.Choices[0].Message.Content
	completion.FinishReason = string(resp.Choices[0].FinishReason)

	c.logger.Info().
		Dur("latency", time.Since(start)).
		Int("total_tokens", completion.Usage.TotalTokens).
		Str("finish_reason", completion.FinishReason).
		Msg("chat completion done")
	return completion, nil
}

type AnthropicClient struct {
	client anthropic.Client
	cfg    model.LLMConfig
	logger zerolog.Logger
}

func NewAnthropicClient(cfg model.LLMConfig) *AnthropicClient {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.ApiKey),
		option.WithRequestTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second),
		option.WithMaxRetries(0),
	}
	if cfg.BaseUrl != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseUrl))
	}

	return &AnthropicClient{
		client: anthropic.NewClient(opts...),
		cfg:    cfg,
		logger: log.With().Str("component", "anthropic_client").Str("model", cfg.Model).Logger(),
	}
}

func (c *AnthropicClient) Provider() string {
	return c.cfg.Provider
}

func (c *AnthropicClient) Complete(ctx context.Context, req CompletionRequest) (*model.Completion, error) {
	maxTokens := int64(c.cfg.MaxOutputTokens)
	if maxTokens <= 0 {
		maxTokens = defaultAnthropicMaxToken
	}

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(c.cfg.Model),
		MaxTokens:   maxTokens,
		Temperature: anthropic.Float(float64(c.cfg.Temperature)),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}

	start := time.Now()
	message, err := c.client.Messages.New(ctx, params)
	if err != nil {
		c.logger.Error().Err(err).Dur("latency", time.Since(start)).Msg("messages call failed")
		return nil, &customerrors.UpstreamFetchError{Source: generationSource, Err: err}
	}

	var text strings.Builder
	for _, block := range message.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}

	in, out := int(message.Usage.InputTokens), int(message.Usage.OutputTokens)
	completion := &model.Completion{
		Model:        string(message.Model),
		Text:         text.String(),
		FinishReason: string(message.StopReason),
		Usage:        model.TokenUsage{PromptTokens: in, CompletionTokens: out, TotalTokens: in + out},
	}

	c.logger.Info().
		Dur("latency", time.Since(start)).
		Int("total_tokens", completion.Usage.TotalTokens).
		Str("finish_reason", completion.FinishReason).
		Msg("messages call done")
	return completion, nil
}
