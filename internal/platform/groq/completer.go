package groq

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
	"github.com/phrazzld/typeflow-api/internal/config"
	"github.com/phrazzld/typeflow-api/internal/generation"
)

// ProviderName identifies this completer in logs and metrics.
const ProviderName = config.ProviderGroq

// Completer implements generation.Completer using Groq.
type Completer struct {
	client      openai.Client
	model       string
	temperature float64
	logger      *slog.Logger
}

// Option customizes the underlying SDK client.
type Option func(*[]option.RequestOption)

// WithHTTPClient makes the SDK use hc for every request.
func WithHTTPClient(hc *http.Client) Option {
	return func(opts *[]option.RequestOption) {
		*opts = append(*opts, option.WithHTTPClient(hc))
	}
}

// NewCompleter creates a Groq completer from cfg.
// A missing API key or model name is reported as generation.ErrConfiguration.
func NewCompleter(cfg config.LLMConfig, logger *slog.Logger, opts ...Option) (*Completer, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, fmt.Errorf("%w: GROQ_API_KEY environment variable is not set", generation.ErrConfiguration)
	}
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrConfiguration)
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = config.DefaultGroqBaseURL
	}

	requestOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
		option.WithMaxRetries(0),
	}
	if cfg.TimeoutSeconds > 0 {
		requestOpts = append(requestOpts, option.WithRequestTimeout(time.Duration(cfg.TimeoutSeconds)*time.Second))
	}
	for _, opt := range opts {
		opt(&requestOpts)
	}

	return &Completer{
		client:      openai.NewClient(requestOpts...),
		model:       cfg.ModelName,
		temperature: cfg.Temperature,
		logger:      logger,
	}, nil
}

// Provider implements generation.Provider.
func (c *Completer) Provider() string {
	return ProviderName
}

// Complete implements generation.Completer.
func (c *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", fmt.Errorf("%w: prompt cannot be empty", generation.ErrGenerationFailed)
	}

	params := openai.ChatCompletionNewParams{
		Model: shared.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(c.temperature),
	}

	c.logger.DebugContext(ctx, "calling Groq chat completion",
		"model", c.model,
		"temperature", c.temperature)

	completion, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			c.logger.ErrorContext(ctx, "Groq API returned an error",
				"status_code", apiErr.StatusCode,
				"model", c.model)
		}
		return "", fmt.Errorf("%w: %w", generation.ErrGenerationFailed, err)
	}

	if completion == nil || len(completion.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", generation.ErrInvalidResponse)
	}

	content := completion.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse)
	}

	return content, nil
}
