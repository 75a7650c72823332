package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/typeflow-api/internal/config"
	"github.com/phrazzld/typeflow-api/internal/generation"
	"google.golang.org/genai"
)

// ProviderName identifies this completer in logs and metrics.
const ProviderName = config.ProviderGemini

// DefaultModel is used when the configured model is empty or still the Groq default.
const DefaultModel = "gemini-2.0-flash"

// Completer implements generation.Completer using the Gemini API.
type Completer struct {
	// logger is used for structured logging
	logger *slog.Logger

	// client is the Gemini API client for making requests
	client *genai.Client

	// model is the name of the Gemini model to use
	model string

	// temperature is sent with every request
	temperature float32
}

// Option customizes the genai client configuration.
type Option func(*genai.ClientConfig)

// WithBaseURL points the client at a different API host.
func WithBaseURL(baseURL string) Option {
	return func(cc *genai.ClientConfig) {
		cc.HTTPOptions.BaseURL = baseURL
	}
}

// WithHTTPClient makes the client use hc for every request.
func WithHTTPClient(hc *http.Client) Option {
	return func(cc *genai.ClientConfig) {
		cc.HTTPClient = hc
	}
}

// NewCompleter creates a new Gemini completer with the provided dependencies.
//
// Parameters:
//   - ctx: Context for client construction
//   - cfg: LLM configuration containing the Gemini API key, model name and temperature
//   - logger: A structured logger for operation logging
//
// Returns:
//   - A properly initialized Completer, or an error wrapping
//     generation.ErrConfiguration if the configuration is unusable
func NewCompleter(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger, opts ...Option) (*Completer, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	apiKey := strings.TrimSpace(cfg.GeminiAPIKey)
	if apiKey == "" {
		return nil, fmt.Errorf("%w: GEMINI_API_KEY environment variable is not set", generation.ErrConfiguration)
	}

	model := cfg.ModelName
	if model == "" || model == config.DefaultModelName {
		model = DefaultModel
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	for _, opt := range opts {
		opt(clientConfig)
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", generation.ErrConfiguration, err)
	}

	return &Completer{
		logger:      logger,
		client:      client,
		model:       model,
		temperature: float32(cfg.Temperature),
	}, nil
}

// Provider implements generation.Provider.
func (c *Completer) Provider() string {
	return ProviderName
}

// Model returns the Gemini model used for requests.
func (c *Completer) Model() string {
	return c.model
}

// Complete implements generation.Completer.
func (c *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", fmt.Errorf("%w: prompt cannot be empty", generation.ErrGenerationFailed)
	}

	temperature := c.temperature
	genConfig := &genai.GenerateContentConfig{
		Temperature: &temperature,
	}

	c.logger.DebugContext(ctx, "Making Gemini API call", "model", c.model)

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), genConfig)
	if err != nil {
		c.logger.ErrorContext(ctx, "Gemini API call error", "error", err, "model", c.model)
		return "", fmt.Errorf("%w: %w", generation.ErrGenerationFailed, err)
	}

	return extractText(resp)
}

// extractText pulls the text of the first candidate out of resp.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	switch {
	case resp == nil:
		return "", fmt.Errorf("%w: nil response", generation.ErrInvalidResponse)
	case len(resp.Candidates) == 0 || resp.Candidates[0] == nil:
		return "", fmt.Errorf("%w: no content generated", generation.ErrInvalidResponse)
	case resp.Candidates[0].FinishReason == genai.FinishReasonSafety:
		return "", fmt.Errorf("%w: content blocked by safety filters", generation.ErrContentBlocked)
	case resp.Candidates[0].Content == nil:
		return "", fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse)
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			b.WriteString(part.Text)
		}
	}

	text := b.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse)
	}
	return text, nil
}
