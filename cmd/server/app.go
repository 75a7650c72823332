package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/typeflow-api/internal/api"
	"github.com/phrazzld/typeflow-api/internal/config"
	"github.com/phrazzld/typeflow-api/internal/generation"
	"github.com/phrazzld/typeflow-api/internal/platform/gemini"
	"github.com/phrazzld/typeflow-api/internal/platform/groq"
	"github.com/phrazzld/typeflow-api/internal/platform/metrics"
	"github.com/phrazzld/typeflow-api/internal/redact"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger  *slog.Logger
	metrics *metrics.Metrics

	// Generation
	completer       generation.Completer
	sentenceService *generation.SentenceService

	// HTTP handlers
	pageHandler     *api.PageHandler
	generateHandler *api.GenerateHandler
}

// appOption customizes newApplication, mainly for tests.
type appOption func(*application)

// withCompleter uses c instead of building a completer from the configuration.
func withCompleter(c generation.Completer) appOption {
	return func(app *application) {
		app.completer = c
	}
}

// newApplication creates a new application instance with all dependencies initialized.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger, opts ...appOption) (*application, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	app := &application{
		config:  cfg,
		logger:  logger,
		metrics: metrics.New(),
	}
	for _, opt := range opts {
		opt(app)
	}

	if app.completer == nil {
		completer, err := newCompleter(ctx, cfg.LLM, logger.With("component", "llm_completer"))
		if err != nil {
			return nil, fmt.Errorf("failed to initialize LLM completer: %w", err)
		}
		app.completer = completer
	}

	var err error
	app.sentenceService, err = generation.NewSentenceService(
		app.completer,
		logger.With("component", "sentence_service"),
		generation.WithRecorder(app.metrics),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sentence service: %w", err)
	}

	app.pageHandler, err = api.NewPageHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to create page handler: %w", err)
	}
	app.generateHandler = api.NewGenerateHandler(app.sentenceService)

	return app, nil
}

// newCompleter builds the completer for the configured provider. A provider
// without credentials yields an UnavailableCompleter so the server still
// starts and every generation request reports the configuration problem.
func newCompleter(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) (generation.Completer, error) {
	completer, err := buildProviderCompleter(ctx, cfg, logger)
	if err == nil {
		logger.Info("LLM completer initialized", "provider", cfg.Provider)
		return completer, nil
	}

	if errors.Is(err, generation.ErrConfiguration) {
		logger.Warn("LLM provider is not configured, generation requests will fail",
			"provider", cfg.Provider,
			"error", redact.Error(err))
		return generation.UnavailableCompleter{Name: cfg.Provider, Cause: err}, nil
	}
	return nil, err
}

func buildProviderCompleter(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) (generation.Completer, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		var opts []gemini.Option
		if cfg.TimeoutSeconds > 0 {
			opts = append(opts, gemini.WithHTTPClient(&http.Client{
				Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
			}))
		}
		return gemini.NewCompleter(ctx, cfg, logger, opts...)
	case config.ProviderGroq, "":
		return groq.NewCompleter(cfg, logger)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
	}
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	app.logger.Info("Application shutdown completed")
}
