package main

import (
	"context"
	"testing"

	"github.com/phrazzld/typeflow-api/internal/config"
	"github.com/phrazzld/typeflow-api/internal/generation"
	"github.com/phrazzld/typeflow-api/internal/platform/gemini"
	"github.com/phrazzld/typeflow-api/internal/platform/groq"
	"github.com/phrazzld/typeflow-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:                   config.DefaultPort,
			LogLevel:               config.DefaultLogLevel,
			ShutdownTimeoutSeconds: 1,
		},
		LLM: config.LLMConfig{
			Provider:    config.ProviderGroq,
			BaseURL:     config.DefaultGroqBaseURL,
			ModelName:   config.DefaultModelName,
			Temperature: config.DefaultTemperature,
		},
	}
}

func TestNewApplicationValidation(t *testing.T) {
	log, _ := logger.GetTestLogger(t)

	_, err := newApplication(context.Background(), nil, log)
	assert.EqualError(t, err, "config cannot be nil")

	_, err = newApplication(context.Background(), testConfig(), nil)
	assert.EqualError(t, err, "logger cannot be nil")
}

func TestNewApplicationUsesInjectedCompleter(t *testing.T) {
	log, _ := logger.GetTestLogger(t)
	completer := generation.NewMockCompleter("A sentence.")

	app, err := newApplication(context.Background(), testConfig(), log, withCompleter(completer))

	require.NoError(t, err)
	assert.Same(t, completer, app.completer)
	assert.NotNil(t, app.sentenceService)
	assert.NotNil(t, app.pageHandler)
	assert.NotNil(t, app.generateHandler)
	assert.NotNil(t, app.metrics)
}

func TestNewCompleter(t *testing.T) {
	tests := []struct {
		name            string
		mutate          func(*config.LLMConfig)
		wantType        interface{}
		wantUnavailable bool
		wantLog         string
	}{
		{
			name:     "groq with key",
			mutate:   func(c *config.LLMConfig) { c.APIKey = "gsk_testkey1234567890" },
			wantType: &groq.Completer{},
			wantLog:  "LLM completer initialized",
		},
		{
			name:            "groq without key",
			mutate:          func(c *config.LLMConfig) {},
			wantUnavailable: true,
			wantLog:         "LLM provider is not configured",
		},
		{
			name: "gemini with key",
			mutate: func(c *config.LLMConfig) {
				c.Provider = config.ProviderGemini
				c.GeminiAPIKey = "AIza-test"
				c.TimeoutSeconds = 5
			},
			wantType: &gemini.Completer{},
			wantLog:  "LLM completer initialized",
		},
		{
			name:            "gemini without key",
			mutate:          func(c *config.LLMConfig) { c.Provider = config.ProviderGemini },
			wantUnavailable: true,
			wantLog:         "GEMINI_API_KEY",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, logBuf := logger.GetTestLogger(t)
			cfg := testConfig().LLM
			tt.mutate(&cfg)

			completer, err := newCompleter(context.Background(), cfg, log)

			require.NoError(t, err)
			if tt.wantUnavailable {
				unavailable, ok := completer.(generation.UnavailableCompleter)
				require.True(t, ok, "expected UnavailableCompleter, got %T", completer)
				assert.Equal(t, cfg.Provider, unavailable.Provider())

				_, err := completer.Complete(context.Background(), "prompt")
				assert.ErrorIs(t, err, generation.ErrConfiguration)
			} else {
				assert.IsType(t, tt.wantType, completer)
			}
			logger.AssertLogContains(t, logBuf, tt.wantLog)
		})
	}
}

func TestNewCompleterUnknownProvider(t *testing.T) {
	log, _ := logger.GetTestLogger(t)
	cfg := testConfig().LLM
	cfg.Provider = "openrouter"

	_, err := newCompleter(context.Background(), cfg, log)

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown LLM provider "openrouter"`)
}

func TestNewApplicationStartsWithoutCredentials(t *testing.T) {
	log, logBuf := logger.GetTestLogger(t)

	app, err := newApplication(context.Background(), testConfig(), log)

	require.NoError(t, err)
	assert.IsType(t, generation.UnavailableCompleter{}, app.completer)
	logger.AssertLogContains(t, logBuf, "GROQ_API_KEY environment variable is not set")
}
