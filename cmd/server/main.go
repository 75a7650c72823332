// Package main implements the entry point for the TypeFlow API server,
// which serves the typing practice page and generates practice sentences
// through an LLM provider.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/typeflow-api/internal/config"
	"github.com/phrazzld/typeflow-api/internal/platform/logger"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCommand builds the server command and its flags.
func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "typeflow-api",
		Short: "TypeFlow - typing practice sentence server",
		Long: `TypeFlow serves a typing practice page and generates practice sentences
with a large language model.

Environment variables:
  PORT            - HTTP port (default: 5000)
  GROQ_API_KEY    - Groq API key, required for the groq provider
  GEMINI_API_KEY  - Gemini API key, required for the gemini provider

Every setting can also be given as TYPEFLOW_<SECTION>_<KEY>, for example
TYPEFLOW_LLM_PROVIDER=gemini.`,
		SilenceUsage: true,
		RunE:         runServer,
	}

	cmd.Flags().String("config", "", "Path to a config file (default: ./config.yaml if present)")
	cmd.Flags().String("env-file", ".env", "Path to a dotenv file loaded before reading the environment")
	cmd.Flags().Int("port", config.DefaultPort, "HTTP port to listen on")
	cmd.Flags().String("log-level", config.DefaultLogLevel, "Log level (debug, info, warn, error)")

	return cmd
}

// runServer loads configuration, wires the application and serves until
// SIGINT or SIGTERM arrives.
func runServer(cmd *cobra.Command, _ []string) error {
	configFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	envFile, err := cmd.Flags().GetString("env-file")
	if err != nil {
		return err
	}

	cfg, err := config.Load(
		config.WithConfigFile(configFile),
		config.WithEnvFile(envFile),
		config.WithFlags(cmd.Flags()),
	)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, closer, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	defer func() {
		if err := closer.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to close log output: %v\n", err)
		}
	}()

	log.Info("Server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.String("provider", cfg.LLM.Provider),
		slog.String("model", cfg.LLM.ModelName))

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := newApplication(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.startHTTPServer(ctx, app.setupRouter())
}
