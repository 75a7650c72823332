package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// envPrefix is prepended to every automatically bound environment variable.
const envPrefix = "TYPEFLOW"

// legacyEnv lists the plain environment variable names honoured in addition
// to the TYPEFLOW_ prefixed ones. The first name that is set wins.
var legacyEnv = map[string][]string{
	"server.port":        {"PORT"},
	"llm.api_key":        {"GROQ_API_KEY"},
	"llm.gemini_api_key": {"GEMINI_API_KEY"},
}

// flagKeys maps command line flag names to configuration keys.
var flagKeys = map[string]string{
	"port":      "server.port",
	"log-level": "server.log_level",
}

// Option customizes a Load call.
type Option func(*loadOptions)

type loadOptions struct {
	configFile string
	envFile    string
	flags      *pflag.FlagSet
}

// WithConfigFile reads settings from the given file instead of searching for
// config.yaml in the working directory.
func WithConfigFile(path string) Option {
	return func(o *loadOptions) {
		o.configFile = path
	}
}

// WithEnvFile loads the given dotenv file instead of ./.env.
func WithEnvFile(path string) Option {
	return func(o *loadOptions) {
		o.envFile = path
	}
}

// WithFlags binds the known command line flags of fs on top of every other source.
func WithFlags(fs *pflag.FlagSet) Option {
	return func(o *loadOptions) {
		o.flags = fs
	}
}

// Load configuration from defaults, an optional config file, a .env file and
// environment variables. Environment variables take precedence over values
// from config files, and changed flags take precedence over everything.
// Returns a populated Config struct or an error if loading/validation fails.
func Load(opts ...Option) (*Config, error) {
	o := loadOptions{envFile: ".env"}
	for _, opt := range opts {
		opt(&o)
	}

	// .env never overrides variables already present in the environment.
	if err := godotenv.Load(o.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file %s: %w", o.envFile, err)
	}

	v := viper.New()
	setDefaults(v)

	if o.configFile != "" {
		v.SetConfigFile(o.configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if o.configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, names := range legacyEnv {
		input := []string{key}
		input = append(input, names...)
		input = append(input, envPrefix+"_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")))
		if err := v.BindEnv(input...); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	if o.flags != nil {
		for name, key := range flagKeys {
			if f := o.flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.log_level", DefaultLogLevel)
	v.SetDefault("server.log_file", "")
	v.SetDefault("server.shutdown_timeout_seconds", 10)

	v.SetDefault("llm.provider", ProviderGroq)
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.gemini_api_key", "")
	v.SetDefault("llm.base_url", DefaultGroqBaseURL)
	v.SetDefault("llm.model_name", DefaultModelName)
	v.SetDefault("llm.temperature", DefaultTemperature)
	v.SetDefault("llm.timeout_seconds", 0)
}
