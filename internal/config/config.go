package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// LogFile, when set, sends JSON logs to a rotating file instead of stdout.
	LogFile                string `mapstructure:"log_file"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds" validate:"gte=0"`
}

// LLMConfig contains all completion-provider settings.
//
// API keys are not required at load time. A missing key fails the
// generation requests, not the process start.
type LLMConfig struct {
	Provider       string  `mapstructure:"provider"        validate:"required,oneof=groq gemini"`
	APIKey         string  `mapstructure:"api_key"`
	GeminiAPIKey   string  `mapstructure:"gemini_api_key"`
	BaseURL        string  `mapstructure:"base_url"        validate:"omitempty,url"`
	ModelName      string  `mapstructure:"model_name"      validate:"required"`
	Temperature    float64 `mapstructure:"temperature"     validate:"gte=0,lte=2"`
	TimeoutSeconds int     `mapstructure:"timeout_seconds" validate:"gte=0"`
}

// Provider names accepted in LLMConfig.Provider.
const (
	ProviderGroq   = "groq"
	ProviderGemini = "gemini"
)

// Defaults for the completion service.
const (
	DefaultPort        = 5000
	DefaultLogLevel    = "info"
	DefaultGroqBaseURL = "https://api.groq.com/openai/v1"
	DefaultModelName   = "llama-3.1-8b-instant"
	DefaultTemperature = 0.7
)
