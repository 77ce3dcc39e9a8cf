package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/Adwait4291/GroqResume/internal/apperr"
)

const (
	ProviderGroq   = "groq"
	ProviderGemini = "gemini"
)

type Config struct {
	Server   ServerConfig
	Provider ProviderConfig
	Upload   UploadConfig
	Retry    RetryConfig
	Session  SessionConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type ProviderConfig struct {
	Name    string
	Timeout time.Duration
	Groq    GroqConfig
	Gemini  GeminiConfig
}

type GroqConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type UploadConfig struct {
	MaxFileSize int64
}

type RetryConfig struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
}

type SessionConfig struct {
	TTL time.Duration
}

type LogConfig struct {
	Level string
	JSON  bool
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using environment values.")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Provider: ProviderConfig{
			Name:    getEnv("COMPLETION_PROVIDER", ProviderGroq),
			Timeout: getEnvAsDuration("PROVIDER_TIMEOUT", "90s"),
			Groq: GroqConfig{
				APIKey:  getEnv("GROQ_API_KEY", ""),
				Model:   getEnv("GROQ_MODEL", "llama3-70b-8192"),
				BaseURL: getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
			},
			Gemini: GeminiConfig{
				APIKey: getEnv("GEMINI_API_KEY", ""),
				Model:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			},
		},
		Upload: UploadConfig{
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
		Retry: RetryConfig{
			MaxAttempts:  getEnvAsInt("RETRY_MAX_ATTEMPTS", 3),
			InitialDelay: getEnvAsDuration("RETRY_INITIAL_DELAY", "2s"),
			MaxDelay:     getEnvAsDuration("RETRY_MAX_DELAY", "30s"),
		},
		Session: SessionConfig{
			TTL: getEnvAsDuration("SESSION_TTL", "30m"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			JSON:  getEnvAsBool("LOG_JSON", false),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Provider.Name {
	case ProviderGroq:
		if c.Provider.Groq.APIKey == "" {
			return apperr.New(apperr.KindConfiguration, "GROQ_API_KEY environment variable not set")
		}
	case ProviderGemini:
		if c.Provider.Gemini.APIKey == "" {
			return apperr.New(apperr.KindConfiguration, "GEMINI_API_KEY environment variable not set")
		}
	default:
		return apperr.Newf(apperr.KindConfiguration, "unknown completion provider %q", c.Provider.Name)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
