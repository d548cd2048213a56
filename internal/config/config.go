package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"
)

const (
	ProviderChat   = "chat"
	ProviderGemini = "gemini"
	ProviderOllama = "ollama"
)

// Config holds everything the gateway reads from the environment
type Config struct {
	Provider   string
	Endpoint   string
	APIKey     string
	CustomerID string
	Model      string
	Timeout    time.Duration

	GeminiAPIKey string
	GeminiModel  string

	OllamaURL   string
	OllamaModel string

	HistoryLimit    int
	HistorySessions int
	Port            string
}

// Load reads the configuration from environment variables, applying defaults.
// .env files are loaded by the root command before this runs.
func Load() (*Config, error) {
	timeout := 120 * time.Second
	if v := os.Getenv("GENERATION_TIMEOUT"); v != "" {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid GENERATION_TIMEOUT %q: %w", v, err)
		}
		timeout = parsed
	}

	historyLimit := 50
	if v := os.Getenv("HISTORY_LIMIT"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid HISTORY_LIMIT %q: %w", v, err)
		}
		historyLimit = parsed
	}

	historySessions := 1000
	if v := os.Getenv("HISTORY_SESSIONS"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid HISTORY_SESSIONS %q: %w", v, err)
		}
		historySessions = parsed
	}

	cfg := &Config{
		Provider:   getEnv("GENERATION_PROVIDER", ProviderChat),
		Endpoint:   getEnv("GENERATION_ENDPOINT", "https://oi-server.onrender.com/chat/completions"),
		APIKey:     getEnv("GENERATION_API_KEY", ""),
		CustomerID: getEnv("GENERATION_CUSTOMER_ID", ""),
		Model:      getEnv("GENERATION_MODEL", "replicate/black-forest-labs/flux-1.1-pro"),
		Timeout:    timeout,

		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash-image"),

		OllamaURL:   getEnv("OLLAMA_URL", "http://localhost:11434"),
		OllamaModel: getEnv("OLLAMA_MODEL", "x/flux2-klein"),

		HistoryLimit:    historyLimit,
		HistorySessions: historySessions,
		Port:            getEnv("PORT", "8888"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	slog.Debug("Configuration loaded",
		"provider", cfg.Provider,
		"endpoint", cfg.Endpoint,
		"model", cfg.GenerationModel(),
		"timeout", cfg.Timeout,
		"history_limit", cfg.HistoryLimit,
		"history_sessions", cfg.HistorySessions,
	)
	return cfg, nil
}

// GenerationModel returns the model identifier for the selected provider
func (c *Config) GenerationModel() string {
	switch c.Provider {
	case ProviderGemini:
		return c.GeminiModel
	case ProviderOllama:
		return c.OllamaModel
	default:
		return c.Model
	}
}

func (c *Config) validate() error {
	switch c.Provider {
	case ProviderChat:
		if c.Endpoint == "" {
			return fmt.Errorf("GENERATION_ENDPOINT is required")
		}
		if c.APIKey == "" {
			return fmt.Errorf("GENERATION_API_KEY is required")
		}
	case ProviderGemini:
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required")
		}
	case ProviderOllama:
		if c.OllamaURL == "" {
			return fmt.Errorf("OLLAMA_URL is required")
		}
	default:
		return fmt.Errorf("unsupported GENERATION_PROVIDER: %s", c.Provider)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("GENERATION_TIMEOUT must be positive")
	}
	if c.HistoryLimit <= 0 {
		return fmt.Errorf("HISTORY_LIMIT must be positive")
	}
	if c.HistorySessions <= 0 {
		return fmt.Errorf("HISTORY_SESSIONS must be positive")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
