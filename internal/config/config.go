// Package config loads FocusBoard settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	ProviderGroq   = "groq"
	ProviderGemini = "gemini"
)

// Config is shared by the focus CLI and the focus-proxy server.
type Config struct {
	// CLI
	DBPath    string `env:"FOCUSBOARD_DB"`
	Namespace string `env:"FOCUSBOARD_NAMESPACE" envDefault:"focusboard"`
	ProxyURL  string `env:"FOCUSBOARD_PROXY_URL"`
	LogLevel  string `env:"FOCUSBOARD_LOG_LEVEL"`

	// Proxy
	Provider        string        `env:"FOCUSBOARD_PROVIDER" envDefault:"groq"`
	GroqAPIKey      string        `env:"GROQ_API_KEY"`
	GroqModel       string        `env:"GROQ_MODEL" envDefault:"llama-3.1-70b-versatile"`
	GroqBaseURL     string        `env:"GROQ_BASE_URL" envDefault:"https://api.groq.com/openai/v1"`
	GeminiAPIKey    string        `env:"GEMINI_API_KEY"`
	GeminiModel     string        `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
	ProxyAddr       string        `env:"FOCUSBOARD_PROXY_ADDR"`
	UpstreamTimeout time.Duration `env:"FOCUSBOARD_UPSTREAM_TIMEOUT" envDefault:"60s"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Provider {
	case ProviderGroq, ProviderGemini:
	default:
		return fmt.Errorf("FOCUSBOARD_PROVIDER must be %q or %q, got %q", ProviderGroq, ProviderGemini, c.Provider)
	}
	if c.Namespace == "" {
		return fmt.Errorf("FOCUSBOARD_NAMESPACE must not be empty")
	}
	if c.UpstreamTimeout < 0 {
		return fmt.Errorf("FOCUSBOARD_UPSTREAM_TIMEOUT must not be negative")
	}
	return nil
}

// CredentialEnv names the API key variable the selected provider needs.
func (c Config) CredentialEnv() string {
	if c.Provider == ProviderGemini {
		return "GEMINI_API_KEY"
	}
	return "GROQ_API_KEY"
}
