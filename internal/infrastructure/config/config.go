package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET, default=console-dev-secret"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// SeedDemoData loads the demo roster at startup. The store is
	// backend-less, so this defaults to on.
	SeedDemoData bool `env:"SEED_DEMO_DATA, default=true"`

	Gemini GeminiConfig
}

type GeminiConfig struct {
	// APIKey may be empty; briefing suggestions then degrade to a
	// fallback message instead of calling the service.
	APIKey  string `env:"GEMINI_API_KEY"`
	Model   string `env:"GEMINI_MODEL,    default=gemini-2.5-flash"`
	BaseURL string `env:"GEMINI_BASE_URL, default=https://generativelanguage.googleapis.com"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
