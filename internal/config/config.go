package config

import (
	"log/slog"

	"github.com/caarlos0/env/v10"
)

// Config holds runtime settings, read once at process start and never
// hot-reloaded. Secrets stay in the environment (or an untracked .env file);
// OPENAI_API_KEY must never be committed.
type Config struct {
	// Server
	Port     int    `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Input limits
	MaxQuoteBytes int `env:"MAX_QUOTE_BYTES" envDefault:"32768"` // 32KB of quote text

	// Analyzer
	AnalyzerProvider string `env:"ANALYZER_PROVIDER" envDefault:"stub"` // "stub" (deterministic, zero-cost) or "openai"
	OpenAIKey        string `env:"OPENAI_API_KEY"`
	LLMModel         string `env:"LLM_MODEL" envDefault:"gpt-4o-mini"`

	// Observability
	RunLogPath string `env:"RUN_LOG_PATH" envDefault:"logs/app_runs.jsonl"` // empty disables the run log

	// Local development CORS policy; the Vite dev server runs on 5173.
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173,http://127.0.0.1:5173"`
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		slog.Warn("failed to parse env; using defaults where set", "err", err)
	}
	return cfg
}
