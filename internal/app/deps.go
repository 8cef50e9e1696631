package app

import (
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/openai/openai-go/v3"

	"quotecheck/internal/analyzer"
	"quotecheck/internal/config"
	"quotecheck/internal/logger"
	"quotecheck/internal/runlog"
)

// Deps bundles process-wide dependencies, built once at startup and passed
// into request handlers. No module-level singletons.
type Deps struct {
	Config   config.Config
	Log      *slog.Logger
	Analyzer analyzer.Analyzer
	RunLog   runlog.Logger
}

// Build loads env, config, and shared components.
func Build() (Deps, error) {
	// .env is optional local convenience; the environment wins either way.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	an, err := buildAnalyzer(cfg, log)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize analyzer: %w", err)
	}
	rl, err := buildRunLog(cfg, log)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize run log: %w", err)
	}
	return Deps{
		Config:   cfg,
		Log:      log,
		Analyzer: an,
		RunLog:   rl,
	}, nil
}

func buildAnalyzer(cfg config.Config, log *slog.Logger) (analyzer.Analyzer, error) {
	switch cfg.AnalyzerProvider {
	case "stub":
		log.Info("using stub analyzer", "model", cfg.LLMModel)
		return analyzer.NewStub(cfg.LLMModel), nil
	case "openai":
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required when ANALYZER_PROVIDER=openai")
		}
		client, err := analyzer.NewOpenAI(cfg.OpenAIKey, openai.ChatModel(cfg.LLMModel))
		if err != nil {
			return nil, fmt.Errorf("failed to initialize OpenAI analyzer: %w", err)
		}
		log.Info("using OpenAI analyzer", "model", cfg.LLMModel)
		return client, nil
	default:
		return nil, fmt.Errorf("invalid ANALYZER_PROVIDER: %s (valid options: stub, openai)", cfg.AnalyzerProvider)
	}
}

func buildRunLog(cfg config.Config, log *slog.Logger) (runlog.Logger, error) {
	if cfg.RunLogPath == "" {
		log.Info("run log disabled")
		return runlog.NewNoOp(), nil
	}
	fl, err := runlog.NewFile(cfg.RunLogPath)
	if err != nil {
		return nil, err
	}
	log.Info("run log enabled", "path", cfg.RunLogPath)
	return fl, nil
}
