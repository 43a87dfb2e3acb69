package summarize

import (
	"context"
	"fmt"
	"time"

	"github.com/Harith-Y/Meeting-Analyzer/internal/config"
	"github.com/Harith-Y/Meeting-Analyzer/internal/logger"
)

// New creates a Generator for the configured LLM provider.
func New(cfg *config.Config, log logger.Logger) (Generator, error) {
	switch cfg.LLM.Provider {
	case "openrouter":
		return newOpenRouter(cfg, log), nil
	case "gemini":
		return newGemini(cfg, log), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.LLM.Provider)
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
