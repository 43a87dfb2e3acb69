package audio

import (
	"github.com/Harith-Y/Meeting-Analyzer/internal/config"
	"github.com/Harith-Y/Meeting-Analyzer/internal/logger"
	"github.com/Harith-Y/Meeting-Analyzer/pkg/executor"
)

type implProcessor struct {
	cfg      *config.Config
	executor executor.Executor
	logger   logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Processor {
	return &implProcessor{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
