package exporter

import (
	"github.com/Harith-Y/Meeting-Analyzer/internal/config"
	"github.com/Harith-Y/Meeting-Analyzer/internal/logger"
)

type implExporter struct {
	cfg    *config.Config
	logger logger.Logger
}

// New creates a new Exporter instance
func New(cfg *config.Config, log logger.Logger) Exporter {
	return &implExporter{
		cfg:    cfg,
		logger: log,
	}
}
