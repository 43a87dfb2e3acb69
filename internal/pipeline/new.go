package pipeline

import (
	"github.com/Harith-Y/Meeting-Analyzer/internal/audio"
	"github.com/Harith-Y/Meeting-Analyzer/internal/config"
	"github.com/Harith-Y/Meeting-Analyzer/internal/exporter"
	"github.com/Harith-Y/Meeting-Analyzer/internal/logger"
	"github.com/Harith-Y/Meeting-Analyzer/internal/summarize"
	"github.com/Harith-Y/Meeting-Analyzer/internal/transcribe"
)

type implProcessor struct {
	cfg         *config.Config
	audio       audio.Processor
	transcriber transcribe.Transcriber
	generator   summarize.Generator
	exporter    exporter.Exporter
	logger      logger.Logger
}

// New creates a new Processor instance
func New(
	cfg *config.Config,
	audioProc audio.Processor,
	transcriber transcribe.Transcriber,
	generator summarize.Generator,
	exp exporter.Exporter,
	log logger.Logger,
) Processor {
	return &implProcessor{
		cfg:         cfg,
		audio:       audioProc,
		transcriber: transcriber,
		generator:   generator,
		exporter:    exp,
		logger:      log,
	}
}
