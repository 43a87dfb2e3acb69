package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Harith-Y/Meeting-Analyzer/internal/audio"
	"github.com/Harith-Y/Meeting-Analyzer/internal/config"
	"github.com/Harith-Y/Meeting-Analyzer/internal/exporter"
	"github.com/Harith-Y/Meeting-Analyzer/internal/fault"
	"github.com/Harith-Y/Meeting-Analyzer/internal/logger"
	"github.com/Harith-Y/Meeting-Analyzer/internal/pipeline"
	"github.com/Harith-Y/Meeting-Analyzer/internal/summarize"
	"github.com/Harith-Y/Meeting-Analyzer/internal/transcribe"
	"github.com/Harith-Y/Meeting-Analyzer/internal/watcher"
	"github.com/Harith-Y/Meeting-Analyzer/pkg/executor"
)

func main() {
	var (
		configPath   = flag.String("config", "config.yaml", "path to config file")
		watchMode    = flag.Bool("watch", false, "monitor the input directory instead of processing arguments")
		model        = flag.String("model", "", "transcription model (overrides config default)")
		diarize      = flag.Bool("diarize", false, "enable speaker diarization")
		speakers     = flag.String("speakers", "", "comma-separated speaker labels (default from config)")
		style        = flag.String("style", "class_lecture", "summary style: class_lecture, brief_summary, detailed_notes")
		withSummary  = flag.Bool("summary", true, "generate a summary")
		keyPoints    = flag.Bool("key-points", false, "extract key points")
		examQs       = flag.Bool("exam-questions", false, "generate exam questions")
		instructions = flag.String("instructions", "", "additional instructions for the summary prompt")
	)
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Lecture Transcription Pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "ASR model: %s", cfg.ASR.DefaultModel)
	log.Info(ctx, "LLM provider: %s", cfg.LLM.Provider)

	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	exec := executor.New()
	audioProc := audio.New(cfg, exec, log)

	if err := audioProc.CheckTools(); err != nil {
		log.Error(ctx, "Precondition failed: %v", err)
		if remedy := fault.RemedyOf(err); remedy != "" {
			log.Error(ctx, "Remedy: %s", remedy)
		}
		os.Exit(1)
	}

	generator, err := summarize.New(cfg, log)
	if err != nil {
		log.Error(ctx, "Failed to create generator: %v", err)
		os.Exit(1)
	}

	proc := pipeline.New(cfg, audioProc, transcribe.New(cfg, exec, log), generator, exporter.New(cfg, log), log)

	jobTemplate := pipeline.Job{
		Model:              transcribe.Model(*model),
		Diarize:            *diarize,
		Style:              summarize.Style(*style),
		CustomInstructions: *instructions,
		WithSummary:        *withSummary,
		WithKeyPoints:      *keyPoints,
		WithExamQuestions:  *examQs,
	}
	if *speakers != "" {
		for _, label := range strings.Split(*speakers, ",") {
			if label = strings.TrimSpace(label); label != "" {
				jobTemplate.SpeakerLabels = append(jobTemplate.SpeakerLabels, label)
			}
		}
	}

	if *watchMode {
		runWatchMode(ctx, cfg, proc, jobTemplate, log)
		return
	}

	files := flag.Args()
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: analyzer [flags] <audio file> [<audio file> ...]")
		fmt.Fprintln(os.Stderr, "       analyzer [flags] -watch")
		flag.PrintDefaults()
		os.Exit(2)
	}

	failed := 0
	for i, path := range files {
		log.Info(ctx, "[%d/%d] Processing %s", i+1, len(files), path)

		job := jobTemplate
		job.AudioPath = path
		if _, err := proc.Process(ctx, job); err != nil {
			failed++
			log.Error(ctx, "Failed to process %s: %s", path, logger.FormatError(err))
			if remedy := fault.RemedyOf(err); remedy != "" {
				log.Error(ctx, "Remedy: %s", remedy)
			}
		}
	}

	log.Info(ctx, "Done: %d succeeded, %d failed", len(files)-failed, failed)
	if failed > 0 {
		os.Exit(1)
	}
}

func runWatchMode(ctx context.Context, cfg *config.Config, proc pipeline.Processor, jobTemplate pipeline.Job, log logger.Logger) {
	handler := func(ctx context.Context, filePath string) error {
		job := jobTemplate
		job.AudioPath = filePath
		_, err := proc.Process(ctx, job)
		return err
	}

	w, err := watcher.New(cfg.Paths.Input, cfg.Audio.SupportedFormats, handler, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Press Ctrl+C to stop")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	log.Info(ctx, "Shutting down gracefully...")
	cancel()
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Temp,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
