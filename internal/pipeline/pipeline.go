package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/Harith-Y/Meeting-Analyzer/internal/exporter"
	"github.com/Harith-Y/Meeting-Analyzer/internal/fault"
	"github.com/Harith-Y/Meeting-Analyzer/internal/logger"
	"github.com/Harith-Y/Meeting-Analyzer/internal/summarize"
	"github.com/Harith-Y/Meeting-Analyzer/internal/transcribe"
)

// Process orchestrates the entire pipeline for one Job: validate/convert →
// transcribe → format → generate artifacts → export. Stages run strictly
// sequentially; a failed artifact stage never aborts completed stages.
func (p *implProcessor) Process(ctx context.Context, job Job) (*Outcome, error) {
	startTime := time.Now()
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	if job.Model == "" {
		job.Model = transcribe.Model(p.cfg.ASR.DefaultModel)
	}
	if job.Style == "" {
		job.Style = summarize.StyleClassLecture
	}
	if !job.Style.Valid() {
		return nil, fault.New(fault.KindValidation, "unknown summary style %q", job.Style)
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting job %s: %s", job.ID, job.AudioPath)
	p.logger.Info(ctx, "========================================")

	// Step 1: Validate and probe the audio file
	meta, err := p.audio.Probe(ctx, job.AudioPath)
	if err != nil {
		return nil, fmt.Errorf("validate audio: %w", err)
	}

	// Step 2: Convert to the WAV shape the backends expect
	wavPath, err := p.audio.Convert(ctx, job.AudioPath)
	if err != nil {
		return nil, fmt.Errorf("convert audio: %w", err)
	}
	if wavPath != job.AudioPath {
		defer p.cleanupTempFile(ctx, wavPath)
	}

	// Step 3: Transcribe
	trResult, err := p.transcriber.Transcribe(ctx, transcribe.Request{
		AudioPath:     wavPath,
		Model:         job.Model,
		Diarize:       job.Diarize,
		SpeakerLabels: job.SpeakerLabels,
		Meta:          meta,
	})
	if err != nil {
		return nil, fmt.Errorf("transcribe: %w", err)
	}

	outcome := &Outcome{
		Job:           job,
		Audio:         meta,
		Transcription: trResult,
	}

	// Step 4: Generate requested artifacts. Each one fails independently.
	if job.WithSummary {
		outcome.Summary = p.generate(ctx, summarize.Request{
			Artifact:           summarize.ArtifactSummary,
			Transcript:         trResult.Clean,
			Style:              job.Style,
			CustomInstructions: job.CustomInstructions,
		})
	}
	if job.WithKeyPoints {
		outcome.KeyPoints = p.generate(ctx, summarize.Request{
			Artifact:   summarize.ArtifactKeyPoints,
			Transcript: trResult.Clean,
		})
	}
	if job.WithExamQuestions {
		outcome.ExamQuestions = p.generate(ctx, summarize.Request{
			Artifact:   summarize.ArtifactExamQuestions,
			Transcript: trResult.Clean,
		})
	}

	// Step 5: Export everything that completed
	base := exporter.Filename(meta.FileName, startTime)
	exported, err := p.exporter.Export(ctx, p.buildSession(outcome), base)
	outcome.Exported = exported
	if err != nil {
		p.logger.Warn(ctx, "Some exports failed: %v", err)
	}

	outcome.Elapsed = time.Since(startTime)

	p.logger.Info(ctx, "========================================")
	if outcome.PartialFailure() {
		p.logger.Warn(ctx, "Job %s completed with partial results", job.ID)
	} else {
		p.logger.Info(ctx, "Job %s completed successfully!", job.ID)
	}
	for format, path := range outcome.Exported {
		p.logger.Info(ctx, "Output (%s): %s", format, path)
	}
	p.logger.Info(ctx, "Processing time: %s", outcome.Elapsed)
	p.logger.Info(ctx, "========================================")

	return outcome, nil
}

func (p *implProcessor) generate(ctx context.Context, req summarize.Request) ArtifactResult {
	result, err := p.generator.Generate(ctx, req)
	if err != nil {
		p.logger.Error(ctx, "Failed to generate %s: %s", req.Artifact, describeFailure(err))
		return ArtifactResult{Err: err}
	}
	return ArtifactResult{Result: result}
}

func (p *implProcessor) buildSession(outcome *Outcome) exporter.Session {
	session := exporter.Session{
		Transcript: exporter.ArtifactOutput{
			Title: "Transcript",
			Text:  outcome.Transcription.Formatted,
		},
		RawTranscript: outcome.Transcription.Raw,
		Summary:       toArtifactOutput("Summary", outcome.Job.WithSummary, outcome.Summary),
		KeyPoints:     toArtifactOutput("Key Points", outcome.Job.WithKeyPoints, outcome.KeyPoints),
		ExamQuestions: toArtifactOutput("Exam Questions", outcome.Job.WithExamQuestions, outcome.ExamQuestions),
	}

	session.Metadata = exporter.Metadata{
		Date:               time.Now().Format("2006-01-02 15:04:05"),
		AudioFile:          outcome.Audio.FileName,
		Duration:           outcome.Audio.DurationFormatted(),
		TranscriptionModel: outcome.Transcription.ModelName,
		TranscriptWords:    outcome.Transcription.WordCount,
	}
	if outcome.Summary.Result != nil {
		session.Metadata.SummaryModel = outcome.Summary.Result.Model
		session.Metadata.SummaryWords = outcome.Summary.Result.WordCount
	}

	return session
}

func toArtifactOutput(title string, requested bool, res ArtifactResult) exporter.ArtifactOutput {
	out := exporter.ArtifactOutput{Title: title}
	switch {
	case res.Result != nil:
		out.Text = res.Result.Text
	case res.Err != nil:
		out.Err = describeFailure(res.Err)
	case !requested:
		out.Err = "not requested"
	}
	return out
}

// describeFailure renders an error with its remedy, when one is attached.
func describeFailure(err error) string {
	msg := logger.FormatError(err)
	if remedy := fault.RemedyOf(err); remedy != "" {
		msg += " (" + remedy + ")"
	}
	return msg
}

// cleanupTempFile removes a temporary file, logs warning if fails
func (p *implProcessor) cleanupTempFile(ctx context.Context, filePath string) {
	if err := os.Remove(filePath); err != nil {
		p.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", filePath, err)
	} else {
		p.logger.Debug(ctx, "Cleaned up temp file: %s", filePath)
	}
}
