package pipeline

import (
	"time"

	"github.com/Harith-Y/Meeting-Analyzer/internal/audio"
	"github.com/Harith-Y/Meeting-Analyzer/internal/summarize"
	"github.com/Harith-Y/Meeting-Analyzer/internal/transcribe"
)

// Job is one user-submitted audio file plus its processing options. It
// lives for the duration of processing; only the exported files survive.
type Job struct {
	ID        string
	AudioPath string

	Model         transcribe.Model
	Diarize       bool
	SpeakerLabels []string

	Style              summarize.Style
	CustomInstructions string

	WithSummary       bool
	WithKeyPoints     bool
	WithExamQuestions bool
}

// ArtifactResult is the outcome of one generation stage: a result or an
// error, never both.
type ArtifactResult struct {
	Result *summarize.Result
	Err    error
}

// Outcome is the terminal state of a Job. Artifact stages fail
// independently; a populated Transcription with some failed artifacts is
// a valid, clearly-labeled partial success.
type Outcome struct {
	Job           Job
	Audio         audio.Metadata
	Transcription *transcribe.Result
	Summary       ArtifactResult
	KeyPoints     ArtifactResult
	ExamQuestions ArtifactResult
	Exported      map[string]string
	Elapsed       time.Duration
}

// PartialFailure reports whether any requested artifact failed while the
// transcription itself succeeded.
func (o *Outcome) PartialFailure() bool {
	if o.Transcription == nil {
		return false
	}
	return o.Summary.Err != nil || o.KeyPoints.Err != nil || o.ExamQuestions.Err != nil
}
