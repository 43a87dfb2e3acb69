package transcribe

import (
	"time"

	"github.com/Harith-Y/Meeting-Analyzer/internal/audio"
)

// Model identifies an ASR backend.
type Model string

const (
	// ModelParakeet is the fast streaming backend with a high file-size
	// tolerance.
	ModelParakeet Model = "nvidia/parakeet-ctc-1.1b-asr"
	// ModelWhisper is the accurate offline backend with a hard size ceiling.
	ModelWhisper Model = "openai/whisper-large-v3"
)

type modelSpec struct {
	Name         string
	FunctionID   string
	LanguageCode string
	Offline      bool
}

var modelSpecs = map[Model]modelSpec{
	ModelParakeet: {
		Name:         "NVIDIA Parakeet (Fast)",
		FunctionID:   "1598d209-5e27-4d3c-8079-4751568b1081",
		LanguageCode: "en-US",
	},
	ModelWhisper: {
		Name:         "OpenAI Whisper Large V3 (Accurate)",
		FunctionID:   "b702f636-f60c-4a3d-a6f4-f3568c13bd7d",
		LanguageCode: "en",
		Offline:      true,
	},
}

// Valid reports whether m names a known backend.
func (m Model) Valid() bool {
	_, ok := modelSpecs[m]
	return ok
}

// Name returns the human-readable model name.
func (m Model) Name() string {
	return modelSpecs[m].Name
}

// Request describes one transcription call.
type Request struct {
	AudioPath     string
	Model         Model
	Diarize       bool
	SpeakerLabels []string
	Meta          audio.Metadata
}

// Segment is a contiguous span of transcript attributed to one speaker.
// Ordering is chronological and significant.
type Segment struct {
	Speaker string
	Text    string
	Start   float64
	End     float64
}

// Result holds the output of one transcription. It is either fully
// populated by Transcribe or not returned at all.
type Result struct {
	Model     Model
	ModelName string
	Raw       string
	Formatted string
	Clean     string
	Segments  []Segment
	WordCount int
	CharCount int
	Timestamp time.Time
}
