package summarize

import "time"

// Artifact names a generated output kind.
type Artifact string

const (
	ArtifactSummary       Artifact = "summary"
	ArtifactKeyPoints     Artifact = "key_points"
	ArtifactExamQuestions Artifact = "exam_questions"
)

// Style selects the summary prompt template.
type Style string

const (
	StyleClassLecture Style = "class_lecture"
	StyleBrief        Style = "brief_summary"
	StyleDetailed     Style = "detailed_notes"
)

// Valid reports whether s names a known style.
func (s Style) Valid() bool {
	switch s {
	case StyleClassLecture, StyleBrief, StyleDetailed:
		return true
	}
	return false
}

// Request describes one artifact generation call.
type Request struct {
	Artifact   Artifact
	Transcript string
	Style      Style
	// CustomInstructions are appended to the prompt when set.
	CustomInstructions string
	// MaxPoints bounds the key-points list (default 10).
	MaxPoints int
	// NumQuestions is the number of exam questions to generate (default 5).
	NumQuestions int
}

// Result holds one cleaned generated artifact. It is either fully
// populated by Generate or not returned at all.
type Result struct {
	Artifact  Artifact
	Text      string
	Model     string
	KeyPoints []string
	WordCount int
	Timestamp time.Time
}
