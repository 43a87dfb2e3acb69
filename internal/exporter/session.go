package exporter

// Metadata describes the session for file headers.
type Metadata struct {
	Date               string
	AudioFile          string
	Duration           string
	TranscriptionModel string
	SummaryModel       string
	TranscriptWords    int
	SummaryWords       int
}

func (m Metadata) pairs() [][2]string {
	return [][2]string{
		{"Date", m.Date},
		{"Audio File", m.AudioFile},
		{"Duration", m.Duration},
		{"Transcription Model", m.TranscriptionModel},
		{"Summary Model", m.SummaryModel},
	}
}

// ArtifactOutput is one exportable artifact. A failed artifact carries the
// failure reason and is rendered as an explicit "not available" marker so
// the exported bundle stays self-describing.
type ArtifactOutput struct {
	Title string
	Text  string
	Err   string
}

// Available reports whether the artifact was produced successfully.
func (a ArtifactOutput) Available() bool {
	return a.Err == "" && a.Text != ""
}

func (a ArtifactOutput) render() string {
	if a.Available() {
		return a.Text
	}
	reason := a.Err
	if reason == "" {
		reason = "not requested"
	}
	return "[not available: " + reason + "]"
}

// Session bundles everything exportable for one job.
type Session struct {
	Metadata      Metadata
	Transcript    ArtifactOutput
	RawTranscript string
	Summary       ArtifactOutput
	KeyPoints     ArtifactOutput
	ExamQuestions ArtifactOutput
}

func (s Session) artifacts() []ArtifactOutput {
	return []ArtifactOutput{s.Transcript, s.Summary, s.KeyPoints, s.ExamQuestions}
}
