package exporter

import (
	"encoding/json"
	"strings"
)

const headerRule = "================================================================================"

func renderText(session Session, includeMetadata bool) string {
	var b strings.Builder

	if includeMetadata {
		b.WriteString("METADATA\n")
		b.WriteString(headerRule + "\n")
		for _, pair := range session.Metadata.pairs() {
			b.WriteString(pair[0] + ": " + pair[1] + "\n")
		}
		b.WriteString("\n" + headerRule + "\n\n")
	}

	sections := []struct {
		title    string
		artifact ArtifactOutput
	}{
		{"TRANSCRIPT", session.Transcript},
		{"SUMMARY", session.Summary},
		{"KEY POINTS", session.KeyPoints},
		{"EXAM QUESTIONS", session.ExamQuestions},
	}

	for i, s := range sections {
		if i > 0 {
			b.WriteString("\n\n" + headerRule + "\n\n")
		}
		b.WriteString(s.title + "\n\n")
		b.WriteString(s.artifact.render())
	}
	b.WriteString("\n")

	return b.String()
}

func renderMarkdown(session Session, includeMetadata bool) string {
	var b strings.Builder

	b.WriteString("# " + session.Metadata.AudioFile + " — Transcription and Study Guide\n\n")

	if includeMetadata {
		b.WriteString("## Metadata\n\n")
		for _, pair := range session.Metadata.pairs() {
			b.WriteString("- **" + pair[0] + "**: " + pair[1] + "\n")
		}
		b.WriteString("\n---\n\n")
	}

	sections := []struct {
		title    string
		artifact ArtifactOutput
	}{
		{"Transcript", session.Transcript},
		{"Summary", session.Summary},
		{"Key Points", session.KeyPoints},
		{"Exam Questions", session.ExamQuestions},
	}

	for _, s := range sections {
		b.WriteString("## " + s.title + "\n\n")
		b.WriteString(s.artifact.render())
		b.WriteString("\n\n")
	}

	return b.String()
}

type jsonArtifact struct {
	Available bool   `json:"available"`
	Text      string `json:"text,omitempty"`
	Error     string `json:"error,omitempty"`
}

type jsonSession struct {
	Metadata struct {
		Date               string `json:"date"`
		AudioFile          string `json:"audio_file"`
		Duration           string `json:"duration"`
		TranscriptionModel string `json:"transcription_model"`
		SummaryModel       string `json:"summary_model"`
		TranscriptWords    int    `json:"transcript_word_count"`
		SummaryWords       int    `json:"summary_word_count"`
	} `json:"metadata"`
	Transcript    jsonArtifact `json:"transcript"`
	RawTranscript string       `json:"raw_transcript,omitempty"`
	Summary       jsonArtifact `json:"summary"`
	KeyPoints     jsonArtifact `json:"key_points"`
	ExamQuestions jsonArtifact `json:"exam_questions"`
}

func renderJSON(session Session) ([]byte, error) {
	var out jsonSession
	out.Metadata.Date = session.Metadata.Date
	out.Metadata.AudioFile = session.Metadata.AudioFile
	out.Metadata.Duration = session.Metadata.Duration
	out.Metadata.TranscriptionModel = session.Metadata.TranscriptionModel
	out.Metadata.SummaryModel = session.Metadata.SummaryModel
	out.Metadata.TranscriptWords = session.Metadata.TranscriptWords
	out.Metadata.SummaryWords = session.Metadata.SummaryWords

	out.Transcript = toJSONArtifact(session.Transcript)
	out.RawTranscript = session.RawTranscript
	out.Summary = toJSONArtifact(session.Summary)
	out.KeyPoints = toJSONArtifact(session.KeyPoints)
	out.ExamQuestions = toJSONArtifact(session.ExamQuestions)

	return json.MarshalIndent(out, "", "  ")
}

func toJSONArtifact(a ArtifactOutput) jsonArtifact {
	if a.Available() {
		return jsonArtifact{Available: true, Text: a.Text}
	}
	reason := a.Err
	if reason == "" {
		reason = "not requested"
	}
	return jsonArtifact{Available: false, Error: reason}
}
