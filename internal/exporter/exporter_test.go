package exporter

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Harith-Y/Meeting-Analyzer/internal/config"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, msg string, args ...interface{}) {}
func (nopLogger) Info(ctx context.Context, msg string, args ...interface{})  {}
func (nopLogger) Warn(ctx context.Context, msg string, args ...interface{})  {}
func (nopLogger) Error(ctx context.Context, msg string, args ...interface{}) {}

func testSession() Session {
	return Session{
		Metadata: Metadata{
			Date:               "2025-03-14 10:30:00",
			AudioFile:          "lecture_05.mp3",
			Duration:           "45:12",
			TranscriptionModel: "NVIDIA Parakeet (Fast)",
			SummaryModel:       "deepseek/deepseek-chat-v3-0324:free",
			TranscriptWords:    2,
			SummaryWords:       3,
		},
		Transcript:    ArtifactOutput{Title: "Transcript", Text: "Hello world."},
		RawTranscript: "##hello world",
		Summary:       ArtifactOutput{Title: "Summary", Text: "A short summary."},
		KeyPoints:     ArtifactOutput{Title: "Key Points", Err: "rate limited after 4 attempts"},
		ExamQuestions: ArtifactOutput{Title: "Exam Questions"},
	}
}

func TestFilename(t *testing.T) {
	ts := time.Date(2025, 3, 14, 10, 30, 5, 0, time.UTC)

	tests := []struct {
		name string
		base string
		want string
	}{
		{"extension stripped", "lecture_05.mp3", "lecture_05_20250314_103005"},
		{"spaces become underscores", "intro to go.wav", "intro_to_go_20250314_103005"},
		{"unsafe runes dropped", "a/b\\c:d.m4a", "abcd_20250314_103005"},
		{"empty base falls back", "...", "lecture_20250314_103005"},
		{"no extension", "standalone", "standalone_20250314_103005"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filename(tt.base, ts)
			if got != tt.want {
				t.Errorf("Filename(%q) = %q, want %q", tt.base, got, tt.want)
			}
			if got != Filename(tt.base, ts) {
				t.Error("Filename must be deterministic")
			}
		})
	}
}

func TestRenderText(t *testing.T) {
	out := renderText(testSession(), true)

	for _, want := range []string{
		"METADATA",
		"Audio File: lecture_05.mp3",
		"TRANSCRIPT",
		"Hello world.",
		"SUMMARY",
		"A short summary.",
		"KEY POINTS",
		"[not available: rate limited after 4 attempts]",
		"EXAM QUESTIONS",
		"[not available: not requested]",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q", want)
		}
	}

	// Section order must be stable.
	if strings.Index(out, "TRANSCRIPT") > strings.Index(out, "SUMMARY") {
		t.Error("TRANSCRIPT must precede SUMMARY")
	}
}

func TestRenderTextWithoutMetadata(t *testing.T) {
	out := renderText(testSession(), false)
	if strings.Contains(out, "METADATA") {
		t.Error("metadata header present despite include_metadata=false")
	}
	if !strings.Contains(out, "Hello world.") {
		t.Error("transcript missing")
	}
}

func TestRenderMarkdown(t *testing.T) {
	out := renderMarkdown(testSession(), true)

	for _, want := range []string{
		"# lecture_05.mp3",
		"## Metadata",
		"- **Duration**: 45:12",
		"## Transcript",
		"## Key Points",
		"[not available: rate limited after 4 attempts]",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown output missing %q", want)
		}
	}
}

func TestRenderJSON(t *testing.T) {
	data, err := renderJSON(testSession())
	if err != nil {
		t.Fatalf("renderJSON returned error: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	meta := decoded["metadata"].(map[string]interface{})
	if meta["audio_file"] != "lecture_05.mp3" {
		t.Errorf("audio_file = %v", meta["audio_file"])
	}

	transcript := decoded["transcript"].(map[string]interface{})
	if transcript["available"] != true {
		t.Error("transcript should be available")
	}

	keyPoints := decoded["key_points"].(map[string]interface{})
	if keyPoints["available"] != false {
		t.Error("failed artifact must be marked unavailable")
	}
	if keyPoints["error"] != "rate limited after 4 attempts" {
		t.Errorf("key_points error = %v", keyPoints["error"])
	}
	if _, present := keyPoints["text"]; present {
		t.Error("unavailable artifact must omit text")
	}

	if decoded["raw_transcript"] != "##hello world" {
		t.Errorf("raw_transcript = %v", decoded["raw_transcript"])
	}
}

func newTestExporter(t *testing.T, formats []string) (*implExporter, string) {
	t.Helper()
	dir := t.TempDir()

	cfg := &config.Config{}
	cfg.Paths.Output = dir
	cfg.Export.Formats = formats
	cfg.Export.IncludeMetadata = true

	return &implExporter{cfg: cfg, logger: nopLogger{}}, dir
}

func TestExport(t *testing.T) {
	e, dir := newTestExporter(t, []string{"txt", "md", "json"})

	exported, err := e.Export(context.Background(), testSession(), "lecture_05_20250314_103005")
	if err != nil {
		t.Fatalf("Export returned error: %v", err)
	}
	if len(exported) != 3 {
		t.Fatalf("exported %d files, want 3", len(exported))
	}

	for format, path := range exported {
		if filepath.Dir(path) != dir {
			t.Errorf("%s exported outside output dir: %s", format, path)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Errorf("read %s: %v", path, err)
			continue
		}
		if len(data) == 0 {
			t.Errorf("%s file is empty", format)
		}
	}

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".export-") {
			t.Errorf("leftover temp file %s", entry.Name())
		}
	}
}

func TestExportUnknownFormat(t *testing.T) {
	e, dir := newTestExporter(t, []string{"txt", "pdf"})

	exported, err := e.Export(context.Background(), testSession(), "base")
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if _, ok := exported["txt"]; !ok {
		t.Error("a failing format must not stop the others")
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("output dir has %d entries, want only the txt export", len(entries))
	}
}

func TestExportOverwritesAtomically(t *testing.T) {
	e, _ := newTestExporter(t, []string{"txt"})

	first, err := e.Export(context.Background(), testSession(), "base")
	if err != nil {
		t.Fatal(err)
	}

	session := testSession()
	session.Transcript.Text = "Updated transcript."
	second, err := e.Export(context.Background(), session, "base")
	if err != nil {
		t.Fatal(err)
	}
	if first["txt"] != second["txt"] {
		t.Fatal("same base must produce the same path")
	}

	data, err := os.ReadFile(second["txt"])
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Updated transcript.") {
		t.Error("re-export did not replace the file contents")
	}
}
