package audio

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Harith-Y/Meeting-Analyzer/internal/config"
	"github.com/Harith-Y/Meeting-Analyzer/internal/fault"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, msg string, args ...interface{}) {}
func (nopLogger) Info(ctx context.Context, msg string, args ...interface{})  {}
func (nopLogger) Warn(ctx context.Context, msg string, args ...interface{})  {}
func (nopLogger) Error(ctx context.Context, msg string, args ...interface{}) {}

type fakeExecutor struct {
	out   string
	err   error
	calls [][]string
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	return f.out, f.err
}

func (f *fakeExecutor) Available(name string) bool { return true }

func newTestProcessor(t *testing.T, exec *fakeExecutor) (*implProcessor, string) {
	t.Helper()
	dir := t.TempDir()

	cfg := &config.Config{}
	cfg.Audio.SupportedFormats = []string{"mp3", "wav", "m4a", "flac", "ogg", "aac", "wma"}
	cfg.Audio.MaxFileSizeMB = 500
	cfg.Audio.SampleRate = 16000
	cfg.Audio.Channels = 1
	cfg.Audio.Codec = "pcm_s16le"
	cfg.Paths.Temp = filepath.Join(dir, "temp")

	return &implProcessor{cfg: cfg, executor: exec, logger: nopLogger{}}, dir
}

const probeJSON = `{
	"streams": [
		{"codec_type": "video", "codec_name": "mjpeg"},
		{"codec_type": "audio", "codec_name": "mp3", "sample_rate": "44100", "channels": 2}
	],
	"format": {"duration": "125.5"}
}`

func writeTestFile(t *testing.T, dir, name string, size int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, make([]byte, size), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestProbe(t *testing.T) {
	exec := &fakeExecutor{out: probeJSON}
	p, dir := newTestProcessor(t, exec)
	path := writeTestFile(t, dir, "lecture.mp3", 2048)

	meta, err := p.Probe(context.Background(), path)
	if err != nil {
		t.Fatalf("Probe returned error: %v", err)
	}

	if meta.FileName != "lecture.mp3" {
		t.Errorf("FileName = %q", meta.FileName)
	}
	if meta.Format != "mp3" {
		t.Errorf("Format = %q", meta.Format)
	}
	if meta.Duration != 125500*time.Millisecond {
		t.Errorf("Duration = %v, want 2m5.5s", meta.Duration)
	}
	if meta.Codec != "mp3" || meta.SampleRate != 44100 || meta.Channels != 2 {
		t.Errorf("stream metadata = %q/%d/%d, want audio stream values", meta.Codec, meta.SampleRate, meta.Channels)
	}
	if len(exec.calls) != 1 || exec.calls[0][0] != "ffprobe" {
		t.Errorf("expected exactly one ffprobe call, got %v", exec.calls)
	}
}

func TestProbeMissingFile(t *testing.T) {
	p, dir := newTestProcessor(t, &fakeExecutor{})

	_, err := p.Probe(context.Background(), filepath.Join(dir, "absent.mp3"))
	if fault.KindOf(err) != fault.KindValidation {
		t.Errorf("fault kind = %v, want %v", fault.KindOf(err), fault.KindValidation)
	}
}

func TestProbeUnsupportedFormat(t *testing.T) {
	exec := &fakeExecutor{}
	p, dir := newTestProcessor(t, exec)
	path := writeTestFile(t, dir, "notes.txt", 100)

	_, err := p.Probe(context.Background(), path)
	if fault.KindOf(err) != fault.KindValidation {
		t.Errorf("fault kind = %v, want %v", fault.KindOf(err), fault.KindValidation)
	}
	if len(exec.calls) != 0 {
		t.Error("ffprobe must not run for an unsupported format")
	}
}

func TestProbeFileTooLarge(t *testing.T) {
	exec := &fakeExecutor{}
	p, dir := newTestProcessor(t, exec)
	p.cfg.Audio.MaxFileSizeMB = 1
	path := writeTestFile(t, dir, "huge.mp3", 2*1024*1024)

	_, err := p.Probe(context.Background(), path)
	if fault.KindOf(err) != fault.KindFileTooLarge {
		t.Errorf("fault kind = %v, want %v", fault.KindOf(err), fault.KindFileTooLarge)
	}
	if fault.RemedyOf(err) == "" {
		t.Error("size fault should carry a remedy")
	}
	if len(exec.calls) != 0 {
		t.Error("ffprobe must not run for an oversized file")
	}
}

func TestProbeSurvivesFfprobeFailure(t *testing.T) {
	exec := &fakeExecutor{err: errors.New("ffprobe exploded")}
	p, dir := newTestProcessor(t, exec)
	path := writeTestFile(t, dir, "odd.mp3", 512)

	meta, err := p.Probe(context.Background(), path)
	if err != nil {
		t.Fatalf("Probe must degrade gracefully: %v", err)
	}
	if meta.FileName != "odd.mp3" || meta.Duration != 0 {
		t.Errorf("basic metadata = %+v", meta)
	}
}

func TestConvert(t *testing.T) {
	exec := &fakeExecutor{}
	p, dir := newTestProcessor(t, exec)
	path := filepath.Join(dir, "lecture.mp3")

	out, err := p.Convert(context.Background(), path)
	if err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}
	if filepath.Base(out) != "lecture.wav" {
		t.Errorf("output = %q, want lecture.wav in temp dir", out)
	}
	if filepath.Dir(out) != p.cfg.Paths.Temp {
		t.Errorf("output dir = %q, want configured temp dir", filepath.Dir(out))
	}

	call := exec.calls[0]
	if call[0] != "ffmpeg" {
		t.Fatalf("tool = %q", call[0])
	}
	joined := strings.Join(call, " ")
	for _, want := range []string{"-vn", "-ar 16000", "-ac 1", "-c:a pcm_s16le"} {
		if !strings.Contains(joined, want) {
			t.Errorf("ffmpeg args missing %q in %q", want, joined)
		}
	}
}

func TestConvertSkipsWav(t *testing.T) {
	exec := &fakeExecutor{}
	p, dir := newTestProcessor(t, exec)
	path := filepath.Join(dir, "already.wav")

	out, err := p.Convert(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}
	if out != path {
		t.Errorf("WAV input must pass through untouched, got %q", out)
	}
	if len(exec.calls) != 0 {
		t.Error("ffmpeg must not run for a WAV input")
	}
}

func TestDurationFormatted(t *testing.T) {
	tests := []struct {
		duration time.Duration
		want     string
	}{
		{0, "00:00"},
		{45 * time.Second, "00:45"},
		{45*time.Minute + 12*time.Second, "45:12"},
		{time.Hour + 5*time.Minute + 3*time.Second, "01:05:03"},
	}

	for _, tt := range tests {
		got := Metadata{Duration: tt.duration}.DurationFormatted()
		if got != tt.want {
			t.Errorf("DurationFormatted(%v) = %q, want %q", tt.duration, got, tt.want)
		}
	}
}

func TestEstimateProcessingTime(t *testing.T) {
	tests := []struct {
		duration time.Duration
		model    string
		want     string
	}{
		{30 * time.Second, "nvidia/parakeet-ctc-1.1b-asr", "Less than 1 minute"},
		{10 * time.Minute, "nvidia/parakeet-ctc-1.1b-asr", "Approximately 12 minutes"},
		{10 * time.Minute, "openai/whisper-large-v3", "Approximately 25 minutes"},
		{60 * time.Minute, "openai/whisper-large-v3", "Approximately 2.5 hours"},
	}

	for _, tt := range tests {
		got := EstimateProcessingTime(tt.duration, tt.model)
		if got != tt.want {
			t.Errorf("EstimateProcessingTime(%v, %s) = %q, want %q", tt.duration, tt.model, got, tt.want)
		}
	}
}
