package audio

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/Harith-Y/Meeting-Analyzer/internal/fault"
)

// Metadata describes a validated audio file.
type Metadata struct {
	Path       string
	FileName   string
	Format     string
	SizeMB     float64
	Duration   time.Duration
	SampleRate int
	Channels   int
	Codec      string
}

// DurationFormatted renders the duration as MM:SS or HH:MM:SS.
func (m Metadata) DurationFormatted() string {
	total := int(m.Duration.Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}

// Probe validates the file against the configured format whitelist and size
// ceiling, then reads stream metadata with ffprobe. Validation failures are
// reported before any conversion or network activity.
func (p *implProcessor) Probe(ctx context.Context, path string) (Metadata, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Metadata{}, fault.Wrap(fault.KindValidation, err, "audio file not found: %s", path)
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if !p.isSupportedFormat(ext) {
		return Metadata{}, fault.New(fault.KindValidation,
			"unsupported format .%s (supported: %s)", ext, strings.Join(p.cfg.Audio.SupportedFormats, ", "))
	}

	sizeMB := float64(info.Size()) / (1024 * 1024)
	if sizeMB > float64(p.cfg.Audio.MaxFileSizeMB) {
		return Metadata{}, fault.New(fault.KindFileTooLarge,
			"file is %.1f MB, limit is %d MB", sizeMB, p.cfg.Audio.MaxFileSizeMB).
			WithRemedy("split the recording into shorter files")
	}

	meta := Metadata{
		Path:     path,
		FileName: filepath.Base(path),
		Format:   ext,
		SizeMB:   sizeMB,
	}

	out, err := p.executor.Execute(ctx, "ffprobe",
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		path,
	)
	if err != nil {
		// Keep the basic metadata usable when ffprobe cannot parse the file.
		p.logger.Warn(ctx, "ffprobe failed for %s: %v", path, err)
		return meta, nil
	}

	if err := parseProbeOutput(out, &meta); err != nil {
		p.logger.Warn(ctx, "could not parse ffprobe output for %s: %v", path, err)
	}

	p.logger.Info(ctx, "Audio file validated: %s - %s - %.2f MB",
		meta.FileName, meta.DurationFormatted(), meta.SizeMB)
	return meta, nil
}

// Convert re-encodes the file to mono 16kHz PCM WAV in the temp directory.
// Files already in that shape pass through untouched.
func (p *implProcessor) Convert(ctx context.Context, path string) (string, error) {
	if strings.ToLower(filepath.Ext(path)) == ".wav" {
		p.logger.Debug(ctx, "File is already WAV, skipping conversion: %s", path)
		return path, nil
	}

	if err := os.MkdirAll(p.cfg.Paths.Temp, 0755); err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	outputPath := filepath.Join(p.cfg.Paths.Temp, base+".wav")

	p.logger.Info(ctx, "Converting %s to WAV", path)

	args := []string{
		"-i", path,
		"-vn",
		"-ar", strconv.Itoa(p.cfg.Audio.SampleRate),
		"-ac", strconv.Itoa(p.cfg.Audio.Channels),
		"-c:a", p.cfg.Audio.Codec,
		"-y",
		outputPath,
	}

	if _, err := p.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return "", fault.Wrap(fault.KindValidation, err, "audio conversion failed for %s", path)
	}

	p.logger.Info(ctx, "Conversion successful: %s", outputPath)
	return outputPath, nil
}

// CheckTools verifies that ffmpeg and ffprobe are reachable on PATH.
func (p *implProcessor) CheckTools() error {
	for _, tool := range []string{"ffmpeg", "ffprobe"} {
		if !p.executor.Available(tool) {
			return fault.New(fault.KindPrecondition, "%s is not installed or not in PATH", tool).
				WithRemedy("install ffmpeg and make sure it is on PATH")
		}
	}
	return nil
}

func (p *implProcessor) isSupportedFormat(ext string) bool {
	for _, f := range p.cfg.Audio.SupportedFormats {
		if ext == f {
			return true
		}
	}
	return false
}

type probeOutput struct {
	Streams []struct {
		CodecType  string `json:"codec_type"`
		CodecName  string `json:"codec_name"`
		SampleRate string `json:"sample_rate"`
		Channels   int    `json:"channels"`
	} `json:"streams"`
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

func parseProbeOutput(out string, meta *Metadata) error {
	var probe probeOutput
	if err := json.Unmarshal([]byte(out), &probe); err != nil {
		return fmt.Errorf("decode ffprobe json: %w", err)
	}

	if secs, err := strconv.ParseFloat(probe.Format.Duration, 64); err == nil {
		meta.Duration = time.Duration(secs * float64(time.Second))
	}

	for _, s := range probe.Streams {
		if s.CodecType != "audio" {
			continue
		}
		meta.Codec = s.CodecName
		meta.Channels = s.Channels
		if rate, err := strconv.Atoi(s.SampleRate); err == nil {
			meta.SampleRate = rate
		}
		break
	}

	return nil
}

// EstimateProcessingTime gives a rough human-readable transcription time
// estimate for the given audio duration and model.
func EstimateProcessingTime(duration time.Duration, model string) string {
	minutes := duration.Minutes()

	var estimated float64
	if strings.Contains(strings.ToLower(model), "parakeet") {
		estimated = minutes * 1.2
	} else {
		estimated = minutes * 2.5
	}

	switch {
	case estimated < 1:
		return "Less than 1 minute"
	case estimated < 60:
		return fmt.Sprintf("Approximately %d minutes", int(estimated))
	default:
		return fmt.Sprintf("Approximately %.1f hours", estimated/60)
	}
}
