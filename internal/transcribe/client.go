package transcribe

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/Harith-Y/Meeting-Analyzer/internal/audio"
	"github.com/Harith-Y/Meeting-Analyzer/internal/fault"
)

// Transcribe runs one transcription job against the selected backend. The
// call blocks until the backend returns, the computed timeout expires, or
// a terminal error occurs. A transient network failure is retried exactly
// once after a fixed delay.
func (t *implTranscriber) Transcribe(ctx context.Context, req Request) (*Result, error) {
	spec, ok := modelSpecs[req.Model]
	if !ok {
		return nil, fault.New(fault.KindValidation, "unknown transcription model %q", req.Model)
	}

	if t.cfg.Keys.NvidiaAPIKey == "" {
		return nil, fault.New(fault.KindAuth, "NVIDIA API key not found").
			WithRemedy("set NVIDIA_API_KEY in the environment or .env file")
	}

	if spec.Offline && req.Meta.SizeMB > float64(t.cfg.ASR.OfflineMaxFileSizeMB) {
		return nil, fault.New(fault.KindFileTooLarge,
			"file is %.1f MB, %s accepts at most %d MB", req.Meta.SizeMB, spec.Name, t.cfg.ASR.OfflineMaxFileSizeMB).
			WithRemedy("switch to the fast model or split the file")
	}

	labels := req.SpeakerLabels
	if len(labels) == 0 {
		labels = t.cfg.Speakers.Labels
	}

	timeout := Timeout(req.Meta.Duration, req.Diarize, t.cfg.ASR)
	t.logger.Info(ctx, "Starting transcription with %s (timeout %s, estimated %s)",
		spec.Name, timeout, audio.EstimateProcessingTime(req.Meta.Duration, string(req.Model)))

	raw, err := t.run(ctx, spec, req, labels, timeout)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Model:     req.Model,
		ModelName: spec.Name,
		Raw:       raw,
		Timestamp: time.Now(),
	}

	if req.Diarize {
		segments, err := ParseSegments(raw, labels)
		if err != nil {
			t.logger.Error(ctx, "Unexpected diarized output: %v\nraw payload: %s", err, raw)
			return nil, err
		}
		result.Segments = MergeAdjacent(segments)
		result.Formatted = FormatSegments(segments)
	} else if req.Model == ModelWhisper {
		result.Formatted = FormatWhisper(raw)
	} else {
		result.Formatted = FormatParakeet(raw)
	}

	if result.Formatted == "" {
		return nil, fault.New(fault.KindContract, "backend returned an empty transcript")
	}

	result.Clean = CleanText(result.Formatted)
	result.WordCount = len(strings.Fields(result.Formatted))
	result.CharCount = len(result.Formatted)

	t.logger.Info(ctx, "Transcription completed. Word count: %d", result.WordCount)
	return result, nil
}

func (t *implTranscriber) run(ctx context.Context, spec modelSpec, req Request, labels []string, timeout time.Duration) (string, error) {
	clientBin := t.cfg.ASR.StreamingClient
	if spec.Offline {
		clientBin = t.cfg.ASR.OfflineClient
	}

	args := []string{
		"--server", t.cfg.ASR.Server,
		"--use-ssl",
		"--metadata", "function-id", spec.FunctionID,
		"--metadata", "authorization", "Bearer " + t.cfg.Keys.NvidiaAPIKey,
		"--language-code", spec.LanguageCode,
		"--input-file", req.AudioPath,
	}
	if req.Diarize {
		args = append(args,
			"--speaker-diarization",
			"--diarization-max-speakers", strconv.Itoa(len(labels)),
		)
	}

	const maxAttempts = 2
	for attempt := 0; ; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, timeout)
		out, err := t.executor.Execute(callCtx, clientBin, args...)
		deadlineHit := errors.Is(callCtx.Err(), context.DeadlineExceeded)
		cancel()

		if err == nil {
			return out, nil
		}

		if deadlineHit {
			return "", fault.Wrap(fault.KindTimeout, err, "transcription timed out after %s", timeout).
				WithRemedy("process a shorter audio file or split the recording")
		}

		if isAuthError(err) {
			return "", fault.Wrap(fault.KindAuth, err, "backend rejected the API key").
				WithRemedy("check NVIDIA_API_KEY")
		}

		if isTransientError(err) {
			if attempt < maxAttempts-1 {
				t.logger.Warn(ctx, "Transient transcription failure, retrying in %s: %v", t.cfg.ASR.RetryDelay.Std(), err)
				if serr := t.sleep(ctx, t.cfg.ASR.RetryDelay.Std()); serr != nil {
					return "", serr
				}
				continue
			}
			return "", fault.Wrap(fault.KindTransient, err, "network failure after retry").
				WithRemedy("check the network connection and retry later")
		}

		return "", fault.Wrap(fault.KindValidation, err, "backend rejected the request").
			WithRemedy("try the other transcription model")
	}
}

var transientMarkers = []string{
	"connection reset",
	"connection refused",
	"unavailable",
	"deadline exceeded",
	"broken pipe",
	"unexpected eof",
	"no such host",
	"i/o timeout",
}

func isTransientError(err error) bool {
	msg := strings.ToLower(err.Error())
	for _, marker := range transientMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

func isAuthError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unauthenticated") ||
		strings.Contains(msg, "permission denied") ||
		strings.Contains(msg, "invalid api key")
}
