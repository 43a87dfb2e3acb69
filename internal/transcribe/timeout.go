package transcribe

import (
	"time"

	"github.com/Harith-Y/Meeting-Analyzer/internal/config"
)

// Timeout computes the remote-call deadline for an audio file of the given
// duration. The timeout grows proportionally with duration, is multiplied
// when diarization is requested (diarization is substantially slower per
// unit audio), and is clamped to the configured floor and ceiling.
func Timeout(audioDuration time.Duration, diarize bool, cfg config.ASRConfig) time.Duration {
	t := time.Duration(float64(audioDuration) * cfg.TimeoutFactor)
	if diarize {
		t *= time.Duration(cfg.DiarizationMultiplier)
	}

	if floor := cfg.TimeoutFloor.Std(); t < floor {
		t = floor
	}
	if ceiling := cfg.TimeoutCeiling.Std(); t > ceiling {
		t = ceiling
	}
	return t
}
