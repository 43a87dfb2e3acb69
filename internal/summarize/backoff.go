package summarize

import (
	"time"

	"github.com/Harith-Y/Meeting-Analyzer/internal/config"
)

// Backoff returns the delay before retry number attempt (zero-based), or
// false when the schedule is exhausted and the failure is terminal.
func Backoff(attempt int, schedule []config.Duration) (time.Duration, bool) {
	if attempt < 0 || attempt >= len(schedule) {
		return 0, false
	}
	return schedule[attempt].Std(), true
}

// MaxAttempts is the total number of requests allowed by a backoff
// schedule: one initial attempt plus one retry per scheduled delay.
func MaxAttempts(schedule []config.Duration) int {
	return len(schedule) + 1
}
