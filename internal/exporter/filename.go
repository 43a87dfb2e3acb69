package exporter

import (
	"strings"
	"time"
	"unicode"
)

// Filename derives a collision-free export base name from the source file
// name and a timestamp. Deterministic for a given (base, t) pair.
func Filename(base string, t time.Time) string {
	base = strings.TrimSpace(base)
	if idx := strings.LastIndex(base, "."); idx > 0 {
		base = base[:idx]
	}
	base = sanitize(base)
	if base == "" {
		base = "lecture"
	}

	return base + "_" + t.Format("20060102_150405")
}

func sanitize(s string) string {
	s = strings.ReplaceAll(s, " ", "_")

	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
