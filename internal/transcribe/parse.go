package transcribe

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Harith-Y/Meeting-Analyzer/internal/fault"
)

// Diarized backend output tags each line with a zero-based speaker index
// and, when available, a time range:
//
//	Speaker 0 (0.00-12.40): welcome everyone
//	Speaker 1: thanks for having me
var reDiarizedLine = regexp.MustCompile(`^Speaker (\d+)(?:\s*\((\d+(?:\.\d+)?)-(\d+(?:\.\d+)?)\))?:\s*(.*)$`)

// ParseSegments converts diarized backend output into ordered segments,
// mapping speaker indices to the configured labels. A speaker index beyond
// the configured label set is an unsupported condition, not a merge guess.
func ParseSegments(raw string, labels []string) ([]Segment, error) {
	var segments []Segment

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		m := reDiarizedLine.FindStringSubmatch(line)
		if m == nil {
			// Diagnostic chatter from the CLI client.
			continue
		}

		idx, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if idx >= len(labels) {
			return nil, fault.New(fault.KindContract,
				"diarization reported speaker %d but only %d speaker labels are configured", idx+1, len(labels)).
				WithRemedy("recordings with more speakers than configured labels are not supported")
		}

		text := strings.TrimSpace(strings.ReplaceAll(m[4], "##", ""))
		if text == "" {
			continue
		}

		seg := Segment{Speaker: labels[idx], Text: text}
		if m[2] != "" {
			seg.Start, _ = strconv.ParseFloat(m[2], 64)
			seg.End, _ = strconv.ParseFloat(m[3], 64)
		}
		segments = append(segments, seg)
	}

	if len(segments) == 0 {
		return nil, fault.New(fault.KindContract, "diarized output contained no speaker-tagged lines")
	}
	return segments, nil
}
