package transcribe

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Formatting is pure and deterministic: re-formatting already-formatted
// text yields no further change.

// FormatParakeet turns the fast backend's line-per-utterance output with
// ## continuation markers into a single clean paragraph.
func FormatParakeet(text string) string {
	var sentences []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.ReplaceAll(line, "##", ""))
		if line == "" {
			continue
		}
		sentences = append(sentences, ensureTerminal(line))
	}

	formatted := strings.Join(strings.Fields(strings.Join(sentences, " ")), " ")
	return capitalize(formatted)
}

// FormatWhisper extracts the final transcript from the accurate backend's
// verbose diagnostic output and normalizes it.
func FormatWhisper(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "Final transcript:") {
			text = strings.TrimSpace(strings.TrimPrefix(line, "Final transcript:"))
			break
		}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	return capitalize(ensureTerminal(text))
}

// mergeGapSeconds is the largest timing gap between two segments of the
// same speaker that still counts as contiguous.
const mergeGapSeconds = 1.0

// MergeAdjacent joins contiguous segments of the same speaker. No text is
// ever dropped; segment order is preserved.
func MergeAdjacent(segments []Segment) []Segment {
	if len(segments) == 0 {
		return nil
	}

	merged := []Segment{segments[0]}
	for _, seg := range segments[1:] {
		last := &merged[len(merged)-1]
		if seg.Speaker == last.Speaker && contiguous(*last, seg) {
			last.Text = strings.TrimSpace(last.Text) + " " + strings.TrimSpace(seg.Text)
			if seg.End > last.End {
				last.End = seg.End
			}
			continue
		}
		merged = append(merged, seg)
	}
	return merged
}

func contiguous(a, b Segment) bool {
	if a.End == 0 && b.Start == 0 {
		// No timing information; adjacency in the list is all we have.
		return true
	}
	return b.Start-a.End <= mergeGapSeconds
}

// FormatSegments renders diarized segments as "<Speaker>: <text>." lines,
// one per merged segment, preserving chronological order.
func FormatSegments(segments []Segment) string {
	merged := MergeAdjacent(segments)

	lines := make([]string, 0, len(merged))
	for _, seg := range merged {
		text := strings.Join(strings.Fields(seg.Text), " ")
		if text == "" {
			continue
		}
		lines = append(lines, seg.Speaker+": "+capitalize(ensureTerminal(text)))
	}
	return strings.Join(lines, "\n")
}

// CleanText normalizes formatted text for LLM consumption: per-line
// whitespace trimmed, empty lines dropped, space runs collapsed.
func CleanText(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

func ensureTerminal(s string) string {
	if s == "" {
		return s
	}
	switch s[len(s)-1] {
	case '.', '!', '?':
		return s
	}
	return s + "."
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
