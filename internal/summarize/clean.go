package summarize

import (
	"regexp"
	"strings"
)

// Special-token artifacts some models leak into their output.
var outputArtifacts = []string{
	"<｜begin▁of▁sentence｜>",
	"<|begin_of_sentence|>",
	"<｜end▁of▁sentence｜>",
	"<|end_of_sentence|>",
	"<|im_start|>",
	"<|im_end|>",
}

// CleanOutput strips known special-token artifacts and normalizes
// per-line whitespace. Idempotent.
func CleanOutput(text string) string {
	for _, artifact := range outputArtifacts {
		text = strings.ReplaceAll(text, artifact, "")
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

var reNumberedItem = regexp.MustCompile(`^\d+[.)]\s*(.+)$`)

// ParseNumberedList extracts the items of a numbered list, dropping the
// numbering prefixes.
func ParseNumberedList(text string) []string {
	var points []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if m := reNumberedItem.FindStringSubmatch(line); m != nil {
			if item := strings.TrimSpace(m[1]); item != "" {
				points = append(points, item)
			}
		}
	}
	return points
}
