package transcribe

import (
	"strings"
	"testing"
)

func TestFormatParakeet(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "markers stripped and sentences joined",
			in:   "##hello world\n##this is a test",
			want: "Hello world. This is a test.",
		},
		{
			name: "existing punctuation kept",
			in:   "##did it work?\n##yes it did!",
			want: "Did it work? Yes it did!",
		},
		{
			name: "empty lines dropped",
			in:   "##first line\n\n   \n##second line",
			want: "First line. Second line.",
		},
		{
			name: "extra whitespace collapsed",
			in:   "##too   many    spaces",
			want: "Too many spaces.",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatParakeet(tt.in); got != tt.want {
				t.Errorf("FormatParakeet() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatParakeetIdempotent(t *testing.T) {
	once := FormatParakeet("##hello world\n##this is a test")
	twice := FormatParakeet(once)
	if once != twice {
		t.Errorf("re-formatting changed output: %q -> %q", once, twice)
	}
}

func TestFormatWhisper(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "final transcript extracted from diagnostics",
			in:   "Connecting to server...\nIntermediate transcript: hel\nFinal transcript: hello from the lecture\nDone.",
			want: "Hello from the lecture.",
		},
		{
			name: "no marker uses whole text",
			in:   "plain output without markers",
			want: "Plain output without markers.",
		},
		{
			name: "terminal punctuation kept",
			in:   "Final transcript: already done.",
			want: "Already done.",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatWhisper(tt.in); got != tt.want {
				t.Errorf("FormatWhisper() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatWhisperIdempotent(t *testing.T) {
	once := FormatWhisper("Final transcript: hello from the lecture")
	twice := FormatWhisper(once)
	if once != twice {
		t.Errorf("re-formatting changed output: %q -> %q", once, twice)
	}
}

func TestMergeAdjacent(t *testing.T) {
	segments := []Segment{
		{Speaker: "Speaker 1", Text: "welcome everyone", Start: 0, End: 2.5},
		{Speaker: "Speaker 1", Text: "to the lecture", Start: 2.7, End: 4.0},
		{Speaker: "Speaker 2", Text: "thanks", Start: 4.2, End: 4.8},
		{Speaker: "Speaker 1", Text: "let's begin", Start: 5.0, End: 6.0},
	}

	merged := MergeAdjacent(segments)

	if len(merged) != 3 {
		t.Fatalf("len(merged) = %d, want 3", len(merged))
	}
	if merged[0].Text != "welcome everyone to the lecture" {
		t.Errorf("merged[0].Text = %q", merged[0].Text)
	}
	if merged[0].End != 4.0 {
		t.Errorf("merged[0].End = %v, want 4.0", merged[0].End)
	}
	if merged[1].Speaker != "Speaker 2" || merged[2].Speaker != "Speaker 1" {
		t.Error("merge changed speaker order")
	}
}

func TestMergeAdjacentRespectsGaps(t *testing.T) {
	segments := []Segment{
		{Speaker: "Speaker 1", Text: "part one", Start: 0, End: 2.0},
		{Speaker: "Speaker 1", Text: "much later", Start: 10.0, End: 12.0},
	}

	merged := MergeAdjacent(segments)
	if len(merged) != 2 {
		t.Fatalf("segments separated by a long pause should not merge, got %d", len(merged))
	}
}

func TestMergeAdjacentNeverDropsText(t *testing.T) {
	segments := []Segment{
		{Speaker: "Speaker 1", Text: "alpha"},
		{Speaker: "Speaker 1", Text: "beta"},
		{Speaker: "Speaker 2", Text: "gamma"},
		{Speaker: "Speaker 2", Text: "delta"},
	}

	merged := MergeAdjacent(segments)
	var all strings.Builder
	for _, seg := range merged {
		all.WriteString(seg.Text + " ")
	}

	for _, word := range []string{"alpha", "beta", "gamma", "delta"} {
		if !strings.Contains(all.String(), word) {
			t.Errorf("merged output lost %q", word)
		}
	}
}

func TestFormatSegments(t *testing.T) {
	segments := []Segment{
		{Speaker: "Speaker 1", Text: "welcome everyone"},
		{Speaker: "Speaker 2", Text: "glad to be here"},
	}

	got := FormatSegments(segments)
	want := "Speaker 1: Welcome everyone.\nSpeaker 2: Glad to be here."
	if got != want {
		t.Errorf("FormatSegments() = %q, want %q", got, want)
	}
}

func TestFormatSegmentsPreservesOrder(t *testing.T) {
	segments := []Segment{
		{Speaker: "Alice", Text: "first", Start: 0, End: 1},
		{Speaker: "Bob", Text: "second", Start: 1.2, End: 2},
		{Speaker: "Alice", Text: "third", Start: 2.1, End: 3},
	}

	got := FormatSegments(segments)
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Alice:") || !strings.HasPrefix(lines[1], "Bob:") || !strings.HasPrefix(lines[2], "Alice:") {
		t.Errorf("speaker order not preserved: %q", got)
	}
}

func TestCleanText(t *testing.T) {
	in := "  line one  \n\n\nline   two\n  "
	want := "line one\nline two"
	if got := CleanText(in); got != want {
		t.Errorf("CleanText() = %q, want %q", got, want)
	}

	// Idempotent
	if CleanText(want) != want {
		t.Error("CleanText is not idempotent")
	}
}
