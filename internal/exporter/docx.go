package exporter

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

var (
	reHeading = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	reBold    = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBullet  = regexp.MustCompile(`^[\-\*]\s+(.+)$`)
	reNumberd = regexp.MustCompile(`^\d+\.\s+(.+)$`)
)

// writeDocx renders the session as a styled document. The generated text
// is markdown-flavored, so headings, bullets, and bold spans are mapped to
// document styling.
func (e *implExporter) writeDocx(path string, session Session) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addStyledRun(doc.AddParagraph(""), session.Metadata.AudioFile+" — Transcription and Study Guide", true, 16)

	if e.cfg.Export.IncludeMetadata {
		for _, pair := range session.Metadata.pairs() {
			p := doc.AddParagraph("")
			p.AddText(pair[0] + ": ").Font(fontName).Size(fontSize).Color("000000").Bold(true)
			p.AddText(pair[1]).Font(fontName).Size(fontSize).Color("000000")
		}
		doc.AddParagraph("")
	}

	sections := []struct {
		title    string
		artifact ArtifactOutput
	}{
		{"Transcript", session.Transcript},
		{"Summary", session.Summary},
		{"Key Points", session.KeyPoints},
		{"Exam Questions", session.ExamQuestions},
	}

	for _, s := range sections {
		addStyledRun(doc.AddParagraph(""), s.title, true, 15)
		addMarkdownBody(doc, s.artifact.render())
		doc.AddParagraph("")
	}

	tmpPath := filepath.Join(filepath.Dir(path), ".export-"+filepath.Base(path))
	if err := doc.SaveTo(tmpPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("write docx: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("publish docx: %w", err)
	}
	return nil
}

func addMarkdownBody(doc *docx.RootDoc, markdown string) {
	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || trimmed == "---" {
			continue
		}

		if m := reHeading.FindStringSubmatch(trimmed); m != nil {
			p := doc.AddParagraph("")
			addStyledRun(p, m[2], true, headingSize(len(m[1])))
			continue
		}

		if m := reBullet.FindStringSubmatch(trimmed); m != nil {
			addRichText(doc.AddParagraph(""), "• "+m[1])
			continue
		}

		if m := reNumberd.FindStringSubmatch(trimmed); m != nil {
			addRichText(doc.AddParagraph(""), trimmed)
			continue
		}

		addRichText(doc.AddParagraph(""), trimmed)
	}
}

func headingSize(level int) uint64 {
	switch level {
	case 1:
		return 16
	case 2:
		return 15
	case 3:
		return 14
	default:
		return fontSize
	}
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	text = cleanMarkdownInline(text)
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}

func addRichText(p *docx.Paragraph, text string) {
	parts := reBold.Split(text, -1)
	matches := reBold.FindAllStringSubmatch(text, -1)

	for i, part := range parts {
		if part != "" {
			clean := cleanMarkdownInline(part)
			p.AddText(clean).Font(fontName).Size(fontSize).Color("000000")
		}
		if i < len(matches) {
			clean := cleanMarkdownInline(matches[i][1])
			p.AddText(clean).Font(fontName).Size(fontSize).Color("000000").Bold(true)
		}
	}
}

func cleanMarkdownInline(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	s = strings.ReplaceAll(s, "`", "")
	return s
}
