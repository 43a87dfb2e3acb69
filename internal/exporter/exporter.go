package exporter

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Export writes the session to every configured format. Each file is
// published atomically: written to a temp file in the target directory,
// then renamed into place. A failing format does not stop the others.
func (e *implExporter) Export(ctx context.Context, session Session, base string) (map[string]string, error) {
	if err := os.MkdirAll(e.cfg.Paths.Output, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	exported := make(map[string]string)
	var errs []error

	for _, format := range e.cfg.Export.Formats {
		path, err := e.exportFormat(session, base, format)
		if err != nil {
			e.logger.Error(ctx, "Export to %s failed: %v", format, err)
			errs = append(errs, fmt.Errorf("export %s: %w", format, err))
			continue
		}
		e.logger.Info(ctx, "Exported to %s: %s", format, path)
		exported[format] = path
	}

	return exported, errors.Join(errs...)
}

func (e *implExporter) exportFormat(session Session, base, format string) (string, error) {
	path := filepath.Join(e.cfg.Paths.Output, base+"."+format)

	switch format {
	case "txt":
		return path, e.writeAtomic(path, []byte(renderText(session, e.cfg.Export.IncludeMetadata)))
	case "md":
		return path, e.writeAtomic(path, []byte(renderMarkdown(session, e.cfg.Export.IncludeMetadata)))
	case "json":
		data, err := renderJSON(session)
		if err != nil {
			return "", err
		}
		return path, e.writeAtomic(path, data)
	case "docx":
		return path, e.writeDocx(path, session)
	default:
		return "", fmt.Errorf("unknown export format %q", format)
	}
}

// writeAtomic never leaves a partially written file at path.
func (e *implExporter) writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".export-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("publish file: %w", err)
	}
	return nil
}
