package exporter

import "context"

// Exporter serializes a completed session to the configured file formats.
type Exporter interface {
	Export(ctx context.Context, session Session, base string) (map[string]string, error)
}
