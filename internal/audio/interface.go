package audio

import "context"

// Processor validates audio inputs and converts them to the WAV shape the
// ASR backends expect.
type Processor interface {
	Probe(ctx context.Context, path string) (Metadata, error)
	Convert(ctx context.Context, path string) (string, error)
	CheckTools() error
}
