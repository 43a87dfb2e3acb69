package pipeline

import "context"

// Processor runs one Job through the full pipeline.
type Processor interface {
	Process(ctx context.Context, job Job) (*Outcome, error)
}
