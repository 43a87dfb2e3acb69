package summarize

import "context"

// Generator produces one study artifact from a clean transcript via a
// remote LLM endpoint.
type Generator interface {
	Generate(ctx context.Context, req Request) (*Result, error)
}
