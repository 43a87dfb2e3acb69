package transcribe

import "context"

// Transcriber converts validated audio files to text via a remote ASR backend.
type Transcriber interface {
	Transcribe(ctx context.Context, req Request) (*Result, error)
}
