package provider

import "context"

// EmbeddingProvider is the wire-level seam for embedding backends. The
// embedContent endpoint takes a single document per call, so the contract is
// per-document; batching, ordering, and fan-out live above this layer.
type EmbeddingProvider interface {
	EmbedContent(ctx context.Context, req ContentRequest) ([]float32, error)
}

// ContentRequest describes the embedding call for one document.
type ContentRequest struct {
	Model string

	// Parts holds the document's text parts, in order.
	Parts []string

	TaskType             string
	Title                string
	OutputDimensionality *int

	Headers map[string]string
	// MaxRetries overrides the client default retries when non-nil.
	MaxRetries *int
}
