package googleai

import "time"

// Part is one piece of a document's content. Only text parts are supported.
type Part struct {
	Text string
}

// Document is an ordered sequence of content parts.
type Document struct {
	Parts []Part
}

// TextDocument builds a document from one or more text parts.
func TextDocument(texts ...string) Document {
	parts := make([]Part, len(texts))
	for i, t := range texts {
		parts[i] = Part{Text: t}
	}
	return Document{Parts: parts}
}

// TaskType hints the intended downstream use of an embedding.
type TaskType string

const (
	TaskTypeUnspecified        TaskType = ""
	TaskTypeRetrievalQuery     TaskType = "RETRIEVAL_QUERY"
	TaskTypeRetrievalDocument  TaskType = "RETRIEVAL_DOCUMENT"
	TaskTypeSemanticSimilarity TaskType = "SEMANTIC_SIMILARITY"
	TaskTypeClassification     TaskType = "CLASSIFICATION"
	TaskTypeClustering         TaskType = "CLUSTERING"
)

// EmbedOptions are per-call options. TaskType, Title, and
// OutputDimensionality are forwarded to the request body only when set.
type EmbedOptions struct {
	// APIKey overrides every other credential source for this call.
	APIKey string

	TaskType             TaskType
	Title                string
	OutputDimensionality *int

	Headers    map[string]string
	MaxRetries *int
	Timeout    time.Duration

	// MaxParallelCalls bounds concurrent document requests. Values <= 1
	// dispatch sequentially. Output order matches input order either way.
	MaxParallelCalls int
}

type Embedding struct {
	Values []float32
}

// EmbedResponse holds one embedding per input document, in input order.
type EmbedResponse struct {
	Embeddings []Embedding
}
