package googleai

import (
	"context"
	"fmt"

	"github.com/vektor-dev/googleai/internal/embeddings"
	"github.com/vektor-dev/googleai/internal/gemini"
	"github.com/vektor-dev/googleai/internal/provider"
)

// Embedder embeds documents with one model on one client. Handles are cheap;
// they carry no connection state.
type Embedder struct {
	client *Client
	model  string
}

// Embed issues one embedContent request per document and returns the
// embeddings in input order. The input slice and its documents are never
// mutated. Credential resolution happens before any request is dispatched;
// a resolution failure means zero HTTP calls.
func (e *Embedder) Embed(ctx context.Context, docs []Document, opts *EmbedOptions) (*EmbedResponse, error) {
	var o EmbedOptions
	if opts != nil {
		o = *opts
	}
	ctx, cancel := applyTimeout(ctx, o.Timeout)
	defer cancel()

	model := resolveModelName(e.model)
	if model == "" {
		return nil, &Error{Provider: ProviderName, Code: CodeInvalidArgument, Message: "model is required"}
	}
	if len(docs) == 0 {
		return nil, &Error{Provider: ProviderName, Code: CodeInvalidArgument, Message: "at least one document is required"}
	}

	cfg := e.client.Config()
	key, err := resolveAPIKey(o.APIKey, cfg)
	if err != nil {
		return nil, err
	}

	reqs := make([]provider.ContentRequest, len(docs))
	for i, doc := range docs {
		parts := make([]string, 0, len(doc.Parts))
		for _, p := range doc.Parts {
			if p.Text == "" {
				continue
			}
			parts = append(parts, p.Text)
		}
		if len(parts) == 0 {
			return nil, &Error{Provider: ProviderName, Code: CodeInvalidArgument, Message: fmt.Sprintf("document %d has no text parts", i)}
		}
		reqs[i] = provider.ContentRequest{
			Model:                model,
			Parts:                parts,
			TaskType:             string(o.TaskType),
			Title:                o.Title,
			OutputDimensionality: o.OutputDimensionality,
			Headers:              cloneStringMap(o.Headers),
			MaxRetries:           o.MaxRetries,
		}
	}

	ep := gemini.New(gemini.Config{
		APIKey:     key,
		BaseURL:    cfg.BaseURL,
		APIPrefix:  cfg.APIPrefix,
		Headers:    cfg.Headers,
		HTTPClient: cfg.HTTPClient,
		MaxRetries: cfg.MaxRetries,
		MinBackoff: cfg.MinBackoff,
		MaxBackoff: cfg.MaxBackoff,
	})

	vectors, err := embeddings.EmbedEach(ctx, ep, reqs, o.MaxParallelCalls)
	if err != nil {
		return nil, mapProviderError(err)
	}

	out := make([]Embedding, len(vectors))
	for i, v := range vectors {
		out[i] = Embedding{Values: v}
	}
	return &EmbedResponse{Embeddings: out}, nil
}

// EmbedText embeds one single-part document per input string.
func (e *Embedder) EmbedText(ctx context.Context, texts []string, opts *EmbedOptions) (*EmbedResponse, error) {
	docs := make([]Document, len(texts))
	for i, t := range texts {
		docs[i] = TextDocument(t)
	}
	return e.Embed(ctx, docs, opts)
}

func cloneStringMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
