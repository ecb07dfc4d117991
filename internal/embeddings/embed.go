package embeddings

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/vektor-dev/googleai/internal/provider"
)

// EmbedEach issues one EmbedContent call per request, sequentially by
// default or fanned out over index ranges when maxParallel > 1. The returned
// vectors are addressed by input index, so output order always matches input
// order regardless of completion order. The first failure aborts the whole
// batch; no partial results are returned.
func EmbedEach(ctx context.Context, ep provider.EmbeddingProvider, reqs []provider.ContentRequest, maxParallel int) ([][]float32, error) {
	n := len(reqs)
	if n == 0 {
		return nil, fmt.Errorf("at least one document is required")
	}

	if maxParallel <= 1 || n == 1 {
		out := make([][]float32, n)
		for i, req := range reqs {
			vec, err := ep.EmbedContent(ctx, req)
			if err != nil {
				return nil, tagDocument(i, err)
			}
			out[i] = vec
		}
		return out, nil
	}

	if maxParallel > n {
		maxParallel = n
	}

	out := make([][]float32, n)
	var wg sync.WaitGroup
	errCh := make(chan error, maxParallel)

	for _, b := range splitIntoBatches(n, maxParallel) {
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				vec, err := ep.EmbedContent(ctx, reqs[i])
				if err != nil {
					errCh <- tagDocument(i, err)
					return
				}
				out[i] = vec
			}
		}(b.start, b.end)
	}

	wg.Wait()
	close(errCh)

	for err := range errCh {
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// tagDocument attaches the offending input index to a propagated error.
// provider.Error values keep their type so callers can still classify them.
func tagDocument(i int, err error) error {
	var pe *provider.Error
	if errors.As(err, &pe) {
		tagged := *pe
		tagged.Message = fmt.Sprintf("document %d: %s", i, pe.Message)
		tagged.Cause = err
		return &tagged
	}
	return fmt.Errorf("document %d: %w", i, err)
}

type batch struct{ start, end int }

func splitIntoBatches(n, parts int) []batch {
	if parts <= 0 {
		parts = 1
	}
	if parts > n {
		parts = n
	}
	out := make([]batch, 0, parts)
	base := n / parts
	rem := n % parts

	start := 0
	for i := 0; i < parts; i++ {
		size := base
		if i < rem {
			size++
		}
		end := start + size
		out = append(out, batch{start: start, end: end})
		start = end
	}
	return out
}
