package googleai

import (
	"fmt"
	"math"
)

// CosineSimilarity compares two embedding vectors. Both must be non-empty,
// of equal length, and have non-zero magnitude; embeddings returned by the
// API satisfy all three.
func CosineSimilarity(a, b []float32) (float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, fmt.Errorf("embedding vectors must be non-empty")
	}
	if len(a) != len(b) {
		return 0, fmt.Errorf("embedding dimensionality mismatch: %d != %d", len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}
	if normA == 0 || normB == 0 {
		return 0, fmt.Errorf("cannot compare a zero-magnitude vector")
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}
