package googleai

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"
)

func requireIntegration(t *testing.T) {
	t.Helper()

	_ = godotenv.Load()

	if os.Getenv("GOOGLEAI_INTEGRATION") == "" {
		t.Skip("set GOOGLEAI_INTEGRATION=1 to run integration tests")
	}
	if os.Getenv("GEMINI_API_KEY") == "" && os.Getenv("GOOGLE_API_KEY") == "" {
		t.Skip("set GEMINI_API_KEY to run integration tests")
	}
}

func TestIntegration_EmbedText(t *testing.T) {
	requireIntegration(t)

	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	model := os.Getenv("GOOGLEAI_EMBEDDING_MODEL")
	if model == "" {
		model = "gemini-embedding-001"
	}

	resp, err := NewEmbedder(model).EmbedText(ctx, []string{"Hello", "World"}, &EmbedOptions{
		TaskType: TaskTypeSemanticSimilarity,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(resp.Embeddings) != 2 {
		t.Fatalf("embeddings=%d", len(resp.Embeddings))
	}
	if len(resp.Embeddings[0].Values) == 0 {
		t.Fatalf("empty embedding")
	}
	if len(resp.Embeddings[0].Values) != len(resp.Embeddings[1].Values) {
		t.Fatalf("dimensionality mismatch: %d != %d", len(resp.Embeddings[0].Values), len(resp.Embeddings[1].Values))
	}

	sim, err := CosineSimilarity(resp.Embeddings[0].Values, resp.Embeddings[1].Values)
	if err != nil {
		t.Fatal(err)
	}
	if sim < -1.0001 || sim > 1.0001 {
		t.Fatalf("similarity out of range: %v", sim)
	}
}
