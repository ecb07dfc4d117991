package googleai

import (
	"math"
	"testing"
)

func TestCosineSimilarity(t *testing.T) {
	got, err := CosineSimilarity([]float32{1, 0}, []float32{1, 0})
	if err != nil || math.Abs(got-1) > 1e-9 {
		t.Fatalf("identical: got=%v err=%v", got, err)
	}

	got, err = CosineSimilarity([]float32{1, 0}, []float32{0, 1})
	if err != nil || math.Abs(got) > 1e-9 {
		t.Fatalf("orthogonal: got=%v err=%v", got, err)
	}

	if _, err := CosineSimilarity([]float32{1}, []float32{1, 2}); err == nil {
		t.Fatal("expected length mismatch error")
	}
	if _, err := CosineSimilarity(nil, []float32{1}); err == nil {
		t.Fatal("expected empty vector error")
	}
	if _, err := CosineSimilarity([]float32{0, 0}, []float32{1, 1}); err == nil {
		t.Fatal("expected zero vector error")
	}
}
