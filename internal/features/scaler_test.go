package features

import (
	"math"
	"testing"
)

func TestStandardScaler_RoundTrip(t *testing.T) {
	X := [][]float64{{1, 10}, {2, 20}, {3, 30}, {4, 40}}
	s := NewStandardScaler()
	scaled, err := s.FitTransform(X)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for j := 0; j < 2; j++ {
		mean, variance := 0.0, 0.0
		for i := range scaled {
			mean += scaled[i][j]
		}
		mean /= float64(len(scaled))
		for i := range scaled {
			d := scaled[i][j] - mean
			variance += d * d
		}
		variance /= float64(len(scaled))
		if math.Abs(mean) > 1e-9 {
			t.Fatalf("column %d: got mean %v, want 0", j, mean)
		}
		if math.Abs(variance-1) > 1e-9 {
			t.Fatalf("column %d: got variance %v, want 1", j, variance)
		}
	}
}

func TestStandardScaler_ReusesTrainingParameters(t *testing.T) {
	s := NewStandardScaler()
	if _, err := s.FitTransform([][]float64{{0}, {10}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// mean 5, population std 5; new data must be scaled with those, not refit.
	out, err := s.Transform([][]float64{{20}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out[0][0] != 3 {
		t.Fatalf("got %v, want 3", out[0][0])
	}
}

func TestStandardScaler_RefitRejected(t *testing.T) {
	s := NewStandardScaler()
	if err := s.Fit([][]float64{{1}, {2}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Fit([][]float64{{5}, {6}}); err == nil {
		t.Fatal("expected error on refit, got nil")
	}
}

func TestStandardScaler_TransformBeforeFit(t *testing.T) {
	s := NewStandardScaler()
	if _, err := s.Transform([][]float64{{1}}); err == nil {
		t.Fatal("expected error for transform before fit, got nil")
	}
}

func TestStandardScaler_ConstantColumn(t *testing.T) {
	s := NewStandardScaler()
	out, err := s.FitTransform([][]float64{{7, 1}, {7, 2}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out[0][0] != 0 || out[1][0] != 0 {
		t.Fatalf("constant column should scale to 0, got %v", out)
	}
}

func TestStandardScaler_Deterministic(t *testing.T) {
	X := [][]float64{{1, 2}, {3, 4}, {5, 6}}
	s := NewStandardScaler()
	first, err := s.FitTransform(X)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := s.Transform(X)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range first {
		for j := range first[i] {
			if first[i][j] != second[i][j] {
				t.Fatalf("transform not idempotent at (%d,%d): %v vs %v",
					i, j, first[i][j], second[i][j])
			}
		}
	}
}
