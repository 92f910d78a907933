package classify

import "testing"

func TestSplit_Sizes(t *testing.T) {
	train, test, err := Split(10, 0.3, 101)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(test) != 3 {
		t.Fatalf("got %d test rows, want 3", len(test))
	}
	if len(train) != 7 {
		t.Fatalf("got %d train rows, want 7", len(train))
	}
}

func TestSplit_DisjointAndComplete(t *testing.T) {
	train, test, err := Split(50, 0.3, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seen := make(map[int]bool)
	for _, i := range append(append([]int{}, train...), test...) {
		if seen[i] {
			t.Fatalf("row %d appears twice", i)
		}
		seen[i] = true
	}
	if len(seen) != 50 {
		t.Fatalf("got %d distinct rows, want 50", len(seen))
	}
}

func TestSplit_DeterministicForSeed(t *testing.T) {
	train1, test1, _ := Split(20, 0.3, 42)
	train2, test2, _ := Split(20, 0.3, 42)
	for i := range train1 {
		if train1[i] != train2[i] {
			t.Fatalf("train differs for same seed at %d", i)
		}
	}
	for i := range test1 {
		if test1[i] != test2[i] {
			t.Fatalf("test differs for same seed at %d", i)
		}
	}
}

func TestSplit_InvalidArguments(t *testing.T) {
	if _, _, err := Split(0, 0.3, 1); err == nil {
		t.Fatal("expected error for zero rows, got nil")
	}
	if _, _, err := Split(10, 0, 1); err == nil {
		t.Fatal("expected error for zero fraction, got nil")
	}
	if _, _, err := Split(10, 1, 1); err == nil {
		t.Fatal("expected error for fraction 1, got nil")
	}
}
