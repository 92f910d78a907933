package features

import (
	"os"
	"testing"

	"segment-iq/internal/dataset"
)

func load(t *testing.T, csv string, schema dataset.Schema) *dataset.Table {
	t.Helper()
	path := t.TempDir() + "/data.csv"
	if err := os.WriteFile(path, []byte(csv), 0o600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tbl, err := dataset.Load(path, schema)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return tbl
}

func TestSelect_BuildsMatrix(t *testing.T) {
	tbl := load(t, "id,a,b\nC1,1,2\nC2,3,4\n", dataset.Schema{
		{Name: "id", Kind: dataset.KindString},
		{Name: "a", Kind: dataset.KindFloat},
		{Name: "b", Kind: dataset.KindFloat},
	})
	X, err := Select(tbl, []string{"a", "b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(X) != 2 || X[1][0] != 3 || X[1][1] != 4 {
		t.Fatalf("got %v", X)
	}
}

func TestSelect_RejectsNulls(t *testing.T) {
	tbl := load(t, "id,a\nC1,\nC2,3\n", dataset.Schema{
		{Name: "id", Kind: dataset.KindString},
		{Name: "a", Kind: dataset.KindFloat},
	})
	if _, err := Select(tbl, []string{"a"}); err == nil {
		t.Fatal("expected error for null feature values, got nil")
	}
}

func TestSelect_RejectsEmptyFieldList(t *testing.T) {
	tbl := load(t, "id,a\nC1,1\n", dataset.Schema{
		{Name: "id", Kind: dataset.KindString},
		{Name: "a", Kind: dataset.KindFloat},
	})
	if _, err := Select(tbl, nil); err == nil {
		t.Fatal("expected error for empty field list, got nil")
	}
}

func TestSelect_RejectsStringField(t *testing.T) {
	tbl := load(t, "id,a\nC1,1\n", dataset.Schema{
		{Name: "id", Kind: dataset.KindString},
		{Name: "a", Kind: dataset.KindFloat},
	})
	if _, err := Select(tbl, []string{"id"}); err == nil {
		t.Fatal("expected error for string field, got nil")
	}
}
