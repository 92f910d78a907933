package cluster

import (
	"os"
	"testing"

	"segment-iq/internal/dataset"
)

func profileTable(t *testing.T) *dataset.Table {
	t.Helper()
	csv := "customer_id,purchases,income\nC1,2,40000\nC2,4,50000\nC3,10,90000\n"
	path := t.TempDir() + "/customers.csv"
	if err := os.WriteFile(path, []byte(csv), 0o600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tbl, err := dataset.Load(path, dataset.Schema{
		{Name: "customer_id", Kind: dataset.KindString},
		{Name: "purchases", Kind: dataset.KindFloat},
		{Name: "income", Kind: dataset.KindFloat},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return tbl
}

func TestProfile_MeansInOriginalUnits(t *testing.T) {
	tbl := profileTable(t)
	profiles, err := Profile(tbl, []int{1, 1, 2}, []string{"purchases", "income"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(profiles) != 2 {
		t.Fatalf("got %d profiles, want 2", len(profiles))
	}
	first := profiles[0]
	if first.Segment != 1 || first.Customers != 2 {
		t.Fatalf("got segment %d with %d customers, want segment 1 with 2", first.Segment, first.Customers)
	}
	if first.FieldMeans["purchases"] != 3 {
		t.Fatalf("got mean purchases %v, want 3", first.FieldMeans["purchases"])
	}
	if first.FieldMeans["income"] != 45000 {
		t.Fatalf("got mean income %v, want 45000", first.FieldMeans["income"])
	}
	second := profiles[1]
	if second.Segment != 2 || second.Customers != 1 {
		t.Fatalf("got segment %d with %d customers, want segment 2 with 1", second.Segment, second.Customers)
	}
}

func TestProfile_LabelCountMismatch(t *testing.T) {
	tbl := profileTable(t)
	if _, err := Profile(tbl, []int{1, 2}, []string{"purchases"}); err == nil {
		t.Fatal("expected error for label count mismatch, got nil")
	}
}

func TestProfile_UnknownField(t *testing.T) {
	tbl := profileTable(t)
	if _, err := Profile(tbl, []int{1, 1, 2}, []string{"missing"}); err == nil {
		t.Fatal("expected error for unknown field, got nil")
	}
}
