package dataset

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

var customerSchema = Schema{
	{Name: "customer_id", Kind: KindString},
	{Name: "purchases", Kind: KindFloat},
	{Name: "income", Kind: KindFloat},
}

func TestRead_Valid(t *testing.T) {
	csv := "customer_id,purchases,income\nC1,4,52000\nC2,11,87000\n"
	tbl, err := read(strings.NewReader(csv), customerSchema)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tbl.Rows() != 2 {
		t.Fatalf("got %d rows, want 2", tbl.Rows())
	}
	purchases, err := tbl.Floats("purchases")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if purchases[1] != 11 {
		t.Fatalf("got purchases[1]=%v, want 11", purchases[1])
	}
}

func TestRead_ReorderedHeader(t *testing.T) {
	// Column order in the file must not matter; only names do.
	csv := "income,customer_id,purchases\n52000,C1,4\n"
	tbl, err := read(strings.NewReader(csv), customerSchema)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	income, _ := tbl.Floats("income")
	if income[0] != 52000 {
		t.Fatalf("got income[0]=%v, want 52000", income[0])
	}
}

func TestRead_MissingColumn(t *testing.T) {
	csv := "customer_id,purchases\nC1,4\n"
	_, err := read(strings.NewReader(csv), customerSchema)
	if err == nil {
		t.Fatal("expected error for missing column, got nil")
	}
	if !strings.Contains(err.Error(), "income") {
		t.Fatalf("error should name the missing column: %v", err)
	}
}

func TestRead_TypeMismatch(t *testing.T) {
	csv := "customer_id,purchases,income\nC1,four,52000\n"
	_, err := read(strings.NewReader(csv), customerSchema)
	if err == nil {
		t.Fatal("expected error for non-numeric cell, got nil")
	}
}

func TestRead_EmptyCellBecomesNull(t *testing.T) {
	csv := "customer_id,purchases,income\nC1,4,\nC2,11,87000\n"
	tbl, err := read(strings.NewReader(csv), customerSchema)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	report, err := tbl.NullReport([]string{"income", "purchases"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report["income"] != 1 || report["purchases"] != 0 {
		t.Fatalf("got report %v, want income=1 purchases=0", report)
	}
	if err := tbl.RequireComplete([]string{"income"}); err == nil {
		t.Fatal("expected error for null income, got nil")
	}
	if err := tbl.RequireComplete([]string{"purchases"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("customer_id,purchases,income\nC1,4,52000\nC2,11,87000\n"))
	}))
	defer srv.Close()

	tbl, err := LoadURL(srv.URL, customerSchema)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tbl.Rows() != 2 {
		t.Fatalf("got %d rows, want 2", tbl.Rows())
	}
	income, _ := tbl.Floats("income")
	if income[1] != 87000 {
		t.Fatalf("got income[1]=%v, want 87000", income[1])
	}
}

func TestLoadURL_Non200(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := LoadURL(srv.URL, customerSchema)
	if err == nil {
		t.Fatal("expected error for non-200 response, got nil")
	}
	if !strings.Contains(err.Error(), "404") {
		t.Fatalf("error should carry the status: %v", err)
	}
}

func TestAddIntColumn(t *testing.T) {
	csv := "customer_id,purchases,income\nC1,4,52000\nC2,11,87000\n"
	tbl, _ := read(strings.NewReader(csv), customerSchema)

	if err := tbl.AddIntColumn("segment", []int64{1, 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	segments, err := tbl.Ints("segment")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if segments[0] != 1 || segments[1] != 2 {
		t.Fatalf("got segments %v, want [1 2]", segments)
	}

	if err := tbl.AddIntColumn("segment", []int64{3, 4}); err == nil {
		t.Fatal("expected error for duplicate column, got nil")
	}
	if err := tbl.AddIntColumn("short", []int64{1}); err == nil {
		t.Fatal("expected error for wrong length, got nil")
	}
}

func TestNumeric_WidensInts(t *testing.T) {
	csv := "customer_id,purchases,income\nC1,4,52000\n"
	tbl, _ := read(strings.NewReader(csv), customerSchema)
	_ = tbl.AddIntColumn("segment", []int64{3})

	vals, err := tbl.Numeric("segment")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vals[0] != 3.0 {
		t.Fatalf("got %v, want 3.0", vals[0])
	}

	if _, err := tbl.Numeric("customer_id"); err == nil {
		t.Fatal("expected error for string column, got nil")
	}
}
