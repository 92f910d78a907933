package revenue

import (
	"os"
	"testing"

	"github.com/shopspring/decimal"

	"segment-iq/internal/dataset"
)

func table(avg ...float64) ProfitabilityTable {
	out := make(ProfitabilityTable, len(avg))
	for i, v := range avg {
		out[i+1] = SegmentProfit{AvgRevenue: decimal.NewFromFloat(v), Customers: 10}
	}
	return out
}

func TestEstimate_ConcreteScenario(t *testing.T) {
	profits := table(100, 200, 300)
	predicted := []int{1, 1, 2, 3, 1, 2, 2, 3, 1, 3}

	result, err := Estimate(profits, predicted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 4×100 + 3×200 + 3×300 = 1900
	if got := result.Total.StringFixed(2); got != "1900.00" {
		t.Fatalf("got total %s, want 1900.00", got)
	}
	if result.Prospects != 10 {
		t.Fatalf("got %d prospects, want 10", result.Prospects)
	}
	if len(result.BySegment) != 3 {
		t.Fatalf("got %d segment rows, want 3", len(result.BySegment))
	}
	if got := result.BySegment[0].Subtotal.StringFixed(2); got != "400.00" {
		t.Fatalf("segment 1: got subtotal %s, want 400.00", got)
	}
}

func TestEstimate_MissingSegmentFails(t *testing.T) {
	profits := table(100, 200)
	if _, err := Estimate(profits, []int{1, 3}); err == nil {
		t.Fatal("expected error for unknown segment, got nil")
	}
}

func TestEstimate_Monotonicity(t *testing.T) {
	predicted := []int{1, 2, 2, 3}
	base, err := Estimate(table(100, 200, 300), predicted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	raised, err := Estimate(table(150, 250, 350), predicted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raised.Total.LessThan(base.Total) {
		t.Fatalf("total fell from %s to %s after raising every segment's revenue",
			base.Total, raised.Total)
	}
}

func TestEstimate_Empty(t *testing.T) {
	result, err := Estimate(table(100), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Total.IsZero() {
		t.Fatalf("got total %s, want 0", result.Total)
	}
}

func TestBuildProfitability(t *testing.T) {
	csv := "customer_id,revenue\nC1,100\nC2,300\nC3,50\n"
	path := t.TempDir() + "/customers.csv"
	if err := os.WriteFile(path, []byte(csv), 0o600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tbl, err := dataset.Load(path, dataset.Schema{
		{Name: "customer_id", Kind: dataset.KindString},
		{Name: "revenue", Kind: dataset.KindFloat},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := tbl.AddIntColumn("segment", []int64{1, 1, 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	profits, err := BuildProfitability(tbl, "segment", "revenue")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := profits[1].AvgRevenue.StringFixed(2); got != "200.00" {
		t.Fatalf("segment 1: got avg %s, want 200.00", got)
	}
	if profits[1].Customers != 2 {
		t.Fatalf("segment 1: got %d customers, want 2", profits[1].Customers)
	}
	if got := profits[2].AvgRevenue.StringFixed(2); got != "50.00" {
		t.Fatalf("segment 2: got avg %s, want 50.00", got)
	}
}

func TestBuildProfitability_MissingColumn(t *testing.T) {
	csv := "customer_id,revenue\nC1,100\n"
	path := t.TempDir() + "/customers.csv"
	if err := os.WriteFile(path, []byte(csv), 0o600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tbl, err := dataset.Load(path, dataset.Schema{
		{Name: "customer_id", Kind: dataset.KindString},
		{Name: "revenue", Kind: dataset.KindFloat},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := BuildProfitability(tbl, "segment", "revenue"); err == nil {
		t.Fatal("expected error for missing segment column, got nil")
	}
}
