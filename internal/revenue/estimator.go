// Package revenue builds per-segment profitability tables and projects
// revenue across scored prospect batches.
package revenue

import (
	"sort"

	"github.com/shopspring/decimal"

	"segment-iq/internal/dataset"
	"segment-iq/pkg/api"
	"segment-iq/pkg/errors"
)

// SegmentProfit is one profitability entry: average historical revenue and
// customer count for a segment.
type SegmentProfit struct {
	AvgRevenue decimal.Decimal
	Customers  int
}

// ProfitabilityTable maps segment to its historical profitability, computed
// once per analysis run from labeled data.
type ProfitabilityTable map[int]SegmentProfit

// BuildProfitability aggregates average revenue per segment from a labeled
// historical table.
func BuildProfitability(t *dataset.Table, segmentField, revenueField string) (ProfitabilityTable, error) {
	if err := t.RequireComplete([]string{segmentField, revenueField}); err != nil {
		return nil, err
	}
	segments, err := t.Ints(segmentField)
	if err != nil {
		return nil, err
	}
	revenues, err := t.Numeric(revenueField)
	if err != nil {
		return nil, err
	}

	sums := make(map[int]decimal.Decimal)
	counts := make(map[int]int)
	for i, seg := range segments {
		s := int(seg)
		sums[s] = sums[s].Add(decimal.NewFromFloat(revenues[i]))
		counts[s]++
	}

	table := make(ProfitabilityTable, len(sums))
	for seg, sum := range sums {
		table[seg] = SegmentProfit{
			AvgRevenue: sum.Div(decimal.NewFromInt(int64(counts[seg]))),
			Customers:  counts[seg],
		}
	}
	return table, nil
}

// Estimate projects total revenue for predicted prospect segments. A segment
// with no profitability entry is a hard error, never a silent zero: it means
// the table and the classifier disagree about K.
func Estimate(profits ProfitabilityTable, predicted []int) (*api.RevenueResult, error) {
	counts := make(map[int]int)
	for _, seg := range predicted {
		if _, ok := profits[seg]; !ok {
			return nil, errors.NewSegmentNotFoundError(seg)
		}
		counts[seg]++
	}

	segments := make([]int, 0, len(counts))
	for seg := range counts {
		segments = append(segments, seg)
	}
	sort.Ints(segments)

	result := &api.RevenueResult{Prospects: len(predicted)}
	for _, seg := range segments {
		profit := profits[seg]
		subtotal := profit.AvgRevenue.Mul(decimal.NewFromInt(int64(counts[seg])))
		result.BySegment = append(result.BySegment, api.SegmentRevenue{
			Segment:    seg,
			Prospects:  counts[seg],
			AvgRevenue: profit.AvgRevenue,
			Subtotal:   subtotal,
		})
		result.Total = result.Total.Add(subtotal)
	}
	return result, nil
}
