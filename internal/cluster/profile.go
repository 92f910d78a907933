package cluster

import (
	"fmt"
	"sort"

	"segment-iq/internal/dataset"
	"segment-iq/pkg/api"
)

// Profile aggregates per-segment record counts and per-field means in
// original (unstandardized) units, for human interpretation of the clusters.
func Profile(t *dataset.Table, labels []int, fields []string) ([]api.SegmentProfile, error) {
	if len(labels) != t.Rows() {
		return nil, fmt.Errorf("got %d labels for %d rows", len(labels), t.Rows())
	}

	cols := make(map[string][]float64, len(fields))
	for _, f := range fields {
		vals, err := t.Numeric(f)
		if err != nil {
			return nil, err
		}
		cols[f] = vals
	}

	counts := make(map[int]int)
	sums := make(map[int]map[string]float64)
	for i, seg := range labels {
		counts[seg]++
		if sums[seg] == nil {
			sums[seg] = make(map[string]float64, len(fields))
		}
		for _, f := range fields {
			sums[seg][f] += cols[f][i]
		}
	}

	segments := make([]int, 0, len(counts))
	for seg := range counts {
		segments = append(segments, seg)
	}
	sort.Ints(segments)

	profiles := make([]api.SegmentProfile, 0, len(segments))
	for _, seg := range segments {
		means := make(map[string]float64, len(fields))
		for _, f := range fields {
			means[f] = sums[seg][f] / float64(counts[seg])
		}
		profiles = append(profiles, api.SegmentProfile{
			Segment:    seg,
			Customers:  counts[seg],
			FieldMeans: means,
		})
	}
	return profiles, nil
}
