// Package api defines the result types produced by the analysis pipeline.
package api

import "github.com/shopspring/decimal"

// SegmentationResult is the output of a clustering run.
type SegmentationResult struct {
	K         int              `json:"k"`
	Seed      int64            `json:"seed"`
	Labels    []int            `json:"labels"` // 1-indexed, one per input record
	Centroids [][]float64      `json:"centroids"`
	Inertia   float64          `json:"inertia"`
	Profiles  []SegmentProfile `json:"profiles,omitempty"`
}

// SegmentProfile aggregates per-segment statistics for interpretation.
type SegmentProfile struct {
	Segment    int                `json:"segment"`
	Customers  int                `json:"customers"`
	FieldMeans map[string]float64 `json:"field_means"`
}

// ElbowPoint is one (k, inertia) pair from an elbow sweep.
type ElbowPoint struct {
	K       int     `json:"k"`
	Inertia float64 `json:"inertia"`
}

// TrainingResult summarizes a classifier training run.
type TrainingResult struct {
	TrainRows    int              `json:"train_rows"`
	TestRows     int              `json:"test_rows"`
	Features     int              `json:"features"` // encoded width
	Classes      []int            `json:"classes"`
	Evaluation   EvaluationResult `json:"evaluation"`
	SplitSeed    int64            `json:"split_seed"`
	TestFraction float64          `json:"test_fraction"`
}

// EvaluationResult holds held-out classification quality metrics.
type EvaluationResult struct {
	Classes  []int   `json:"classes"`
	Matrix   [][]int `json:"matrix"` // rows = true class, cols = predicted
	Total    int     `json:"total"`
	Correct  int     `json:"correct"`
	Accuracy float64 `json:"accuracy"`
	PerClass []int   `json:"per_class_counts"` // true-class row totals
}

// ScoringResult is the output of scoring a prospect batch.
type ScoringResult struct {
	Prospects int   `json:"prospects"`
	Segments  []int `json:"segments"` // order-preserving, one per prospect
}

// RevenueResult is the projected revenue across a scored prospect batch.
type RevenueResult struct {
	Total     decimal.Decimal  `json:"total"`
	BySegment []SegmentRevenue `json:"by_segment"`
	Prospects int              `json:"prospects"`
}

// SegmentRevenue is the per-segment contribution to a revenue projection.
type SegmentRevenue struct {
	Segment    int             `json:"segment"`
	Prospects  int             `json:"prospects"`
	AvgRevenue decimal.Decimal `json:"avg_revenue"`
	Subtotal   decimal.Decimal `json:"subtotal"`
}
