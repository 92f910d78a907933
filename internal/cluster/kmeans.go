// Package cluster partitions standardized feature vectors into segments with
// seeded, deterministic K-means.
package cluster

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"segment-iq/pkg/api"
	"segment-iq/pkg/errors"
)

const defaultMaxIter = 300

// KMeans partitions points into K clusters. Labels are 1-indexed segments;
// centroid math happens in whatever space the caller fit the scaler in.
type KMeans struct {
	K       int
	MaxIter int
	Seed    int64

	Centroids [][]float64
	Labels    []int
	Inertia   float64
}

func NewKMeans(k int, seed int64) *KMeans {
	return &KMeans{K: k, MaxIter: defaultMaxIter, Seed: seed}
}

// Fit assigns every row of X to a segment. Initialization picks K distinct
// input rows through a seeded permutation, so a fixed seed fixes the result.
func (m *KMeans) Fit(X [][]float64) error {
	if m.K <= 0 {
		return &errors.PipeError{
			Code:     errors.ErrCodeBadClusterCount,
			Message:  fmt.Sprintf("k must be positive, got %d", m.K),
			Severity: errors.SeverityFatal,
		}
	}
	n := len(X)
	if n < m.K {
		return &errors.PipeError{
			Code:     errors.ErrCodeBadClusterCount,
			Message:  fmt.Sprintf("%d records cannot fill %d clusters", n, m.K),
			Severity: errors.SeverityFatal,
		}
	}
	d := len(X[0])
	if d == 0 {
		return errors.NewSchemaError("zero feature fields", "")
	}

	rng := rand.New(rand.NewSource(m.Seed))
	idxs := rng.Perm(n)
	m.Centroids = make([][]float64, m.K)
	for i := 0; i < m.K; i++ {
		c := make([]float64, d)
		copy(c, X[idxs[i]])
		m.Centroids[i] = c
	}

	assign := make([]int, n)
	for i := range assign {
		assign[i] = -1
	}

	counts := make([]int, m.K)
	sums := make([][]float64, m.K)
	for i := range sums {
		sums[i] = make([]float64, d)
	}

	for it := 0; it < m.MaxIter; it++ {
		changed := false
		m.Inertia = 0
		for i, x := range X {
			c, dist2 := m.nearest(x)
			m.Inertia += dist2
			if assign[i] != c {
				assign[i] = c
				changed = true
			}
		}
		if !changed && it > 0 {
			break
		}

		for c := 0; c < m.K; c++ {
			counts[c] = 0
			for j := range sums[c] {
				sums[c][j] = 0
			}
		}
		for i, x := range X {
			c := assign[i]
			counts[c]++
			floats.Add(sums[c], x)
		}
		for c := 0; c < m.K; c++ {
			// An emptied cluster keeps its previous centroid; no division
			// by zero, and the run stays deterministic.
			if counts[c] == 0 {
				continue
			}
			for j := range sums[c] {
				m.Centroids[c][j] = sums[c][j] / float64(counts[c])
			}
		}
	}

	m.Labels = make([]int, n)
	for i := range assign {
		m.Labels[i] = assign[i] + 1
	}
	return nil
}

// Predict returns the 1-indexed segment of the nearest centroid.
func (m *KMeans) Predict(x []float64) (int, error) {
	if m.Centroids == nil {
		return 0, &errors.PipeError{
			Code:     errors.ErrCodeNotFitted,
			Message:  "kmeans must be fitted before Predict",
			Severity: errors.SeverityError,
		}
	}
	c, _ := m.nearest(x)
	return c + 1, nil
}

// nearest returns the index of the closest centroid and the squared distance.
// Ties break toward the lowest index.
func (m *KMeans) nearest(x []float64) (int, float64) {
	best := 0
	bestDist := math.Inf(1)
	for c, centroid := range m.Centroids {
		dist := floats.Distance(x, centroid, 2)
		dist2 := dist * dist
		if dist2 < bestDist {
			best = c
			bestDist = dist2
		}
	}
	return best, bestDist
}

// Elbow fits K-means for each k in [kMin, kMax] and reports the inertia
// sequence, supporting a human choosing K. Each fit reuses the same seed so
// the sweep is reproducible.
func Elbow(X [][]float64, kMin, kMax int, seed int64) ([]api.ElbowPoint, error) {
	if kMin <= 0 || kMax < kMin {
		return nil, &errors.PipeError{
			Code:     errors.ErrCodeBadClusterCount,
			Message:  fmt.Sprintf("invalid k range [%d, %d]", kMin, kMax),
			Severity: errors.SeverityFatal,
		}
	}
	points := make([]api.ElbowPoint, 0, kMax-kMin+1)
	for k := kMin; k <= kMax; k++ {
		m := NewKMeans(k, seed)
		if err := m.Fit(X); err != nil {
			return nil, fmt.Errorf("elbow at k=%d: %w", k, err)
		}
		points = append(points, api.ElbowPoint{K: k, Inertia: m.Inertia})
	}
	return points, nil
}
