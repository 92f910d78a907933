package classify

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"segment-iq/pkg/errors"
)

const (
	defaultLearnRate = 0.1
	defaultEpochs    = 500
)

// Logistic is a multinomial (softmax) logistic-regression model. Weights
// start at zero and train with full-batch gradient descent, so fitting and
// prediction are fully deterministic.
type Logistic struct {
	LearnRate float64
	Epochs    int

	classes []int      // sorted segment labels
	weights *mat.Dense // (d+1) x k, last row is the bias
}

func NewLogistic() *Logistic {
	return &Logistic{LearnRate: defaultLearnRate, Epochs: defaultEpochs}
}

// Classes returns the segment labels the model was fitted on, sorted.
func (m *Logistic) Classes() []int { return m.classes }

// Fit trains on encoded vectors X with segment labels y.
func (m *Logistic) Fit(X [][]float64, y []int) error {
	n := len(X)
	if n == 0 || len(y) != n {
		return fmt.Errorf("got %d rows and %d labels", n, len(y))
	}
	d := len(X[0])
	if d == 0 {
		return errors.NewSchemaError("zero encoded features", "")
	}

	seen := make(map[int]bool)
	for _, label := range y {
		seen[label] = true
	}
	m.classes = make([]int, 0, len(seen))
	for label := range seen {
		m.classes = append(m.classes, label)
	}
	sort.Ints(m.classes)
	k := len(m.classes)
	if k < 2 {
		return fmt.Errorf("need at least 2 classes, got %d", k)
	}
	classIdx := make(map[int]int, k)
	for i, label := range m.classes {
		classIdx[label] = i
	}

	// Design matrix with a trailing bias column.
	xb := mat.NewDense(n, d+1, nil)
	for i, row := range X {
		if len(row) != d {
			return errors.NewSchemaError(fmt.Sprintf("row %d has %d features, want %d", i, len(row), d), "")
		}
		for j, v := range row {
			xb.Set(i, j, v)
		}
		xb.Set(i, d, 1)
	}
	truth := mat.NewDense(n, k, nil)
	for i, label := range y {
		truth.Set(i, classIdx[label], 1)
	}

	m.weights = mat.NewDense(d+1, k, nil)
	var logits, grad mat.Dense
	for epoch := 0; epoch < m.Epochs; epoch++ {
		logits.Mul(xb, m.weights)
		softmaxRows(&logits)
		logits.Sub(&logits, truth)
		grad.Mul(xb.T(), &logits)
		grad.Scale(m.LearnRate/float64(n), &grad)
		m.weights.Sub(m.weights, &grad)
	}
	return nil
}

// PredictProba returns the posterior probability per class for one encoded
// vector, ordered like Classes.
func (m *Logistic) PredictProba(x []float64) ([]float64, error) {
	if m.weights == nil {
		return nil, &errors.PipeError{
			Code:     errors.ErrCodeNotFitted,
			Message:  "model must be fitted before prediction",
			Severity: errors.SeverityError,
		}
	}
	d, k := m.weights.Dims()
	if len(x) != d-1 {
		return nil, errors.NewSchemaError(
			fmt.Sprintf("got %d features, model fitted on %d", len(x), d-1), "")
	}

	logits := make([]float64, k)
	for c := 0; c < k; c++ {
		z := m.weights.At(d-1, c)
		for j, v := range x {
			z += m.weights.At(j, c) * v
		}
		logits[c] = z
	}
	softmax(logits)
	return logits, nil
}

// Predict returns the segment with the highest posterior probability for each
// row, ties toward the lowest class. Inference is pure; scoring the same row
// twice yields the same segment.
func (m *Logistic) Predict(X [][]float64) ([]int, error) {
	out := make([]int, len(X))
	for i, x := range X {
		proba, err := m.PredictProba(x)
		if err != nil {
			return nil, err
		}
		best := 0
		for c, p := range proba {
			if p > proba[best] {
				best = c
			}
		}
		out[i] = m.classes[best]
	}
	return out, nil
}

// softmaxRows replaces each row of z with its softmax, shifted by the row max
// for numeric stability.
func softmaxRows(z *mat.Dense) {
	r, _ := z.Dims()
	for i := 0; i < r; i++ {
		softmax(z.RawRowView(i))
	}
}

func softmax(row []float64) {
	max := row[0]
	for _, v := range row[1:] {
		if v > max {
			max = v
		}
	}
	sum := 0.0
	for j, v := range row {
		row[j] = math.Exp(v - max)
		sum += row[j]
	}
	for j := range row {
		row[j] /= sum
	}
}
