package features

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"segment-iq/pkg/errors"
)

// StandardScaler transforms each column to zero mean and unit variance.
// Parameters are fit once on the training population and reused unchanged for
// every later transform; a scaler is never refit.
type StandardScaler struct {
	Mean []float64
	Std  []float64

	fitted bool
}

func NewStandardScaler() *StandardScaler { return &StandardScaler{} }

// Fit computes the per-column population mean and standard deviation.
func (s *StandardScaler) Fit(X [][]float64) error {
	if s.fitted {
		return &errors.PipeError{
			Code:     errors.ErrCodeNotFitted,
			Message:  "scaler is already fitted; transforms must reuse it",
			Severity: errors.SeverityError,
		}
	}
	if len(X) == 0 || len(X[0]) == 0 {
		return errors.NewSchemaError("cannot fit scaler on empty matrix", "")
	}
	rows, cols := len(X), len(X[0])
	s.Mean = make([]float64, cols)
	s.Std = make([]float64, cols)
	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			col[i] = X[i][j]
		}
		s.Mean[j] = stat.Mean(col, nil)
		s.Std[j] = stat.PopStdDev(col, nil)
	}
	s.fitted = true
	return nil
}

// Transform standardizes X with the fitted parameters. Constant columns
// (std 0) map to 0.
func (s *StandardScaler) Transform(X [][]float64) ([][]float64, error) {
	if !s.fitted {
		return nil, &errors.PipeError{
			Code:     errors.ErrCodeNotFitted,
			Message:  "scaler must be fitted before Transform",
			Severity: errors.SeverityError,
		}
	}
	out := make([][]float64, len(X))
	for i, row := range X {
		if len(row) != len(s.Mean) {
			return nil, errors.NewSchemaError(
				fmt.Sprintf("row %d has %d fields, scaler fitted on %d", i, len(row), len(s.Mean)), "")
		}
		scaled := make([]float64, len(row))
		for j, v := range row {
			if s.Std[j] == 0 {
				scaled[j] = 0
				continue
			}
			scaled[j] = (v - s.Mean[j]) / s.Std[j]
		}
		out[i] = scaled
	}
	return out, nil
}

// FitTransform fits on X and returns its standardized form.
func (s *StandardScaler) FitTransform(X [][]float64) ([][]float64, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}
	return s.Transform(X)
}
