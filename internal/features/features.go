// Package features projects table columns into dense matrices and
// standardizes them for clustering.
package features

import (
	"segment-iq/internal/dataset"
	"segment-iq/pkg/errors"
)

// Select projects the named numeric columns into a row-major matrix. Every
// listed column must exist, be numeric, and be free of nulls.
func Select(t *dataset.Table, fields []string) ([][]float64, error) {
	if len(fields) == 0 {
		return nil, errors.NewSchemaError("no feature fields selected", "")
	}
	if err := t.RequireComplete(fields); err != nil {
		return nil, err
	}

	cols := make([][]float64, len(fields))
	for j, f := range fields {
		vals, err := t.Numeric(f)
		if err != nil {
			return nil, err
		}
		cols[j] = vals
	}

	X := make([][]float64, t.Rows())
	for i := range X {
		row := make([]float64, len(fields))
		for j := range fields {
			row[j] = cols[j][i]
		}
		X[i] = row
	}
	return X, nil
}
