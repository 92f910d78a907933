// Package classify trains and applies a multinomial logistic-regression
// classifier that maps demographic attributes to a predicted segment.
package classify

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"segment-iq/internal/dataset"
	"segment-iq/pkg/errors"
)

// FieldSpec declares how one demographic field is encoded.
type FieldSpec struct {
	Name        string
	Categorical bool // one-hot; numeric fields standardize with fit-time mean/std
}

// Encoder one-hot encodes categorical fields over a vocabulary fixed at fit
// time and standardizes numeric fields with fit-time mean and standard
// deviation, keeping the trainer's inputs conditioned at any raw magnitude.
// The fitted vocabulary and scaling parameters are part of the model artifact:
// Transform rejects a category unseen at fit time unless ZeroFill is set, in
// which case unseen values encode as all zeros.
type Encoder struct {
	Fields   []FieldSpec
	ZeroFill bool

	vocab   map[string][]string // fitted categories per field, sorted
	numMean map[string]float64
	numStd  map[string]float64
	fitted  bool
}

func NewEncoder(fields []FieldSpec) *Encoder {
	return &Encoder{Fields: fields}
}

// Fit records the category vocabulary of each categorical field and the mean
// and standard deviation of each numeric field, drawn from the listed rows.
// Pass nil rows for all rows.
func (e *Encoder) Fit(t *dataset.Table, rows []int) error {
	if rows == nil {
		rows = allRows(t.Rows())
	}
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = f.Name
	}
	if err := t.RequireComplete(names); err != nil {
		return err
	}

	e.vocab = make(map[string][]string)
	e.numMean = make(map[string]float64)
	e.numStd = make(map[string]float64)
	for _, f := range e.Fields {
		if !f.Categorical {
			vals, err := t.Numeric(f.Name)
			if err != nil {
				return err
			}
			col := make([]float64, len(rows))
			for i, r := range rows {
				col[i] = vals[r]
			}
			e.numMean[f.Name] = stat.Mean(col, nil)
			e.numStd[f.Name] = stat.PopStdDev(col, nil)
			continue
		}
		vals, err := t.Strings(f.Name)
		if err != nil {
			return err
		}
		seen := make(map[string]bool)
		for _, i := range rows {
			seen[vals[i]] = true
		}
		cats := make([]string, 0, len(seen))
		for c := range seen {
			cats = append(cats, c)
		}
		sort.Strings(cats)
		e.vocab[f.Name] = cats
	}
	e.fitted = true
	return nil
}

// Width returns the encoded vector length.
func (e *Encoder) Width() int {
	w := 0
	for _, f := range e.Fields {
		if f.Categorical {
			w += len(e.vocab[f.Name])
		} else {
			w++
		}
	}
	return w
}

// Vocabulary returns the fitted categories of a field.
func (e *Encoder) Vocabulary(field string) []string {
	return e.vocab[field]
}

// Transform encodes the listed rows in order. Pass nil rows for all rows.
func (e *Encoder) Transform(t *dataset.Table, rows []int) ([][]float64, error) {
	if !e.fitted {
		return nil, &errors.PipeError{
			Code:     errors.ErrCodeNotFitted,
			Message:  "encoder must be fitted before Transform",
			Severity: errors.SeverityError,
		}
	}
	if rows == nil {
		rows = allRows(t.Rows())
	}

	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = f.Name
	}
	if err := t.RequireComplete(names); err != nil {
		return nil, err
	}

	width := e.Width()
	out := make([][]float64, len(rows))
	for i := range out {
		out[i] = make([]float64, 0, width)
	}

	for _, f := range e.Fields {
		if !f.Categorical {
			vals, err := t.Numeric(f.Name)
			if err != nil {
				return nil, err
			}
			// Fit-time standardization; constant fields encode as 0.
			mean, std := e.numMean[f.Name], e.numStd[f.Name]
			for i, r := range rows {
				v := 0.0
				if std != 0 {
					v = (vals[r] - mean) / std
				}
				out[i] = append(out[i], v)
			}
			continue
		}

		vals, err := t.Strings(f.Name)
		if err != nil {
			return nil, err
		}
		cats := e.vocab[f.Name]
		index := make(map[string]int, len(cats))
		for j, c := range cats {
			index[c] = j
		}
		for i, r := range rows {
			hot := make([]float64, len(cats))
			j, known := index[vals[r]]
			if known {
				hot[j] = 1
			} else if !e.ZeroFill {
				return nil, errors.NewUnseenCategoryError(f.Name, vals[r])
			}
			out[i] = append(out[i], hot...)
		}
	}
	return out, nil
}

func allRows(n int) []int {
	rows := make([]int, n)
	for i := range rows {
		rows[i] = i
	}
	return rows
}
