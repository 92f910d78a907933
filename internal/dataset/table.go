// Package dataset provides typed in-memory tables with fail-fast schema
// validation, loaded from CSV files, HTTP URLs, or a SQL database.
package dataset

import (
	"fmt"

	"segment-iq/pkg/errors"
)

// Kind is the declared type of a column.
type Kind int

const (
	KindString Kind = iota
	KindFloat
	KindInt
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindFloat:
		return "float"
	case KindInt:
		return "int"
	default:
		return "unknown"
	}
}

// Column declares a named, typed field.
type Column struct {
	Name string
	Kind Kind
}

// Schema is an ordered list of columns.
type Schema []Column

// Find returns the column with the given name.
func (s Schema) Find(name string) (Column, bool) {
	for _, c := range s {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

type column struct {
	def    Column
	strs   []string
	floats []float64
	ints   []int64
	nulls  []bool
}

// Table is a columnar record set. Cells are immutable once loaded; derived
// fields (segment, predicted_segment) are appended as new columns.
type Table struct {
	schema Schema
	cols   map[string]*column
	rows   int
}

// NewTable creates an empty table with the given row capacity reserved.
func NewTable(schema Schema, rows int) *Table {
	t := &Table{
		schema: append(Schema{}, schema...),
		cols:   make(map[string]*column, len(schema)),
		rows:   rows,
	}
	for _, def := range schema {
		c := &column{def: def, nulls: make([]bool, rows)}
		switch def.Kind {
		case KindString:
			c.strs = make([]string, rows)
		case KindFloat:
			c.floats = make([]float64, rows)
		case KindInt:
			c.ints = make([]int64, rows)
		}
		t.cols[def.Name] = c
	}
	return t
}

// Rows returns the record count.
func (t *Table) Rows() int { return t.rows }

// Schema returns the ordered column definitions.
func (t *Table) Schema() Schema { return t.schema }

// HasColumn reports whether the table holds a column with the given name.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.cols[name]
	return ok
}

// KindOf returns the declared kind of a column.
func (t *Table) KindOf(name string) (Kind, error) {
	c, ok := t.cols[name]
	if !ok {
		return 0, errors.NewSchemaError("no such column", name)
	}
	return c.def.Kind, nil
}

// Strings returns the values of a string column.
func (t *Table) Strings(name string) ([]string, error) {
	c, ok := t.cols[name]
	if !ok {
		return nil, errors.NewSchemaError("no such column", name)
	}
	if c.def.Kind != KindString {
		return nil, errors.NewSchemaError(
			fmt.Sprintf("column is %s, want string", c.def.Kind), name)
	}
	return c.strs, nil
}

// Floats returns the values of a float column.
func (t *Table) Floats(name string) ([]float64, error) {
	c, ok := t.cols[name]
	if !ok {
		return nil, errors.NewSchemaError("no such column", name)
	}
	if c.def.Kind != KindFloat {
		return nil, errors.NewSchemaError(
			fmt.Sprintf("column is %s, want float", c.def.Kind), name)
	}
	return c.floats, nil
}

// Ints returns the values of an int column.
func (t *Table) Ints(name string) ([]int64, error) {
	c, ok := t.cols[name]
	if !ok {
		return nil, errors.NewSchemaError("no such column", name)
	}
	if c.def.Kind != KindInt {
		return nil, errors.NewSchemaError(
			fmt.Sprintf("column is %s, want int", c.def.Kind), name)
	}
	return c.ints, nil
}

// Nulls returns the null mask of a column.
func (t *Table) Nulls(name string) ([]bool, error) {
	c, ok := t.cols[name]
	if !ok {
		return nil, errors.NewSchemaError("no such column", name)
	}
	return c.nulls, nil
}

// Numeric returns a column's values widened to float64. Int columns are
// converted; string columns are rejected.
func (t *Table) Numeric(name string) ([]float64, error) {
	c, ok := t.cols[name]
	if !ok {
		return nil, errors.NewSchemaError("no such column", name)
	}
	switch c.def.Kind {
	case KindFloat:
		return c.floats, nil
	case KindInt:
		out := make([]float64, t.rows)
		for i, v := range c.ints {
			out[i] = float64(v)
		}
		return out, nil
	default:
		return nil, errors.NewSchemaError("column is string, want numeric", name)
	}
}

// AddIntColumn appends a derived int column (e.g. segment labels).
func (t *Table) AddIntColumn(name string, values []int64) error {
	if t.HasColumn(name) {
		return errors.NewSchemaError("column already exists", name)
	}
	if len(values) != t.rows {
		return errors.NewSchemaError(
			fmt.Sprintf("got %d values for %d rows", len(values), t.rows), name)
	}
	def := Column{Name: name, Kind: KindInt}
	t.schema = append(t.schema, def)
	t.cols[name] = &column{def: def, ints: values, nulls: make([]bool, t.rows)}
	return nil
}

// NullReport counts nulls per listed column.
func (t *Table) NullReport(fields []string) (map[string]int, error) {
	report := make(map[string]int, len(fields))
	for _, f := range fields {
		nulls, err := t.Nulls(f)
		if err != nil {
			return nil, err
		}
		n := 0
		for _, isNull := range nulls {
			if isNull {
				n++
			}
		}
		report[f] = n
	}
	return report, nil
}

// RequireComplete fails if any listed column contains nulls. Must run before
// feature selection; clustering never sees missing values.
func (t *Table) RequireComplete(fields []string) error {
	report, err := t.NullReport(fields)
	if err != nil {
		return err
	}
	for _, f := range fields {
		if report[f] > 0 {
			return errors.NewNullValueError(f, report[f])
		}
	}
	return nil
}

// setCell applies the CSV convention: an empty cell is a null.
func (t *Table) setCell(name string, row int, raw string) error {
	if raw == "" {
		t.setNull(name, row)
		return nil
	}
	return t.setValue(name, row, raw)
}

func (t *Table) setNull(name string, row int) {
	t.cols[name].nulls[row] = true
}

// setValue parses a known-present cell; an empty string is a value here, not
// a null.
func (t *Table) setValue(name string, row int, raw string) error {
	c := t.cols[name]
	switch c.def.Kind {
	case KindString:
		c.strs[row] = raw
	case KindFloat:
		f, err := parseFloat(raw)
		if err != nil {
			return errors.NewSchemaError(
				fmt.Sprintf("row %d: %q is not a float", row+1, raw), name)
		}
		c.floats[row] = f
	case KindInt:
		v, err := parseInt(raw)
		if err != nil {
			return errors.NewSchemaError(
				fmt.Sprintf("row %d: %q is not an int", row+1, raw), name)
		}
		c.ints[row] = v
	}
	return nil
}
