package dataset

import (
	"fmt"

	"segment-iq/pkg/errors"
)

// LeftJoin joins right onto left by the key column. Every left row is
// preserved; rows without a match get nulls for the right-hand fields. When
// the right side holds duplicate keys the first occurrence wins. The output
// schema is the left schema followed by the right schema minus the key.
func LeftJoin(left, right *Table, key string) (*Table, error) {
	lk, err := joinKeys(left, key)
	if err != nil {
		return nil, err
	}
	rk, err := joinKeys(right, key)
	if err != nil {
		return nil, err
	}
	lkind, _ := left.KindOf(key)
	rkind, _ := right.KindOf(key)
	if lkind != rkind {
		return nil, errors.NewSchemaError(
			fmt.Sprintf("key is %s on the left but %s on the right", lkind, rkind), key)
	}

	index := make(map[string]int, right.Rows())
	for i, k := range rk {
		if _, seen := index[k]; !seen {
			index[k] = i
		}
	}

	schema := append(Schema{}, left.Schema()...)
	for _, def := range right.Schema() {
		if def.Name == key {
			continue
		}
		if _, dup := left.Schema().Find(def.Name); dup {
			return nil, errors.NewSchemaError("column present on both sides", def.Name)
		}
		schema = append(schema, def)
	}

	out := NewTable(schema, left.Rows())
	for _, def := range left.Schema() {
		copyColumn(out, left, def.Name, identityRows(left.Rows()))
	}
	match := make([]int, left.Rows())
	for i, k := range lk {
		if j, ok := index[k]; ok {
			match[i] = j
		} else {
			match[i] = -1
		}
	}
	for _, def := range right.Schema() {
		if def.Name == key {
			continue
		}
		copyColumn(out, right, def.Name, match)
	}
	return out, nil
}

// joinKeys normalizes a key column to strings. Float keys are malformed by
// contract; only string and int keys join.
func joinKeys(t *Table, key string) ([]string, error) {
	kind, err := t.KindOf(key)
	if err != nil {
		return nil, err
	}
	nulls, _ := t.Nulls(key)
	out := make([]string, t.Rows())
	switch kind {
	case KindString:
		vals, _ := t.Strings(key)
		copy(out, vals)
	case KindInt:
		vals, _ := t.Ints(key)
		for i, v := range vals {
			out[i] = fmt.Sprintf("%d", v)
		}
	default:
		return nil, errors.NewSchemaError("float columns cannot be join keys", key)
	}
	if n := countNulls(nulls); n > 0 {
		return nil, errors.NewNullValueError(key, n)
	}
	return out, nil
}

func countNulls(nulls []bool) int {
	n := 0
	for _, isNull := range nulls {
		if isNull {
			n++
		}
	}
	return n
}

func identityRows(n int) []int {
	rows := make([]int, n)
	for i := range rows {
		rows[i] = i
	}
	return rows
}

// copyColumn fills dst's column from src using the row mapping; -1 means no
// match and yields a null cell.
func copyColumn(dst, src *Table, name string, rows []int) {
	sc := src.cols[name]
	dc := dst.cols[name]
	for i, j := range rows {
		if j < 0 || sc.nulls[j] {
			dc.nulls[i] = true
			continue
		}
		switch sc.def.Kind {
		case KindString:
			dc.strs[i] = sc.strs[j]
		case KindFloat:
			dc.floats[i] = sc.floats[j]
		case KindInt:
			dc.ints[i] = sc.ints[j]
		}
	}
}
