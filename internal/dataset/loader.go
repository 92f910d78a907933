package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"

	"segment-iq/pkg/errors"
)

// Load reads a CSV file into a table, validating the header against the schema
// before any cell is parsed. Empty cells become nulls.
func Load(path string, schema Schema) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	return read(f, schema)
}

// LoadURL fetches a remote CSV over HTTP(S) and parses it like Load.
func LoadURL(url string, schema Schema) (*Table, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch dataset: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch dataset: unexpected status %s", resp.Status)
	}
	return read(resp.Body, schema)
}

func read(r io.Reader, schema Schema) (*Table, error) {
	if len(schema) == 0 {
		return nil, errors.NewSchemaError("empty schema", "")
	}

	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	// Map schema columns to header positions. Fail fast on a missing or
	// renamed column rather than deferring to a numeric error later.
	pos := make([]int, len(schema))
	for i, def := range schema {
		pos[i] = -1
		for j, h := range header {
			if strings.TrimSpace(h) == def.Name {
				pos[i] = j
				break
			}
		}
		if pos[i] == -1 {
			return nil, errors.NewSchemaError("column missing from header", def.Name)
		}
	}

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}

	t := NewTable(schema, len(records))
	for row, rec := range records {
		for i, def := range schema {
			if pos[i] >= len(rec) {
				return nil, errors.NewSchemaError(
					fmt.Sprintf("row %d is short", row+1), def.Name)
			}
			if err := t.setCell(def.Name, row, strings.TrimSpace(rec[pos[i]])); err != nil {
				return nil, err
			}
		}
	}
	return t, nil
}

func parseFloat(raw string) (float64, error) {
	return strconv.ParseFloat(raw, 64)
}

func parseInt(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}
