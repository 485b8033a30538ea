package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	gerr "github.com/Sebastian1234123/sistema-farmacia/internal/errors"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// Sink writes a table in one output format.
type Sink interface {
	Write(w io.Writer, t Table) error
	ContentType() string
	Extension() string
}

// SinkFor returns the sink for a format name. An empty name selects CSV.
func SinkFor(format string) (Sink, error) {
	switch Format(format) {
	case FormatCSV, "":
		return CSVSink{}, nil
	case FormatJSON:
		return JSONSink{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown format %q", gerr.ErrInvalidRequest, format)
	}
}

// CSVSink writes a header row followed by the table rows.
type CSVSink struct{}

func (CSVSink) ContentType() string { return "text/csv; charset=utf-8" }
func (CSVSink) Extension() string   { return "csv" }

func (CSVSink) Write(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return fmt.Errorf("write csv rows: %w", err)
	}
	return nil
}

// JSONSink writes the table as an object with one map per row.
type JSONSink struct{}

func (JSONSink) ContentType() string { return "application/json" }
func (JSONSink) Extension() string   { return "json" }

type jsonTable struct {
	Section string    `json:"section"`
	Columns []string  `json:"columns"`
	Rows    []jsonRow `json:"rows"`
}

// jsonRow encodes as an object whose keys follow the table's column order.
type jsonRow struct {
	columns []string
	values  []string
}

func (r jsonRow) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, col := range r.columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(col)
		if err != nil {
			return nil, err
		}
		var cell string
		if i < len(r.values) {
			cell = r.values[i]
		}
		val, err := json.Marshal(cell)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (JSONSink) Write(w io.Writer, t Table) error {
	out := jsonTable{
		Section: t.Name,
		Columns: t.Columns,
		Rows:    make([]jsonRow, 0, len(t.Rows)),
	}
	for _, row := range t.Rows {
		out.Rows = append(out.Rows, jsonRow{columns: t.Columns, values: row})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}
