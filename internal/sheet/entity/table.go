package entity

import (
	"bytes"
	"encoding/json"
)

// Cell is one named value inside a row.
type Cell struct {
	Column string
	Value  string
}

// Row is a column-to-value mapping that keeps the source column order, which
// is why it is not a plain map.
type Row []Cell

// Get returns the value for column and whether the column exists.
func (r Row) Get(column string) (string, bool) {
	for _, c := range r {
		if c.Column == column {
			return c.Value, true
		}
	}

	return "", false
}

// Columns returns the column names in source order.
func (r Row) Columns() []string {
	columns := make([]string, 0, len(r))
	for _, c := range r {
		columns = append(columns, c.Column)
	}

	return columns
}

// MarshalJSON encodes the row as a JSON object preserving column order.
func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, c := range r {
		if i > 0 {
			buf.WriteByte(',')
		}

		column, err := json.Marshal(c.Column)
		if err != nil {
			return nil, err
		}
		buf.Write(column)
		buf.WriteByte(':')

		value, err := json.Marshal(c.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// Sheet is one worksheet's parsed rows.
type Sheet struct {
	Name string
	Rows []Row
}

// Table is the parsed content of an uploaded file. Format tags which payload
// is set: Rows for delimited text, Sheets for workbooks.
type Table struct {
	Format Format
	Rows   []Row
	Sheets []Sheet
}

// TotalRows counts data rows across the whole table.
func (t Table) TotalRows() int64 {
	if t.Format.Workbook() {
		var total int64
		for _, s := range t.Sheets {
			total += int64(len(s.Rows))
		}

		return total
	}

	return int64(len(t.Rows))
}

// MarshalJSON encodes delimited tables as an array of row objects, and
// workbooks as an object of sheet name to rows in the workbook's declared
// order. Empty tables encode as [] or {}, never null.
func (t Table) MarshalJSON() ([]byte, error) {
	if t.Format.Workbook() {
		var buf bytes.Buffer
		buf.WriteByte('{')

		for i, s := range t.Sheets {
			if i > 0 {
				buf.WriteByte(',')
			}

			name, err := json.Marshal(s.Name)
			if err != nil {
				return nil, err
			}
			buf.Write(name)
			buf.WriteByte(':')

			rows := s.Rows
			if rows == nil {
				rows = []Row{}
			}
			data, err := json.Marshal(rows)
			if err != nil {
				return nil, err
			}
			buf.Write(data)
		}

		buf.WriteByte('}')

		return buf.Bytes(), nil
	}

	rows := t.Rows
	if rows == nil {
		rows = []Row{}
	}

	return json.Marshal(rows)
}
