package parser

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/shandysiswandi/gosheet/internal/sheet/entity"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Delimited parses comma separated files into ordered row mappings,
// using the first record as the column header.
type Delimited struct{}

func NewDelimited() *Delimited {
	return &Delimited{}
}

func (d *Delimited) Parse(ctx context.Context, path string) (entity.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return entity.Table{}, err
	}
	defer f.Close()

	br := bufio.NewReader(f)
	// Spreadsheet tools often export CSV with a UTF-8 BOM.
	if lead, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(lead, utf8BOM) {
		if _, err := br.Discard(len(utf8BOM)); err != nil {
			return entity.Table{}, err
		}
	}

	reader := csv.NewReader(br)
	reader.TrimLeadingSpace = true
	reader.ReuseRecord = true
	reader.FieldsPerRecord = -1

	record, err := reader.Read()
	if err == io.EOF {
		return entity.Table{Format: entity.FormatCSV, Rows: []entity.Row{}}, nil
	}
	if err != nil {
		return entity.Table{}, err
	}

	// The reader reuses the record slice, so the header must be copied out.
	header := make([]string, len(record))
	for i, cell := range record {
		header[i] = strings.TrimSpace(cell)
	}

	rows := []entity.Row{}
	for {
		if err := ctx.Err(); err != nil {
			return entity.Table{}, err
		}

		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return entity.Table{}, err
		}

		rows = append(rows, rowFromRecord(header, record))
	}

	return entity.Table{Format: entity.FormatCSV, Rows: rows}, nil
}

// rowFromRecord maps a record onto the header columns. Short records
// are padded with empty cells and extra fields are dropped.
func rowFromRecord(header, record []string) entity.Row {
	row := make(entity.Row, len(header))
	for i, column := range header {
		value := ""
		if i < len(record) {
			value = record[i]
		}
		row[i] = entity.Cell{Column: column, Value: value}
	}

	return row
}
