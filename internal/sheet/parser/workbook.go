package parser

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/shandysiswandi/gosheet/internal/sheet/entity"
)

// Workbook parses Excel files sheet by sheet, keeping the sheets in
// their declared order and using each sheet's first row as the header.
type Workbook struct{}

func NewWorkbook() *Workbook {
	return &Workbook{}
}

func (w *Workbook) Parse(ctx context.Context, path string) (entity.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return entity.Table{}, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			slog.WarnContext(ctx, "failed to close workbook", "error", cerr)
		}
	}()

	sheets := []entity.Sheet{}
	for _, name := range f.GetSheetList() {
		if err := ctx.Err(); err != nil {
			return entity.Table{}, err
		}

		rows, err := f.GetRows(name)
		if err != nil {
			return entity.Table{}, err
		}

		sheets = append(sheets, entity.Sheet{Name: name, Rows: sheetRows(rows)})
	}

	return entity.Table{
		Format: entity.FormatFromExt(filepath.Ext(path)),
		Sheets: sheets,
	}, nil
}

func sheetRows(records [][]string) []entity.Row {
	if len(records) == 0 {
		return []entity.Row{}
	}

	header := make([]string, len(records[0]))
	for i, cell := range records[0] {
		header[i] = strings.TrimSpace(cell)
	}

	rows := make([]entity.Row, 0, len(records)-1)
	for _, record := range records[1:] {
		rows = append(rows, rowFromRecord(header, record))
	}

	return rows
}
