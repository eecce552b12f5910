package usecase

import (
	"fmt"
	"time"

	"github.com/shandysiswandi/gosheet/internal/sheet/entity"
)

// buildSummary derives the format-specific summary for a freshly
// parsed table. Counts always describe the table produced in the same
// request.
func buildSummary(fileName string, size int64, table entity.Table, now time.Time) entity.ProcessingSummary {
	base := entity.Summary{
		FileName:    fileName,
		FileSize:    formatKB(size),
		FileType:    table.Format,
		ProcessedAt: now.Unix(),
	}

	if table.Format.Workbook() {
		names := make([]string, 0, len(table.Sheets))
		for _, sheet := range table.Sheets {
			names = append(names, sheet.Name)
		}

		return entity.WorkbookSummary{
			Summary:    base,
			SheetCount: len(table.Sheets),
			SheetNames: names,
			TotalRows:  int(table.TotalRows()),
		}
	}

	// Columns come from the first row and stay an empty list, not
	// null, when the file had no data rows.
	columns := []string{}
	if len(table.Rows) > 0 {
		columns = table.Rows[0].Columns()
	}

	return entity.DelimitedSummary{
		Summary:  base,
		RowCount: len(table.Rows),
		Columns:  columns,
	}
}

func formatKB(size int64) string {
	return fmt.Sprintf("%.2f KB", float64(size)/1024)
}
