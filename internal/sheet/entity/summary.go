package entity

// ProcessingSummary is implemented by the per-format summaries attached to a
// successful upload response.
type ProcessingSummary interface {
	SummaryOf() Summary
}

// Summary carries the fields shared by every processing summary.
type Summary struct {
	FileName    string
	FileSize    string
	FileType    Format
	ProcessedAt int64
}

func (s Summary) SummaryOf() Summary {
	return s
}

// DelimitedSummary describes a parsed delimited-text file. Columns is the
// first row's keys and stays an empty slice, not nil, when there are no rows.
type DelimitedSummary struct {
	Summary
	RowCount int
	Columns  []string
}

// WorkbookSummary describes a parsed workbook. SheetNames keeps the
// workbook's declared order.
type WorkbookSummary struct {
	Summary
	SheetCount int
	SheetNames []string
	TotalRows  int
}
