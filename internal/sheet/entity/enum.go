package entity

import "strings"

// Format tags which parser family handles an uploaded file. It is resolved
// once from the file name after validation and carried through parsing and
// summarizing, so later stages never re-derive it.
type Format string

const (
	FormatUnknown Format = ""
	FormatCSV     Format = "CSV"
	FormatXLS     Format = "XLS"
	FormatXLSX    Format = "XLSX"
)

// FormatFromExt maps a file extension (with leading dot, any case) to its
// Format. Extensions outside the supported set resolve to FormatUnknown.
func FormatFromExt(ext string) Format {
	switch strings.ToLower(ext) {
	case ".csv":
		return FormatCSV
	case ".xls":
		return FormatXLS
	case ".xlsx":
		return FormatXLSX
	default:
		return FormatUnknown
	}
}

// Delimited reports whether the format parses as delimited text.
func (f Format) Delimited() bool {
	return f == FormatCSV
}

// Workbook reports whether the format parses as a spreadsheet workbook.
func (f Format) Workbook() bool {
	return f == FormatXLS || f == FormatXLSX
}

type UploadStatus string

const (
	UploadStatusProcessed UploadStatus = "PROCESSED"
	UploadStatusFailed    UploadStatus = "FAILED"
)
