package inbound

import (
	"time"

	"github.com/shandysiswandi/gosheet/internal/sheet/entity"
	"github.com/shandysiswandi/gosheet/internal/sheet/usecase"
)

type UploadResponse struct {
	message string
	table   entity.Table
	summary entity.ProcessingSummary
}

func newUploadResponse(result usecase.Result) UploadResponse {
	return UploadResponse{
		message: result.Message,
		table:   result.Table,
		summary: result.Summary,
	}
}

func (r UploadResponse) Message() string {
	return r.message
}

func (r UploadResponse) Data() any {
	return r.table
}

func (r UploadResponse) ProcessingInfo() any {
	return toProcessingInfo(r.summary)
}

type processingInfo struct {
	FileName    string `json:"fileName"`
	FileSize    string `json:"fileSize"`
	FileType    string `json:"fileType"`
	ProcessedAt string `json:"processedAt"`
}

type delimitedInfo struct {
	processingInfo
	RowCount int      `json:"rowCount"`
	Columns  []string `json:"columns"`
}

type workbookInfo struct {
	processingInfo
	SheetCount int      `json:"sheetCount"`
	SheetNames []string `json:"sheetNames"`
	TotalRows  int      `json:"totalRows"`
}

func toProcessingInfo(summary entity.ProcessingSummary) any {
	if summary == nil {
		return nil
	}

	base := summary.SummaryOf()
	info := processingInfo{
		FileName:    base.FileName,
		FileSize:    base.FileSize,
		FileType:    string(base.FileType),
		ProcessedAt: time.Unix(base.ProcessedAt, 0).UTC().Format(time.RFC3339),
	}

	switch s := summary.(type) {
	case entity.DelimitedSummary:
		return delimitedInfo{
			processingInfo: info,
			RowCount:       s.RowCount,
			Columns:        s.Columns,
		}
	case entity.WorkbookSummary:
		return workbookInfo{
			processingInfo: info,
			SheetCount:     s.SheetCount,
			SheetNames:     s.SheetNames,
			TotalRows:      s.TotalRows,
		}
	default:
		return info
	}
}

type StatsResponse struct {
	TotalUploads     int64  `json:"totalUploads"`
	Processed        int64  `json:"processed"`
	Failed           int64  `json:"failed"`
	DelimitedUploads int64  `json:"delimitedUploads"`
	WorkbookUploads  int64  `json:"workbookUploads"`
	RowsParsed       int64  `json:"rowsParsed"`
	LastUploadAt     string `json:"lastUploadAt,omitempty"`
}

func newStatsResponse(stats entity.Stats) StatsResponse {
	last := ""
	if stats.LastUploadAt > 0 {
		last = time.Unix(stats.LastUploadAt, 0).UTC().Format(time.RFC3339)
	}

	return StatsResponse{
		TotalUploads:     stats.TotalUploads,
		Processed:        stats.Processed,
		Failed:           stats.Failed,
		DelimitedUploads: stats.DelimitedUploads,
		WorkbookUploads:  stats.WorkbookUploads,
		RowsParsed:       stats.RowsParsed,
		LastUploadAt:     last,
	}
}

func (StatsResponse) Message() string {
	return "Upload statistics"
}

type healthResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}
