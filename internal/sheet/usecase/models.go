package usecase

import (
	"io"

	"github.com/shandysiswandi/gosheet/internal/sheet/entity"
)

// Upload is a single incoming file as handed over by the transport
// layer. Size and MIMEType are the values the client declared.
type Upload struct {
	FileName string
	MIMEType string
	Size     int64
	Body     io.Reader
}

// Result carries the parsed table and its summary back to the
// transport layer.
type Result struct {
	Message string
	Table   entity.Table
	Summary entity.ProcessingSummary
}
