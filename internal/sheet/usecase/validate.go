package usecase

import (
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/shandysiswandi/gosheet/internal/pkg/pkgerror"
)

// FileField is the multipart form field carrying the upload.
const FileField = "file"

// MaxFileSize is the upload size ceiling in bytes (10 MiB).
const MaxFileSize int64 = 10 * 1024 * 1024

// MsgFileTooLarge and MsgInvalidType are the two rejection reasons a
// client can correct. They stay distinguishable on purpose.
var (
	MsgFileTooLarge = fmt.Sprintf("File too large. Maximum size is %s.", humanize.IBytes(uint64(MaxFileSize)))
	MsgInvalidType  = "Invalid file type. Only CSV and Excel files are allowed."
)

var allowedExts = map[string]struct{}{
	".csv":  {},
	".xls":  {},
	".xlsx": {},
}

var allowedMIMEs = map[string]struct{}{
	"text/csv":                 {},
	"application/vnd.ms-excel": {},
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": {},
}

// validateUpload applies the size ceiling and the permissive type
// policy. A known extension or a known MIME type is each sufficient on
// its own because browsers report MIME types inconsistently. Size is
// checked first so an oversized file is always rejected as too large,
// whatever its type.
func validateUpload(up Upload) error {
	if up.Size > MaxFileSize {
		return pkgerror.NewInvalidInput(MsgFileTooLarge)
	}

	ext := strings.ToLower(filepath.Ext(up.FileName))
	if _, ok := allowedExts[ext]; ok {
		return nil
	}

	if mediaType, _, err := mime.ParseMediaType(up.MIMEType); err == nil {
		if _, ok := allowedMIMEs[mediaType]; ok {
			return nil
		}
	}

	return pkgerror.NewInvalidInput(MsgInvalidType)
}
