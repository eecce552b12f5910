package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/shandysiswandi/gosheet/internal/pkg/pkguid"
	"github.com/shandysiswandi/gosheet/internal/sheet/entity"
)

// TempStore keeps uploaded files on local disk for the lifetime of a
// single request. Names carry the form field, the arrival time in
// milliseconds and a random numeric suffix so concurrent uploads never
// collide, while the original extension is preserved for the parsers.
type TempStore struct {
	dir   string
	field string
	id    pkguid.NumberID
}

func NewTempStore(dir, field string, id pkguid.NumberID) (*TempStore, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, err
	}

	return &TempStore{dir: dir, field: field, id: id}, nil
}

func (s *TempStore) Store(ctx context.Context, r io.Reader, originalName string) (entity.StoredFile, error) {
	name := fmt.Sprintf("%s-%d-%d%s", s.field, time.Now().UnixMilli(), s.id.Generate(), filepath.Ext(originalName))
	path := filepath.Join(s.dir, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return entity.StoredFile{}, err
	}

	size, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		if rerr := os.Remove(path); rerr != nil {
			slog.WarnContext(ctx, "failed to remove partial upload", "path", path, "error", rerr)
		}

		return entity.StoredFile{}, err
	}

	slog.DebugContext(ctx, "stored uploaded file", "name", name, "size", humanize.Bytes(uint64(size)))

	return entity.StoredFile{Path: path, Name: name, Size: size}, nil
}

// Release removes a stored file. Releasing a zero value or an already
// removed file is not an error.
func (s *TempStore) Release(ctx context.Context, file entity.StoredFile) error {
	if file.Path == "" {
		return nil
	}

	if err := os.Remove(file.Path); err != nil && !os.IsNotExist(err) {
		return err
	}

	return nil
}
