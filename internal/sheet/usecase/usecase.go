package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/shandysiswandi/gosheet/internal/pkg/pkgerror"
	"github.com/shandysiswandi/gosheet/internal/pkg/pkglimit"
	"github.com/shandysiswandi/gosheet/internal/pkg/pkguid"
	"github.com/shandysiswandi/gosheet/internal/sheet/entity"
)

type Store interface {
	Store(ctx context.Context, r io.Reader, originalName string) (entity.StoredFile, error)
	Release(ctx context.Context, file entity.StoredFile) error
}

type Parser interface {
	Parse(ctx context.Context, path string) (entity.Table, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event entity.UploadEvent) error
}

type Runner interface {
	Go(ctx context.Context, f func(ctx context.Context) error)
}

type Limiter interface {
	Acquire(ctx context.Context) error
	Release()
}

type StatsReader interface {
	Stats(ctx context.Context) (entity.Stats, error)
}

type Clock interface {
	Now() time.Time
}

type Dependency struct {
	Store     Store
	Delimited Parser
	Workbook  Parser
	Events    EventPublisher
	Runner    Runner
	Limiter   Limiter
	Stats     StatsReader
	Clock     Clock
	ID        pkguid.StringID
	Timeout   time.Duration
	RootCtx   context.Context
}

type Usecase struct {
	store     Store
	delimited Parser
	workbook  Parser
	events    EventPublisher
	runner    Runner
	limiter   Limiter
	stats     StatsReader
	clock     Clock
	id        pkguid.StringID
	timeout   time.Duration
	rootCtx   context.Context
}

func New(dep Dependency) *Usecase {
	root := dep.RootCtx
	if root == nil {
		root = context.Background()
	}

	clock := dep.Clock
	if clock == nil {
		clock = realClock{}
	}

	return &Usecase{
		store:     dep.Store,
		delimited: dep.Delimited,
		workbook:  dep.Workbook,
		events:    dep.Events,
		runner:    dep.Runner,
		limiter:   dep.Limiter,
		stats:     dep.Stats,
		clock:     clock,
		id:        dep.ID,
		timeout:   dep.Timeout,
		rootCtx:   root,
	}
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

// Process runs a single upload through validate, store, parse and
// summarize. A file that reached the temp store is removed again on
// every path out of this method; a deletion failure is logged and
// never replaces the original outcome.
func (u *Usecase) Process(ctx context.Context, up Upload) (Result, error) {
	if u.store == nil || u.delimited == nil || u.workbook == nil || u.id == nil {
		return Result{}, pkgerror.NewServer(errors.New("missing dependency"))
	}

	if u.limiter != nil {
		if err := u.limiter.Acquire(ctx); err != nil {
			if errors.Is(err, pkglimit.ErrSaturated) {
				return Result{}, pkgerror.NewUnavailable(err.Error())
			}

			return Result{}, pkgerror.NewServer(err)
		}
		defer u.limiter.Release()
	}

	started := u.clock.Now()
	ext := strings.ToLower(filepath.Ext(up.FileName))
	format := entity.FormatFromExt(ext)

	if err := validateUpload(up); err != nil {
		u.publish(up, format, reason(err), entity.Table{}, started)
		return Result{}, err
	}

	if u.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.timeout)
		defer cancel()
	}

	stored, err := u.store.Store(ctx, up.Body, up.FileName)
	if err != nil {
		serr := pkgerror.NewStorage(err)
		u.publish(up, format, reason(serr), entity.Table{}, started)

		return Result{}, serr
	}

	defer func() {
		if rerr := u.store.Release(ctx, stored); rerr != nil {
			slog.ErrorContext(ctx, "failed to remove uploaded file", "path", stored.Path, "error", rerr)
		}
	}()

	// The validator accepts on MIME type alone, so a file can arrive
	// here with an extension no parser is wired for.
	parser := u.parserFor(format)
	if parser == nil {
		uerr := pkgerror.NewUnsupported(ext)
		u.publish(up, format, reason(uerr), entity.Table{}, started)

		return Result{}, uerr
	}

	table, err := parser.Parse(ctx, stored.Path)
	if err != nil {
		perr := pkgerror.NewParse(err)
		u.publish(up, format, reason(perr), entity.Table{}, started)

		return Result{}, perr
	}

	summary := buildSummary(up.FileName, up.Size, table, u.clock.Now())
	u.publish(up, table.Format, "", table, started)

	return Result{
		Message: "File uploaded and processed successfully",
		Table:   table,
		Summary: summary,
	}, nil
}

func (u *Usecase) Stats(ctx context.Context) (entity.Stats, error) {
	if u.stats == nil {
		return entity.Stats{}, pkgerror.NewServer(errors.New("missing dependency"))
	}

	stats, err := u.stats.Stats(ctx)
	if err != nil {
		return entity.Stats{}, normalizeErr(err)
	}

	return stats, nil
}

func (u *Usecase) parserFor(format entity.Format) Parser {
	switch {
	case format.Delimited():
		return u.delimited
	case format.Workbook():
		return u.workbook
	default:
		return nil
	}
}

// publish hands an audit event to the runner so slow consumers never
// stall the request path. The root context keeps publication alive
// after the response is written.
func (u *Usecase) publish(up Upload, format entity.Format, failure string, table entity.Table, started time.Time) {
	if u.events == nil || u.runner == nil {
		return
	}

	status := entity.UploadStatusProcessed
	if failure != "" {
		status = entity.UploadStatusFailed
	}

	now := u.clock.Now()
	event := entity.UploadEvent{
		EventID:    u.id.Generate(),
		FileName:   up.FileName,
		Format:     format,
		Status:     status,
		Reason:     failure,
		Size:       up.Size,
		Rows:       table.TotalRows(),
		Sheets:     int64(len(table.Sheets)),
		Duration:   now.Sub(started),
		OccurredAt: now.Unix(),
	}

	u.runner.Go(u.rootCtx, func(ctx context.Context) error {
		if err := u.events.Publish(ctx, event); err != nil {
			slog.WarnContext(ctx, "failed to publish upload event", "event_id", event.EventID, "file", event.FileName, "error", err)
			return err
		}

		return nil
	})
}

func reason(err error) string {
	var perr *pkgerror.Error
	if errors.As(err, &perr) {
		return perr.Msg()
	}

	return err.Error()
}

func normalizeErr(err error) error {
	var perr *pkgerror.Error
	if errors.As(err, &perr) {
		return perr
	}

	return pkgerror.NewServer(err)
}
