package sheet

import (
	"context"
	"time"

	"github.com/shandysiswandi/gosheet/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/gosheet/internal/pkg/pkglimit"
	"github.com/shandysiswandi/gosheet/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/gosheet/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/gosheet/internal/pkg/pkguid"
	"github.com/shandysiswandi/gosheet/internal/sheet/event"
	"github.com/shandysiswandi/gosheet/internal/sheet/inbound"
	"github.com/shandysiswandi/gosheet/internal/sheet/parser"
	"github.com/shandysiswandi/gosheet/internal/sheet/storage"
	"github.com/shandysiswandi/gosheet/internal/sheet/store"
	"github.com/shandysiswandi/gosheet/internal/sheet/usecase"
)

type Dependency struct {
	Config    pkgconfig.Config
	Goroutine *pkgroutine.Manager
	Router    *pkgrouter.Router
	Context   context.Context
	ID        pkguid.StringID
}

func New(dep Dependency) (func(context.Context) error, error) {
	uploadDir := dep.Config.GetString("modules.sheet.upload_dir")
	if uploadDir == "" {
		uploadDir = "uploads"
	}

	numID, err := pkguid.NewSnowflake()
	if err != nil {
		return nil, err
	}

	tempStore, err := storage.NewTempStore(uploadDir, usecase.FileField, numID)
	if err != nil {
		return nil, err
	}

	limiter := pkglimit.New(
		dep.Config.GetInt("modules.sheet.max_concurrent"),
		dep.Config.GetDuration("modules.sheet.max_wait"),
	)

	stats := store.NewInMemoryStats()
	bus := event.NewBus(512)
	consumer := event.NewAuditConsumer(bus, stats, event.ConsumerConfig{
		Workers:     4,
		MaxRetries:  3,
		BaseBackoff: 200 * time.Millisecond,
	})
	consumer.Start()

	if dep.ID == nil {
		dep.ID = pkguid.NewUUID()
	}

	timeout := dep.Config.GetDuration("modules.sheet.timeout")
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	uc := usecase.New(usecase.Dependency{
		Store:     tempStore,
		Delimited: parser.NewDelimited(),
		Workbook:  parser.NewWorkbook(),
		Events:    bus,
		Runner:    dep.Goroutine,
		Limiter:   limiter,
		Stats:     stats,
		ID:        dep.ID,
		Timeout:   timeout,
		RootCtx:   dep.Context,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return consumer.Stop, nil
}
