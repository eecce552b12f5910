package app

import (
	"context"
	"net/http"

	"github.com/shandysiswandi/gosheet/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/gosheet/internal/pkg/pkglog"
	"github.com/shandysiswandi/gosheet/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/gosheet/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/gosheet/internal/pkg/pkguid"
)

// App owns the process-wide pieces: configuration, shared libraries, the
// HTTP server, and the per-module closers invoked on shutdown.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	config pkgconfig.Config

	uuid      pkguid.StringID
	goroutine *pkgroutine.Manager

	router     *pkgrouter.Router
	httpServer *http.Server

	closerFn map[string]func(context.Context) error
}

// New assembles the application in dependency order: config first, then the
// shared libraries, the HTTP server, and finally the modules that register
// their routes on it. Assembly failures are fatal.
func New() *App {
	pkglog.InitLogging()

	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:      ctx,
		cancel:   cancel,
		closerFn: map[string]func(context.Context) error{},
	}

	app.initConfig()
	app.initLibraries()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
