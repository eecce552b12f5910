package app

import (
	"log/slog"
	"os"

	"github.com/shandysiswandi/gosheet/internal/sheet"
)

func (a *App) initModules() {
	if !a.config.GetBool("modules.sheet.enabled") {
		return
	}

	closer, err := sheet.New(sheet.Dependency{
		Config:    a.config,
		Router:    a.router,
		Goroutine: a.goroutine,
		Context:   a.ctx,
		ID:        a.uuid,
	})
	if err != nil {
		slog.Error("failed to init module sheet", "error", err)
		os.Exit(1)
	}

	a.closerFn["Sheet"] = closer
}
