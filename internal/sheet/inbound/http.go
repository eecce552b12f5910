package inbound

import (
	"context"
	_ "embed"
	"net/http"

	"github.com/shandysiswandi/gosheet/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/gosheet/internal/sheet/entity"
	"github.com/shandysiswandi/gosheet/internal/sheet/usecase"
)

//go:embed static/index.html
var clientPage []byte

type uc interface {
	Process(ctx context.Context, up usecase.Upload) (usecase.Result, error)
	Stats(ctx context.Context) (entity.Stats, error)
}

func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/api/upload", end.Upload)
	r.GET("/api/stats", end.Stats)

	// Health and the demo page bypass the success envelope: health
	// carries its own top-level timestamp and the page is HTML.
	r.Handle(http.MethodGet, "/api/health", http.HandlerFunc(end.Health))
	r.Handle(http.MethodGet, "/", http.HandlerFunc(end.ClientPage))
}
