package inbound

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/shandysiswandi/gosheet/internal/pkg/pkgerror"
	"github.com/shandysiswandi/gosheet/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/gosheet/internal/sheet/usecase"
)

// uploadBodySlack leaves room for multipart framing on top of the file
// size ceiling before the request body is cut off. An oversized file
// inside that window still reaches the validator, which rejects it
// with the same size message.
const uploadBodySlack = 1 << 20

// parseMemoryLimit caps how much of the form stays in memory before
// ParseMultipartForm spills parts to the system temp dir.
const parseMemoryLimit = 32 << 20

type HTTPEndpoint struct {
	uc uc
}

func (h *HTTPEndpoint) Upload(ctx context.Context, r *http.Request) (any, error) {
	up, cleanup, err := extractUpload(r)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	result, err := h.uc.Process(ctx, up)
	if err != nil {
		return nil, err
	}

	return newUploadResponse(result), nil
}

func (h *HTTPEndpoint) Stats(ctx context.Context, r *http.Request) (any, error) {
	stats, err := h.uc.Stats(ctx)
	if err != nil {
		return nil, err
	}

	return newStatsResponse(stats), nil
}

func (h *HTTPEndpoint) Health(w http.ResponseWriter, r *http.Request) {
	pkgrouter.WriteJSON(w, healthResponse{
		Success:   true,
		Message:   "Server is running",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

func (h *HTTPEndpoint) ClientPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(clientPage)
}

func extractUpload(r *http.Request) (usecase.Upload, func(), error) {
	noop := func() {}

	// An honest Content-Length lets us refuse without reading the body.
	if r.ContentLength > usecase.MaxFileSize+uploadBodySlack {
		return usecase.Upload{}, noop, pkgerror.NewInvalidInput(usecase.MsgFileTooLarge)
	}

	r.Body = http.MaxBytesReader(nil, r.Body, usecase.MaxFileSize+uploadBodySlack)

	if err := r.ParseMultipartForm(parseMemoryLimit); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return usecase.Upload{}, noop, pkgerror.NewInvalidInput(usecase.MsgFileTooLarge)
		}

		return usecase.Upload{}, noop, pkgerror.NewInvalidFormat()
	}

	file, header, err := r.FormFile(usecase.FileField)
	if err != nil {
		return usecase.Upload{}, noop, pkgerror.NewInvalidInput("No file uploaded")
	}

	cleanup := func() {
		_ = file.Close()
		_ = r.MultipartForm.RemoveAll()
	}

	return usecase.Upload{
		FileName: header.Filename,
		MIMEType: header.Header.Get("Content-Type"),
		Size:     header.Size,
		Body:     file,
	}, cleanup, nil
}
