package processing

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"unicode/utf8"

	"github.com/docket-systems/docket/pkg/handlers"
	"github.com/docket-systems/docket/pkg/routes"
)

// Handler provides HTTP endpoints for intake processing.
type Handler struct {
	sys           System
	logger        *slog.Logger
	maxUploadSize int64
}

// NewHandler creates a Handler with the given system, logger, and upload size limit.
func NewHandler(sys System, logger *slog.Logger, maxUploadSize int64) *Handler {
	return &Handler{
		sys:           sys,
		logger:        logger.With("handler", "processing"),
		maxUploadSize: maxUploadSize,
	}
}

// Routes returns the route group definition for intake endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/process_input", Handler: h.ProcessInput},
			{Method: "GET", Pattern: "/trace/{process_id}", Handler: h.GetTrace},
			{Method: "GET", Pattern: "/health", Handler: h.Health},
		},
	}
}

// ProcessInput accepts either a file upload or a raw_content form field and
// runs the full intake pass, returning the process ID, status, and trace.
func (h *Handler) ProcessInput(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil &&
		!errors.Is(err, http.ErrNotMultipart) {
		handlers.RespondError(w, h.logger, http.StatusRequestEntityTooLarge, ErrFileTooLarge)
		return
	}

	input, err := h.readInput(r)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	result, err := h.sys.Process(r.Context(), input)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// GetTrace returns the full processing trace for a process ID.
func (h *Handler) GetTrace(w http.ResponseWriter, r *http.Request) {
	processID := r.PathValue("process_id")

	entries, err := h.sys.Trace(r.Context(), processID)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, TraceResult{
		ProcessID: processID,
		Trace:     entries,
	})
}

// Health reports basic service liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "docket intake system is running",
	})
}

// readInput assembles a processing Input from the request form. A file
// upload wins over raw_content; text status is detected from the bytes for
// uploads and assumed for raw form content.
func (h *Handler) readInput(r *http.Request) (Input, error) {
	file, header, err := r.FormFile("file")
	if err == nil {
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			return Input{}, ErrNoInput
		}

		return Input{
			Data:       data,
			Text:       utf8.Valid(data),
			SourceType: SourceFile,
			Filename:   header.Filename,
			TypeHint:   r.FormValue("input_type_hint"),
		}, nil
	}

	if raw := r.FormValue("raw_content"); raw != "" {
		return Input{
			Data:       []byte(raw),
			Text:       true,
			SourceType: SourceRawContent,
			TypeHint:   r.FormValue("input_type_hint"),
		}, nil
	}

	return Input{}, ErrNoInput
}
