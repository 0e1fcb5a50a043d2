// Package server implements the crossweave HTTP API.
//
// The API exposes puzzle CRUD plus the three engine operations: derive
// (implicit in every GET), placement checking, and auto-layout. Boards
// and clues are always derived on demand from stored placements, never
// persisted, so responses are consistent with whatever placements the
// document holds.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mattkessler/crossweave/pkg/errors"
	"github.com/mattkessler/crossweave/pkg/pipeline"
	"github.com/mattkessler/crossweave/pkg/store"
)

// Server holds the dependencies shared by all handlers.
type Server struct {
	store  store.Store
	runner *pipeline.Runner
	logger *log.Logger
}

// New creates a server. The runner supplies rendering and caching; the
// store supplies persistence.
func New(s store.Store, runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{store: s, runner: runner, logger: logger}
}

// Router builds the chi router with all routes registered.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/healthz", s.handleHealth)

	r.Route("/api/puzzles", func(r chi.Router) {
		r.Post("/", s.handleCreatePuzzle)
		r.Get("/", s.handleListPuzzles)
		r.Route("/{puzzleID}", func(r chi.Router) {
			r.Get("/", s.handleGetPuzzle)
			r.Delete("/", s.handleDeletePuzzle)
			r.Post("/layout", s.handleLayout)
			r.Post("/check", s.handleCheck)
			r.Post("/placements", s.handleAddPlacement)
			r.Delete("/placements/{wordID}", s.handleRemovePlacement)
			r.Get("/render", s.handleRender)
		})
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorResponse is the JSON error body.
type errorResponse struct {
	Error string      `json:"error"`
	Code  errors.Code `json:"code"`
}

// writeError maps structured error codes to HTTP statuses.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidWord, errors.ErrCodeInvalidGrid,
		errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidStyle:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodePuzzleNotFound, errors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeTimeout:
		status = http.StatusGatewayTimeout
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}
	writeJSON(w, status, errorResponse{Error: errors.UserMessage(err), Code: code})
}

// decodeJSON decodes a request body with a size cap.
func decodeJSON(r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, 1<<20)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body")
	}
	return nil
}
