package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/schemakit/pkg/catalog"
	"github.com/dmitrymomot/schemakit/pkg/jsonschema"
	"github.com/dmitrymomot/schemakit/pkg/logger"
	"github.com/dmitrymomot/schemakit/pkg/sanitizer"
	"github.com/dmitrymomot/schemakit/pkg/schema"
)

type handlers struct {
	registry   *catalog.Registry
	schemaOpts []schema.Option
	maxBody    int64
	log        *slog.Logger
	metrics    *Metrics
}

type errorBody struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// SanitizeRequest is the POST /sanitize body.
type SanitizeRequest struct {
	Value any             `json:"value"`
	Rules sanitizer.Rules `json:"rules"`
}

func (h *handlers) listSchemas(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"schemas": h.registry.Names()})
}

func (h *handlers) exportSchema(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	node, ok := h.registry.Get(name)
	if !ok {
		h.fail(w, r, http.StatusNotFound, catalog.ErrNotFound)
		return
	}
	writeJSON(w, http.StatusOK, jsonschema.Export(node, jsonschema.WithTitle(name)))
}

func (h *handlers) validate(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	node, ok := h.registry.Get(name)
	if !ok {
		h.fail(w, r, http.StatusNotFound, catalog.ErrNotFound)
		return
	}

	var value any
	if !h.decode(w, r, &value) {
		return
	}

	start := time.Now()
	var res schema.Result
	if async, _ := strconv.ParseBool(r.URL.Query().Get("async")); async {
		res = schema.ValidateAsync(r.Context(), value, node, h.schemaOpts...)
	} else {
		res = schema.Validate(value, node, h.schemaOpts...)
	}
	took := time.Since(start)

	kinds := make([]string, len(res.Errors))
	for i, e := range res.Errors {
		kinds[i] = e.Kind
	}
	h.metrics.observeValidation(name, res.Valid, kinds, took)
	h.log.DebugContext(r.Context(), "validated",
		logger.Schema(name), logger.ErrorCount(len(res.Errors)), logger.Duration(took))

	status := http.StatusOK
	if !res.Valid {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, res)
}

func (h *handlers) sanitize(w http.ResponseWriter, r *http.Request) {
	var req SanitizeRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.metrics.observeSanitize()
	writeJSON(w, http.StatusOK, map[string]any{"value": sanitizer.Sanitize(req.Value, req.Rules)})
}

// decode reads a single JSON document from the body, answering 413 or 400
// itself when that fails.
func (h *handlers) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	body := http.MaxBytesReader(w, r.Body, h.maxBody)
	if err := json.NewDecoder(body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.fail(w, r, http.StatusRequestEntityTooLarge, err)
			return false
		}
		h.fail(w, r, http.StatusBadRequest, err)
		return false
	}
	return true
}

func (h *handlers) fail(w http.ResponseWriter, r *http.Request, status int, err error) {
	if status >= http.StatusInternalServerError {
		h.log.ErrorContext(r.Context(), "request failed", logger.Error(err))
	}
	writeJSON(w, status, errorBody{Error: err.Error(), RequestID: RequestID(r.Context())})
}

func (h *handlers) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.log.InfoContext(r.Context(), "request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			logger.Duration(time.Since(start)),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
