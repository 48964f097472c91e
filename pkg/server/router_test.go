package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/schemakit/pkg/catalog"
	"github.com/dmitrymomot/schemakit/pkg/logger"
	"github.com/dmitrymomot/schemakit/pkg/schema"
	"github.com/dmitrymomot/schemakit/pkg/server"
)

type resultBody struct {
	Valid  bool `json:"valid"`
	Errors []struct {
		Path string `json:"path"`
		Kind string `json:"kind"`
	} `json:"errors"`
	Value any `json:"value"`
}

func newAPI(t *testing.T, opts server.RouterOptions) http.Handler {
	t.Helper()
	if opts.Registry == nil {
		opts.Registry = catalog.Default()
	}
	return server.Router(opts)
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	t.Parallel()
	rec := do(t, newAPI(t, server.RouterOptions{}), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ALIVE", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(server.RequestIDHeader))
}

func TestHealthCheckReadiness(t *testing.T) {
	t.Parallel()
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("down") }

	rec := httptest.NewRecorder()
	server.HealthCheckHandler(logger.Discard(), ok).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "READY", rec.Body.String())

	rec = httptest.NewRecorder()
	server.HealthCheckHandler(logger.Discard(), ok, down).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "NOT_READY", rec.Body.String())
}

func TestListSchemas(t *testing.T) {
	t.Parallel()
	rec := do(t, newAPI(t, server.RouterOptions{}), http.MethodGet, "/schemas", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct{ Schemas []string }
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, catalog.Default().Names(), body.Schemas)
}

func TestExportSchema(t *testing.T) {
	t.Parallel()
	h := newAPI(t, server.RouterOptions{})

	rec := do(t, h, http.MethodGet, "/schemas/email", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "email", doc["title"])
	assert.Equal(t, "email", doc["format"])

	rec = do(t, h, http.MethodGet, "/schemas/ghost", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestValidateEndpoint(t *testing.T) {
	t.Parallel()
	metrics := server.NewMetrics()
	h := newAPI(t, server.RouterOptions{Metrics: metrics})

	t.Run("valid body", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/schemas/pagination/validate", `{"page":"2"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var res resultBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.True(t, res.Valid)
		assert.Empty(t, res.Errors)
		assert.Equal(t, map[string]any{"page": 2.0, "limit": 20.0, "order": "asc"}, res.Value)
	})

	t.Run("invalid body", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/schemas/email/validate?async=true", `"nope"`)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var res resultBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.False(t, res.Valid)
		require.Len(t, res.Errors, 1)
		assert.Equal(t, "email", res.Errors[0].Kind)
	})

	t.Run("malformed json", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/schemas/email/validate", `{`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"request_id"`)
	})

	t.Run("unknown schema", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/schemas/ghost/validate", `{}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("metrics count outcomes", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/metrics", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `schemakit_validations_total{outcome="valid",schema="pagination"} 1`)
		assert.Contains(t, rec.Body.String(), `schemakit_validations_total{outcome="invalid",schema="email"} 1`)
		assert.Contains(t, rec.Body.String(), `schemakit_violations_total{kind="email",schema="email"} 1`)
		assert.Contains(t, rec.Body.String(), "schemakit_validation_duration_seconds_bucket")
	})
}

func TestValidateOptions(t *testing.T) {
	t.Parallel()
	reg := catalog.NewRegistry()
	require.NoError(t, reg.Register("point", schema.Object(map[string]*schema.Node{
		"x": {Required: true},
	})))

	h := newAPI(t, server.RouterOptions{
		Registry:      reg,
		SchemaOptions: []schema.Option{schema.WithAllowUnknown(false)},
	})
	rec := do(t, h, http.MethodPost, "/schemas/point/validate", `{"x":1,"y":2}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var res resultBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "y", res.Errors[0].Path)
	assert.Equal(t, "unknown", res.Errors[0].Kind)
}

func TestBodyLimit(t *testing.T) {
	t.Parallel()
	h := newAPI(t, server.RouterOptions{MaxBodyBytes: 16})
	rec := do(t, h, http.MethodPost, "/schemas/email/validate", `"`+strings.Repeat("a", 64)+`@example.com"`)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestSanitizeEndpoint(t *testing.T) {
	t.Parallel()
	h := newAPI(t, server.RouterOptions{})

	rec := do(t, h, http.MethodPost, "/sanitize", `{
		"value": {"name": "  <b>Ada</b>  ", "age": "36.6"},
		"rules": {"object": {"properties": {
			"name": {"string": {"trim": true, "stripHTML": true}},
			"age": {"number": {"round": "floor"}}
		}}}
	}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct{ Value map[string]any }
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, map[string]any{"name": "Ada", "age": 36.0}, body.Value)

	rec = do(t, h, http.MethodPost, "/sanitize", `[]`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRequestID(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithContextExtractors(server.RequestIDExtractor()),
	)
	h := newAPI(t, server.RouterOptions{Logger: log})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(server.RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(server.RequestIDHeader))
	assert.Contains(t, buf.String(), `"request_id":"abc-123"`)

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(server.RequestIDHeader, "bad id!")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Len(t, rec.Header().Get(server.RequestIDHeader), 36)
}
