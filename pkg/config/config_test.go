package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/schemakit/pkg/config"
	"github.com/dmitrymomot/schemakit/pkg/logger"
	"github.com/dmitrymomot/schemakit/pkg/schema"
	"github.com/dmitrymomot/schemakit/pkg/validator"
)

func writeEnv(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestLoad(t *testing.T) {
	t.Run("defaults without env file", func(t *testing.T) {
		t.Chdir(t.TempDir())

		cfg, err := config.Load()
		require.NoError(t, err)
		assert.Equal(t, "development", cfg.Env)
		assert.Equal(t, "schemakit", cfg.Service)
		assert.Equal(t, ":8080", cfg.HTTPAddr)
		assert.Equal(t, 15*time.Second, cfg.ReadTimeout)
		assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
		assert.Equal(t, int64(1<<20), cfg.MaxBodyBytes)
		assert.True(t, cfg.AllowUnknown)
		assert.Equal(t, 1, cfg.Concurrency)
		assert.Empty(t, cfg.LogFormat)
	})

	t.Run("reads dot env and lets process env win", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(
			"SCHEMAKIT_HTTP_ADDR=:9000\nSCHEMAKIT_CONCURRENCY=4\n",
		), 0o600))
		t.Chdir(dir)
		t.Setenv("SCHEMAKIT_CONCURRENCY", "8")

		cfg, err := config.Load()
		require.NoError(t, err)
		assert.Equal(t, ":9000", cfg.HTTPAddr)
		assert.Equal(t, 8, cfg.Concurrency)
	})

	t.Run("env file is not exported to the process", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SCHEMAKIT_SCHEMA_DIR=/srv/schemas\n"), 0o600))
		t.Chdir(dir)

		cfg, err := config.Load()
		require.NoError(t, err)
		assert.Equal(t, "/srv/schemas", cfg.SchemaDir)
		_, ok := os.LookupEnv("SCHEMAKIT_SCHEMA_DIR")
		assert.False(t, ok)
	})

	t.Run("parse error", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("SCHEMAKIT_READ_TIMEOUT", "soon")

		_, err := config.Load()
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("out of range values", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("SCHEMAKIT_CONCURRENCY", "0")
		t.Setenv("SCHEMAKIT_LOG_LEVEL", "loud")
		t.Setenv("SCHEMAKIT_ENV", "qa")

		_, err := config.Load()
		require.ErrorIs(t, err, config.ErrInvalidConfig)
		errs := validator.ExtractValidationErrors(err)
		assert.Equal(t, []string{"env", "concurrency", "log_level"}, errs.Paths())
	})
}

func TestLoadFiles(t *testing.T) {
	base := writeEnv(t, "base.env", "SCHEMAKIT_ENV=production\nSCHEMAKIT_LOG_FORMAT=text\n")
	override := writeEnv(t, "override.env", "SCHEMAKIT_LOG_FORMAT=pretty\nSCHEMAKIT_ABORT_EARLY=true\n")

	cfg, err := config.LoadFiles(base, override)
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "pretty", cfg.LogFormat)
	assert.True(t, cfg.AbortEarly)

	_, err = config.LoadFiles(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorIs(t, err, config.ErrReadingEnvFile)
}

func TestConfigSchemaOptions(t *testing.T) {
	cfg := config.Config{AllowUnknown: false, StripUnknown: false, AbortEarly: true, Concurrency: 1}
	node := schema.Object(map[string]*schema.Node{
		"a": {Required: true},
		"b": {Required: true},
	})

	res := schema.Validate(map[string]any{"extra": 1}, node, cfg.SchemaOptions(logger.Discard())...)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "a", res.Errors[0].Path)

	cfg.AbortEarly = false
	res = schema.Validate(map[string]any{"a": 1, "b": 2, "extra": 1}, node, cfg.SchemaOptions(nil)...)
	assert.Equal(t, []string{"extra"}, res.Errors.Paths())

	cfg.StripUnknown = true
	res = schema.Validate(map[string]any{"a": 1, "b": 2, "extra": 1}, node, cfg.SchemaOptions(nil)...)
	assert.True(t, res.Valid)
	assert.Equal(t, map[string]any{"a": 1, "b": 2}, res.Value)
}

func TestConfigNewLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	cfg := config.Config{Env: "production", Service: "api", LogLevel: "warn"}
	log := cfg.NewLogger(logger.WithOutput(buf))

	log.Info("dropped")
	log.Warn("kept")
	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), `"service":"api"`)
	assert.Contains(t, buf.String(), `"env":"production"`)
}
