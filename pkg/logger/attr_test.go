package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/schemakit/pkg/logger"
)

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestDomainAttrs(t *testing.T) {
	t.Run("schema", func(t *testing.T) {
		attr := logger.Schema("order")
		assert.Equal(t, "schema", attr.Key)
		assert.Equal(t, "order", attr.Value.String())
	})

	t.Run("path", func(t *testing.T) {
		assert.Equal(t, "user.email", logger.Path("user.email").Value.String())
		assert.Equal(t, "(root)", logger.Path("").Value.String())
	})

	t.Run("error count", func(t *testing.T) {
		attr := logger.ErrorCount(3)
		assert.Equal(t, "error_count", attr.Key)
		assert.Equal(t, int64(3), attr.Value.Int64())
	})

	t.Run("component", func(t *testing.T) {
		assert.Equal(t, "server", logger.Component("server").Value.String())
	})

	t.Run("request id", func(t *testing.T) {
		assert.Equal(t, "abc", logger.RequestID("abc").Value.Any())
		assert.True(t, logger.RequestID(nil).Equal(slog.Attr{}))
	})

	t.Run("duration", func(t *testing.T) {
		assert.Equal(t, time.Second, logger.Duration(time.Second).Value.Any())
	})
}
