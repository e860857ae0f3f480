package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func testContext(t *testing.T) (echo.Context, *observer.ObservedLogs) {
	t.Helper()

	core, logs := observer.New(zapcore.InfoLevel)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := echo.New().NewContext(req, httptest.NewRecorder())
	c.Set("logger", zap.New(core))

	return c, logs
}

func TestFromContextCarriesAdminID(t *testing.T) {
	c, logs := testContext(t)
	c.Set("admin_id", "a7c1e2d0")

	FromContext(c).Info("operation")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "a7c1e2d0", logs.All()[0].ContextMap()["admin_id"])
}

func TestFromContextWithoutAdmin(t *testing.T) {
	c, logs := testContext(t)

	FromContext(c).Info("operation")

	require.Equal(t, 1, logs.Len())
	assert.NotContains(t, logs.All()[0].ContextMap(), "admin_id")
}

func TestFromContextRequestIDFallback(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDKey, "req-42")
	c := echo.New().NewContext(req, httptest.NewRecorder())

	// No logger stored in context; the fallback carries the request id
	assert.NotNil(t, FromContext(c))
}
