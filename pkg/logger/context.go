package logger

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const RequestIDKey = "X-Request-ID"

// FromContext retrieves the request-scoped logger from echo.Context.
// When the auth middleware has identified the acting admin, the returned
// logger also carries the admin id, so every handler log line can be
// traced back to who performed the operation.
func FromContext(c echo.Context) *zap.Logger {
	logger := requestLogger(c)

	if adminID, ok := c.Get("admin_id").(string); ok && adminID != "" {
		logger = logger.With(zap.String("admin_id", adminID))
	}

	return logger
}

func requestLogger(c echo.Context) *zap.Logger {
	// Try to get the logger from context first
	if logger, ok := c.Get("logger").(*zap.Logger); ok {
		return logger
	}

	// Otherwise, get the global logger and add request ID
	requestID, ok := c.Get(RequestIDKey).(string)
	if !ok {
		requestID = c.Request().Header.Get(RequestIDKey)
		if requestID == "" {
			requestID = "unknown"
		}
	}

	return GetLogger().With(zap.String("request_id", requestID))
}
