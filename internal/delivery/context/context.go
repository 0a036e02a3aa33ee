// Package context carries request-scoped values between middlewares,
// handlers and usecases: the request id, the request logger and the
// browser session.
package context

import (
	"context"
	"log/slog"

	"autoparts/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// ContextKey namespaces the values this package stores.
type ContextKey string

const (
	KeyRequestID    ContextKey = "request_id"
	KeyLogger       ContextKey = "logger"
	KeySessionStore ContextKey = "session_store"

	// HeaderXRequestID is read from browsers and forwarded to the remote API.
	HeaderXRequestID = "X-Request-Id"
)

// SetRequestID stores the id on the echo context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestID returns the id set by the request id middleware, or "".
func GetRequestID(c echo.Context) string {
	id, _ := c.Get(string(KeyRequestID)).(string)

	return id
}

// WithRequestID puts the id on ctx so outbound calls can forward it.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetRequestIDFromContext returns the id put on ctx, or "".
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

// WithLogger puts the request logger on ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// GetLogger returns the request logger, or nil outside a request.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(KeyLogger).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault returns the request logger, or fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// SetSessionStore attaches the session of the current browser.
func SetSessionStore(c echo.Context, store service.SessionStore) {
	c.Set(string(KeySessionStore), store)
}

// GetSessionStore returns the session attached by the session middleware,
// or nil outside of it.
func GetSessionStore(c echo.Context) service.SessionStore {
	store, _ := c.Get(string(KeySessionStore)).(service.SessionStore)

	return store
}
