package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "autoparts/internal/delivery/context"
	"autoparts/internal/delivery/web/response"
	domainerrors "autoparts/internal/domain/errors"
	"autoparts/internal/errors"
	"autoparts/internal/infra/remoteapi"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	// Domain errors and normalized remote API errors
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		attrs := []any{
			slog.Any("error", err),
			slog.String("code", appErr.ErrorCode()),
			slog.String("path", c.Request().URL.Path),
		}
		switch {
		case remoteapi.IsTransient(err):
			logger.Warn("Remote API unavailable", attrs...)
		case remoteapi.IsAuthentication(err):
			logger.Info("Session ended by remote API", attrs...)
		case remoteapi.IsValidation(err), remoteapi.IsBusiness(err):
			logger.Debug("Remote API refused request", attrs...)
		case appErr.HTTPCode() >= http.StatusInternalServerError:
			logger.Error("Request failed", attrs...)
		}
		_ = response.HandleAppError(c, err)

		return
	}

	// Check if it is an Echo HTTPError
	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	// Default to internal error, log the error but return a generic message (do not expose internal details)
	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.Error(c, http.StatusInternalServerError,
		domainerrors.ErrInternalError.ErrorCode(), domainerrors.ErrInternalError.Message(), nil)
}
