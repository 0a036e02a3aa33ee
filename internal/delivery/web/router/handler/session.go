// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	deliverycontext "autoparts/internal/delivery/context"
	"autoparts/internal/delivery/web/response"
	domainerrors "autoparts/internal/domain/errors"
	"autoparts/internal/domain/service"
	"autoparts/internal/errors"

	"github.com/labstack/echo/v4"
)

// sessionFrom returns the session opened by the session middleware.
func sessionFrom(c echo.Context) (service.SessionStore, error) {
	store := deliverycontext.GetSessionStore(c)
	if store == nil {
		return nil, errors.Wrap(domainerrors.ErrSessionStorageFailed, "session middleware not installed")
	}

	return store, nil
}

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
