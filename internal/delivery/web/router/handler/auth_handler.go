package handler

import (
	"net/http"

	"autoparts/config"
	"autoparts/internal/delivery/web/middleware"
	"autoparts/internal/delivery/web/response"
	"autoparts/internal/errors"
	"autoparts/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthHandler serves the login page and session endpoints.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	routes config.RoutesConfig
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, cfg *config.Config) *AuthHandler {
	return &AuthHandler{uc: uc, routes: cfg.Routes}
}

// LoginPage renders the current step of the login flow.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	store, err := sessionFrom(c)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, h.uc.LoginState(c.Request().Context(), store))
}

// RequestOTP sends a code to the submitted phone.
func (h *AuthHandler) RequestOTP(c echo.Context) error {
	store, err := sessionFrom(c)
	if err != nil {
		return err
	}

	var input usecase.RequestOTPInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid phone input")
	}
	if input.Device == nil {
		input.Device = middleware.DeviceInfo(c.Request())
	}

	view, err := h.uc.RequestOTP(c.Request().Context(), store, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view)
}

// VerifyOTP signs the browser in. The return path may come from the body or
// from the "from" query parameter set by the route guard.
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	store, err := sessionFrom(c)
	if err != nil {
		return err
	}

	var input usecase.VerifyOTPInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid code input")
	}
	if input.ReturnTo == "" {
		input.ReturnTo = c.QueryParam("from")
	}
	if input.Device == nil {
		input.Device = middleware.DeviceInfo(c.Request())
	}

	result, err := h.uc.VerifyOTP(c.Request().Context(), store, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result)
}

// ResendOTP sends a new code after the cooldown.
func (h *AuthHandler) ResendOTP(c echo.Context) error {
	store, err := sessionFrom(c)
	if err != nil {
		return err
	}

	view, err := h.uc.ResendOTP(c.Request().Context(), store, middleware.DeviceInfo(c.Request()))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view)
}

// ChangePhone returns the flow to phone entry.
func (h *AuthHandler) ChangePhone(c echo.Context) error {
	store, err := sessionFrom(c)
	if err != nil {
		return err
	}

	view, err := h.uc.ChangePhone(c.Request().Context(), store)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view)
}

// Logout ends the session of this browser.
func (h *AuthHandler) Logout(c echo.Context) error {
	store, err := sessionFrom(c)
	if err != nil {
		return err
	}

	if err := h.uc.Logout(c.Request().Context(), store); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"redirectTo": h.routes.LoginPath})
}

// LogoutAll ends every session of the account.
func (h *AuthHandler) LogoutAll(c echo.Context) error {
	store, err := sessionFrom(c)
	if err != nil {
		return err
	}

	if err := h.uc.LogoutAll(c.Request().Context(), store); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"redirectTo": h.routes.LoginPath})
}

// Me returns the signed-in user, or null for guests.
func (h *AuthHandler) Me(c echo.Context) error {
	store, err := sessionFrom(c)
	if err != nil {
		return err
	}

	user, err := h.uc.CurrentUser(c.Request().Context(), store)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"user":       user,
		"projection": store.Projection(c.Request().Context()),
	})
}
