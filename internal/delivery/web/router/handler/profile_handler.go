package handler

import (
	"net/http"

	"autoparts/internal/delivery/web/response"
	"autoparts/internal/errors"
	"autoparts/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ProfileHandler serves the storefront pages.
type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

// Home renders the shop landing page.
func (h *ProfileHandler) Home(c echo.Context) error {
	store, err := sessionFrom(c)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, h.uc.Home(c.Request().Context(), store))
}

// GetProfile renders the profile page.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	store, err := sessionFrom(c)
	if err != nil {
		return err
	}

	user, err := h.uc.GetProfile(c.Request().Context(), store)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user)
}

// UpdateProfile saves the profile form.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	store, err := sessionFrom(c)
	if err != nil {
		return err
	}

	var input usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid profile input")
	}

	user, err := h.uc.UpdateProfile(c.Request().Context(), store, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user)
}
