package handler

import (
	"net/http"

	"autoparts/internal/delivery/web/response"
	"autoparts/internal/errors"
	"autoparts/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AdminHandler serves the admin console.
type AdminHandler struct {
	uc usecase.UserUsecase
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.UserUsecase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// Dashboard renders the admin landing page.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	store, err := sessionFrom(c)
	if err != nil {
		return err
	}

	view, err := h.uc.Dashboard(c.Request().Context(), store)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view)
}

// ListUsers renders the user table.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	store, err := sessionFrom(c)
	if err != nil {
		return err
	}

	input, err := bindListUsers(c)
	if err != nil {
		return response.BindingError(c, "Invalid user filter")
	}

	page, err := h.uc.ListUsers(c.Request().Context(), store, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page)
}

// GetUser renders one account.
func (h *AdminHandler) GetUser(c echo.Context) error {
	store, err := sessionFrom(c)
	if err != nil {
		return err
	}

	user, err := h.uc.GetUser(c.Request().Context(), store, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user)
}

// CreateUser saves the "new user" form.
func (h *AdminHandler) CreateUser(c echo.Context) error {
	store, err := sessionFrom(c)
	if err != nil {
		return err
	}

	var input usecase.CreateUserInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid user input")
	}

	user, err := h.uc.CreateUser(c.Request().Context(), store, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, user)
}

// UpdateUser saves the "edit user" form.
func (h *AdminHandler) UpdateUser(c echo.Context) error {
	store, err := sessionFrom(c)
	if err != nil {
		return err
	}

	var input usecase.UpdateUserInput
	if err := (&echo.DefaultBinder{}).BindBody(c, &input); err != nil {
		return response.BindingError(c, "Invalid user input")
	}

	user, err := h.uc.UpdateUser(c.Request().Context(), store, c.Param("id"), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user)
}

// DeleteUser removes an account.
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	store, err := sessionFrom(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteUser(c.Request().Context(), store, c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func bindListUsers(c echo.Context) (*usecase.ListUsersInput, error) {
	input := &usecase.ListUsersInput{}

	var isActive string
	err := echo.QueryParamsBinder(c).
		String("role", &input.Role).
		String("isActive", &isActive).
		String("search", &input.Search).
		Int("page", &input.Page).
		Int("limit", &input.Limit).
		String("sortBy", &input.SortBy).
		String("sortOrder", &input.SortOrder).
		BindError()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	switch isActive {
	case "":
	case "true":
		v := true
		input.IsActive = &v
	case "false":
		v := false
		input.IsActive = &v
	default:
		return nil, errors.Errorf("invalid isActive: %s", isActive)
	}

	return input, nil
}
