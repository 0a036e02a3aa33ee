package usecase

import (
	"context"

	"autoparts/internal/domain/entity"
	"autoparts/internal/domain/service"
)

// ProfileUsecase serves the storefront pages of the signed-in user.
type ProfileUsecase interface {
	Home(ctx context.Context, store service.SessionStore) *HomeView
	GetProfile(ctx context.Context, store service.SessionStore) (*entity.User, error)
	UpdateProfile(ctx context.Context, store service.SessionStore, input *UpdateProfileInput) (*entity.User, error)
}

// --- Input DTOs ---

// UpdateProfileInput holds the editable profile fields. An empty email
// clears it.
type UpdateProfileInput struct {
	FirstName *string `json:"firstName,omitempty" validate:"omitempty,max=50"`
	LastName  *string `json:"lastName,omitempty" validate:"omitempty,max=50"`
	Email     *string `json:"email,omitempty" validate:"omitnil,clearable_email"`
}

// --- Output DTOs ---

// HomeView is the shop landing page model.
type HomeView struct {
	IsAuthenticated bool         `json:"isAuthenticated"`
	IsGuest         bool         `json:"isGuest"`
	User            *entity.User `json:"user,omitempty"`
	DisplayName     string       `json:"displayName,omitempty"`
	CanAccessAdmin  bool         `json:"canAccessAdmin"`
}
