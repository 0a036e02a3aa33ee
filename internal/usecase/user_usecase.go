package usecase

import (
	"context"

	"autoparts/internal/domain/entity"
	"autoparts/internal/domain/service"
)

// UserUsecase defines the admin console operations on accounts.
type UserUsecase interface {
	Dashboard(ctx context.Context, store service.SessionStore) (*DashboardView, error)
	ListUsers(ctx context.Context, store service.SessionStore, input *ListUsersInput) (*entity.UserPage, error)
	GetUser(ctx context.Context, store service.SessionStore, id string) (*entity.User, error)
	CreateUser(ctx context.Context, store service.SessionStore, input *CreateUserInput) (*entity.User, error)
	UpdateUser(ctx context.Context, store service.SessionStore, id string, input *UpdateUserInput) (*entity.User, error)
	DeleteUser(ctx context.Context, store service.SessionStore, id string) error
}

// --- Input DTOs ---

// ListUsersInput is the admin user list filter.
type ListUsersInput struct {
	Role      string `json:"role,omitempty" validate:"omitempty,role"`
	IsActive  *bool  `json:"isActive,omitempty"`
	Search    string `json:"search,omitempty" validate:"max=100"`
	Page      int    `json:"page,omitempty" validate:"gte=0"`
	Limit     int    `json:"limit,omitempty" validate:"gte=0,lte=100"`
	SortBy    string `json:"sortBy,omitempty" validate:"omitempty,oneof=createdAt updatedAt lastLoginAt phone firstName lastName role"`
	SortOrder string `json:"sortOrder,omitempty" validate:"omitempty,oneof=asc desc"`
}

// CreateUserInput is the admin "new user" form.
type CreateUserInput struct {
	Phone     string `json:"phone"`
	Role      string `json:"role" validate:"required,role"`
	FirstName string `json:"firstName,omitempty" validate:"max=50"`
	LastName  string `json:"lastName,omitempty" validate:"max=50"`
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
}

// UpdateUserInput is the admin "edit user" form.
type UpdateUserInput struct {
	FirstName *string `json:"firstName,omitempty" validate:"omitempty,max=50"`
	LastName  *string `json:"lastName,omitempty" validate:"omitempty,max=50"`
	Email     *string `json:"email,omitempty" validate:"omitnil,clearable_email"`
	Role      *string `json:"role,omitempty" validate:"omitempty,role"`
	IsActive  *bool   `json:"isActive,omitempty"`
}

// --- Output DTOs ---

// DashboardView is the admin landing page. Stats are only shown to
// administrators.
type DashboardView struct {
	User        *entity.User      `json:"user"`
	Stats       *entity.UserStats `json:"stats,omitempty"`
	RecentUsers []*entity.User    `json:"recentUsers"`
}
