package service

import (
	"context"

	"autoparts/internal/domain/entity"
)

// AuthAPI is the remote authentication API.
// Only Logout and LogoutAll are signed; the rest are public endpoints.
type AuthAPI interface {
	RequestOTP(ctx context.Context, phone string, device *entity.DeviceInfo) (*entity.OTPChallenge, error)
	VerifyOTP(ctx context.Context, phone, code string, device *entity.DeviceInfo) (*entity.AuthResult, error)
	CreateAnonymousSession(ctx context.Context, device *entity.DeviceInfo) (*entity.AnonymousSession, error)
	Logout(ctx context.Context, store TokenStore, refreshToken string) error
	LogoutAll(ctx context.Context, store TokenStore) error
}

// UserAPI is the remote user resource API. Every call is signed with the
// session's bearer token.
type UserAPI interface {
	GetProfile(ctx context.Context, store TokenStore) (*entity.User, error)
	UpdateProfile(ctx context.Context, store TokenStore, update *entity.ProfileUpdate) (*entity.User, error)
	ListUsers(ctx context.Context, store TokenStore, filter *entity.UserFilter) (*entity.UserPage, error)
	GetUser(ctx context.Context, store TokenStore, id string) (*entity.User, error)
	CreateUser(ctx context.Context, store TokenStore, user *entity.NewUser) (*entity.User, error)
	UpdateUser(ctx context.Context, store TokenStore, id string, update *entity.UserUpdate) (*entity.User, error)
	DeleteUser(ctx context.Context, store TokenStore, id string) error
	GetStats(ctx context.Context, store TokenStore) (*entity.UserStats, error)
}
