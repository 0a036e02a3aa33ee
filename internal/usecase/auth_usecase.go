// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"autoparts/internal/domain/entity"
	"autoparts/internal/domain/service"
)

// AuthUsecase drives the phone/OTP login flow and the session lifecycle of
// one browser.
type AuthUsecase interface {
	LoginState(ctx context.Context, store service.SessionStore) *LoginView
	RequestOTP(ctx context.Context, store service.SessionStore, input *RequestOTPInput) (*LoginView, error)
	VerifyOTP(ctx context.Context, store service.SessionStore, input *VerifyOTPInput) (*LoginResult, error)
	ResendOTP(ctx context.Context, store service.SessionStore, device *entity.DeviceInfo) (*LoginView, error)
	ChangePhone(ctx context.Context, store service.SessionStore) (*LoginView, error)
	Logout(ctx context.Context, store service.SessionStore) error
	LogoutAll(ctx context.Context, store service.SessionStore) error
	CurrentUser(ctx context.Context, store service.SessionStore) (*entity.User, error)
}

// --- Input DTOs ---

// RequestOTPInput is the phone entry form. The phone may be in any common
// notation; it is normalized before validation.
type RequestOTPInput struct {
	Phone  string             `json:"phone"`
	Device *entity.DeviceInfo `json:"deviceInfo,omitempty"`
}

// VerifyOTPInput is the code entry form.
type VerifyOTPInput struct {
	Code     string             `json:"code" validate:"required,otpcode"`
	ReturnTo string             `json:"returnTo,omitempty"`
	Device   *entity.DeviceInfo `json:"deviceInfo,omitempty"`
}

// --- Output DTOs ---

// LoginView is what the login page renders.
type LoginView struct {
	Step         entity.LoginStep `json:"step"`
	Phone        string           `json:"phone,omitempty"`
	PhoneDisplay string           `json:"phoneDisplay,omitempty"`
	ResendIn     int              `json:"resendIn"` // seconds
	CanResend    bool             `json:"canResend"`
	DevCode      string           `json:"devCode,omitempty"`
}

// LoginResult tells the login page where to go after a successful verify.
type LoginResult struct {
	Step       entity.LoginStep `json:"step"`
	User       *entity.User     `json:"user"`
	RedirectTo string           `json:"redirectTo"`
}
