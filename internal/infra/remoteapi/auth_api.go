package remoteapi

import (
	"context"
	"net/http"

	"autoparts/internal/domain/entity"
	"autoparts/internal/domain/service"
	"autoparts/internal/errors"
)

const (
	requestOTPPath       = "/auth/otp/request"
	verifyOTPPath        = "/auth/otp/verify"
	anonymousSessionPath = "/auth/anonymous"
	logoutPath           = "/auth/logout"
	logoutAllPath        = "/auth/logout/all"
)

var _ service.AuthAPI = (*AuthAPI)(nil)

// AuthAPI wraps the remote authentication endpoints.
type AuthAPI struct {
	client *Client
}

// NewAuthAPI creates the adapter.
func NewAuthAPI(client *Client) service.AuthAPI {
	return &AuthAPI{client: client}
}

type requestOTPBody struct {
	Phone      string             `json:"phone"`
	DeviceInfo *entity.DeviceInfo `json:"deviceInfo,omitempty"`
}

type verifyOTPBody struct {
	Phone      string             `json:"phone"`
	Code       string             `json:"code"`
	DeviceInfo *entity.DeviceInfo `json:"deviceInfo,omitempty"`
}

type anonymousSessionBody struct {
	DeviceInfo *entity.DeviceInfo `json:"deviceInfo,omitempty"`
}

func (a *AuthAPI) RequestOTP(ctx context.Context, phone string, device *entity.DeviceInfo) (*entity.OTPChallenge, error) {
	var challenge entity.OTPChallenge
	if err := a.client.Do(ctx, nil, Request{
		Method:   http.MethodPost,
		Path:     requestOTPPath,
		Body:     requestOTPBody{Phone: phone, DeviceInfo: device},
		SkipAuth: true,
	}, &challenge); err != nil {
		return nil, errors.WithStack(err)
	}

	return &challenge, nil
}

func (a *AuthAPI) VerifyOTP(ctx context.Context, phone, code string, device *entity.DeviceInfo) (*entity.AuthResult, error) {
	var result entity.AuthResult
	if err := a.client.Do(ctx, nil, Request{
		Method:   http.MethodPost,
		Path:     verifyOTPPath,
		Body:     verifyOTPBody{Phone: phone, Code: code, DeviceInfo: device},
		SkipAuth: true,
	}, &result); err != nil {
		return nil, errors.WithStack(err)
	}
	if result.AccessToken == "" {
		return nil, errors.New("verify response without access token")
	}

	return &result, nil
}

func (a *AuthAPI) CreateAnonymousSession(ctx context.Context, device *entity.DeviceInfo) (*entity.AnonymousSession, error) {
	var session entity.AnonymousSession
	err := a.client.Do(ctx, nil, Request{
		Method:   http.MethodPost,
		Path:     anonymousSessionPath,
		Body:     anonymousSessionBody{DeviceInfo: device},
		SkipAuth: true,
	}, &session)
	if err == nil && session.SessionToken == "" {
		err = errors.New("anonymous session response without token")
	}
	if err != nil {
		a.client.metrics.observeAnonymous(resultFailure)

		return nil, errors.WithStack(err)
	}

	a.client.metrics.observeAnonymous(resultSuccess)

	return &session, nil
}

func (a *AuthAPI) Logout(ctx context.Context, store service.TokenStore, refreshToken string) error {
	return errors.WithStack(a.client.Do(ctx, store, Request{
		Method: http.MethodDelete,
		Path:   logoutPath,
		Body:   map[string]string{"refreshToken": refreshToken},
	}, nil))
}

func (a *AuthAPI) LogoutAll(ctx context.Context, store service.TokenStore) error {
	return errors.WithStack(a.client.Do(ctx, store, Request{
		Method: http.MethodPost,
		Path:   logoutAllPath,
	}, nil))
}
