package service

import (
	"context"
	"time"

	"autoparts/internal/domain/entity"
)

// TokenStore persists the credentials of one browser session.
// Getters are fail-soft: storage problems and malformed values are reported
// as absence ("" or nil), never as errors.
type TokenStore interface {
	// SetTokens stores the access token for its declared lifetime and the
	// refresh token for the fixed long lifetime.
	SetTokens(ctx context.Context, bundle *entity.TokenBundle) error
	// SetAnonymousToken stores a guest token independently of the pair.
	SetAnonymousToken(ctx context.Context, token string, ttl time.Duration) error
	// SetUser caches the profile; nil clears it.
	SetUser(ctx context.Context, user *entity.User) error

	AccessToken(ctx context.Context) string
	RefreshToken(ctx context.Context) string
	AnonymousToken(ctx context.Context) string
	User(ctx context.Context) *entity.User

	// ClearTokens removes access, refresh and user. The anonymous token stays.
	ClearTokens(ctx context.Context) error
	// ClearAll removes everything including the anonymous token.
	ClearAll(ctx context.Context) error
}

// LoginFlowStore persists the OTP login form state of one browser.
type LoginFlowStore interface {
	// LoginFlow returns the saved flow or a fresh one in PHONE_ENTRY.
	LoginFlow(ctx context.Context) *entity.LoginFlow
	SaveLoginFlow(ctx context.Context, flow *entity.LoginFlow) error
	ClearLoginFlow(ctx context.Context) error
}

// SessionStore is everything the frontend keeps for one browser.
type SessionStore interface {
	TokenStore
	LoginFlowStore

	// Projection returns the routing view kept in sync with the tokens.
	Projection(ctx context.Context) entity.AuthProjection
}

// BearerToken picks the credential used to sign requests: the access token
// when present, the anonymous token otherwise.
func BearerToken(ctx context.Context, store TokenStore) string {
	if store == nil {
		return ""
	}
	if token := store.AccessToken(ctx); token != "" {
		return token
	}

	return store.AnonymousToken(ctx)
}

// HasIdentity reports whether the session carries any credential at all.
func HasIdentity(ctx context.Context, store TokenStore) bool {
	if store == nil {
		return false
	}

	return store.AccessToken(ctx) != "" || store.RefreshToken(ctx) != "" || store.AnonymousToken(ctx) != ""
}
