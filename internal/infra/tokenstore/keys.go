// Package tokenstore keeps browser credentials for the frontend, either in
// cookies or in a server-side backend keyed by a session cookie.
package tokenstore

import "time"

// Cookie and backend key names.
const (
	KeyAccessToken    = "access_token"
	KeyRefreshToken   = "refresh_token"
	KeyAnonymousToken = "anonymous_token"
	KeyUser           = "user"
	KeyLoginFlow      = "login_flow"

	// ProjectionCookie holds the non-secret auth state read by the route guard.
	ProjectionCookie = "auth-storage"
	// SessionIDCookie identifies the server-side session.
	SessionIDCookie = "sid"
)

// Options configures cookie attributes and lifetimes.
type Options struct {
	Secure                bool
	Domain                string
	RefreshTokenTTL       time.Duration
	DefaultAccessTokenTTL time.Duration
	ProjectionTTL         time.Duration
	LoginFlowTTL          time.Duration
	KeyPrefix             string
}

// DefaultOptions returns production lifetimes.
func DefaultOptions() Options {
	return Options{
		RefreshTokenTTL:       90 * 24 * time.Hour,
		DefaultAccessTokenTTL: 15 * time.Minute,
		ProjectionTTL:         24 * time.Hour,
		LoginFlowTTL:          15 * time.Minute,
		KeyPrefix:             "autoparts:session:",
	}
}
