// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// TokenBundle is the authenticated token pair issued by OTP verification or refresh.
type TokenBundle struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int    `json:"expiresIn"` // Seconds until the access token expires. Advisory only.
	TokenType    string `json:"tokenType"`
}

// AuthResult is what the remote API returns after a successful verify or refresh.
type AuthResult struct {
	TokenBundle
	User AuthUser `json:"user"`
}

// AuthUser is the short user payload embedded in an AuthResult.
type AuthUser struct {
	ID        string `json:"id"`
	Phone     string `json:"phone"`
	Role      Role   `json:"role"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
}

// ToUser expands the short payload into the cached profile shape.
// The account is active by definition since it has just authenticated.
func (u AuthUser) ToUser(now time.Time) *User {
	return &User{
		ID:        u.ID,
		Phone:     u.Phone,
		Role:      u.Role,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AnonymousSession is a guest identity issued to a browser without an account.
type AnonymousSession struct {
	SessionToken string `json:"sessionToken"`
	SessionID    string `json:"sessionId"`
	ExpiresIn    int    `json:"expiresIn"`
}

// TTL returns the lifetime of the anonymous token.
func (s *AnonymousSession) TTL() time.Duration {
	return time.Duration(s.ExpiresIn) * time.Second
}

// DeviceInfo describes the browser asking for a session or a code.
type DeviceInfo struct {
	Platform string `json:"platform,omitempty"`
	Version  string `json:"version,omitempty"`
	Browser  string `json:"browser,omitempty"`
}

// OTPChallenge is the remote answer to an OTP request.
type OTPChallenge struct {
	Message     string `json:"message"`
	ResendAfter int    `json:"resendAfter"`
	Code        string `json:"code,omitempty"` // Only returned outside production.
}

// AuthProjection is the non-secret routing view of the auth state.
// It is persisted separately from the tokens so the route guard can decide
// redirects without touching credentials.
type AuthProjection struct {
	State AuthProjectionState `json:"state"`
}

// AuthProjectionState mirrors the persisted "state" object.
type AuthProjectionState struct {
	IsAuthenticated bool `json:"isAuthenticated"`
	UserRole        Role `json:"userRole,omitempty"`
}

// NewAuthProjection builds a projection from the current session contents.
func NewAuthProjection(authenticated bool, user *User) AuthProjection {
	p := AuthProjection{State: AuthProjectionState{IsAuthenticated: authenticated}}
	if authenticated && user != nil {
		p.State.UserRole = user.Role
	}

	return p
}

// IsAuthenticated reports whether the projection marks a signed-in session.
func (p AuthProjection) IsAuthenticated() bool {
	return p.State.IsAuthenticated
}

// Role returns the projected role, empty when unknown.
func (p AuthProjection) Role() Role {
	return p.State.UserRole
}
