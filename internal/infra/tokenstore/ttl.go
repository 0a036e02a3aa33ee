package tokenstore

import (
	"time"

	"autoparts/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// accessTokenTTL prefers the declared expiresIn, then the exp claim of the
// token itself, then the configured default.
func accessTokenTTL(bundle *entity.TokenBundle, fallback time.Duration, now time.Time) time.Duration {
	if bundle.ExpiresIn > 0 {
		return time.Duration(bundle.ExpiresIn) * time.Second
	}

	if exp, ok := expiryFromJWT(bundle.AccessToken); ok {
		if ttl := exp.Sub(now); ttl > 0 {
			return ttl
		}
	}

	return fallback
}

// expiryFromJWT reads exp without verifying the signature. The remote API
// owns the key; the value only sizes a cookie.
func expiryFromJWT(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}

	return exp.Time, true
}
