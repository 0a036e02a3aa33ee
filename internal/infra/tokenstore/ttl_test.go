package tokenstore

import (
	"testing"
	"time"

	"autoparts/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenTTL(t *testing.T) {
	now := time.Now()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u-1",
		"exp": now.Add(30 * time.Minute).Unix(),
	}).SignedString([]byte("remote-secret"))
	require.NoError(t, err)

	tests := []struct {
		name   string
		bundle *entity.TokenBundle
		want   time.Duration
		delta  time.Duration
	}{
		{name: "expiresIn wins", bundle: &entity.TokenBundle{AccessToken: signed, ExpiresIn: 60}, want: time.Minute},
		{name: "jwt exp", bundle: &entity.TokenBundle{AccessToken: signed}, want: 30 * time.Minute, delta: 2 * time.Second},
		{name: "opaque token", bundle: &entity.TokenBundle{AccessToken: "opaque"}, want: 15 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := accessTokenTTL(tt.bundle, 15*time.Minute, now)
			assert.InDelta(t, float64(tt.want), float64(got), float64(tt.delta))
		})
	}
}
