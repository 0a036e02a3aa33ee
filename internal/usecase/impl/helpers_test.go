package impl

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"autoparts/config"
	"autoparts/internal/domain/entity"
	"autoparts/internal/infra/tokenstore"

	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.ApplyDefaults()

	return cfg
}

// newTestStore returns an empty cookie-backed session for one request.
func newTestStore() *tokenstore.Store {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	opts := tokenstore.DefaultOptions()

	return tokenstore.NewCookieStore(tokenstore.NewCookieJar(req, opts), opts, newDiscardLogger())
}

// newSignedInStore returns a session holding a token pair and a cached user.
func newSignedInStore(t *testing.T, user *entity.User) *tokenstore.Store {
	t.Helper()

	store := newTestStore()
	ctx := context.Background()
	require.NoError(t, store.SetTokens(ctx, &entity.TokenBundle{AccessToken: "a1", RefreshToken: "r1", ExpiresIn: 900}))
	if user != nil {
		require.NoError(t, store.SetUser(ctx, user))
	}

	return store
}

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func strPtr(s string) *string { return &s }
