package tokenstore

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"autoparts/internal/domain/entity"
	domainerrors "autoparts/internal/domain/errors"
	"autoparts/internal/domain/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type storeHarness struct {
	name string
	open func(t *testing.T, req *http.Request) (*Store, *CookieJar)
}

func storeHarnesses(t *testing.T) []storeHarness {
	memory := NewMemoryBackend()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	redisBackend := NewRedisBackend(client)

	opts := DefaultOptions()
	logger := newDiscardLogger()

	return []storeHarness{
		{
			name: "cookie",
			open: func(_ *testing.T, req *http.Request) (*Store, *CookieJar) {
				jar := NewCookieJar(req, opts)

				return NewCookieStore(jar, opts, logger), jar
			},
		},
		{
			name: "memory",
			open: func(_ *testing.T, req *http.Request) (*Store, *CookieJar) {
				jar := NewCookieJar(req, opts)

				return NewServerStore(jar, memory, opts, logger), jar
			},
		},
		{
			name: "redis",
			open: func(_ *testing.T, req *http.Request) (*Store, *CookieJar) {
				jar := NewCookieJar(req, opts)

				return NewServerStore(jar, redisBackend, opts, logger), jar
			},
		},
	}
}

func testUser(role entity.Role) *entity.User {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	return &entity.User{
		ID:        "u-1",
		Phone:     "+79991234567",
		Role:      role,
		FirstName: "Иван",
		LastName:  "Петров, мл.",
		Email:     "ivan@example.com",
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestStore_TokensSurviveRoundTrip(t *testing.T) {
	for _, h := range storeHarnesses(t) {
		t.Run(h.name, func(t *testing.T) {
			ctx := context.Background()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			store, jar := h.open(t, req)

			require.NoError(t, store.SetTokens(ctx, &entity.TokenBundle{AccessToken: "a1", RefreshToken: "r1", ExpiresIn: 900}))
			require.NoError(t, store.SetUser(ctx, testUser(entity.RoleAdmin)))

			// Same request sees its own writes.
			assert.Equal(t, "a1", store.AccessToken(ctx))
			assert.Equal(t, "r1", store.RefreshToken(ctx))

			next := nextRequest(req, jar)
			store2, _ := h.open(t, next)

			assert.Equal(t, "a1", store2.AccessToken(ctx))
			assert.Equal(t, "r1", store2.RefreshToken(ctx))
			assert.Equal(t, testUser(entity.RoleAdmin), store2.User(ctx))
			assert.Equal(t, "a1", service.BearerToken(ctx, store2))

			projection := store2.Projection(ctx)
			assert.True(t, projection.IsAuthenticated())
			assert.Equal(t, entity.RoleAdmin, projection.Role())
		})
	}
}

func TestStore_ClearTokensKeepsAnonymous(t *testing.T) {
	for _, h := range storeHarnesses(t) {
		t.Run(h.name, func(t *testing.T) {
			ctx := context.Background()
			store, _ := h.open(t, httptest.NewRequest(http.MethodGet, "/", nil))

			require.NoError(t, store.SetAnonymousToken(ctx, "anon", time.Hour))
			require.NoError(t, store.SetTokens(ctx, &entity.TokenBundle{AccessToken: "a1", RefreshToken: "r1"}))
			require.NoError(t, store.SetUser(ctx, testUser(entity.RoleCustomer)))

			require.NoError(t, store.ClearTokens(ctx))

			assert.Empty(t, store.AccessToken(ctx))
			assert.Empty(t, store.RefreshToken(ctx))
			assert.Nil(t, store.User(ctx))
			assert.Equal(t, "anon", store.AnonymousToken(ctx))
			assert.Equal(t, "anon", service.BearerToken(ctx, store))
			assert.False(t, store.Projection(ctx).IsAuthenticated())

			require.NoError(t, store.ClearAll(ctx))
			assert.Empty(t, store.AnonymousToken(ctx))
			assert.False(t, service.HasIdentity(ctx, store))
		})
	}
}

func TestStore_LoginFlow(t *testing.T) {
	for _, h := range storeHarnesses(t) {
		t.Run(h.name, func(t *testing.T) {
			ctx := context.Background()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			store, jar := h.open(t, req)

			assert.Equal(t, entity.StepPhoneEntry, store.LoginFlow(ctx).Step)

			now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
			flow := entity.NewLoginFlow()
			flow.CodeSent("+79991234567", &entity.OTPChallenge{ResendAfter: 60, Code: "1234"}, now)
			require.NoError(t, store.SaveLoginFlow(ctx, flow))

			store2, _ := h.open(t, nextRequest(req, jar))
			saved := store2.LoginFlow(ctx)
			assert.Equal(t, entity.StepOTPEntry, saved.Step)
			assert.Equal(t, "+79991234567", saved.Phone)
			assert.Equal(t, "1234", saved.DevCode)
			assert.True(t, saved.ResendAt.Equal(now.Add(time.Minute)))

			require.NoError(t, store2.ClearLoginFlow(ctx))
			assert.Equal(t, entity.StepPhoneEntry, store2.LoginFlow(ctx).Step)
		})
	}
}

func TestStore_SetUserNilClears(t *testing.T) {
	ctx := context.Background()
	opts := DefaultOptions()
	jar := NewCookieJar(httptest.NewRequest(http.MethodGet, "/", nil), opts)
	store := NewCookieStore(jar, opts, newDiscardLogger())

	require.NoError(t, store.SetTokens(ctx, &entity.TokenBundle{AccessToken: "a1", RefreshToken: "r1"}))
	require.NoError(t, store.SetUser(ctx, testUser(entity.RoleManager)))
	require.NoError(t, store.SetUser(ctx, nil))

	assert.Nil(t, store.User(ctx))
	assert.True(t, store.Projection(ctx).IsAuthenticated())
	assert.Empty(t, store.Projection(ctx).Role())
}

func TestStore_MalformedValuesReadAsAbsent(t *testing.T) {
	ctx := context.Background()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: KeyUser, Value: url.QueryEscape("{not json")})
	req.AddCookie(&http.Cookie{Name: KeyLoginFlow, Value: "%zz"})
	req.AddCookie(&http.Cookie{Name: ProjectionCookie, Value: "garbage"})

	opts := DefaultOptions()
	store := NewCookieStore(NewCookieJar(req, opts), opts, newDiscardLogger())

	assert.Nil(t, store.User(ctx))
	assert.Equal(t, entity.StepPhoneEntry, store.LoginFlow(ctx).Step)
	assert.False(t, store.Projection(ctx).IsAuthenticated())
}

func TestStore_NoStorageIsSafe(t *testing.T) {
	ctx := context.Background()
	store := NewCookieStore(nil, DefaultOptions(), newDiscardLogger())

	assert.Empty(t, store.AccessToken(ctx))
	assert.Nil(t, store.User(ctx))
	assert.NoError(t, store.SetTokens(ctx, &entity.TokenBundle{AccessToken: "a"}))
	assert.NoError(t, store.ClearAll(ctx))
	assert.False(t, store.Projection(ctx).IsAuthenticated())
}

func TestStore_ProjectionCookieIsReadable(t *testing.T) {
	ctx := context.Background()
	opts := DefaultOptions()
	jar := NewCookieJar(httptest.NewRequest(http.MethodGet, "/", nil), opts)
	store := NewCookieStore(jar, opts, newDiscardLogger())

	require.NoError(t, store.SetTokens(ctx, &entity.TokenBundle{AccessToken: "a1", RefreshToken: "r1"}))

	for _, c := range jar.Pending() {
		switch c.Name {
		case ProjectionCookie:
			assert.False(t, c.HttpOnly)
			assert.Equal(t, int((24 * time.Hour).Seconds()), c.MaxAge)
		case KeyRefreshToken:
			assert.True(t, c.HttpOnly)
			assert.Equal(t, int((90 * 24 * time.Hour).Seconds()), c.MaxAge)
		}
	}
}

func TestServerStore_BackendFailureIsSoftOnRead(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	opts := DefaultOptions()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	jar := NewCookieJar(req, opts)
	store := NewServerStore(jar, NewRedisBackend(client), opts, newDiscardLogger())
	require.NoError(t, store.SetTokens(ctx, &entity.TokenBundle{AccessToken: "a1", RefreshToken: "r1"}))

	mr.Close()

	assert.Empty(t, store.AccessToken(ctx))

	err := store.SetTokens(ctx, &entity.TokenBundle{AccessToken: "a2"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrSessionStorageFailed)
}

func TestServerStore_KeysAreScopedBySessionID(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()
	opts := DefaultOptions()

	jar := NewCookieJar(httptest.NewRequest(http.MethodGet, "/", nil), opts)
	store := NewServerStore(jar, backend, opts, newDiscardLogger())
	require.NoError(t, store.SetAnonymousToken(ctx, "anon", time.Hour))

	sid, ok := jar.Get(SessionIDCookie)
	require.True(t, ok)

	value, err := backend.Get(ctx, opts.KeyPrefix+sid+":"+KeyAnonymousToken)
	require.NoError(t, err)
	assert.Equal(t, "anon", value)

	// A different browser sees nothing.
	other := NewServerStore(NewCookieJar(httptest.NewRequest(http.MethodGet, "/", nil), opts), backend, opts, newDiscardLogger())
	assert.Empty(t, other.AnonymousToken(ctx))
}
