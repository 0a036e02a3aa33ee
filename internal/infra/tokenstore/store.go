package tokenstore

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"
	"time"

	deliverycontext "autoparts/internal/delivery/context"
	"autoparts/internal/domain/entity"
	domainerrors "autoparts/internal/domain/errors"
	"autoparts/internal/domain/service"
	"autoparts/internal/errors"

	"github.com/google/uuid"
)

var _ service.SessionStore = (*Store)(nil)

// Store implements service.SessionStore over cookies or a backend. The auth
// projection always lives in a readable cookie so the route guard can see it.
type Store struct {
	kv     kv
	jar    *CookieJar
	opts   Options
	logger *slog.Logger
	now    func() time.Time
}

// NewCookieStore keeps every value in cookies of the given jar.
func NewCookieStore(jar *CookieJar, opts Options, logger *slog.Logger) *Store {
	return &Store{
		kv:     cookieKV{jar: jar},
		jar:    jar,
		opts:   opts,
		logger: logger,
		now:    time.Now,
	}
}

// NewServerStore keeps values in backend under a session id cookie.
func NewServerStore(jar *CookieJar, backend Backend, opts Options, logger *slog.Logger) *Store {
	return &Store{
		kv: &backendKV{
			backend: backend,
			jar:     jar,
			prefix:  opts.KeyPrefix,
			sidTTL:  opts.RefreshTokenTTL,
			newID:   func() string { return uuid.New().String() },
		},
		jar:    jar,
		opts:   opts,
		logger: logger,
		now:    time.Now,
	}
}

func (s *Store) SetTokens(ctx context.Context, bundle *entity.TokenBundle) error {
	if bundle == nil || bundle.AccessToken == "" {
		return errors.New("token bundle without access token")
	}

	ttl := accessTokenTTL(bundle, s.opts.DefaultAccessTokenTTL, s.now())
	if err := s.kv.set(ctx, KeyAccessToken, bundle.AccessToken, ttl); err != nil {
		return storageError(err, "store access token")
	}
	if bundle.RefreshToken != "" {
		if err := s.kv.set(ctx, KeyRefreshToken, bundle.RefreshToken, s.opts.RefreshTokenTTL); err != nil {
			return storageError(err, "store refresh token")
		}
	}

	s.syncProjection(ctx)

	return nil
}

func (s *Store) SetAnonymousToken(ctx context.Context, token string, ttl time.Duration) error {
	if token == "" {
		return errors.New("empty anonymous token")
	}
	if ttl <= 0 {
		ttl = s.opts.RefreshTokenTTL
	}

	if err := s.kv.set(ctx, KeyAnonymousToken, token, ttl); err != nil {
		return storageError(err, "store anonymous token")
	}

	s.syncProjection(ctx)

	return nil
}

func (s *Store) SetUser(ctx context.Context, user *entity.User) error {
	if user == nil {
		if err := s.kv.del(ctx, KeyUser); err != nil {
			return storageError(err, "clear user")
		}
		s.syncProjection(ctx)

		return nil
	}

	data, err := json.Marshal(user)
	if err != nil {
		return errors.Wrap(err, "marshal user")
	}
	if err := s.kv.set(ctx, KeyUser, string(data), s.opts.RefreshTokenTTL); err != nil {
		return storageError(err, "store user")
	}

	s.syncProjection(ctx)

	return nil
}

func (s *Store) AccessToken(ctx context.Context) string {
	return s.read(ctx, KeyAccessToken)
}

func (s *Store) RefreshToken(ctx context.Context) string {
	return s.read(ctx, KeyRefreshToken)
}

func (s *Store) AnonymousToken(ctx context.Context) string {
	return s.read(ctx, KeyAnonymousToken)
}

// User returns the cached profile, nil when absent or unreadable.
func (s *Store) User(ctx context.Context) *entity.User {
	raw := s.read(ctx, KeyUser)
	if raw == "" {
		return nil
	}

	var user entity.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil || user.ID == "" {
		s.log(ctx).Debug("Discarding malformed cached user", slog.Any("error", err))

		return nil
	}

	return &user
}

func (s *Store) ClearTokens(ctx context.Context) error {
	if err := s.kv.del(ctx, KeyAccessToken, KeyRefreshToken, KeyUser); err != nil {
		return storageError(err, "clear tokens")
	}

	s.syncProjection(ctx)

	return nil
}

func (s *Store) ClearAll(ctx context.Context) error {
	if err := s.kv.del(ctx, KeyAccessToken, KeyRefreshToken, KeyUser, KeyAnonymousToken, KeyLoginFlow); err != nil {
		return storageError(err, "clear session")
	}

	s.syncProjection(ctx)

	return nil
}

// LoginFlow returns the saved flow, or a new one in phone entry.
func (s *Store) LoginFlow(ctx context.Context) *entity.LoginFlow {
	raw := s.read(ctx, KeyLoginFlow)
	if raw == "" {
		return entity.NewLoginFlow()
	}

	var flow entity.LoginFlow
	if err := json.Unmarshal([]byte(raw), &flow); err != nil || flow.Step == "" {
		return entity.NewLoginFlow()
	}

	return &flow
}

func (s *Store) SaveLoginFlow(ctx context.Context, flow *entity.LoginFlow) error {
	if flow == nil {
		return s.ClearLoginFlow(ctx)
	}

	data, err := json.Marshal(flow)
	if err != nil {
		return errors.Wrap(err, "marshal login flow")
	}

	return storageError(s.kv.set(ctx, KeyLoginFlow, string(data), s.opts.LoginFlowTTL), "store login flow")
}

func (s *Store) ClearLoginFlow(ctx context.Context) error {
	return storageError(s.kv.del(ctx, KeyLoginFlow), "clear login flow")
}

// Projection reads the routing cookie. Anything unreadable counts as signed out.
func (s *Store) Projection(_ context.Context) entity.AuthProjection {
	raw, ok := s.jar.Get(ProjectionCookie)
	if !ok {
		return entity.NewAuthProjection(false, nil)
	}

	return ParseProjection(raw)
}

// ParseProjection decodes an escaped auth-storage cookie value.
func ParseProjection(raw string) entity.AuthProjection {
	value, err := url.QueryUnescape(raw)
	if err != nil {
		return entity.NewAuthProjection(false, nil)
	}

	var projection entity.AuthProjection
	if err := json.Unmarshal([]byte(value), &projection); err != nil {
		return entity.NewAuthProjection(false, nil)
	}

	return projection
}

// syncProjection rewrites the routing cookie from the current contents.
func (s *Store) syncProjection(ctx context.Context) {
	authenticated := s.AccessToken(ctx) != "" || s.RefreshToken(ctx) != ""
	if !authenticated {
		if _, ok := s.jar.Get(ProjectionCookie); ok {
			s.jar.Delete(ProjectionCookie)
		}

		return
	}

	data, err := json.Marshal(entity.NewAuthProjection(true, s.User(ctx)))
	if err != nil {
		s.log(ctx).Warn("Failed to encode auth projection", slog.Any("error", err))

		return
	}
	s.jar.Set(ProjectionCookie, url.QueryEscape(string(data)), s.opts.ProjectionTTL, false)
}

func (s *Store) read(ctx context.Context, name string) string {
	value, ok, err := s.kv.get(ctx, name)
	if err != nil {
		s.log(ctx).Warn("Session read failed", slog.String("key", name), slog.Any("error", err))

		return ""
	}
	if !ok {
		return ""
	}

	return value
}

func (s *Store) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func storageError(err error, message string) error {
	if err == nil {
		return nil
	}

	return errors.Wrap(domainerrors.ErrSessionStorageFailed.WithDetails(err.Error()), message)
}
