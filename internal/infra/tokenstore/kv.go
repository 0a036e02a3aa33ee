package tokenstore

import (
	"context"
	"net/url"
	"time"

	"autoparts/internal/errors"

	"github.com/google/uuid"
)

// kv is the raw persistence under a Store.
type kv interface {
	get(ctx context.Context, name string) (string, bool, error)
	set(ctx context.Context, name, value string, ttl time.Duration) error
	del(ctx context.Context, names ...string) error
}

// cookieKV keeps each value in its own HttpOnly cookie. Values are
// URL-escaped because JSON quotes and commas are not valid cookie octets.
type cookieKV struct {
	jar *CookieJar
}

func (s cookieKV) get(_ context.Context, name string) (string, bool, error) {
	raw, ok := s.jar.Get(name)
	if !ok {
		return "", false, nil
	}

	value, err := url.QueryUnescape(raw)
	if err != nil {
		return "", false, errors.Wrapf(err, "cookie %s is not escaped", name)
	}

	return value, true, nil
}

func (s cookieKV) set(_ context.Context, name, value string, ttl time.Duration) error {
	s.jar.Set(name, url.QueryEscape(value), ttl, true)

	return nil
}

func (s cookieKV) del(_ context.Context, names ...string) error {
	for _, name := range names {
		s.jar.Delete(name)
	}

	return nil
}

// backendKV keeps values in a Backend under "<prefix><sid>:<name>".
// The session id cookie is created on first write.
type backendKV struct {
	backend Backend
	jar     *CookieJar
	prefix  string
	sidTTL  time.Duration
	newID   func() string
}

func (s *backendKV) sid(create bool) string {
	if sid, ok := s.jar.Get(SessionIDCookie); ok {
		if _, err := uuid.Parse(sid); err == nil {
			return sid
		}
	}
	if !create {
		return ""
	}

	sid := s.newID()
	s.jar.Set(SessionIDCookie, sid, s.sidTTL, true)

	return sid
}

func (s *backendKV) key(sid, name string) string {
	return s.prefix + sid + ":" + name
}

func (s *backendKV) get(ctx context.Context, name string) (string, bool, error) {
	sid := s.sid(false)
	if sid == "" || s.backend == nil {
		return "", false, nil
	}

	value, err := s.backend.Get(ctx, s.key(sid, name))
	if errors.Is(err, ErrMiss) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	return value, true, nil
}

func (s *backendKV) set(ctx context.Context, name, value string, ttl time.Duration) error {
	if s.backend == nil {
		return nil
	}

	return s.backend.Set(ctx, s.key(s.sid(true), name), value, ttl)
}

func (s *backendKV) del(ctx context.Context, names ...string) error {
	sid := s.sid(false)
	if sid == "" || s.backend == nil {
		return nil
	}

	keys := make([]string, 0, len(names))
	for _, name := range names {
		keys = append(keys, s.key(sid, name))
	}

	return s.backend.Del(ctx, keys...)
}
