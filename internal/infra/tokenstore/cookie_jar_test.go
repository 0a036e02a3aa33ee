package tokenstore

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCookieJar_ReadsRequestCookies(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: KeyAccessToken, Value: "abc"})

	jar := NewCookieJar(req, DefaultOptions())

	value, ok := jar.Get(KeyAccessToken)
	assert.True(t, ok)
	assert.Equal(t, "abc", value)

	_, ok = jar.Get(KeyRefreshToken)
	assert.False(t, ok)
}

func TestCookieJar_WritesOverlayRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: KeyAccessToken, Value: "old"})

	jar := NewCookieJar(req, DefaultOptions())
	jar.Set(KeyAccessToken, "new", time.Minute, true)

	value, ok := jar.Get(KeyAccessToken)
	assert.True(t, ok)
	assert.Equal(t, "new", value)

	jar.Delete(KeyAccessToken)
	_, ok = jar.Get(KeyAccessToken)
	assert.False(t, ok)
}

func TestCookieJar_FlushWritesAttributesOnce(t *testing.T) {
	opts := DefaultOptions()
	opts.Secure = true
	jar := NewCookieJar(httptest.NewRequest(http.MethodGet, "/", nil), opts)

	jar.Set(KeyRefreshToken, "r1", time.Hour, true)
	jar.Set(ProjectionCookie, "p", time.Hour, false)
	jar.Delete(KeyUser)

	rec := httptest.NewRecorder()
	jar.Flush(rec)
	jar.Flush(rec)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 3)

	byName := map[string]*http.Cookie{}
	for _, c := range cookies {
		byName[c.Name] = c
	}

	refresh := byName[KeyRefreshToken]
	assert.Equal(t, "r1", refresh.Value)
	assert.True(t, refresh.HttpOnly)
	assert.True(t, refresh.Secure)
	assert.Equal(t, http.SameSiteLaxMode, refresh.SameSite)
	assert.Equal(t, "/", refresh.Path)
	assert.Equal(t, 3600, refresh.MaxAge)

	assert.False(t, byName[ProjectionCookie].HttpOnly)
	assert.Equal(t, -1, byName[KeyUser].MaxAge)
}

func TestCookieJar_NilIsEmpty(t *testing.T) {
	var jar *CookieJar

	_, ok := jar.Get(KeyAccessToken)
	assert.False(t, ok)

	jar.Set(KeyAccessToken, "x", time.Minute, true)
	jar.Delete(KeyAccessToken)
	jar.Flush(httptest.NewRecorder())
	assert.Nil(t, jar.Pending())
}
