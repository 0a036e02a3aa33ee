package remoteapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"autoparts/config"
	"autoparts/internal/infra/tokenstore"

	"github.com/prometheus/client_golang/prometheus"
)

// fakeRemote is a scripted remote API. The profile endpoint accepts only
// the current access token; refresh rotates the pair once.
type fakeRemote struct {
	*httptest.Server

	mu            sync.Mutex
	validAccess   string
	refreshFrom   string
	refreshTo     [2]string
	refreshDelay  time.Duration
	refreshStatus int
	profileStatus int
	publicStatus  int
	authHeaders   map[string][]string

	refreshCalls atomic.Int32
}

func newFakeRemote(t *testing.T) *fakeRemote {
	f := &fakeRemote{
		validAccess:   "a2",
		refreshFrom:   "r1",
		refreshTo:     [2]string{"a2", "r2"},
		refreshStatus: http.StatusOK,
		authHeaders:   map[string][]string{},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/auth/token/refresh", f.handleRefresh)
	mux.HandleFunc("GET /api/v1/users/profile", f.handleProfile)
	mux.HandleFunc("POST /api/v1/auth/otp/request", f.handlePublic(`{"success":true,"data":{"message":"sent","resendAfter":60}}`))
	mux.HandleFunc("POST /api/v1/auth/otp/verify", f.handlePublic(`{"success":true,"data":{"accessToken":"a1","refreshToken":"r1","expiresIn":900,"tokenType":"Bearer","user":{"id":"u-1","phone":"+79991234567","role":"ADMIN"}}}`))
	mux.HandleFunc("POST /api/v1/auth/anonymous", f.handlePublic(`{"success":true,"data":{"sessionToken":"anon-1","sessionId":"s-1","expiresIn":3600}}`))

	f.Server = httptest.NewServer(mux)
	t.Cleanup(f.Close)

	return f
}

func (f *fakeRemote) record(r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.authHeaders[r.URL.Path] = append(f.authHeaders[r.URL.Path], r.Header.Get("Authorization"))
}

func (f *fakeRemote) headers(path string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]string(nil), f.authHeaders["/api/v1"+path]...)
}

func (f *fakeRemote) handleRefresh(w http.ResponseWriter, r *http.Request) {
	f.record(r)
	f.refreshCalls.Add(1)
	time.Sleep(f.refreshDelay)

	var body struct {
		RefreshToken string `json:"refreshToken"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)

	if f.refreshStatus != http.StatusOK || body.RefreshToken != f.refreshFrom {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"statusCode":401,"message":"Invalid refresh token","error":"Unauthorized"}`)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": true,
		"data": map[string]any{
			"accessToken":  f.refreshTo[0],
			"refreshToken": f.refreshTo[1],
			"expiresIn":    900,
			"tokenType":    "Bearer",
			"user":         map[string]any{"id": "u-1", "phone": "+79991234567", "role": "ADMIN"},
		},
	})
}

func (f *fakeRemote) handleProfile(w http.ResponseWriter, r *http.Request) {
	f.record(r)

	if f.profileStatus != 0 {
		w.WriteHeader(f.profileStatus)
		_, _ = io.WriteString(w, `{"statusCode":401,"message":"Unauthorized"}`)

		return
	}
	if strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ") != f.validAccess {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"statusCode":401,"message":"Token expired"}`)

		return
	}

	_, _ = io.WriteString(w, `{"success":true,"data":{"id":"u-1","phone":"+79991234567","role":"ADMIN","isActive":true,"createdAt":"2026-01-01T00:00:00Z","updatedAt":"2026-01-01T00:00:00Z"}}`)
}

func (f *fakeRemote) handlePublic(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.record(r)
		if f.publicStatus != 0 {
			w.WriteHeader(f.publicStatus)
			_, _ = io.WriteString(w, `{"statusCode":401,"message":"Unauthorized"}`)

			return
		}
		_, _ = io.WriteString(w, body)
	}
}

func newTestClient(baseURL string) *Client {
	return NewClient(config.APIConfig{
		BaseURL:            baseURL,
		Prefix:             "/api/v1",
		Timeout:            2 * time.Second,
		RefreshTimeout:     2 * time.Second,
		RefreshReuseWindow: 10 * time.Second,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)), NewMetrics(prometheus.NewRegistry()))
}

func newTestStore(req *http.Request) *tokenstore.Store {
	if req == nil {
		req = httptest.NewRequest(http.MethodGet, "/", nil)
	}
	opts := tokenstore.DefaultOptions()

	return tokenstore.NewCookieStore(tokenstore.NewCookieJar(req, opts), opts, slog.New(slog.NewTextHandler(io.Discard, nil)))
}
