// Package remoteapi talks to the remote autoparts API on behalf of a browser
// session: it signs requests, refreshes expired tokens and normalizes errors.
package remoteapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"autoparts/config"
	deliverycontext "autoparts/internal/delivery/context"
	"autoparts/internal/domain/entity"
	"autoparts/internal/domain/service"
	"autoparts/internal/errors"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

const (
	// maxSends bounds a call to the original send plus one replay.
	maxSends = 2

	maxResponseBytes = 4 << 20

	refreshPath = "/auth/token/refresh"
)

var errNoRefreshToken = errors.New("no refresh token in session")

// Request describes one remote call.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
	// SkipAuth sends the call unsigned and disables the refresh protocol.
	SkipAuth bool
}

// Params defines the dependencies of the client
type Params struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	Registerer prometheus.Registerer `optional:"true"`
}

// Client is the request interceptor shared by every session of the process.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	timeout        time.Duration
	refreshTimeout time.Duration
	reuseWindow    time.Duration
	logger         *slog.Logger
	metrics        *Metrics
	now            func() time.Time

	// flight coalesces refreshes keyed by the refresh token being spent.
	flight singleflight.Group

	mu     sync.Mutex
	recent map[string]recentRefresh
}

// recentRefresh is the outcome of a finished refresh, kept for callers that
// still hold the rotated-away refresh token. It is handed out without asking
// the remote API, so only to a caller that also presents the bearer the
// refreshing session sent: the same browser's staggered requests.
type recentRefresh struct {
	result *entity.AuthResult
	bearer string
	at     time.Time
}

// New creates the client from config.
func New(params Params) *Client {
	return NewClient(params.Config.API, params.Logger, NewMetrics(params.Registerer))
}

// NewClient creates a client for the given API settings.
func NewClient(cfg config.APIConfig, logger *slog.Logger, metrics *Metrics) *Client {
	return &Client{
		httpClient:     &http.Client{},
		baseURL:        strings.TrimRight(cfg.BaseURL, "/") + "/" + strings.Trim(cfg.Prefix, "/"),
		timeout:        cfg.Timeout,
		refreshTimeout: cfg.RefreshTimeout,
		reuseWindow:    cfg.RefreshReuseWindow,
		logger:         logger,
		metrics:        metrics,
		now:            time.Now,
		recent:         make(map[string]recentRefresh),
	}
}

// Metrics returns the collectors of this client.
func (c *Client) Metrics() *Metrics {
	return c.metrics
}

// Do sends req signed with the session's bearer and decodes the data into
// out. A 401 triggers one refresh and one replay; if the session cannot be
// recovered it is wiped and an authentication error is returned.
func (c *Client) Do(ctx context.Context, store service.TokenStore, req Request, out any) error {
	for attempt := 1; ; attempt++ {
		sent, spent := "", ""
		if !req.SkipAuth {
			sent = service.BearerToken(ctx, store)
			if store != nil {
				spent = store.RefreshToken(ctx)
			}
		}

		status, body, err := c.send(ctx, req, sent)
		if err != nil {
			return transportError(req.Path, err)
		}

		if status != http.StatusUnauthorized || req.SkipAuth {
			if status >= http.StatusOK && status < http.StatusMultipleChoices {
				return decodeSuccess(status, body, req.Path, out)
			}

			return parseAPIError(status, body, req.Path)
		}

		if attempt >= maxSends {
			c.wipe(ctx, store)

			return authenticationError(req.Path, parseAPIError(status, body, req.Path))
		}

		// Another caller on this session already rotated the token.
		if current := service.BearerToken(ctx, store); current != "" && current != sent {
			continue
		}

		if err := c.refresh(ctx, store, spent, sent); err != nil {
			c.log(ctx).Info("Session could not be refreshed", slog.String("path", req.Path), slog.Any("error", err))
			c.wipe(ctx, store)

			return authenticationError(req.Path, err)
		}
	}
}

// refresh spends refreshToken to rotate the session's tokens. Concurrent
// callers spending the same token share one remote call; each caller then
// writes the result into its own store unless that store has moved on.
// bearer is the token the caller's rejected request was signed with.
func (c *Client) refresh(ctx context.Context, store service.TokenStore, refreshToken, bearer string) error {
	if store == nil || refreshToken == "" {
		return errNoRefreshToken
	}

	if result, ok := c.reusable(refreshToken, bearer); ok {
		c.metrics.observeRefresh(resultReused)
		c.metrics.observeCoalesced()

		return c.adopt(ctx, store, refreshToken, result)
	}

	leader := false
	value, err, _ := c.flight.Do(refreshToken, func() (any, error) {
		leader = true

		// Detached so one caller giving up does not fail every waiter.
		refreshCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.refreshTimeout)
		defer cancel()

		var result entity.AuthResult
		if err := c.Do(refreshCtx, nil, Request{
			Method:   http.MethodPost,
			Path:     refreshPath,
			Body:     map[string]string{"refreshToken": refreshToken},
			SkipAuth: true,
		}, &result); err != nil {
			c.metrics.observeRefresh(resultFailure)

			return nil, err
		}
		if result.AccessToken == "" {
			c.metrics.observeRefresh(resultFailure)

			return nil, errors.New("refresh response without access token")
		}

		if err := c.apply(refreshCtx, store, &result); err != nil {
			c.metrics.observeRefresh(resultFailure)

			return nil, err
		}

		c.remember(refreshToken, bearer, &result)
		c.metrics.observeRefresh(resultSuccess)

		return &result, nil
	})
	if err != nil {
		return errors.WithStack(err)
	}
	if leader {
		return nil
	}

	c.metrics.observeCoalesced()
	result, _ := value.(*entity.AuthResult)

	return c.adopt(ctx, store, refreshToken, result)
}

// adopt applies another caller's refresh result to store. A store that no
// longer holds the spent token was already updated.
func (c *Client) adopt(ctx context.Context, store service.TokenStore, spent string, result *entity.AuthResult) error {
	ctx = context.WithoutCancel(ctx)
	if store.RefreshToken(ctx) != spent {
		return nil
	}

	return c.apply(ctx, store, result)
}

// apply stores a refresh result, keeping profile fields the short payload lacks.
func (c *Client) apply(ctx context.Context, store service.TokenStore, result *entity.AuthResult) error {
	if result == nil {
		return errors.New("empty refresh result")
	}

	if err := store.SetTokens(ctx, &result.TokenBundle); err != nil {
		return errors.Wrap(err, "store refreshed tokens")
	}

	if result.User.ID == "" {
		return nil
	}

	user := result.User.ToUser(c.now())
	if cached := store.User(ctx); cached != nil && cached.ID == user.ID {
		user.IsActive = cached.IsActive
		user.LastLoginAt = cached.LastLoginAt
		user.CreatedAt = cached.CreatedAt
	}

	return errors.Wrap(store.SetUser(ctx, user), "store refreshed user")
}

func (c *Client) reusable(refreshToken, bearer string) (*entity.AuthResult, bool) {
	if bearer == "" {
		return nil, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.recent[refreshToken]
	if !ok || entry.bearer != bearer || c.now().Sub(entry.at) > c.reuseWindow {
		return nil, false
	}

	return entry.result, true
}

func (c *Client) remember(refreshToken, bearer string, result *entity.AuthResult) {
	if c.reuseWindow <= 0 || bearer == "" {
		return
	}

	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	for token, entry := range c.recent {
		if now.Sub(entry.at) > c.reuseWindow {
			delete(c.recent, token)
		}
	}
	c.recent[refreshToken] = recentRefresh{result: result, bearer: bearer, at: now}
}

func (c *Client) wipe(ctx context.Context, store service.TokenStore) {
	if store == nil {
		return
	}
	if err := store.ClearAll(context.WithoutCancel(ctx)); err != nil {
		c.log(ctx).Warn("Failed to clear session", slog.Any("error", err))
	}
}

// send performs one HTTP exchange and returns the status and body.
func (c *Client) send(ctx context.Context, req Request, bearer string) (int, []byte, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	target := c.baseURL + "/" + strings.TrimLeft(req.Path, "/")
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return 0, nil, errors.Wrap(err, "encode request body")
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return 0, nil, errors.Wrap(err, "build request")
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		httpReq.Header.Set("Authorization", "Bearer "+bearer)
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		httpReq.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.metrics.observeRequest(req.Method, 0, time.Since(start))

		return 0, nil, errors.Wrapf(err, "%s %s", req.Method, req.Path)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	c.metrics.observeRequest(req.Method, resp.StatusCode, time.Since(start))
	if err != nil {
		return 0, nil, errors.Wrapf(err, "read %s %s", req.Method, req.Path)
	}

	c.log(ctx).Debug("Remote API call",
		slog.String("method", req.Method),
		slog.String("path", req.Path),
		slog.Int("status", resp.StatusCode),
		slog.Bool("signed", bearer != ""),
	)

	return resp.StatusCode, data, nil
}

func (c *Client) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, c.logger)
}
