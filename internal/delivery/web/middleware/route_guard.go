package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"autoparts/config"
	deliverycontext "autoparts/internal/delivery/context"
	"autoparts/internal/domain/entity"
	"autoparts/internal/domain/service"
	"autoparts/internal/usecase"

	"github.com/labstack/echo/v4"
)

// RouteGuard redirects page navigations according to the auth projection
// and provisions guest sessions for browsers without any identity.
type RouteGuard struct {
	routes     config.RoutesConfig
	guard      config.GuardConfig
	adminRoles entity.Roles
	sessions   usecase.SessionUsecase
	logger     *slog.Logger
}

// NewRouteGuard creates the route guard middleware
func NewRouteGuard(cfg *config.Config, sessions usecase.SessionUsecase, logger *slog.Logger) *RouteGuard {
	return &RouteGuard{
		routes:     cfg.Routes,
		guard:      cfg.Guard,
		adminRoles: entity.Roles{entity.RoleAdmin, entity.RoleManager},
		sessions:   sessions,
		logger:     logger,
	}
}

// Decision is the outcome of evaluating one navigation.
type Decision struct {
	Redirect  string // empty means continue
	Provision bool
}

// Decide applies the routing table to a path and projection. It is pure so
// the table can be tested without HTTP.
func (g *RouteGuard) Decide(path string, projection entity.AuthProjection, hasIdentity bool) Decision {
	authenticated := projection.IsAuthenticated()

	switch {
	case matchAny(path, g.routes.Skip):
		return Decision{}
	case matchAny(path, g.routes.Protected):
		if !authenticated {
			return Decision{Redirect: g.loginRedirect(path)}
		}
		if matchPrefix(path, g.routes.AdminPath) && !g.adminRoles.Contains(projection.Role()) {
			return Decision{Redirect: g.routes.HomePath}
		}

		return Decision{}
	case matchAny(path, g.routes.AuthOnly):
		if authenticated {
			return Decision{Redirect: g.landing(projection.Role())}
		}
	}

	return Decision{Provision: !authenticated && !hasIdentity && g.guard.ProvisionAnonymous}
}

// Guard is the echo middleware. It must run after the session middleware.
func (g *RouteGuard) Guard(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		if req.Method != http.MethodGet && req.Method != http.MethodHead {
			return next(c)
		}

		store := deliverycontext.GetSessionStore(c)
		if store == nil {
			return next(c)
		}

		ctx := req.Context()
		decision := g.Decide(req.URL.Path, store.Projection(ctx), service.HasIdentity(ctx, store))

		if decision.Redirect != "" {
			return c.Redirect(http.StatusFound, decision.Redirect)
		}
		if decision.Provision {
			g.provision(ctx, store, DeviceInfo(req))
		}

		return next(c)
	}
}

// provision asks for a guest session within the configured timeout. Failure
// only leaves the browser without a token.
func (g *RouteGuard) provision(ctx context.Context, store service.TokenStore, device *entity.DeviceInfo) {
	timeout := g.guard.AnonymousTimeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}

	provisionCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if _, err := g.sessions.EnsureAnonymous(provisionCtx, store, device); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, g.logger).
			Warn("anonymous session provisioning failed", slog.Any("error", err))
	}
}

func (g *RouteGuard) loginRedirect(path string) string {
	return g.routes.LoginPath + "?from=" + url.QueryEscape(path)
}

func (g *RouteGuard) landing(role entity.Role) string {
	if g.adminRoles.Contains(role) {
		return g.routes.AdminPath
	}

	return g.routes.HomePath
}

// DeviceInfo describes the requesting browser for the remote API.
func DeviceInfo(req *http.Request) *entity.DeviceInfo {
	return &entity.DeviceInfo{
		Platform: "web",
		Browser:  browserName(req.UserAgent()),
	}
}

func browserName(userAgent string) string {
	ua := strings.ToLower(userAgent)

	switch {
	case ua == "":
		return ""
	case strings.Contains(ua, "edg/"):
		return "Edge"
	case strings.Contains(ua, "yabrowser"):
		return "Yandex"
	case strings.Contains(ua, "firefox"):
		return "Firefox"
	case strings.Contains(ua, "chrome"):
		return "Chrome"
	case strings.Contains(ua, "safari"):
		return "Safari"
	default:
		return "Other"
	}
}

func matchAny(path string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if matchPrefix(path, prefix) {
			return true
		}
	}

	return false
}

// matchPrefix matches on segment boundaries: /admin matches /admin and
// /admin/users but not /administrator.
func matchPrefix(path, prefix string) bool {
	if prefix == "" {
		return false
	}
	prefix = strings.TrimSuffix(prefix, "/")
	if prefix == "" {
		return true
	}

	return path == prefix || strings.HasPrefix(path, prefix+"/")
}
