package middleware

import (
	deliverycontext "autoparts/internal/delivery/context"
	"autoparts/internal/infra/tokenstore"

	"github.com/labstack/echo/v4"
)

// SessionMiddleware opens the browser session for every request. Cookie
// writes made while handling the request are flushed right before the
// response headers go out.
type SessionMiddleware struct {
	factory *tokenstore.Factory
}

// NewSessionMiddleware creates the session middleware
func NewSessionMiddleware(factory *tokenstore.Factory) *SessionMiddleware {
	return &SessionMiddleware{factory: factory}
}

// Attach stores a session in echo.Context for handlers and the route guard.
func (m *SessionMiddleware) Attach(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		jar := tokenstore.NewCookieJar(c.Request(), m.factory.Options())
		deliverycontext.SetSessionStore(c, m.factory.Open(jar))

		res := c.Response()
		res.Before(func() {
			jar.Flush(res.Writer)
		})

		return next(c)
	}
}
