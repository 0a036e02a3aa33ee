package tokenstore

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// nextRequest carries the cookies a browser would keep after jar's response.
func nextRequest(prev *http.Request, jar *CookieJar) *http.Request {
	kept := map[string]string{}
	if prev != nil {
		for _, c := range prev.Cookies() {
			kept[c.Name] = c.Value
		}
	}
	for _, c := range jar.Pending() {
		if c.MaxAge < 0 {
			delete(kept, c.Name)

			continue
		}
		kept[c.Name] = c.Value
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for name, value := range kept {
		req.AddCookie(&http.Cookie{Name: name, Value: value})
	}

	return req
}
