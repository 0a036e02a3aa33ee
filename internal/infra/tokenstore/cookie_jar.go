package tokenstore

import (
	"net/http"
	"sync"
	"time"
)

// CookieJar buffers cookie writes for one request. Reads see earlier writes
// of the same request; Flush turns the buffer into Set-Cookie headers.
// A nil jar reads as empty and ignores writes.
type CookieJar struct {
	mu      sync.Mutex
	req     *http.Request
	opts    Options
	pending map[string]*http.Cookie
	order   []string
	flushed bool
}

// NewCookieJar wraps the cookies of an inbound request.
func NewCookieJar(req *http.Request, opts Options) *CookieJar {
	return &CookieJar{
		req:     req,
		opts:    opts,
		pending: make(map[string]*http.Cookie),
	}
}

// Get returns the raw cookie value.
func (j *CookieJar) Get(name string) (string, bool) {
	if j == nil {
		return "", false
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	if c, ok := j.pending[name]; ok {
		if c.MaxAge < 0 {
			return "", false
		}

		return c.Value, true
	}

	if j.req == nil {
		return "", false
	}
	c, err := j.req.Cookie(name)
	if err != nil || c.Value == "" {
		return "", false
	}

	return c.Value, true
}

// Set schedules a cookie. A non-positive ttl makes a session cookie.
func (j *CookieJar) Set(name, value string, ttl time.Duration, httpOnly bool) {
	if j == nil {
		return
	}

	c := j.newCookie(name, value, httpOnly)
	if ttl > 0 {
		c.MaxAge = int(ttl / time.Second)
		c.Expires = time.Now().Add(ttl)
	}
	j.put(c)
}

// Delete schedules removal of a cookie.
func (j *CookieJar) Delete(name string) {
	if j == nil {
		return
	}

	c := j.newCookie(name, "", true)
	c.MaxAge = -1
	c.Expires = time.Unix(0, 0)
	j.put(c)
}

// Flush writes every scheduled cookie once. Later calls are no-ops.
func (j *CookieJar) Flush(w http.ResponseWriter) {
	if j == nil {
		return
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	if j.flushed {
		return
	}
	j.flushed = true

	for _, name := range j.order {
		http.SetCookie(w, j.pending[name])
	}
}

// Pending returns the cookies scheduled so far, in write order.
func (j *CookieJar) Pending() []*http.Cookie {
	if j == nil {
		return nil
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	out := make([]*http.Cookie, 0, len(j.order))
	for _, name := range j.order {
		out = append(out, j.pending[name])
	}

	return out
}

func (j *CookieJar) newCookie(name, value string, httpOnly bool) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   j.opts.Domain,
		Secure:   j.opts.Secure,
		HttpOnly: httpOnly,
		SameSite: http.SameSiteLaxMode,
	}
}

func (j *CookieJar) put(c *http.Cookie) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if _, ok := j.pending[c.Name]; !ok {
		j.order = append(j.order, c.Name)
	}
	j.pending[c.Name] = c
}
