package http

import (
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
)

// CookieSettings describes the session cookie.
type CookieSettings struct {
	Name string

	// Secret is the HMAC key signing the cookie value.
	Secret []byte

	Secure bool

	// MaxAge is the cookie lifetime. Zero makes it a browser-session cookie
	// whose signature never expires.
	MaxAge time.Duration
}

// sessionCookies carries the session id in a signed cookie. A cookie whose
// signature does not check out is treated as absent.
type sessionCookies struct {
	codec  *securecookie.SecureCookie
	name   string
	secure bool
	maxAge time.Duration
}

func newSessionCookies(s CookieSettings) *sessionCookies {
	codec := securecookie.New(s.Secret, nil)
	codec.MaxAge(int(s.MaxAge / time.Second))

	return &sessionCookies{
		codec:  codec,
		name:   s.Name,
		secure: s.Secure,
		maxAge: s.MaxAge,
	}
}

func (c *sessionCookies) encode(sessionID string) (string, error) {
	return c.codec.Encode(c.name, sessionID)
}

// read returns the session id carried by the request.
func (c *sessionCookies) read(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(c.name)
	if err != nil {
		return "", false
	}

	var sessionID string
	if err := c.codec.Decode(c.name, cookie.Value, &sessionID); err != nil || sessionID == "" {
		return "", false
	}

	return sessionID, true
}

func (c *sessionCookies) write(w http.ResponseWriter, sessionID string) error {
	value, err := c.encode(sessionID)
	if err != nil {
		return err
	}

	cookie := c.base()
	cookie.Value = value
	if c.maxAge > 0 {
		cookie.MaxAge = int(c.maxAge / time.Second)
		cookie.Expires = time.Now().Add(c.maxAge)
	}

	http.SetCookie(w, cookie)
	return nil
}

// expire tells the client to drop the cookie.
func (c *sessionCookies) expire(w http.ResponseWriter) {
	cookie := c.base()
	cookie.MaxAge = -1
	cookie.Expires = time.Unix(0, 0)

	http.SetCookie(w, cookie)
}

func (c *sessionCookies) base() *http.Cookie {
	return &http.Cookie{
		Name:     c.name,
		Path:     "/",
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
