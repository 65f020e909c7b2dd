package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// SessionCookieName is the cookie the session token travels in
const SessionCookieName = "accessToken"

// SessionCookie serializes session tokens into the response cookie. The
// attributes follow the deployment environment: SameSite=None plus Secure
// in production (the frontend is cross-origin there), Lax otherwise so
// local development works without TLS.
type SessionCookie struct {
	MaxAge     time.Duration
	Production bool
}

// NewSessionCookie creates the cookie helper
func NewSessionCookie(maxAge time.Duration, production bool) *SessionCookie {
	return &SessionCookie{MaxAge: maxAge, Production: production}
}

// Attach sets the session cookie on the response
func (sc *SessionCookie) Attach(c *gin.Context, token string) {
	c.SetSameSite(sc.sameSite())
	c.SetCookie(SessionCookieName, token, int(sc.MaxAge.Seconds()), "/", "", sc.Production, true)
}

// Clear instructs the client to drop the session cookie. The token itself
// is stateless, so this is the whole of logout: a still-valid token
// presented again cannot be invalidated server side.
func (sc *SessionCookie) Clear(c *gin.Context) {
	c.SetSameSite(sc.sameSite())
	c.SetCookie(SessionCookieName, "", -1, "/", "", sc.Production, true)
}

func (sc *SessionCookie) sameSite() http.SameSite {
	if sc.Production {
		return http.SameSiteNoneMode
	}
	return http.SameSiteLaxMode
}
