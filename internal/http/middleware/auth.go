package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/Mental-Health-Matters/Psych/domain"
)

// AuthMW wraps the token service and cookie name for middleware
type AuthMW struct {
	tokenSvc   domain.TokenService
	cookieName string
}

// NewAuthMW creates new auth middleware wrapper
func NewAuthMW(tokenSvc domain.TokenService, cookieName string) *AuthMW {
	return &AuthMW{
		tokenSvc:   tokenSvc,
		cookieName: cookieName,
	}
}

// WithSession returns the cookie-session middleware function
func (mw *AuthMW) WithSession() gin.HandlerFunc {
	return AuthMiddleware(mw.tokenSvc, mw.cookieName)
}
