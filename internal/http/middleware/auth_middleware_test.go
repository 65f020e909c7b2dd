package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Mental-Health-Matters/Psych/domain"
	"github.com/Mental-Health-Matters/Psych/internal/mocks"
)

const testCookieName = "accessToken"

func setupProtectedRouter(t *testing.T, tokenSvc domain.TokenService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mw := NewAuthMW(tokenSvc, testCookieName)
	r := gin.New()
	r.GET("/protected", mw.WithSession(), func(c *gin.Context) {
		id, ok := UserID(c)
		if !ok {
			t.Error("middleware passed without setting the user id")
		}
		c.JSON(http.StatusOK, gin.H{"user_id": id})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		cookie         *http.Cookie
		setupMocks     func(*mocks.MockTokenService)
		expectedStatus int
	}{
		{
			name:   "valid session cookie passes",
			cookie: &http.Cookie{Name: testCookieName, Value: "good-token"},
			setupMocks: func(tokenSvc *mocks.MockTokenService) {
				tokenSvc.ValidateFunc = func(token string) (*domain.TokenClaims, error) {
					if token != "good-token" {
						t.Errorf("unexpected token %s", token)
					}
					return &domain.TokenClaims{UserID: 1}, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing cookie is rejected",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "empty cookie value is rejected",
			cookie:         &http.Cookie{Name: testCookieName, Value: ""},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid token is rejected",
			cookie:         &http.Cookie{Name: testCookieName, Value: "expired-token"},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "token in the wrong cookie is ignored",
			cookie:         &http.Cookie{Name: "otherCookie", Value: "good-token"},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mocks.NewMockTokenService()
			if tt.setupMocks != nil {
				tt.setupMocks(tokenSvc)
			}
			r := setupProtectedRouter(t, tokenSvc)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Fatalf("expected %d, got %d: %s", tt.expectedStatus, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestUserID_WithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	if _, ok := UserID(c); ok {
		t.Error("expected no user id on a bare context")
	}
}
