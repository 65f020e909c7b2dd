package httpx

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Mental-Health-Matters/Psych/internal/http/handlers"
	"github.com/Mental-Health-Matters/Psych/internal/http/middleware"
)

// BuildRouter wires all endpoints. Session-bound routes go through the
// cookie-session middleware; everything else is public.
func BuildRouter(ah *handlers.AuthHandlers, uh *handlers.UserHandlers, aph *handlers.AppointmentHandlers, jwtmw *middleware.AuthMW, corsOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// Credentialed CORS so the browser sends the session cookie cross-origin.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := r.Group("/api/auth")
	auth.POST("/register", ah.Register)
	auth.POST("/login", ah.Login)
	auth.POST("/logout", ah.Logout)
	auth.POST("/verify", ah.Verify)
	auth.POST("/otp/resend", ah.ResendOTP)
	auth.POST("/googlelogin", ah.GoogleLogin)
	auth.GET("/me", jwtmw.WithSession(), ah.Me)

	users := r.Group("/api/users").Use(jwtmw.WithSession())
	users.GET("/:id", uh.GetDetails)
	users.PATCH("/:id", uh.UpdateProfile)
	users.DELETE("/:id", uh.Delete)

	appointments := r.Group("/api/appointments").Use(jwtmw.WithSession())
	appointments.POST("/confirmation", aph.Confirm)

	return r
}
