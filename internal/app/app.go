package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mental-Health-Matters/Psych/internal/config"
	httpx "github.com/Mental-Health-Matters/Psych/internal/http"
	"github.com/Mental-Health-Matters/Psych/internal/http/handlers"
	"github.com/Mental-Health-Matters/Psych/internal/http/middleware"
)

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	c, err := NewContainer(cfg)
	if err != nil {
		return err
	}
	defer c.Close()

	if err := c.RedisClient.Ping(context.Background()).Err(); err != nil {
		return err
	}

	// Initialize handlers
	cookie := handlers.NewSessionCookie(cfg.TokenTTL, cfg.IsProduction())
	authH := handlers.NewAuthHandlers(c.AuthSvc, cookie)
	userH := handlers.NewUserHandlers(c.ProfileSvc)
	apptH := handlers.NewAppointmentHandlers(c.AppointmentSvc)

	// Initialize middleware
	jwtMW := middleware.NewAuthMW(c.TokenSvc, handlers.SessionCookieName)

	// Build router
	r := httpx.BuildRouter(authH, userH, apptH, jwtMW, cfg.CORSOrigins)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
