package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-account-service/internal/core/auth"
	"go-account-service/internal/core/server"
	"go-account-service/internal/transport/http/handler"
	mdw "go-account-service/internal/transport/http/middleware"
)

// NewAdminEngine builds the back-office engine. Every /admin/v1 route sits
// behind a verified bearer token.
func NewAdminEngine(l *zap.Logger, h *handler.AccountHandler, jwter *auth.JWTer) *gin.Engine {
	r := server.NewRouter(l)

	r.Use(
		mdw.RequestID(),
		mdw.RateLimitPerIP(50, 100),
		mdw.Metrics(),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })

	admin := r.Group("/admin/v1")
	admin.Use(mdw.AuthJWT(jwter))

	Register(h)
	MountAllAdmin(admin)

	return r
}
