package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"go-account-service/internal/core/auth"
	"go-account-service/internal/transport/http/handler"
	mdw "go-account-service/internal/transport/http/middleware"
)

// NewAPIEngine builds the public engine: the account CRUD surface, login,
// and the token-gated /me.
func NewAPIEngine(l *zap.Logger, h *handler.AccountHandler, jwter *auth.JWTer) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		mdw.SimpleRecovery(),
		mdw.Metrics(),
		mdw.AccessLog(l),
		cors.Default(),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")

	Register(h)
	MountAllAPI(api)

	// token subject is only available behind the middleware
	authed := api.Group("")
	authed.Use(mdw.AuthJWT(jwter))
	h.MountAuthed(authed)

	return r
}
