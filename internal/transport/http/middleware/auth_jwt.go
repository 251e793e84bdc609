package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go-account-service/internal/core/auth"
	resp "go-account-service/internal/transport/http/response"
)

// KeyEmail is the context key for the token subject set by AuthJWT.
const KeyEmail = "email"

// AuthJWT requires a valid bearer token. Verification is purely
// cryptographic: the account store is never consulted, so a token outlives
// later changes to the account it names.
func AuthJWT(j *auth.JWTer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusOK, resp.Error(resp.CodeUnauthorized, "missing token"))
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusOK, resp.Error(resp.CodeUnauthorized, "invalid token"))
			return
		}
		c.Set("claims", claims)
		c.Set(KeyEmail, claims.Email)
		c.Next()
	}
}
