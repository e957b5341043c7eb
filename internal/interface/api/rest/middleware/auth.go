package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"media-share-api/internal/application/ports"
	"media-share-api/internal/application/services"
	"media-share-api/internal/domain/user"
)

const (
	CtxUser  = "authUser"
	CtxToken = "authToken"
)

// SessionMiddleware resolves the bearer token to a user through the
// session store and hands the principal to the handler explicitly via
// the request context keys above.
func SessionMiddleware(authService ports.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "missing Authorization header"},
			)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == authHeader {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "invalid token format"},
			)
			return
		}

		u, err := authService.Authenticate(c.Request.Context(), tokenStr)
		if err != nil {
			if errors.Is(err, services.ErrUnauthorized) {
				c.AbortWithStatusJSON(
					http.StatusUnauthorized,
					gin.H{"error": "invalid token"},
				)
				return
			}
			c.AbortWithStatusJSON(
				http.StatusInternalServerError,
				gin.H{"error": "failed to authenticate"},
			)
			return
		}

		c.Set(CtxUser, u)
		c.Set(CtxToken, tokenStr)

		c.Next()
	}
}

// Principal returns the authenticated user placed by SessionMiddleware.
func Principal(c *gin.Context) *user.User {
	u, _ := c.MustGet(CtxUser).(*user.User)
	return u
}
