package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/simp-lee/jwt"
)

const userIDContextKey = "user_id"

// Auth returns a gin middleware that validates the Bearer token on every
// request except the listed public paths, and stores the authenticated
// user id in the gin context. Handlers read it with GetUserID and pass it
// explicitly into service calls; nothing below the handler layer touches
// ambient request state.
func Auth(jwtSvc jwt.Service, publicPaths []string) gin.HandlerFunc {
	public := make(map[string]bool, len(publicPaths))
	for _, p := range publicPaths {
		public[p] = true
	}

	return func(c *gin.Context) {
		if public[c.Request.URL.Path] {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		tokenStr, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(tokenStr) == "" {
			abortUnauthorized(c, "missing bearer token")
			return
		}

		token, err := jwtSvc.ValidateAndParse(strings.TrimSpace(tokenStr))
		if err != nil || token == nil {
			abortUnauthorized(c, "invalid token")
			return
		}

		if id, err := strconv.ParseUint(token.UserID, 10, 64); err == nil {
			c.Set(userIDContextKey, uint(id))
		}

		c.Next()
	}
}

// GetUserID extracts the authenticated user id from the gin.Context.
// Returns 0 if the request was not authenticated.
func GetUserID(c *gin.Context) uint {
	if v, exists := c.Get(userIDContextKey); exists {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"code":    http.StatusUnauthorized,
		"message": msg,
		"data":    nil,
	})
}
