package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/simp-lee/jwt"

	"github.com/tyredepot/admin/internal/domain"
)

// AdminIDContextKey is the gin.Context key under which the authenticated
// admin's ID is stored.
const AdminIDContextKey = "admin_id"

// Auth returns a gin middleware that validates Bearer tokens on protected
// routes. The token must be valid, unexpired, and carry the admin role.
// On success the admin ID is stored in the context under "admin_id".
func Auth(jwtSvc jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			abortUnauthorized(c, "missing or malformed authorization header")
			return
		}

		parsed, err := jwtSvc.ValidateAndParse(token)
		if err != nil {
			abortUnauthorized(c, "invalid or expired token")
			return
		}

		if !hasRole(parsed.Roles, domain.RoleAdmin) {
			abortUnauthorized(c, "token is not fully authenticated")
			return
		}

		id, err := strconv.ParseUint(parsed.UserID, 10, 64)
		if err != nil || id == 0 {
			abortUnauthorized(c, "invalid token subject")
			return
		}

		c.Set(AdminIDContextKey, uint(id))
		c.Next()
	}
}

// AdminID returns the authenticated admin's ID from the context.
// It returns false when the Auth middleware did not run.
func AdminID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(AdminIDContextKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}

func hasRole(roles []string, want string) bool {
	for _, r := range roles {
		if r == want {
			return true
		}
	}
	return false
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": msg,
	})
}
