package middleware

import (
	"net/http"
	"strings"

	"placehub/models"
	"placehub/utils"

	"github.com/gin-gonic/gin"
)

const (
	// ContextUserID is the gin context key holding the authenticated user id.
	ContextUserID = "userID"
	// ContextUserRole is the gin context key holding the authenticated role.
	ContextUserRole = "userRole"
)

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Insufficient authorization"})
}

// JWTAuthUserMiddleware requires a valid bearer token and stores the caller's
// id and role on the request context.
func JWTAuthUserMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			abortUnauthorized(c)
			return
		}

		userID, role, err := utils.ExtractClaimsFromToken(token)
		if err != nil || userID == "" {
			abortUnauthorized(c)
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextUserRole, role)
		c.Next()
	}
}

// JWTAuthAdminMiddleware requires a valid bearer token carrying the admin role.
func JWTAuthAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			abortUnauthorized(c)
			return
		}

		userID, role, err := utils.ExtractClaimsFromToken(token)
		if err != nil || userID == "" {
			abortUnauthorized(c)
			return
		}
		if role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Admin access required"})
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextUserRole, role)
		c.Next()
	}
}

// JWTAuthMentorMiddleware requires a valid bearer token carrying the mentor
// or admin role.
func JWTAuthMentorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			abortUnauthorized(c)
			return
		}

		userID, role, err := utils.ExtractClaimsFromToken(token)
		if err != nil || userID == "" {
			abortUnauthorized(c)
			return
		}
		if role != models.RoleMentor && role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Mentor access required"})
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextUserRole, role)
		c.Next()
	}
}
