package middleware

import (
	"net/http"
	"strings"

	"knightspantry/repositories"
	"knightspantry/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware guards a route with a bearer token. A missing or
// malformed header is 401; a token that fails verification is 403. Decoded
// claims land on the context for the handlers behind it.
func AuthMiddleware(auth services.IAuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		claims, err := auth.VerifyToken(tokenString)
		if err == services.ErrTokenBlacklisted {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has been blacklisted"})
			return
		}
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid token"})
			return
		}

		c.Set("claims", claims)
		c.Next()
	}
}

// AdminMiddleware re-reads the user behind the token and lets only admins
// through. The admin flag is taken from the users collection, not from the
// claims, so a revoked admin loses access on the next request.
func AdminMiddleware(users repositories.IUserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, exists := c.Get("claims")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		user, err := users.FindByID(claims.(*services.TokenClaims).UserID)
		if err == repositories.ErrUserNotFound {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}
		if !user.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}
