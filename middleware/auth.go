package middleware

import (
	"net/http"
	"strings"

	"parenthub/services/user"
	"parenthub/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthUserMiddleware authenticates requests with a Bearer token. The token
// must validate and its hash must match the user's live session, so a
// sign-out revokes every outstanding token immediately. The user ID lands in
// the gin context as "userID".
func JWTAuthUserMiddleware(sessions user.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		session, err := sessions.Get(userID)
		if err != nil || session == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired, please sign in again"})
			return
		}
		if session.TokenHash != utils.HashToken(tokenString) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token revoked"})
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}

// UserID reads the authenticated user's ID set by JWTAuthUserMiddleware.
func UserID(c *gin.Context) string {
	return c.GetString("userID")
}
