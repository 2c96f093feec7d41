package httpapi

import (
	"net/http"
	"strings"

	"github.com/dmitrijs2005/travelkeeper/internal/common"
	"github.com/dmitrijs2005/travelkeeper/internal/server/auth"
	"github.com/gin-gonic/gin"
)

const userIDKey = "user_id"

// authMiddleware extracts the bearer token from the Authorization header,
// validates it and stores the user id in the request context. Requests
// without a valid token are rejected with 401.
func (s *Server) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(common.AccessTokenHeaderName)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		userID, err := auth.GetUserIDFromToken(token, s.secretKey)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

func currentUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
