package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireUploadToken gates mutating routes behind the shared upload
// secret. Clients send it in X-Upload-Token or as a `token` form
// field, which is what the built-in upload page posts.
func RequireUploadToken(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("X-Upload-Token")
		if token == "" {
			token = c.PostForm("token")
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing upload token"})
			c.Abort()
			return
		}

		if subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid upload token"})
			c.Abort()
			return
		}

		c.Next()
	}
}
