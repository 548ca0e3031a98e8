// middlewares/session_middleware.go
package middlewares

import (
	"net/http"

	"github.com/jozanardo/Daily-Diet-API/services"

	"github.com/gin-gonic/gin"
)

// SessionMiddleware guards every endpoint that reads or mutates a
// specific session's meals. It rejects cookie-less requests before any
// storage access and stashes the token so handlers can pass it down
// explicitly instead of re-reading the request.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(services.SessionCookieName)

		sessionID, err := services.RequireSession(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		c.Set("sessionID", sessionID)
		c.Next()
	}
}
