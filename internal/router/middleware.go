package router

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mayank-0789/azclone-1/pkg/global"
)

// SessionMiddleware validates the sessionId path parameter the collection
// routes are scoped by and stashes it in the context.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := strings.TrimSpace(c.Param("sessionId"))
		if sessionID == "" {
			c.JSON(http.StatusBadRequest, global.ErrorResponse("session id required", []global.ValidationError{
				{Field: "sessionId", Message: "session id path parameter is required", Code: "required"},
			}))
			c.Abort()
			return
		}

		c.Set("sessionId", sessionID)
		c.Next()
	}
}
