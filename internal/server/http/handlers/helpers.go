package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/bookline/bookline/internal/server/http/middleware"
)

// CurrentUserEmail extracts the authenticated identity claim from context.
func CurrentUserEmail(c *gin.Context) string {
	val, ok := c.Get(middleware.UserEmailContextKey)
	if !ok {
		return ""
	}
	email, _ := val.(string)
	return email
}
