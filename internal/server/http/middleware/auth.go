package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	pkgAuth "github.com/bookline/bookline/internal/pkg/auth"
)

const (
	// UserEmailContextKey is a gin context key for the authenticated identity claim.
	UserEmailContextKey = "userEmail"
	authCookieName      = "bookline_token"
)

// TokenParser validates a bearer token and returns its identity claim.
type TokenParser interface {
	ParseToken(token string) (string, error)
}

// AuthRequired ensures user is authenticated before accessing handler.
func AuthRequired(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		email, err := parser.ParseToken(token)
		if err != nil {
			if errors.Is(err, pkgAuth.ErrTokenMalformed) ||
				errors.Is(err, pkgAuth.ErrTokenInvalid) ||
				errors.Is(err, pkgAuth.ErrTokenExpired) {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Set(UserEmailContextKey, email)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetAuthCookie writes auth token cookie to response.
func SetAuthCookie(c *gin.Context, token string) {
	c.SetCookie(authCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}
