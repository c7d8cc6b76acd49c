package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/wicaksana/atelier/internal/domain"
)

// AdminAuth gates the admin routes behind a static bearer token. An empty
// configured token disables the admin surface entirely rather than leaving
// it open.
func AdminAuth(token string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if token == "" {
				return domain.Unauthorized("admin.auth", "admin access is not configured")
			}

			header := c.Request().Header.Get(echo.HeaderAuthorization)
			presented, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				return domain.Unauthorized("admin.auth", "missing bearer token")
			}

			if subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
				return domain.Unauthorized("admin.auth", "invalid token")
			}

			return next(c)
		}
	}
}
