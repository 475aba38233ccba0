package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	userDomain "bank-loan-management/internal/domain/user"
	"bank-loan-management/internal/usecase/auth"
)

const identityKey = "identity"

// JWTAuth enforces a Bearer token and stores the caller's Identity on
// the echo context for the handlers and role gates downstream.
func JWTAuth(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing authorization"})
			}
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid authorization header"})
			}
			ident, err := auth.ParseIdentity(secret, parts[1])
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token"})
			}
			c.Set(identityKey, ident)
			return next(c)
		}
	}
}

// RequireRoles is the per-route authorization policy: the routing
// table in cmd/api declares which roles may hit each method+path.
func RequireRoles(roles ...userDomain.Role) echo.MiddlewareFunc {
	allowed := make(map[userDomain.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ident, ok := IdentityFrom(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing authorization"})
			}
			if !allowed[ident.Role] {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "You are not authorized to perform this action."})
			}
			return next(c)
		}
	}
}

func IdentityFrom(c echo.Context) (userDomain.Identity, bool) {
	ident, ok := c.Get(identityKey).(userDomain.Identity)
	return ident, ok
}

// SetIdentity exists for handler tests that bypass JWTAuth.
func SetIdentity(c echo.Context, ident userDomain.Identity) {
	c.Set(identityKey, ident)
}
