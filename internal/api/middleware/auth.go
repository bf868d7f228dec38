package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tibtennis/roster-api/internal/core/domain"
	"github.com/tibtennis/roster-api/internal/core/ports"
)

// identityKey is the context key under which the verified claims are stored.
const identityKey = "identity"

// Auth verifies the bearer token and injects the decoded identity into the
// request context. Any failure short-circuits with 401.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			// The header must be literally "Bearer <token>".
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				if errors.Is(err, domain.ErrTokenExpired) {
					return echo.NewHTTPError(http.StatusUnauthorized, "token expired")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(identityKey, claims)
			return next(c)
		}
	}
}

// Identity extracts the claims injected by Auth. The second return is false
// when the middleware did not run on this route.
func Identity(c echo.Context) (*ports.TokenClaims, bool) {
	claims, ok := c.Get(identityKey).(*ports.TokenClaims)
	return claims, ok
}
