package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tibtennis/roster-api/internal/api/middleware"
	"github.com/tibtennis/roster-api/internal/core/ports"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// fast-fails before any service call: a missing identity or empty role means
// the middleware did not run or the token carried no usable claims.
func ctxIdentity(c echo.Context) (ports.TokenClaims, error) {
	claims, ok := middleware.Identity(c)
	if !ok || claims.Role == "" {
		return ports.TokenClaims{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return *claims, nil
}
