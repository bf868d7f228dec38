package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tibtennis/roster-api/internal/api/metrics"
	"github.com/tibtennis/roster-api/internal/core/domain"
	"github.com/tibtennis/roster-api/internal/core/ports"
)

// AuthHandler handles the login and token verification endpoints.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type playerLoginRequest struct {
	Name   string `json:"name"    validate:"required"`
	TeamID string `json:"team_id" validate:"required"`
}

type adminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type userSummary struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

type loginResponse struct {
	Token string      `json:"token"`
	User  userSummary `json:"user"`
}

type verifyResponse struct {
	Valid bool               `json:"valid"`
	User  *ports.TokenClaims `json:"user"`
}

// PlayerLogin authenticates (or lazily registers) a player.
//
// @Summary      Player login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      playerLoginRequest  true  "Player name and team"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) PlayerLogin(c echo.Context) error {
	var req playerLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.PlayerLogin(c.Request().Context(), req.Name, req.TeamID)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("player", "rejected").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("player", "success").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		Token: result.Token,
		User:  userSummary{Name: result.User.Name, Role: result.User.Role},
	})
}

// AdminLogin authenticates an admin against the configured credentials.
//
// @Summary      Admin login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      adminLoginRequest  true  "Admin credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /api/auth/admin/login [post]
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	var req adminLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.AdminLogin(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrTooManyLoginAttempts) {
			metrics.LoginsTotal.WithLabelValues("admin", "throttled").Inc()
		} else {
			metrics.LoginsTotal.WithLabelValues("admin", "rejected").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("admin", "success").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		Token: result.Token,
		User:  userSummary{Name: result.User.Name, Role: result.User.Role},
	})
}

// Verify reports whether the presented token is valid. The route sits behind
// the Auth middleware, so reaching the handler means verification passed.
//
// @Summary      Verify a token
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  verifyResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/auth/verify [get]
func (h *AuthHandler) Verify(c echo.Context) error {
	claims, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, verifyResponse{Valid: true, User: &claims})
}
