package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tibtennis/roster-api/internal/api/metrics"
	"github.com/tibtennis/roster-api/internal/core/ports"
)

// PlayerHandler handles the roster CRUD and reorder endpoints. Service errors
// propagate to the central HTTP error handler for status mapping.
type PlayerHandler struct {
	roster ports.RosterService
}

func NewPlayerHandler(roster ports.RosterService) *PlayerHandler {
	return &PlayerHandler{roster: roster}
}

// List returns the team's players ordered by position, then name.
//
// @Summary      List players
// @Tags         players
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   playerResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/players [get]
func (h *PlayerHandler) List(c echo.Context) error {
	caller, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	players, err := h.roster.List(c.Request().Context(), caller)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPlayersResponse(players))
}

// Create adds a new player record.
//
// @Summary      Create a player
// @Tags         players
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPlayerRequest  true  "Player details"
// @Success      201   {object}  playerResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/players [post]
func (h *PlayerHandler) Create(c echo.Context) error {
	caller, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createPlayerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	player, err := h.roster.Create(c.Request().Context(), caller, ports.CreatePlayerInput{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		TeamID: req.TeamID,
	})
	if err != nil {
		return err
	}

	metrics.MutationsTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, toPlayerResponse(player))
}

// Update changes a player's profile fields.
//
// @Summary      Update a player
// @Tags         players
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Player id"
// @Param        body  body      updatePlayerRequest  true  "Updated fields"
// @Success      200   {object}  playerResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/players/{id} [put]
func (h *PlayerHandler) Update(c echo.Context) error {
	caller, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updatePlayerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	player, err := h.roster.Update(c.Request().Context(), caller, c.Param("id"), ports.UpdatePlayerInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		return err
	}

	metrics.MutationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, toPlayerResponse(player))
}

// Delete removes a player record.
//
// @Summary      Delete a player
// @Tags         players
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Player id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/players/{id} [delete]
func (h *PlayerHandler) Delete(c echo.Context) error {
	caller, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.roster.Delete(c.Request().Context(), caller, c.Param("id")); err != nil {
		return err
	}

	metrics.MutationsTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "player deleted"})
}

// Reorder applies caller-supplied positions in one bulk operation.
//
// @Summary      Reorder players
// @Tags         players
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      reorderRequest  true  "Position assignments"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/players/reorder [post]
func (h *PlayerHandler) Reorder(c echo.Context) error {
	caller, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req reorderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.roster.Reorder(c.Request().Context(), caller, toReorderItems(req.Players)); err != nil {
		return err
	}

	metrics.MutationsTotal.WithLabelValues("reorder").Inc()
	metrics.ReorderBatchSize.Observe(float64(len(req.Players)))
	return c.JSON(http.StatusOK, messageResponse{Message: "order updated"})
}
