package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/corvo-marketing/agency-console/internal/api/metrics"
	"github.com/corvo-marketing/agency-console/internal/core/ports"
)

// TeamHandler handles team roster administration.
type TeamHandler struct {
	service ports.TeamService
}

func NewTeamHandler(service ports.TeamService) *TeamHandler {
	return &TeamHandler{service: service}
}

func toTeamInput(req teamRequest) ports.TeamInput {
	return ports.TeamInput{
		Name:        req.Name,
		Description: req.Description,
		PhotoURL:    req.PhotoURL,
		MemberIDs:   req.MemberIDs,
	}
}

// List handles GET /v1/teams.
//
// @Summary      List teams
// @Tags         teams
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Team
// @Router       /v1/teams [get]
func (h *TeamHandler) List(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	teams, err := h.service.List(c.Request().Context(), caller)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, teams)
}

// Get handles GET /v1/teams/:id.
//
// @Summary      Get a team
// @Tags         teams
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Team id"
// @Success      200  {object}  domain.Team
// @Failure      404  {object}  errorResponse
// @Router       /v1/teams/{id} [get]
func (h *TeamHandler) Get(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	team, err := h.service.Get(c.Request().Context(), caller, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, team)
}

// Create handles POST /v1/teams (admin only).
//
// @Summary      Create a team
// @Tags         teams
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      teamRequest  true  "Team fields"
// @Success      201   {object}  domain.Team
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/teams [post]
func (h *TeamHandler) Create(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req teamRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	team, err := h.service.Create(c.Request().Context(), caller, toTeamInput(req))
	if err != nil {
		return err
	}

	metrics.DirectoryMutationsTotal.WithLabelValues("team", "create").Inc()
	return c.JSON(http.StatusCreated, team)
}

// Update handles PUT /v1/teams/:id (admin only).
//
// @Summary      Update a team
// @Tags         teams
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Team id"
// @Param        body  body      teamRequest  true  "Team fields"
// @Success      200   {object}  domain.Team
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/teams/{id} [put]
func (h *TeamHandler) Update(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req teamRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	team, err := h.service.Update(c.Request().Context(), caller, c.Param("id"), toTeamInput(req))
	if err != nil {
		return err
	}

	metrics.DirectoryMutationsTotal.WithLabelValues("team", "update").Inc()
	return c.JSON(http.StatusOK, team)
}

// Delete handles DELETE /v1/teams/:id (admin only). Members and clients
// keep any dangling team id.
//
// @Summary      Delete a team
// @Tags         teams
// @Security     BearerAuth
// @Param        id  path  string  true  "Team id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/teams/{id} [delete]
func (h *TeamHandler) Delete(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), caller, c.Param("id")); err != nil {
		return err
	}

	metrics.DirectoryMutationsTotal.WithLabelValues("team", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
