package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/space/planet-moon-api/internal/api/metrics"
	"github.com/space/planet-moon-api/internal/core/ports"
)

// PlanetHandler handles HTTP requests for planet operations.
type PlanetHandler struct {
	service ports.PlanetService
}

func NewPlanetHandler(service ports.PlanetService) *PlanetHandler {
	return &PlanetHandler{service: service}
}

// Create handles POST /api/planets.
//
// @Summary      Create a new planet
// @Tags         planets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      planetRequest  true  "Planet details"
// @Success      201   {object}  planetResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/planets [post]
func (h *PlanetHandler) Create(c echo.Context) error {
	var req planetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	planet, err := h.service.Create(c.Request().Context(), toPlanetInput(req))
	if err != nil {
		return err
	}

	metrics.PlanetsCreatedTotal.WithLabelValues(planet.Type).Inc()
	return c.JSON(http.StatusCreated, toPlanetResponse(planet))
}

// List handles GET /api/planets.
//
// @Summary      List all planets
// @Tags         planets
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   planetResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/planets [get]
func (h *PlanetHandler) List(c echo.Context) error {
	planets, err := h.service.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPlanetListResponse(planets))
}

// Get handles GET /api/planets/:id.
//
// @Summary      Get a planet by id
// @Tags         planets
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Planet id"
// @Success      200  {object}  planetResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/planets/{id} [get]
func (h *PlanetHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	planet, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPlanetResponse(planet))
}

// Update handles PUT /api/planets/:id.
//
// @Summary      Update a planet
// @Tags         planets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int            true  "Planet id"
// @Param        body  body      planetRequest  true  "New planet details"
// @Success      200   {object}  planetResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/planets/{id} [put]
func (h *PlanetHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req planetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	planet, err := h.service.Update(c.Request().Context(), id, toPlanetInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPlanetResponse(planet))
}

// Delete handles DELETE /api/planets/:id. Deleting a planet also removes its
// moons.
//
// @Summary      Delete a planet and its moons
// @Tags         planets
// @Security     BearerAuth
// @Param        id  path  int  true  "Planet id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/planets/{id} [delete]
func (h *PlanetHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.PlanetsDeletedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}

// ListByType handles GET /api/planets/type/:type.
//
// @Summary      List planets by type
// @Tags         planets
// @Produce      json
// @Security     BearerAuth
// @Param        type  path      string  true  "Planet type (e.g. terrestrial)"
// @Success      200   {array}   planetResponse
// @Router       /api/planets/type/{type} [get]
func (h *PlanetHandler) ListByType(c echo.Context) error {
	planets, err := h.service.GetByType(c.Request().Context(), c.Param("type"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPlanetListResponse(planets))
}

// ListSummaries handles GET /api/planets/summaries.
//
// @Summary      List planet summaries
// @Tags         planets
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  planetSummaryResponse
// @Router       /api/planets/summaries [get]
func (h *PlanetHandler) ListSummaries(c echo.Context) error {
	summaries, err := h.service.GetAllSummaries(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPlanetSummaryListResponse(summaries))
}

// GetSummary handles GET /api/planets/:id/summary.
//
// @Summary      Get a planet summary by id
// @Tags         planets
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Planet id"
// @Success      200  {object}  planetSummaryResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/planets/{id}/summary [get]
func (h *PlanetHandler) GetSummary(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	summary, err := h.service.GetSummaryByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPlanetSummaryResponse(summary))
}
