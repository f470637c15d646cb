package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/space/planet-moon-api/internal/api/metrics"
	"github.com/space/planet-moon-api/internal/core/ports"
)

// MoonHandler handles HTTP requests for moon operations, including the
// per-planet moon listings mounted under /api/planets/:id.
type MoonHandler struct {
	service ports.MoonService
}

func NewMoonHandler(service ports.MoonService) *MoonHandler {
	return &MoonHandler{service: service}
}

// Create handles POST /api/moons.
//
// @Summary      Create a new moon
// @Tags         moons
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      moonRequest  true  "Moon details; planetId must reference an existing planet"
// @Success      201   {object}  moonResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/moons [post]
func (h *MoonHandler) Create(c echo.Context) error {
	var req moonRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	moon, err := h.service.Create(c.Request().Context(), toMoonInput(req))
	if err != nil {
		return err
	}

	metrics.MoonsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toMoonResponse(moon))
}

// List handles GET /api/moons.
//
// @Summary      List all moons
// @Tags         moons
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  moonResponse
// @Router       /api/moons [get]
func (h *MoonHandler) List(c echo.Context) error {
	moons, err := h.service.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMoonListResponse(moons))
}

// Get handles GET /api/moons/:id.
//
// @Summary      Get a moon by id
// @Tags         moons
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Moon id"
// @Success      200  {object}  moonResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/moons/{id} [get]
func (h *MoonHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	moon, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMoonResponse(moon))
}

// Update handles PUT /api/moons/:id.
//
// @Summary      Update a moon
// @Tags         moons
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int          true  "Moon id"
// @Param        body  body      moonRequest  true  "New moon details"
// @Success      200   {object}  moonResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/moons/{id} [put]
func (h *MoonHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req moonRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	moon, err := h.service.Update(c.Request().Context(), id, toMoonInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMoonResponse(moon))
}

// Delete handles DELETE /api/moons/:id.
//
// @Summary      Delete a moon
// @Tags         moons
// @Security     BearerAuth
// @Param        id  path  int  true  "Moon id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/moons/{id} [delete]
func (h *MoonHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListByPlanetName handles GET /api/moons/planet/:planetName.
//
// @Summary      List moons orbiting a planet, by planet name
// @Tags         moons
// @Produce      json
// @Security     BearerAuth
// @Param        planetName  path      string  true  "Planet name (e.g. Saturn)"
// @Success      200         {array}   moonResponse
// @Failure      404         {object}  errorResponse
// @Router       /api/moons/planet/{planetName} [get]
func (h *MoonHandler) ListByPlanetName(c echo.Context) error {
	moons, err := h.service.GetByPlanetName(c.Request().Context(), c.Param("planetName"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMoonListResponse(moons))
}

// CountByPlanetName handles GET /api/moons/planet/:planetName/count.
//
// @Summary      Count moons orbiting a planet, by planet name
// @Tags         moons
// @Produce      json
// @Security     BearerAuth
// @Param        planetName  path      string  true  "Planet name"
// @Success      200         {object}  moonCountResponse
// @Failure      404         {object}  errorResponse
// @Router       /api/moons/planet/{planetName}/count [get]
func (h *MoonHandler) CountByPlanetName(c echo.Context) error {
	name := c.Param("planetName")
	count, err := h.service.CountByPlanetName(c.Request().Context(), name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, moonCountResponse{PlanetName: name, MoonCount: count})
}

// ListByPlanetID handles GET /api/planets/:id/moons.
//
// @Summary      List moons orbiting a planet, by planet id
// @Tags         moons
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Planet id"
// @Success      200  {array}   moonResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/planets/{id}/moons [get]
func (h *MoonHandler) ListByPlanetID(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	moons, err := h.service.GetByPlanetID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMoonListResponse(moons))
}

// CountByPlanetID handles GET /api/planets/:id/moons/count.
//
// @Summary      Count moons orbiting a planet, by planet id
// @Tags         moons
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Planet id"
// @Success      200  {object}  moonCountResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/planets/{id}/moons/count [get]
func (h *MoonHandler) CountByPlanetID(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	count, err := h.service.CountByPlanetID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, moonCountResponse{PlanetID: id, MoonCount: count})
}

// ListSummariesByPlanetID handles GET /api/planets/:id/moons/summaries.
//
// @Summary      List moon summaries for a planet
// @Tags         moons
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Planet id"
// @Success      200  {array}   moonSummaryResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/planets/{id}/moons/summaries [get]
func (h *MoonHandler) ListSummariesByPlanetID(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	summaries, err := h.service.GetSummariesByPlanetID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMoonSummaryListResponse(summaries))
}

// ListSummaries handles GET /api/moons/summaries.
//
// @Summary      List moon summaries
// @Tags         moons
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  moonSummaryResponse
// @Router       /api/moons/summaries [get]
func (h *MoonHandler) ListSummaries(c echo.Context) error {
	summaries, err := h.service.GetAllSummaries(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMoonSummaryListResponse(summaries))
}

// GetSummary handles GET /api/moons/:id/summary.
//
// @Summary      Get a moon summary by id
// @Tags         moons
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Moon id"
// @Success      200  {object}  moonSummaryResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/moons/{id}/summary [get]
func (h *MoonHandler) GetSummary(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	summary, err := h.service.GetSummaryByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMoonSummaryResponse(summary))
}
