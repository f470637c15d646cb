package handler

// --- Request / Response types ---

type moonRequest struct {
	Name              string  `json:"name"              validate:"required"`
	DiameterKm        float64 `json:"diameterKm"        validate:"required,gt=0"`
	OrbitalPeriodDays float64 `json:"orbitalPeriodDays" validate:"required,gt=0"`
	PlanetID          int64   `json:"planetId"          validate:"required,gt=0"`
}

type moonResponse struct {
	MoonID            int64   `json:"moonId"`
	Name              string  `json:"name"`
	DiameterKm        float64 `json:"diameterKm"`
	OrbitalPeriodDays float64 `json:"orbitalPeriodDays"`
	PlanetID          int64   `json:"planetId"`
}

type moonSummaryResponse struct {
	MoonID     int64   `json:"moonId"`
	Name       string  `json:"name"`
	DiameterKm float64 `json:"diameterKm"`
	PlanetID   int64   `json:"planetId"`
}

// moonCountResponse is returned by the per-planet count endpoints.
type moonCountResponse struct {
	PlanetName string `json:"planetName,omitempty"`
	PlanetID   int64  `json:"planetId,omitempty"`
	MoonCount  int64  `json:"moonCount"`
}
