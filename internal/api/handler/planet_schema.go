package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type planetRequest struct {
	Name              string  `json:"name"              validate:"required"`
	Type              string  `json:"type"              validate:"required"`
	RadiusKm          float64 `json:"radiusKm"          validate:"required,gt=0"`
	MassKg            float64 `json:"massKg"            validate:"required,gt=0"`
	OrbitalPeriodDays float64 `json:"orbitalPeriodDays" validate:"required,gt=0"`
}

type planetResponse struct {
	PlanetID          int64   `json:"planetId"`
	Name              string  `json:"name"`
	Type              string  `json:"type"`
	RadiusKm          float64 `json:"radiusKm"`
	MassKg            float64 `json:"massKg"`
	OrbitalPeriodDays float64 `json:"orbitalPeriodDays"`
}

// planetSummaryResponse is the reduced projection used by listing screens.
type planetSummaryResponse struct {
	Name   string  `json:"name"`
	MassKg float64 `json:"massKg"`
}
