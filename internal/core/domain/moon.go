package domain

// Moon is a persisted moon record. PlanetID must resolve to an existing
// planet at write time; the service layer validates the reference.
type Moon struct {
	MoonID            int64   `json:"moonId"`
	Name              string  `json:"name"`
	DiameterKm        float64 `json:"diameterKm"`
	OrbitalPeriodDays float64 `json:"orbitalPeriodDays"`
	PlanetID          int64   `json:"planetId"`
}

// MoonSummary is the reduced projection used by list-heavy endpoints.
type MoonSummary struct {
	MoonID     int64   `json:"moonId"`
	Name       string  `json:"name"`
	DiameterKm float64 `json:"diameterKm"`
	PlanetID   int64   `json:"planetId"`
}
