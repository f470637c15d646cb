package domain

// Planet is a persisted planet record. Moons reference it by PlanetID; the
// planet itself stores no back-reference, a planet's moons are a derived read.
type Planet struct {
	PlanetID          int64   `json:"planetId"`
	Name              string  `json:"name"`
	Type              string  `json:"type"`
	RadiusKm          float64 `json:"radiusKm"`
	MassKg            float64 `json:"massKg"`
	OrbitalPeriodDays float64 `json:"orbitalPeriodDays"`
}

// PlanetSummary is the reduced projection used by list-heavy endpoints.
type PlanetSummary struct {
	Name   string  `json:"name"`
	MassKg float64 `json:"massKg"`
}
