package handler

import (
	"github.com/space/planet-moon-api/internal/core/domain"
	"github.com/space/planet-moon-api/internal/core/ports"
)

// --- Request → Service input ---

func toPlanetInput(req planetRequest) ports.PlanetInput {
	return ports.PlanetInput{
		Name:              req.Name,
		Type:              req.Type,
		RadiusKm:          req.RadiusKm,
		MassKg:            req.MassKg,
		OrbitalPeriodDays: req.OrbitalPeriodDays,
	}
}

// --- Service result → HTTP response ---

func toPlanetResponse(p *domain.Planet) planetResponse {
	return planetResponse{
		PlanetID:          p.PlanetID,
		Name:              p.Name,
		Type:              p.Type,
		RadiusKm:          p.RadiusKm,
		MassKg:            p.MassKg,
		OrbitalPeriodDays: p.OrbitalPeriodDays,
	}
}

func toPlanetListResponse(planets []*domain.Planet) []planetResponse {
	out := make([]planetResponse, len(planets))
	for i, p := range planets {
		out[i] = toPlanetResponse(p)
	}
	return out
}

func toPlanetSummaryResponse(s *domain.PlanetSummary) planetSummaryResponse {
	return planetSummaryResponse{Name: s.Name, MassKg: s.MassKg}
}

func toPlanetSummaryListResponse(summaries []*domain.PlanetSummary) []planetSummaryResponse {
	out := make([]planetSummaryResponse, len(summaries))
	for i, s := range summaries {
		out[i] = toPlanetSummaryResponse(s)
	}
	return out
}
