package handler

import (
	"github.com/space/planet-moon-api/internal/core/domain"
	"github.com/space/planet-moon-api/internal/core/ports"
)

// --- Request → Service input ---

func toMoonInput(req moonRequest) ports.MoonInput {
	return ports.MoonInput{
		Name:              req.Name,
		DiameterKm:        req.DiameterKm,
		OrbitalPeriodDays: req.OrbitalPeriodDays,
		PlanetID:          req.PlanetID,
	}
}

// --- Service result → HTTP response ---

func toMoonResponse(m *domain.Moon) moonResponse {
	return moonResponse{
		MoonID:            m.MoonID,
		Name:              m.Name,
		DiameterKm:        m.DiameterKm,
		OrbitalPeriodDays: m.OrbitalPeriodDays,
		PlanetID:          m.PlanetID,
	}
}

func toMoonListResponse(moons []*domain.Moon) []moonResponse {
	out := make([]moonResponse, len(moons))
	for i, m := range moons {
		out[i] = toMoonResponse(m)
	}
	return out
}

func toMoonSummaryResponse(s *domain.MoonSummary) moonSummaryResponse {
	return moonSummaryResponse{
		MoonID:     s.MoonID,
		Name:       s.Name,
		DiameterKm: s.DiameterKm,
		PlanetID:   s.PlanetID,
	}
}

func toMoonSummaryListResponse(summaries []*domain.MoonSummary) []moonSummaryResponse {
	out := make([]moonSummaryResponse, len(summaries))
	for i, s := range summaries {
		out[i] = toMoonSummaryResponse(s)
	}
	return out
}
