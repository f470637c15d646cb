package ports

import (
	"context"

	"github.com/space/planet-moon-api/internal/core/domain"
)

// PlanetInput carries all mutable planet fields for create and update.
type PlanetInput struct {
	Name              string
	Type              string
	RadiusKm          float64
	MassKg            float64
	OrbitalPeriodDays float64
}

// PlanetService defines use-case operations for planets.
type PlanetService interface {
	Create(ctx context.Context, input PlanetInput) (*domain.Planet, error)
	GetAll(ctx context.Context) ([]*domain.Planet, error)
	GetByID(ctx context.Context, id int64) (*domain.Planet, error)
	Update(ctx context.Context, id int64, input PlanetInput) (*domain.Planet, error)
	// Delete removes the planet and cascades to its moons.
	Delete(ctx context.Context, id int64) error
	GetByType(ctx context.Context, planetType string) ([]*domain.Planet, error)
	GetAllSummaries(ctx context.Context) ([]*domain.PlanetSummary, error)
	GetSummaryByID(ctx context.Context, id int64) (*domain.PlanetSummary, error)
}
