package ports

import (
	"context"

	"github.com/space/planet-moon-api/internal/core/domain"
)

// MoonInput carries all mutable moon fields for create and update.
// PlanetID must reference an existing planet.
type MoonInput struct {
	Name              string
	DiameterKm        float64
	OrbitalPeriodDays float64
	PlanetID          int64
}

// MoonService defines use-case operations for moons.
type MoonService interface {
	Create(ctx context.Context, input MoonInput) (*domain.Moon, error)
	GetAll(ctx context.Context) ([]*domain.Moon, error)
	GetByID(ctx context.Context, id int64) (*domain.Moon, error)
	Update(ctx context.Context, id int64, input MoonInput) (*domain.Moon, error)
	Delete(ctx context.Context, id int64) error
	GetByPlanetID(ctx context.Context, planetID int64) ([]*domain.Moon, error)
	GetByPlanetName(ctx context.Context, planetName string) ([]*domain.Moon, error)
	CountByPlanetID(ctx context.Context, planetID int64) (int64, error)
	CountByPlanetName(ctx context.Context, planetName string) (int64, error)
	GetAllSummaries(ctx context.Context) ([]*domain.MoonSummary, error)
	GetSummaryByID(ctx context.Context, id int64) (*domain.MoonSummary, error)
	GetSummariesByPlanetID(ctx context.Context, planetID int64) ([]*domain.MoonSummary, error)
}
