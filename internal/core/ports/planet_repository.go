package ports

import (
	"context"

	"github.com/space/planet-moon-api/internal/core/domain"
)

// PlanetRepository defines persistence operations for planets.
// Lookup methods return domain.ErrPlanetNotFound when no record matches;
// list methods return an empty slice instead of an error.
type PlanetRepository interface {
	// Save inserts the planet when PlanetID is zero (assigning a new id on
	// the returned copy) and replaces the stored record otherwise.
	Save(ctx context.Context, p *domain.Planet) (*domain.Planet, error)
	FindByID(ctx context.Context, id int64) (*domain.Planet, error)
	FindByName(ctx context.Context, name string) (*domain.Planet, error)
	FindAll(ctx context.Context) ([]*domain.Planet, error)
	FindByType(ctx context.Context, planetType string) ([]*domain.Planet, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	DeleteByID(ctx context.Context, id int64) error
}
