package ports

import (
	"context"

	"github.com/space/planet-moon-api/internal/core/domain"
)

// MoonRepository defines persistence operations for moons. Lookup methods
// return domain.ErrMoonNotFound when no record matches; list and count
// methods treat an unknown planet as an empty result — parent existence is
// the service layer's concern.
type MoonRepository interface {
	Save(ctx context.Context, m *domain.Moon) (*domain.Moon, error)
	FindByID(ctx context.Context, id int64) (*domain.Moon, error)
	FindByName(ctx context.Context, name string) (*domain.Moon, error)
	FindAll(ctx context.Context) ([]*domain.Moon, error)
	FindByPlanetID(ctx context.Context, planetID int64) ([]*domain.Moon, error)
	CountByPlanetID(ctx context.Context, planetID int64) (int64, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	DeleteByID(ctx context.Context, id int64) error
	// DeleteByPlanetID removes every moon owned by the planet and reports how
	// many records were deleted. Used by the planet cascade delete.
	DeleteByPlanetID(ctx context.Context, planetID int64) (int64, error)
}
