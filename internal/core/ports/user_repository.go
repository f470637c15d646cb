package ports

import (
	"context"

	"github.com/space/planet-moon-api/internal/core/domain"
)

// UserRepository defines persistence operations for users. Lookup methods
// return domain.ErrUserNotFound when no record matches.
type UserRepository interface {
	Save(ctx context.Context, u *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	FindByRole(ctx context.Context, role string) ([]*domain.User, error)
	FindByEnabled(ctx context.Context, enabled bool) ([]*domain.User, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	DeleteByID(ctx context.Context, id int64) error
}
