package ports

import (
	"context"

	"github.com/space/planet-moon-api/internal/core/domain"
)

// CreateUserInput carries the fields accepted when creating a user.
// Password is plaintext; the service hashes it before persistence.
// Enabled and Active default to true when nil.
type CreateUserInput struct {
	Username string
	Password string
	Enabled  *bool
	Active   *bool
	Role     string
}

// UpdateUserInput carries the fields accepted when updating a user.
// An empty Password leaves the stored hash unchanged; a non-empty value must
// be plaintext and is re-hashed.
type UpdateUserInput struct {
	Username string
	Password string
	Enabled  bool
	Active   bool
	Role     string
}

// UserService defines use-case operations for users. Returned users carry
// the password hash internally but it is never serialized.
type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	GetAll(ctx context.Context) ([]*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Update(ctx context.Context, id int64, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
	GetByRole(ctx context.Context, role string) ([]*domain.User, error)
	GetEnabled(ctx context.Context) ([]*domain.User, error)
	GetAllSummaries(ctx context.Context) ([]*domain.UserSummary, error)
	GetSummaryByID(ctx context.Context, id int64) (*domain.UserSummary, error)
	GetSummariesByRole(ctx context.Context, role string) ([]*domain.UserSummary, error)
}
