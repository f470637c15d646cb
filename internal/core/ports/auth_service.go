package ports

import (
	"context"

	"github.com/space/planet-moon-api/internal/core/domain"
)

// AuthService authenticates users and issues JWT tokens.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
