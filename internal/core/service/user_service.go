package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/space/planet-moon-api/internal/core/domain"
	"github.com/space/planet-moon-api/internal/core/ports"
)

type UserService struct {
	userRepo ports.UserRepository
	logger   zerolog.Logger
}

func NewUserService(userRepo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{userRepo: userRepo, logger: logger}
}

// Create validates the input, enforces username uniqueness, hashes the
// plaintext password, and persists the user. Enabled and Active default to
// true when unspecified.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if input.Username == "" {
		return nil, fmt.Errorf("%w: username is required", domain.ErrValidation)
	}
	if input.Password == "" {
		return nil, fmt.Errorf("%w: password is required", domain.ErrValidation)
	}
	if !domain.ValidRole(input.Role) {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, input.Role)
	}

	if _, err := s.userRepo.FindByUsername(ctx, input.Username); err == nil {
		return nil, fmt.Errorf("user with username %q: %w", input.Username, domain.ErrUserExists)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     input.Username,
		PasswordHash: string(hash),
		Enabled:      boolOrTrue(input.Enabled),
		Active:       boolOrTrue(input.Active),
		Role:         input.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.userRepo.Save(ctx, user)
	if err != nil {
		s.logger.Error().Err(err).Str("username", input.Username).Msg("failed to create user")
		return nil, err
	}

	s.logger.Info().Int64("user_id", created.UserID).Str("username", created.Username).Str("role", created.Role).Msg("user created")
	return created, nil
}

func (s *UserService) GetAll(ctx context.Context) ([]*domain.User, error) {
	return s.userRepo.FindAll(ctx)
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user with id %d: %w", id, err)
	}
	return user, nil
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("user with username %q: %w", username, err)
	}
	return user, nil
}

// Update overwrites the mutable fields of an existing user. The username
// uniqueness check excludes the user itself. An empty password leaves the
// stored hash unchanged; a non-empty password must be plaintext and is
// re-hashed. CreatedAt is immutable; UpdatedAt is refreshed.
func (s *UserService) Update(ctx context.Context, id int64, input ports.UpdateUserInput) (*domain.User, error) {
	if input.Username == "" {
		return nil, fmt.Errorf("%w: username is required", domain.ErrValidation)
	}
	if !domain.ValidRole(input.Role) {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, input.Role)
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user with id %d: %w", id, err)
	}

	if user.Username != input.Username {
		if _, err := s.userRepo.FindByUsername(ctx, input.Username); err == nil {
			return nil, fmt.Errorf("user with username %q: %w", input.Username, domain.ErrUserExists)
		}
	}

	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	user.Username = input.Username
	user.Enabled = input.Enabled
	user.Active = input.Active
	user.Role = input.Role
	user.UpdatedAt = time.Now().UTC()

	updated, err := s.userRepo.Save(ctx, user)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", id).Msg("failed to update user")
		return nil, err
	}

	s.logger.Info().Int64("user_id", id).Msg("user updated")
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	exists, err := s.userRepo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("user with id %d: %w", id, domain.ErrUserNotFound)
	}

	if err := s.userRepo.DeleteByID(ctx, id); err != nil {
		s.logger.Error().Err(err).Int64("user_id", id).Msg("failed to delete user")
		return err
	}

	s.logger.Info().Int64("user_id", id).Msg("user deleted")
	return nil
}

func (s *UserService) GetByRole(ctx context.Context, role string) ([]*domain.User, error) {
	if !domain.ValidRole(role) {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, role)
	}
	return s.userRepo.FindByRole(ctx, role)
}

func (s *UserService) GetEnabled(ctx context.Context) ([]*domain.User, error) {
	return s.userRepo.FindByEnabled(ctx, true)
}

func (s *UserService) GetAllSummaries(ctx context.Context) ([]*domain.UserSummary, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toUserSummaries(users), nil
}

func (s *UserService) GetSummaryByID(ctx context.Context, id int64) (*domain.UserSummary, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user with id %d: %w", id, err)
	}
	return &domain.UserSummary{UserID: user.UserID, Username: user.Username, Role: user.Role, Enabled: user.Enabled, Active: user.Active}, nil
}

func (s *UserService) GetSummariesByRole(ctx context.Context, role string) ([]*domain.UserSummary, error) {
	if !domain.ValidRole(role) {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, role)
	}
	users, err := s.userRepo.FindByRole(ctx, role)
	if err != nil {
		return nil, err
	}
	return toUserSummaries(users), nil
}

func boolOrTrue(b *bool) bool {
	if b == nil {
		return true
	}
	return *b
}

func toUserSummaries(users []*domain.User) []*domain.UserSummary {
	summaries := make([]*domain.UserSummary, len(users))
	for i, u := range users {
		summaries[i] = &domain.UserSummary{UserID: u.UserID, Username: u.Username, Role: u.Role, Enabled: u.Enabled, Active: u.Active}
	}
	return summaries
}
