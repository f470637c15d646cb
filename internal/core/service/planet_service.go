package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/space/planet-moon-api/internal/core/domain"
	"github.com/space/planet-moon-api/internal/core/ports"
)

type PlanetService struct {
	planetRepo ports.PlanetRepository
	moonRepo   ports.MoonRepository
	logger     zerolog.Logger
}

func NewPlanetService(planetRepo ports.PlanetRepository, moonRepo ports.MoonRepository, logger zerolog.Logger) *PlanetService {
	return &PlanetService{planetRepo: planetRepo, moonRepo: moonRepo, logger: logger}
}

func validatePlanetInput(input ports.PlanetInput) error {
	if input.Name == "" {
		return fmt.Errorf("%w: planet name is required", domain.ErrValidation)
	}
	if input.Type == "" {
		return fmt.Errorf("%w: planet type is required", domain.ErrValidation)
	}
	if input.RadiusKm <= 0 {
		return fmt.Errorf("%w: radius must be positive, got %g", domain.ErrValidation, input.RadiusKm)
	}
	if input.MassKg <= 0 {
		return fmt.Errorf("%w: mass must be positive, got %g", domain.ErrValidation, input.MassKg)
	}
	if input.OrbitalPeriodDays <= 0 {
		return fmt.Errorf("%w: orbital period must be positive, got %g", domain.ErrValidation, input.OrbitalPeriodDays)
	}
	return nil
}

// Create validates the input, enforces name uniqueness, and persists a new
// planet. The returned record carries the assigned id.
func (s *PlanetService) Create(ctx context.Context, input ports.PlanetInput) (*domain.Planet, error) {
	if err := validatePlanetInput(input); err != nil {
		return nil, err
	}

	if _, err := s.planetRepo.FindByName(ctx, input.Name); err == nil {
		return nil, fmt.Errorf("planet with name %q: %w", input.Name, domain.ErrDuplicatePlanet)
	}

	planet := &domain.Planet{
		Name:              input.Name,
		Type:              input.Type,
		RadiusKm:          input.RadiusKm,
		MassKg:            input.MassKg,
		OrbitalPeriodDays: input.OrbitalPeriodDays,
	}

	created, err := s.planetRepo.Save(ctx, planet)
	if err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create planet")
		return nil, err
	}

	s.logger.Info().Int64("planet_id", created.PlanetID).Str("name", created.Name).Msg("planet created")
	return created, nil
}

func (s *PlanetService) GetAll(ctx context.Context) ([]*domain.Planet, error) {
	return s.planetRepo.FindAll(ctx)
}

func (s *PlanetService) GetByID(ctx context.Context, id int64) (*domain.Planet, error) {
	planet, err := s.planetRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("planet with id %d: %w", id, err)
	}
	return planet, nil
}

// Update overwrites the mutable fields of an existing planet. The uniqueness
// check excludes the planet itself, so re-submitting the current name is not
// a conflict.
func (s *PlanetService) Update(ctx context.Context, id int64, input ports.PlanetInput) (*domain.Planet, error) {
	if err := validatePlanetInput(input); err != nil {
		return nil, err
	}

	planet, err := s.planetRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("planet with id %d: %w", id, err)
	}

	if planet.Name != input.Name {
		if _, err := s.planetRepo.FindByName(ctx, input.Name); err == nil {
			return nil, fmt.Errorf("planet with name %q: %w", input.Name, domain.ErrDuplicatePlanet)
		}
	}

	planet.Name = input.Name
	planet.Type = input.Type
	planet.RadiusKm = input.RadiusKm
	planet.MassKg = input.MassKg
	planet.OrbitalPeriodDays = input.OrbitalPeriodDays

	updated, err := s.planetRepo.Save(ctx, planet)
	if err != nil {
		s.logger.Error().Err(err).Int64("planet_id", id).Msg("failed to update planet")
		return nil, err
	}

	s.logger.Info().Int64("planet_id", id).Msg("planet updated")
	return updated, nil
}

// Delete removes the planet and cascades to its moons: owned moons are
// deleted first so a failed planet delete never leaves orphans behind.
func (s *PlanetService) Delete(ctx context.Context, id int64) error {
	exists, err := s.planetRepo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("planet with id %d: %w", id, domain.ErrPlanetNotFound)
	}

	removed, err := s.moonRepo.DeleteByPlanetID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("planet_id", id).Msg("failed to cascade-delete moons")
		return err
	}

	if err := s.planetRepo.DeleteByID(ctx, id); err != nil {
		s.logger.Error().Err(err).Int64("planet_id", id).Msg("failed to delete planet")
		return err
	}

	s.logger.Info().Int64("planet_id", id).Int64("moons_removed", removed).Msg("planet deleted")
	return nil
}

// GetByType returns planets matching the type exactly. An empty result is
// valid, not an error.
func (s *PlanetService) GetByType(ctx context.Context, planetType string) ([]*domain.Planet, error) {
	return s.planetRepo.FindByType(ctx, planetType)
}

func (s *PlanetService) GetAllSummaries(ctx context.Context) ([]*domain.PlanetSummary, error) {
	planets, err := s.planetRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	summaries := make([]*domain.PlanetSummary, len(planets))
	for i, p := range planets {
		summaries[i] = &domain.PlanetSummary{Name: p.Name, MassKg: p.MassKg}
	}
	return summaries, nil
}

func (s *PlanetService) GetSummaryByID(ctx context.Context, id int64) (*domain.PlanetSummary, error) {
	planet, err := s.planetRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("planet with id %d: %w", id, err)
	}
	return &domain.PlanetSummary{Name: planet.Name, MassKg: planet.MassKg}, nil
}
