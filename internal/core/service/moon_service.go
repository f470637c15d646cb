package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/space/planet-moon-api/internal/core/domain"
	"github.com/space/planet-moon-api/internal/core/ports"
)

type MoonService struct {
	moonRepo   ports.MoonRepository
	planetRepo ports.PlanetRepository
	logger     zerolog.Logger
}

func NewMoonService(moonRepo ports.MoonRepository, planetRepo ports.PlanetRepository, logger zerolog.Logger) *MoonService {
	return &MoonService{moonRepo: moonRepo, planetRepo: planetRepo, logger: logger}
}

func validateMoonInput(input ports.MoonInput) error {
	if input.Name == "" {
		return fmt.Errorf("%w: moon name is required", domain.ErrValidation)
	}
	if input.DiameterKm <= 0 {
		return fmt.Errorf("%w: diameter must be positive, got %g", domain.ErrValidation, input.DiameterKm)
	}
	if input.OrbitalPeriodDays <= 0 {
		return fmt.Errorf("%w: orbital period must be positive, got %g", domain.ErrValidation, input.OrbitalPeriodDays)
	}
	if input.PlanetID <= 0 {
		return fmt.Errorf("%w: planet id is required", domain.ErrValidation)
	}
	return nil
}

// Create validates the input, enforces name uniqueness, and resolves the
// owning planet before persisting. A missing planet surfaces as
// domain.ErrPlanetNotFound, distinct from a missing moon.
func (s *MoonService) Create(ctx context.Context, input ports.MoonInput) (*domain.Moon, error) {
	if err := validateMoonInput(input); err != nil {
		return nil, err
	}

	if _, err := s.moonRepo.FindByName(ctx, input.Name); err == nil {
		return nil, fmt.Errorf("moon with name %q: %w", input.Name, domain.ErrDuplicateMoon)
	}

	if err := s.requirePlanetID(ctx, input.PlanetID); err != nil {
		return nil, err
	}

	moon := &domain.Moon{
		Name:              input.Name,
		DiameterKm:        input.DiameterKm,
		OrbitalPeriodDays: input.OrbitalPeriodDays,
		PlanetID:          input.PlanetID,
	}

	created, err := s.moonRepo.Save(ctx, moon)
	if err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create moon")
		return nil, err
	}

	s.logger.Info().Int64("moon_id", created.MoonID).Str("name", created.Name).Int64("planet_id", created.PlanetID).Msg("moon created")
	return created, nil
}

func (s *MoonService) GetAll(ctx context.Context) ([]*domain.Moon, error) {
	return s.moonRepo.FindAll(ctx)
}

func (s *MoonService) GetByID(ctx context.Context, id int64) (*domain.Moon, error) {
	moon, err := s.moonRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("moon with id %d: %w", id, err)
	}
	return moon, nil
}

// Update overwrites the mutable fields of an existing moon, re-resolving the
// planet reference. The name uniqueness check excludes the moon itself.
func (s *MoonService) Update(ctx context.Context, id int64, input ports.MoonInput) (*domain.Moon, error) {
	if err := validateMoonInput(input); err != nil {
		return nil, err
	}

	moon, err := s.moonRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("moon with id %d: %w", id, err)
	}

	if moon.Name != input.Name {
		if _, err := s.moonRepo.FindByName(ctx, input.Name); err == nil {
			return nil, fmt.Errorf("moon with name %q: %w", input.Name, domain.ErrDuplicateMoon)
		}
	}

	if err := s.requirePlanetID(ctx, input.PlanetID); err != nil {
		return nil, err
	}

	moon.Name = input.Name
	moon.DiameterKm = input.DiameterKm
	moon.OrbitalPeriodDays = input.OrbitalPeriodDays
	moon.PlanetID = input.PlanetID

	updated, err := s.moonRepo.Save(ctx, moon)
	if err != nil {
		s.logger.Error().Err(err).Int64("moon_id", id).Msg("failed to update moon")
		return nil, err
	}

	s.logger.Info().Int64("moon_id", id).Msg("moon updated")
	return updated, nil
}

func (s *MoonService) Delete(ctx context.Context, id int64) error {
	exists, err := s.moonRepo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("moon with id %d: %w", id, domain.ErrMoonNotFound)
	}

	if err := s.moonRepo.DeleteByID(ctx, id); err != nil {
		s.logger.Error().Err(err).Int64("moon_id", id).Msg("failed to delete moon")
		return err
	}

	s.logger.Info().Int64("moon_id", id).Msg("moon deleted")
	return nil
}

// GetByPlanetID lists the moons of an existing planet. The planet must
// exist; an empty moon list is a valid result.
func (s *MoonService) GetByPlanetID(ctx context.Context, planetID int64) ([]*domain.Moon, error) {
	if err := s.requirePlanetID(ctx, planetID); err != nil {
		return nil, err
	}
	return s.moonRepo.FindByPlanetID(ctx, planetID)
}

func (s *MoonService) GetByPlanetName(ctx context.Context, planetName string) ([]*domain.Moon, error) {
	planet, err := s.planetRepo.FindByName(ctx, planetName)
	if err != nil {
		return nil, fmt.Errorf("planet with name %q: %w", planetName, err)
	}
	return s.moonRepo.FindByPlanetID(ctx, planet.PlanetID)
}

func (s *MoonService) CountByPlanetID(ctx context.Context, planetID int64) (int64, error) {
	if err := s.requirePlanetID(ctx, planetID); err != nil {
		return 0, err
	}
	return s.moonRepo.CountByPlanetID(ctx, planetID)
}

func (s *MoonService) CountByPlanetName(ctx context.Context, planetName string) (int64, error) {
	planet, err := s.planetRepo.FindByName(ctx, planetName)
	if err != nil {
		return 0, fmt.Errorf("planet with name %q: %w", planetName, err)
	}
	return s.moonRepo.CountByPlanetID(ctx, planet.PlanetID)
}

func (s *MoonService) GetAllSummaries(ctx context.Context) ([]*domain.MoonSummary, error) {
	moons, err := s.moonRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toMoonSummaries(moons), nil
}

func (s *MoonService) GetSummaryByID(ctx context.Context, id int64) (*domain.MoonSummary, error) {
	moon, err := s.moonRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("moon with id %d: %w", id, err)
	}
	return &domain.MoonSummary{MoonID: moon.MoonID, Name: moon.Name, DiameterKm: moon.DiameterKm, PlanetID: moon.PlanetID}, nil
}

func (s *MoonService) GetSummariesByPlanetID(ctx context.Context, planetID int64) ([]*domain.MoonSummary, error) {
	if err := s.requirePlanetID(ctx, planetID); err != nil {
		return nil, err
	}
	moons, err := s.moonRepo.FindByPlanetID(ctx, planetID)
	if err != nil {
		return nil, err
	}
	return toMoonSummaries(moons), nil
}

func (s *MoonService) requirePlanetID(ctx context.Context, planetID int64) error {
	exists, err := s.planetRepo.ExistsByID(ctx, planetID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("planet with id %d: %w", planetID, domain.ErrPlanetNotFound)
	}
	return nil
}

func toMoonSummaries(moons []*domain.Moon) []*domain.MoonSummary {
	summaries := make([]*domain.MoonSummary, len(moons))
	for i, m := range moons {
		summaries[i] = &domain.MoonSummary{MoonID: m.MoonID, Name: m.Name, DiameterKm: m.DiameterKm, PlanetID: m.PlanetID}
	}
	return summaries
}
