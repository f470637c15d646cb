package handler

import (
	"context"

	"github.com/space/planet-moon-api/internal/core/domain"
	"github.com/space/planet-moon-api/internal/core/ports"
)

// Function-backed stubs for the service ports. Tests assign only the
// functions they exercise; calling an unassigned one panics, which makes an
// unexpected service call fail the test loudly.

type stubPlanetService struct {
	createFn          func(ctx context.Context, input ports.PlanetInput) (*domain.Planet, error)
	getAllFn          func(ctx context.Context) ([]*domain.Planet, error)
	getByIDFn         func(ctx context.Context, id int64) (*domain.Planet, error)
	updateFn          func(ctx context.Context, id int64, input ports.PlanetInput) (*domain.Planet, error)
	deleteFn          func(ctx context.Context, id int64) error
	getByTypeFn       func(ctx context.Context, planetType string) ([]*domain.Planet, error)
	getAllSummariesFn func(ctx context.Context) ([]*domain.PlanetSummary, error)
	getSummaryByIDFn  func(ctx context.Context, id int64) (*domain.PlanetSummary, error)
}

func (s *stubPlanetService) Create(ctx context.Context, input ports.PlanetInput) (*domain.Planet, error) {
	return s.createFn(ctx, input)
}

func (s *stubPlanetService) GetAll(ctx context.Context) ([]*domain.Planet, error) {
	return s.getAllFn(ctx)
}

func (s *stubPlanetService) GetByID(ctx context.Context, id int64) (*domain.Planet, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubPlanetService) Update(ctx context.Context, id int64, input ports.PlanetInput) (*domain.Planet, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubPlanetService) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func (s *stubPlanetService) GetByType(ctx context.Context, planetType string) ([]*domain.Planet, error) {
	return s.getByTypeFn(ctx, planetType)
}

func (s *stubPlanetService) GetAllSummaries(ctx context.Context) ([]*domain.PlanetSummary, error) {
	return s.getAllSummariesFn(ctx)
}

func (s *stubPlanetService) GetSummaryByID(ctx context.Context, id int64) (*domain.PlanetSummary, error) {
	return s.getSummaryByIDFn(ctx, id)
}

type stubMoonService struct {
	createFn                 func(ctx context.Context, input ports.MoonInput) (*domain.Moon, error)
	getAllFn                 func(ctx context.Context) ([]*domain.Moon, error)
	getByIDFn                func(ctx context.Context, id int64) (*domain.Moon, error)
	updateFn                 func(ctx context.Context, id int64, input ports.MoonInput) (*domain.Moon, error)
	deleteFn                 func(ctx context.Context, id int64) error
	getByPlanetIDFn          func(ctx context.Context, planetID int64) ([]*domain.Moon, error)
	getByPlanetNameFn        func(ctx context.Context, planetName string) ([]*domain.Moon, error)
	countByPlanetIDFn        func(ctx context.Context, planetID int64) (int64, error)
	countByPlanetNameFn      func(ctx context.Context, planetName string) (int64, error)
	getAllSummariesFn        func(ctx context.Context) ([]*domain.MoonSummary, error)
	getSummaryByIDFn         func(ctx context.Context, id int64) (*domain.MoonSummary, error)
	getSummariesByPlanetIDFn func(ctx context.Context, planetID int64) ([]*domain.MoonSummary, error)
}

func (s *stubMoonService) Create(ctx context.Context, input ports.MoonInput) (*domain.Moon, error) {
	return s.createFn(ctx, input)
}

func (s *stubMoonService) GetAll(ctx context.Context) ([]*domain.Moon, error) {
	return s.getAllFn(ctx)
}

func (s *stubMoonService) GetByID(ctx context.Context, id int64) (*domain.Moon, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubMoonService) Update(ctx context.Context, id int64, input ports.MoonInput) (*domain.Moon, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubMoonService) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func (s *stubMoonService) GetByPlanetID(ctx context.Context, planetID int64) ([]*domain.Moon, error) {
	return s.getByPlanetIDFn(ctx, planetID)
}

func (s *stubMoonService) GetByPlanetName(ctx context.Context, planetName string) ([]*domain.Moon, error) {
	return s.getByPlanetNameFn(ctx, planetName)
}

func (s *stubMoonService) CountByPlanetID(ctx context.Context, planetID int64) (int64, error) {
	return s.countByPlanetIDFn(ctx, planetID)
}

func (s *stubMoonService) CountByPlanetName(ctx context.Context, planetName string) (int64, error) {
	return s.countByPlanetNameFn(ctx, planetName)
}

func (s *stubMoonService) GetAllSummaries(ctx context.Context) ([]*domain.MoonSummary, error) {
	return s.getAllSummariesFn(ctx)
}

func (s *stubMoonService) GetSummaryByID(ctx context.Context, id int64) (*domain.MoonSummary, error) {
	return s.getSummaryByIDFn(ctx, id)
}

func (s *stubMoonService) GetSummariesByPlanetID(ctx context.Context, planetID int64) ([]*domain.MoonSummary, error) {
	return s.getSummariesByPlanetIDFn(ctx, planetID)
}

type stubUserService struct {
	createFn             func(ctx context.Context, input ports.CreateUserInput) (*domain.User, error)
	getAllFn             func(ctx context.Context) ([]*domain.User, error)
	getByIDFn            func(ctx context.Context, id int64) (*domain.User, error)
	getByUsernameFn      func(ctx context.Context, username string) (*domain.User, error)
	updateFn             func(ctx context.Context, id int64, input ports.UpdateUserInput) (*domain.User, error)
	deleteFn             func(ctx context.Context, id int64) error
	getByRoleFn          func(ctx context.Context, role string) ([]*domain.User, error)
	getEnabledFn         func(ctx context.Context) ([]*domain.User, error)
	getAllSummariesFn    func(ctx context.Context) ([]*domain.UserSummary, error)
	getSummaryByIDFn     func(ctx context.Context, id int64) (*domain.UserSummary, error)
	getSummariesByRoleFn func(ctx context.Context, role string) ([]*domain.UserSummary, error)
}

func (s *stubUserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	return s.createFn(ctx, input)
}

func (s *stubUserService) GetAll(ctx context.Context) ([]*domain.User, error) {
	return s.getAllFn(ctx)
}

func (s *stubUserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubUserService) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.getByUsernameFn(ctx, username)
}

func (s *stubUserService) Update(ctx context.Context, id int64, input ports.UpdateUserInput) (*domain.User, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubUserService) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func (s *stubUserService) GetByRole(ctx context.Context, role string) ([]*domain.User, error) {
	return s.getByRoleFn(ctx, role)
}

func (s *stubUserService) GetEnabled(ctx context.Context) ([]*domain.User, error) {
	return s.getEnabledFn(ctx)
}

func (s *stubUserService) GetAllSummaries(ctx context.Context) ([]*domain.UserSummary, error) {
	return s.getAllSummariesFn(ctx)
}

func (s *stubUserService) GetSummaryByID(ctx context.Context, id int64) (*domain.UserSummary, error) {
	return s.getSummaryByIDFn(ctx, id)
}

func (s *stubUserService) GetSummariesByRole(ctx context.Context, role string) ([]*domain.UserSummary, error) {
	return s.getSummariesByRoleFn(ctx, role)
}
