package service

import (
	"context"

	"github.com/space/planet-moon-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories shared by the service tests. They mirror the
// Mongo repositories' contract: lookups return the domain sentinel when no
// record matches, Save assigns an id on insert, lists return empty slices.
// ---------------------------------------------------------------------------

type stubPlanetRepo struct {
	planets map[int64]*domain.Planet
	nextID  int64
	saveErr error
}

func newStubPlanetRepo() *stubPlanetRepo {
	return &stubPlanetRepo{planets: make(map[int64]*domain.Planet)}
}

func (r *stubPlanetRepo) Save(_ context.Context, p *domain.Planet) (*domain.Planet, error) {
	if r.saveErr != nil {
		return nil, r.saveErr
	}
	clone := *p
	if clone.PlanetID == 0 {
		r.nextID++
		clone.PlanetID = r.nextID
	}
	stored := clone
	r.planets[clone.PlanetID] = &stored
	return &clone, nil
}

func (r *stubPlanetRepo) FindByID(_ context.Context, id int64) (*domain.Planet, error) {
	p, ok := r.planets[id]
	if !ok {
		return nil, domain.ErrPlanetNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubPlanetRepo) FindByName(_ context.Context, name string) (*domain.Planet, error) {
	for _, p := range r.planets {
		if p.Name == name {
			clone := *p
			return &clone, nil
		}
	}
	return nil, domain.ErrPlanetNotFound
}

func (r *stubPlanetRepo) FindAll(_ context.Context) ([]*domain.Planet, error) {
	out := make([]*domain.Planet, 0, len(r.planets))
	for _, p := range r.planets {
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubPlanetRepo) FindByType(_ context.Context, planetType string) ([]*domain.Planet, error) {
	out := []*domain.Planet{}
	for _, p := range r.planets {
		if p.Type == planetType {
			clone := *p
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubPlanetRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := r.planets[id]
	return ok, nil
}

func (r *stubPlanetRepo) DeleteByID(_ context.Context, id int64) error {
	if _, ok := r.planets[id]; !ok {
		return domain.ErrPlanetNotFound
	}
	delete(r.planets, id)
	return nil
}

type stubMoonRepo struct {
	moons   map[int64]*domain.Moon
	nextID  int64
	saveErr error
}

func newStubMoonRepo() *stubMoonRepo {
	return &stubMoonRepo{moons: make(map[int64]*domain.Moon)}
}

func (r *stubMoonRepo) Save(_ context.Context, m *domain.Moon) (*domain.Moon, error) {
	if r.saveErr != nil {
		return nil, r.saveErr
	}
	clone := *m
	if clone.MoonID == 0 {
		r.nextID++
		clone.MoonID = r.nextID
	}
	stored := clone
	r.moons[clone.MoonID] = &stored
	return &clone, nil
}

func (r *stubMoonRepo) FindByID(_ context.Context, id int64) (*domain.Moon, error) {
	m, ok := r.moons[id]
	if !ok {
		return nil, domain.ErrMoonNotFound
	}
	clone := *m
	return &clone, nil
}

func (r *stubMoonRepo) FindByName(_ context.Context, name string) (*domain.Moon, error) {
	for _, m := range r.moons {
		if m.Name == name {
			clone := *m
			return &clone, nil
		}
	}
	return nil, domain.ErrMoonNotFound
}

func (r *stubMoonRepo) FindAll(_ context.Context) ([]*domain.Moon, error) {
	out := make([]*domain.Moon, 0, len(r.moons))
	for _, m := range r.moons {
		clone := *m
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubMoonRepo) FindByPlanetID(_ context.Context, planetID int64) ([]*domain.Moon, error) {
	out := []*domain.Moon{}
	for _, m := range r.moons {
		if m.PlanetID == planetID {
			clone := *m
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubMoonRepo) CountByPlanetID(_ context.Context, planetID int64) (int64, error) {
	var n int64
	for _, m := range r.moons {
		if m.PlanetID == planetID {
			n++
		}
	}
	return n, nil
}

func (r *stubMoonRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := r.moons[id]
	return ok, nil
}

func (r *stubMoonRepo) DeleteByID(_ context.Context, id int64) error {
	if _, ok := r.moons[id]; !ok {
		return domain.ErrMoonNotFound
	}
	delete(r.moons, id)
	return nil
}

func (r *stubMoonRepo) DeleteByPlanetID(_ context.Context, planetID int64) (int64, error) {
	var n int64
	for id, m := range r.moons {
		if m.PlanetID == planetID {
			delete(r.moons, id)
			n++
		}
	}
	return n, nil
}

type stubUserRepo struct {
	users   map[int64]*domain.User
	nextID  int64
	saveErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int64]*domain.User)}
}

func (r *stubUserRepo) Save(_ context.Context, u *domain.User) (*domain.User, error) {
	if r.saveErr != nil {
		return nil, r.saveErr
	}
	clone := *u
	if clone.UserID == 0 {
		r.nextID++
		clone.UserID = r.nextID
	}
	stored := clone
	r.users[clone.UserID] = &stored
	return &clone, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		clone := *u
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubUserRepo) FindByRole(_ context.Context, role string) ([]*domain.User, error) {
	out := []*domain.User{}
	for _, u := range r.users {
		if u.Role == role {
			clone := *u
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubUserRepo) FindByEnabled(_ context.Context, enabled bool) ([]*domain.User, error) {
	out := []*domain.User{}
	for _, u := range r.users {
		if u.Enabled == enabled {
			clone := *u
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubUserRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := r.users[id]
	return ok, nil
}

func (r *stubUserRepo) DeleteByID(_ context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}
