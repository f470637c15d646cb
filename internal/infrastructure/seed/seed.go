// Package seed loads the initial solar-system dataset and the default user
// accounts into an empty database.
package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/space/planet-moon-api/internal/core/domain"
	"github.com/space/planet-moon-api/internal/core/ports"
)

// defaultPassword is shared by all seeded accounts.
const defaultPassword = "password1"

type seedUser struct {
	username string
	enabled  bool
	active   bool
	role     string
}

type seedPlanet struct {
	name              string
	planetType        string
	radiusKm          float64
	massKg            float64
	orbitalPeriodDays float64
}

type seedMoon struct {
	name              string
	diameterKm        float64
	orbitalPeriodDays float64
	planet            string
}

var users = []seedUser{
	{"admin", true, true, domain.RoleAdmin},
	{"john", true, true, domain.RoleStaff},
	{"amy", true, true, domain.RoleStudent},
	{"maria", true, true, domain.RoleStaff},
	{"lee", false, false, domain.RoleStudent},
}

var planets = []seedPlanet{
	{"Mercury", "terrestrial", 2439.7, 3.3011e23, 87.97},
	{"Venus", "terrestrial", 6051.8, 4.8675e24, 224.70},
	{"Earth", "terrestrial", 6371.0, 5.972e24, 365.26},
	{"Mars", "terrestrial", 3389.5, 6.4171e23, 686.98},
	{"Jupiter", "gas giant", 69911.0, 1.8982e27, 4332.59},
	{"Saturn", "gas giant", 58232.0, 5.6834e26, 10759.22},
	{"Uranus", "ice giant", 25362.0, 8.6810e25, 30688.5},
	{"Neptune", "ice giant", 24622.0, 1.02413e26, 60182.0},
}

var moons = []seedMoon{
	{"Moon", 3474.8, 27.32, "Earth"},
	{"Phobos", 22.2, 0.319, "Mars"},
	{"Deimos", 12.6, 1.263, "Mars"},
	{"Io", 3643.2, 1.769, "Jupiter"},
	{"Europa", 3121.6, 3.551, "Jupiter"},
	{"Ganymede", 5268.2, 7.155, "Jupiter"},
	{"Callisto", 4820.6, 16.689, "Jupiter"},
	{"Titan", 5149.5, 15.945, "Saturn"},
	{"Rhea", 1527.0, 4.518, "Saturn"},
	{"Iapetus", 1469.0, 79.330, "Saturn"},
	{"Dione", 1123.0, 2.737, "Saturn"},
	{"Tethys", 1062.0, 1.888, "Saturn"},
	{"Enceladus", 504.2, 1.370, "Saturn"},
	{"Mimas", 396.4, 0.942, "Saturn"},
	{"Titania", 1577.8, 8.706, "Uranus"},
	{"Oberon", 1522.8, 13.463, "Uranus"},
	{"Umbriel", 1169.4, 4.144, "Uranus"},
	{"Ariel", 1157.8, 2.520, "Uranus"},
	{"Miranda", 471.6, 1.413, "Uranus"},
	{"Triton", 2706.8, 5.877, "Neptune"},
	{"Proteus", 420.0, 1.122, "Neptune"},
}

// Run loads the dataset through the services so the same validation and
// uniqueness rules apply as for API writes. Seeding is skipped when planets
// already exist.
func Run(ctx context.Context, planetSvc ports.PlanetService, moonSvc ports.MoonService, userSvc ports.UserService, log zerolog.Logger) error {
	existing, err := planetSvc.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("seed: check existing planets: %w", err)
	}
	if len(existing) > 0 {
		log.Info().Int("planets", len(existing)).Msg("database already seeded, skipping")
		return nil
	}

	if err := seedUsers(ctx, userSvc); err != nil {
		return err
	}

	planetIDs := make(map[string]int64, len(planets))
	for _, p := range planets {
		created, err := planetSvc.Create(ctx, ports.PlanetInput{
			Name:              p.name,
			Type:              p.planetType,
			RadiusKm:          p.radiusKm,
			MassKg:            p.massKg,
			OrbitalPeriodDays: p.orbitalPeriodDays,
		})
		if err != nil {
			return fmt.Errorf("seed: planet %s: %w", p.name, err)
		}
		planetIDs[p.name] = created.PlanetID
	}

	for _, m := range moons {
		if _, err := moonSvc.Create(ctx, ports.MoonInput{
			Name:              m.name,
			DiameterKm:        m.diameterKm,
			OrbitalPeriodDays: m.orbitalPeriodDays,
			PlanetID:          planetIDs[m.planet],
		}); err != nil {
			return fmt.Errorf("seed: moon %s: %w", m.name, err)
		}
	}

	log.Info().Int("users", len(users)).Int("planets", len(planets)).Int("moons", len(moons)).Msg("seed data loaded")
	return nil
}

func seedUsers(ctx context.Context, userSvc ports.UserService) error {
	for _, u := range users {
		enabled, active := u.enabled, u.active
		if _, err := userSvc.Create(ctx, ports.CreateUserInput{
			Username: u.username,
			Password: defaultPassword,
			Enabled:  &enabled,
			Active:   &active,
			Role:     u.role,
		}); err != nil {
			return fmt.Errorf("seed: user %s: %w", u.username, err)
		}
	}
	return nil
}
