package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/space/planet-moon-api/internal/core/domain"
)

const collectionPlanets = "planets"

type PlanetRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewPlanetRepository(db *mongo.Database) *PlanetRepository {
	return &PlanetRepository{db: db, col: db.Collection(collectionPlanets)}
}

type planetDoc struct {
	PlanetID          int64   `bson:"_id"`
	Name              string  `bson:"name"`
	Type              string  `bson:"type"`
	RadiusKm          float64 `bson:"radius_km"`
	MassKg            float64 `bson:"mass_kg"`
	OrbitalPeriodDays float64 `bson:"orbital_period_days"`
}

func toPlanetDoc(p *domain.Planet) planetDoc {
	return planetDoc{
		PlanetID:          p.PlanetID,
		Name:              p.Name,
		Type:              p.Type,
		RadiusKm:          p.RadiusKm,
		MassKg:            p.MassKg,
		OrbitalPeriodDays: p.OrbitalPeriodDays,
	}
}

func (d planetDoc) toDomain() *domain.Planet {
	return &domain.Planet{
		PlanetID:          d.PlanetID,
		Name:              d.Name,
		Type:              d.Type,
		RadiusKm:          d.RadiusKm,
		MassKg:            d.MassKg,
		OrbitalPeriodDays: d.OrbitalPeriodDays,
	}
}

// Save inserts the planet when it has no id yet, assigning one from the
// counter sequence, and replaces the stored document otherwise.
func (r *PlanetRepository) Save(ctx context.Context, p *domain.Planet) (*domain.Planet, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	planet := *p
	if planet.PlanetID == 0 {
		id, err := nextID(ctx, r.db, collectionPlanets)
		if err != nil {
			return nil, err
		}
		planet.PlanetID = id
		if _, err := r.col.InsertOne(ctx, toPlanetDoc(&planet)); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return nil, domain.ErrDuplicatePlanet
			}
			return nil, err
		}
		return &planet, nil
	}

	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": planet.PlanetID}, toPlanetDoc(&planet))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicatePlanet
		}
		return nil, err
	}
	return &planet, nil
}

func (r *PlanetRepository) FindByID(ctx context.Context, id int64) (*domain.Planet, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *PlanetRepository) FindByName(ctx context.Context, name string) (*domain.Planet, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

func (r *PlanetRepository) findOne(ctx context.Context, filter bson.M) (*domain.Planet, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc planetDoc
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPlanetNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *PlanetRepository) FindAll(ctx context.Context) ([]*domain.Planet, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *PlanetRepository) FindByType(ctx context.Context, planetType string) ([]*domain.Planet, error) {
	return r.findMany(ctx, bson.M{"type": planetType})
}

func (r *PlanetRepository) findMany(ctx context.Context, filter bson.M) ([]*domain.Planet, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []planetDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	planets := make([]*domain.Planet, len(docs))
	for i, d := range docs {
		planets[i] = d.toDomain()
	}
	return planets, nil
}

func (r *PlanetRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *PlanetRepository) DeleteByID(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrPlanetNotFound
	}
	return nil
}

// EnsureIndexes creates the unique name index on the planets collection.
func (r *PlanetRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
