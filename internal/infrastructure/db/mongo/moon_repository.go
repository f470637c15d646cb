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

const collectionMoons = "moons"

type MoonRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewMoonRepository(db *mongo.Database) *MoonRepository {
	return &MoonRepository{db: db, col: db.Collection(collectionMoons)}
}

type moonDoc struct {
	MoonID            int64   `bson:"_id"`
	Name              string  `bson:"name"`
	DiameterKm        float64 `bson:"diameter_km"`
	OrbitalPeriodDays float64 `bson:"orbital_period_days"`
	PlanetID          int64   `bson:"planet_id"`
}

func toMoonDoc(m *domain.Moon) moonDoc {
	return moonDoc{
		MoonID:            m.MoonID,
		Name:              m.Name,
		DiameterKm:        m.DiameterKm,
		OrbitalPeriodDays: m.OrbitalPeriodDays,
		PlanetID:          m.PlanetID,
	}
}

func (d moonDoc) toDomain() *domain.Moon {
	return &domain.Moon{
		MoonID:            d.MoonID,
		Name:              d.Name,
		DiameterKm:        d.DiameterKm,
		OrbitalPeriodDays: d.OrbitalPeriodDays,
		PlanetID:          d.PlanetID,
	}
}

// Save inserts the moon when it has no id yet, assigning one from the
// counter sequence, and replaces the stored document otherwise.
func (r *MoonRepository) Save(ctx context.Context, m *domain.Moon) (*domain.Moon, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	moon := *m
	if moon.MoonID == 0 {
		id, err := nextID(ctx, r.db, collectionMoons)
		if err != nil {
			return nil, err
		}
		moon.MoonID = id
		if _, err := r.col.InsertOne(ctx, toMoonDoc(&moon)); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return nil, domain.ErrDuplicateMoon
			}
			return nil, err
		}
		return &moon, nil
	}

	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": moon.MoonID}, toMoonDoc(&moon))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateMoon
		}
		return nil, err
	}
	return &moon, nil
}

func (r *MoonRepository) FindByID(ctx context.Context, id int64) (*domain.Moon, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MoonRepository) FindByName(ctx context.Context, name string) (*domain.Moon, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

func (r *MoonRepository) findOne(ctx context.Context, filter bson.M) (*domain.Moon, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc moonDoc
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMoonNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *MoonRepository) FindAll(ctx context.Context) ([]*domain.Moon, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *MoonRepository) FindByPlanetID(ctx context.Context, planetID int64) ([]*domain.Moon, error) {
	return r.findMany(ctx, bson.M{"planet_id": planetID})
}

func (r *MoonRepository) findMany(ctx context.Context, filter bson.M) ([]*domain.Moon, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []moonDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	moons := make([]*domain.Moon, len(docs))
	for i, d := range docs {
		moons[i] = d.toDomain()
	}
	return moons, nil
}

func (r *MoonRepository) CountByPlanetID(ctx context.Context, planetID int64) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.col.CountDocuments(ctx, bson.M{"planet_id": planetID})
}

func (r *MoonRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *MoonRepository) DeleteByID(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrMoonNotFound
	}
	return nil
}

// DeleteByPlanetID removes every moon owned by the planet. Used by the
// planet cascade delete.
func (r *MoonRepository) DeleteByPlanetID(ctx context.Context, planetID int64) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteMany(ctx, bson.M{"planet_id": planetID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// EnsureIndexes creates the unique name index and the planet reference index
// on the moons collection.
func (r *MoonRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "planet_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
