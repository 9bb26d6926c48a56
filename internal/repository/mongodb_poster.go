package repository

import (
	"context"

	"catalog-service/internal/model"
	"catalog-service/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// mongodbPosterRepository implements PosterRepository using MongoDB
type mongodbPosterRepository struct {
	store mongoStore[model.Poster]
}

// NewPosterRepository creates a new MongoDB-based poster repository
func NewPosterRepository(db *mongo.Database) PosterRepository {
	return &mongodbPosterRepository{
		store: newMongoStore[model.Poster](db, database.PostersCollection, "poster"),
	}
}

func (r *mongodbPosterRepository) Create(ctx context.Context, poster *model.Poster) error {
	poster.CreatedAt = now()
	poster.UpdatedAt = poster.CreatedAt

	id, err := r.store.insert(ctx, poster)
	if err != nil {
		return err
	}
	poster.ID = id
	return nil
}

func (r *mongodbPosterRepository) List(ctx context.Context) ([]*model.Poster, error) {
	return r.store.find(ctx, bson.M{})
}

func (r *mongodbPosterRepository) GetByID(ctx context.Context, id string) (*model.Poster, error) {
	return r.store.getByID(ctx, id)
}

func (r *mongodbPosterRepository) Update(ctx context.Context, poster *model.Poster) error {
	poster.UpdatedAt = now()
	return r.store.replace(ctx, poster.ID, poster)
}

func (r *mongodbPosterRepository) Delete(ctx context.Context, id string) error {
	return r.store.delete(ctx, id)
}
