package repository

import (
	"context"

	"catalog-service/internal/model"
	"catalog-service/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// mongodbVariantTypeRepository implements VariantTypeRepository using MongoDB
type mongodbVariantTypeRepository struct {
	store mongoStore[model.VariantType]
}

// NewVariantTypeRepository creates a new MongoDB-based variant type repository
func NewVariantTypeRepository(db *mongo.Database) VariantTypeRepository {
	return &mongodbVariantTypeRepository{
		store: newMongoStore[model.VariantType](db, database.VariantTypesCollection, "variant type"),
	}
}

func (r *mongodbVariantTypeRepository) Create(ctx context.Context, variantType *model.VariantType) error {
	variantType.CreatedAt = now()
	variantType.UpdatedAt = variantType.CreatedAt

	id, err := r.store.insert(ctx, variantType)
	if err != nil {
		return err
	}
	variantType.ID = id
	return nil
}

func (r *mongodbVariantTypeRepository) List(ctx context.Context) ([]*model.VariantType, error) {
	return r.store.find(ctx, bson.M{})
}

func (r *mongodbVariantTypeRepository) GetByID(ctx context.Context, id string) (*model.VariantType, error) {
	return r.store.getByID(ctx, id)
}

func (r *mongodbVariantTypeRepository) Update(ctx context.Context, variantType *model.VariantType) error {
	variantType.UpdatedAt = now()
	return r.store.replace(ctx, variantType.ID, variantType)
}

func (r *mongodbVariantTypeRepository) Delete(ctx context.Context, id string) error {
	return r.store.delete(ctx, id)
}

// mongodbVariantRepository implements VariantRepository using MongoDB
type mongodbVariantRepository struct {
	store mongoStore[model.Variant]
}

// NewVariantRepository creates a new MongoDB-based variant repository
func NewVariantRepository(db *mongo.Database) VariantRepository {
	return &mongodbVariantRepository{
		store: newMongoStore[model.Variant](db, database.VariantsCollection, "variant"),
	}
}

func (r *mongodbVariantRepository) Create(ctx context.Context, variant *model.Variant) error {
	variant.CreatedAt = now()
	variant.UpdatedAt = variant.CreatedAt

	id, err := r.store.insert(ctx, variant)
	if err != nil {
		return err
	}
	variant.ID = id
	return nil
}

func (r *mongodbVariantRepository) GetByID(ctx context.Context, id string) (*model.Variant, error) {
	return r.store.getByID(ctx, id)
}

func (r *mongodbVariantRepository) Update(ctx context.Context, variant *model.Variant) error {
	variant.UpdatedAt = now()
	return r.store.replace(ctx, variant.ID, variant)
}

func (r *mongodbVariantRepository) Delete(ctx context.Context, id string) error {
	return r.store.delete(ctx, id)
}

func (r *mongodbVariantRepository) ListDetails(ctx context.Context) ([]*model.VariantDetail, error) {
	return populateDetails[model.VariantDetail](ctx, r.store, "", r.lookups()...)
}

func (r *mongodbVariantRepository) GetDetail(ctx context.Context, id string) (*model.VariantDetail, error) {
	details, err := populateDetails[model.VariantDetail](ctx, r.store, id, r.lookups()...)
	if err != nil {
		return nil, err
	}
	return details[0], nil
}

func (r *mongodbVariantRepository) lookups() []bson.D {
	return lookupOne(database.VariantTypesCollection, "variant_type_id")
}
