package repository

import (
	"context"

	"catalog-service/internal/model"
	"catalog-service/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// mongodbProductRepository implements ProductRepository using MongoDB
type mongodbProductRepository struct {
	store mongoStore[model.Product]
}

// NewProductRepository creates a new MongoDB-based product repository
func NewProductRepository(db *mongo.Database) ProductRepository {
	return &mongodbProductRepository{
		store: newMongoStore[model.Product](db, database.ProductsCollection, "product"),
	}
}

func (r *mongodbProductRepository) Create(ctx context.Context, product *model.Product) error {
	product.CreatedAt = now()
	product.UpdatedAt = product.CreatedAt

	id, err := r.store.insert(ctx, product)
	if err != nil {
		return err
	}
	product.ID = id
	return nil
}

func (r *mongodbProductRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	return r.store.getByID(ctx, id)
}

func (r *mongodbProductRepository) Update(ctx context.Context, product *model.Product) error {
	product.UpdatedAt = now()
	return r.store.replace(ctx, product.ID, product)
}

func (r *mongodbProductRepository) Delete(ctx context.Context, id string) error {
	return r.store.delete(ctx, id)
}

// FindByIDs resolves a batch of products with a single $in query
func (r *mongodbProductRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*model.Product, error) {
	if len(ids) == 0 {
		return []*model.Product{}, nil
	}
	return r.store.find(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (r *mongodbProductRepository) ListDetails(ctx context.Context) ([]*model.ProductDetail, error) {
	return populateDetails[model.ProductDetail](ctx, r.store, "", r.lookups()...)
}

func (r *mongodbProductRepository) GetDetail(ctx context.Context, id string) (*model.ProductDetail, error) {
	details, err := populateDetails[model.ProductDetail](ctx, r.store, id, r.lookups()...)
	if err != nil {
		return nil, err
	}
	return details[0], nil
}

func (r *mongodbProductRepository) lookups() []bson.D {
	var stages []bson.D
	stages = append(stages, lookupOne(database.CategoriesCollection, "category_id")...)
	stages = append(stages, lookupOne(database.SubCategoriesCollection, "subcategory_id")...)
	stages = append(stages, lookupOne(database.BrandsCollection, "brand_id")...)
	stages = append(stages, lookupOne(database.VariantTypesCollection, "variant_type_id")...)
	return append(stages, lookupMany(database.VariantsCollection, "variant_ids"))
}
