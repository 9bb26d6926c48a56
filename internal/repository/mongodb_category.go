package repository

import (
	"context"

	"catalog-service/internal/model"
	"catalog-service/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// mongodbCategoryRepository implements CategoryRepository using MongoDB
type mongodbCategoryRepository struct {
	store mongoStore[model.Category]
}

// NewCategoryRepository creates a new MongoDB-based category repository
func NewCategoryRepository(db *mongo.Database) CategoryRepository {
	return &mongodbCategoryRepository{
		store: newMongoStore[model.Category](db, database.CategoriesCollection, "category"),
	}
}

func (r *mongodbCategoryRepository) Create(ctx context.Context, category *model.Category) error {
	category.CreatedAt = now()
	category.UpdatedAt = category.CreatedAt

	id, err := r.store.insert(ctx, category)
	if err != nil {
		return err
	}
	category.ID = id
	return nil
}

func (r *mongodbCategoryRepository) List(ctx context.Context) ([]*model.Category, error) {
	return r.store.find(ctx, bson.M{})
}

func (r *mongodbCategoryRepository) GetByID(ctx context.Context, id string) (*model.Category, error) {
	return r.store.getByID(ctx, id)
}

func (r *mongodbCategoryRepository) Update(ctx context.Context, category *model.Category) error {
	category.UpdatedAt = now()
	return r.store.replace(ctx, category.ID, category)
}

func (r *mongodbCategoryRepository) Delete(ctx context.Context, id string) error {
	return r.store.delete(ctx, id)
}

// mongodbSubCategoryRepository implements SubCategoryRepository using MongoDB
type mongodbSubCategoryRepository struct {
	store mongoStore[model.SubCategory]
}

// NewSubCategoryRepository creates a new MongoDB-based subcategory repository
func NewSubCategoryRepository(db *mongo.Database) SubCategoryRepository {
	return &mongodbSubCategoryRepository{
		store: newMongoStore[model.SubCategory](db, database.SubCategoriesCollection, "subcategory"),
	}
}

func (r *mongodbSubCategoryRepository) Create(ctx context.Context, subCategory *model.SubCategory) error {
	subCategory.CreatedAt = now()
	subCategory.UpdatedAt = subCategory.CreatedAt

	id, err := r.store.insert(ctx, subCategory)
	if err != nil {
		return err
	}
	subCategory.ID = id
	return nil
}

func (r *mongodbSubCategoryRepository) GetByID(ctx context.Context, id string) (*model.SubCategory, error) {
	return r.store.getByID(ctx, id)
}

func (r *mongodbSubCategoryRepository) Update(ctx context.Context, subCategory *model.SubCategory) error {
	subCategory.UpdatedAt = now()
	return r.store.replace(ctx, subCategory.ID, subCategory)
}

func (r *mongodbSubCategoryRepository) Delete(ctx context.Context, id string) error {
	return r.store.delete(ctx, id)
}

func (r *mongodbSubCategoryRepository) ListDetails(ctx context.Context) ([]*model.SubCategoryDetail, error) {
	return populateDetails[model.SubCategoryDetail](ctx, r.store, "", r.lookups()...)
}

func (r *mongodbSubCategoryRepository) GetDetail(ctx context.Context, id string) (*model.SubCategoryDetail, error) {
	details, err := populateDetails[model.SubCategoryDetail](ctx, r.store, id, r.lookups()...)
	if err != nil {
		return nil, err
	}
	return details[0], nil
}

func (r *mongodbSubCategoryRepository) lookups() []bson.D {
	return lookupOne(database.CategoriesCollection, "category_id")
}

// mongodbBrandRepository implements BrandRepository using MongoDB
type mongodbBrandRepository struct {
	store mongoStore[model.Brand]
}

// NewBrandRepository creates a new MongoDB-based brand repository
func NewBrandRepository(db *mongo.Database) BrandRepository {
	return &mongodbBrandRepository{
		store: newMongoStore[model.Brand](db, database.BrandsCollection, "brand"),
	}
}

func (r *mongodbBrandRepository) Create(ctx context.Context, brand *model.Brand) error {
	brand.CreatedAt = now()
	brand.UpdatedAt = brand.CreatedAt

	id, err := r.store.insert(ctx, brand)
	if err != nil {
		return err
	}
	brand.ID = id
	return nil
}

func (r *mongodbBrandRepository) GetByID(ctx context.Context, id string) (*model.Brand, error) {
	return r.store.getByID(ctx, id)
}

func (r *mongodbBrandRepository) Update(ctx context.Context, brand *model.Brand) error {
	brand.UpdatedAt = now()
	return r.store.replace(ctx, brand.ID, brand)
}

func (r *mongodbBrandRepository) Delete(ctx context.Context, id string) error {
	return r.store.delete(ctx, id)
}

func (r *mongodbBrandRepository) ListDetails(ctx context.Context) ([]*model.BrandDetail, error) {
	return populateDetails[model.BrandDetail](ctx, r.store, "", r.lookups()...)
}

func (r *mongodbBrandRepository) GetDetail(ctx context.Context, id string) (*model.BrandDetail, error) {
	details, err := populateDetails[model.BrandDetail](ctx, r.store, id, r.lookups()...)
	if err != nil {
		return nil, err
	}
	return details[0], nil
}

func (r *mongodbBrandRepository) lookups() []bson.D {
	return lookupOne(database.SubCategoriesCollection, "subcategory_id")
}
