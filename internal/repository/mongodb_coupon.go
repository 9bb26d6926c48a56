package repository

import (
	"context"

	"catalog-service/internal/model"
	"catalog-service/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// mongodbCouponRepository implements CouponRepository using MongoDB
type mongodbCouponRepository struct {
	store mongoStore[model.Coupon]
}

// NewCouponRepository creates a new MongoDB-based coupon repository
func NewCouponRepository(db *mongo.Database) CouponRepository {
	return &mongodbCouponRepository{
		store: newMongoStore[model.Coupon](db, database.CouponsCollection, "coupon"),
	}
}

// Create creates a new coupon. The unique index on coupon_code rejects duplicates
func (r *mongodbCouponRepository) Create(ctx context.Context, coupon *model.Coupon) error {
	coupon.CreatedAt = now()
	coupon.UpdatedAt = coupon.CreatedAt

	id, err := r.store.insert(ctx, coupon)
	if err != nil {
		return err
	}
	coupon.ID = id
	return nil
}

// FindByCode retrieves a coupon by its code
func (r *mongodbCouponRepository) FindByCode(ctx context.Context, code string) (*model.Coupon, error) {
	return r.store.findOne(ctx, bson.M{"coupon_code": code})
}

func (r *mongodbCouponRepository) GetByID(ctx context.Context, id string) (*model.Coupon, error) {
	return r.store.getByID(ctx, id)
}

func (r *mongodbCouponRepository) Update(ctx context.Context, coupon *model.Coupon) error {
	coupon.UpdatedAt = now()
	return r.store.replace(ctx, coupon.ID, coupon)
}

func (r *mongodbCouponRepository) Delete(ctx context.Context, id string) error {
	return r.store.delete(ctx, id)
}

func (r *mongodbCouponRepository) ListDetails(ctx context.Context) ([]*model.CouponDetail, error) {
	return populateDetails[model.CouponDetail](ctx, r.store, "", r.lookups()...)
}

func (r *mongodbCouponRepository) GetDetail(ctx context.Context, id string) (*model.CouponDetail, error) {
	details, err := populateDetails[model.CouponDetail](ctx, r.store, id, r.lookups()...)
	if err != nil {
		return nil, err
	}
	return details[0], nil
}

func (r *mongodbCouponRepository) lookups() []bson.D {
	var stages []bson.D
	stages = append(stages, lookupOne(database.CategoriesCollection, "applicable_category")...)
	stages = append(stages, lookupOne(database.SubCategoriesCollection, "applicable_subcategory")...)
	return append(stages, lookupOne(database.ProductsCollection, "applicable_product")...)
}
