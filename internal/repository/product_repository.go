package repository

import (
	"context"

	"catalog-service/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductRepository defines the interface for product data operations
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	GetByID(ctx context.Context, id string) (*model.Product, error)
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id string) error

	// FindByIDs resolves a batch of products. Unknown ids are omitted.
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*model.Product, error)

	// ListDetails returns all products with every reference populated
	ListDetails(ctx context.Context) ([]*model.ProductDetail, error)
	GetDetail(ctx context.Context, id string) (*model.ProductDetail, error)
}
