package repository

import (
	"context"

	"catalog-service/internal/model"
)

// CategoryRepository defines the interface for category data operations
type CategoryRepository interface {
	Create(ctx context.Context, category *model.Category) error
	List(ctx context.Context) ([]*model.Category, error)
	GetByID(ctx context.Context, id string) (*model.Category, error)
	Update(ctx context.Context, category *model.Category) error
	Delete(ctx context.Context, id string) error
}

// SubCategoryRepository defines the interface for subcategory data operations
type SubCategoryRepository interface {
	Create(ctx context.Context, subCategory *model.SubCategory) error
	GetByID(ctx context.Context, id string) (*model.SubCategory, error)
	Update(ctx context.Context, subCategory *model.SubCategory) error
	Delete(ctx context.Context, id string) error

	// ListDetails returns all subcategories with their category populated
	ListDetails(ctx context.Context) ([]*model.SubCategoryDetail, error)
	GetDetail(ctx context.Context, id string) (*model.SubCategoryDetail, error)
}

// BrandRepository defines the interface for brand data operations
type BrandRepository interface {
	Create(ctx context.Context, brand *model.Brand) error
	GetByID(ctx context.Context, id string) (*model.Brand, error)
	Update(ctx context.Context, brand *model.Brand) error
	Delete(ctx context.Context, id string) error

	// ListDetails returns all brands with their subcategory populated
	ListDetails(ctx context.Context) ([]*model.BrandDetail, error)
	GetDetail(ctx context.Context, id string) (*model.BrandDetail, error)
}

// VariantTypeRepository defines the interface for variant type data operations
type VariantTypeRepository interface {
	Create(ctx context.Context, variantType *model.VariantType) error
	List(ctx context.Context) ([]*model.VariantType, error)
	GetByID(ctx context.Context, id string) (*model.VariantType, error)
	Update(ctx context.Context, variantType *model.VariantType) error
	Delete(ctx context.Context, id string) error
}

// VariantRepository defines the interface for variant data operations
type VariantRepository interface {
	Create(ctx context.Context, variant *model.Variant) error
	GetByID(ctx context.Context, id string) (*model.Variant, error)
	Update(ctx context.Context, variant *model.Variant) error
	Delete(ctx context.Context, id string) error

	// ListDetails returns all variants with their variant type populated
	ListDetails(ctx context.Context) ([]*model.VariantDetail, error)
	GetDetail(ctx context.Context, id string) (*model.VariantDetail, error)
}

// PosterRepository defines the interface for poster data operations
type PosterRepository interface {
	Create(ctx context.Context, poster *model.Poster) error
	List(ctx context.Context) ([]*model.Poster, error)
	GetByID(ctx context.Context, id string) (*model.Poster, error)
	Update(ctx context.Context, poster *model.Poster) error
	Delete(ctx context.Context, id string) error
}
