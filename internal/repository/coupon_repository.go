package repository

import (
	"context"

	"catalog-service/internal/model"
)

// CouponRepository defines the interface for coupon data operations
type CouponRepository interface {
	// Create inserts a coupon. Returns ErrAlreadyExists if the code is taken
	Create(ctx context.Context, coupon *model.Coupon) error

	// FindByCode retrieves a coupon by its code. Returns ErrNotFound if absent
	FindByCode(ctx context.Context, code string) (*model.Coupon, error)

	GetByID(ctx context.Context, id string) (*model.Coupon, error)
	Update(ctx context.Context, coupon *model.Coupon) error
	Delete(ctx context.Context, id string) error

	// ListDetails returns all coupons with their scopes populated
	ListDetails(ctx context.Context) ([]*model.CouponDetail, error)
	GetDetail(ctx context.Context, id string) (*model.CouponDetail, error)
}
