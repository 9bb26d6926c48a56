package memory

import (
	"context"

	"catalog-service/internal/model"
	apperrors "catalog-service/pkg/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type couponRepo struct{ db *DB }

func (r *couponRepo) Create(_ context.Context, coupon *model.Coupon) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if r.codeTaken(coupon.CouponCode, primitive.NilObjectID) {
		return duplicate("coupon")
	}

	coupon.ID = primitive.NewObjectID()
	coupon.CreatedAt = timestamp()
	coupon.UpdatedAt = coupon.CreatedAt
	r.db.coupons.insert(coupon.ID, *coupon)
	return nil
}

func (r *couponRepo) FindByCode(_ context.Context, code string) (*model.Coupon, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, c := range r.db.coupons.rows {
		if c.CouponCode == code {
			return &c, nil
		}
	}
	return nil, apperrors.NotFound("coupon")
}

func (r *couponRepo) GetByID(_ context.Context, id string) (*model.Coupon, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return r.db.coupons.get(id)
}

func (r *couponRepo) Update(_ context.Context, coupon *model.Coupon) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if r.codeTaken(coupon.CouponCode, coupon.ID) {
		return duplicate("coupon")
	}
	coupon.UpdatedAt = timestamp()
	return r.db.coupons.replace(coupon.ID, *coupon)
}

func (r *couponRepo) Delete(_ context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return r.db.coupons.remove(id)
}

func (r *couponRepo) ListDetails(_ context.Context) ([]*model.CouponDetail, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	coupons := r.db.coupons.all()
	details := make([]*model.CouponDetail, 0, len(coupons))
	for _, c := range coupons {
		details = append(details, r.detail(c))
	}
	return details, nil
}

func (r *couponRepo) GetDetail(_ context.Context, id string) (*model.CouponDetail, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	c, err := r.db.coupons.get(id)
	if err != nil {
		return nil, err
	}
	return r.detail(c), nil
}

// codeTaken reports whether another coupon already uses code
func (r *couponRepo) codeTaken(code string, self primitive.ObjectID) bool {
	for id, c := range r.db.coupons.rows {
		if c.CouponCode == code && id != self {
			return true
		}
	}
	return false
}

func (r *couponRepo) detail(c *model.Coupon) *model.CouponDetail {
	return &model.CouponDetail{
		ID:                    c.ID,
		CouponCode:            c.CouponCode,
		DiscountType:          c.DiscountType,
		DiscountAmount:        c.DiscountAmount,
		MinimumPurchaseAmount: c.MinimumPurchaseAmount,
		EndDate:               c.EndDate,
		Status:                c.Status,
		ApplicableCategory:    ref(r.db.categories, c.ApplicableCategory, categoryName),
		ApplicableSubCategory: ref(r.db.subCategories, c.ApplicableSubCategory, subCategoryName),
		ApplicableProduct:     ref(r.db.products, c.ApplicableProduct, func(p *model.Product) string { return p.Name }),
		CreatedAt:             c.CreatedAt,
		UpdatedAt:             c.UpdatedAt,
	}
}
