package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"catalog-service/internal/model"
	"catalog-service/internal/repository"
	apperrors "catalog-service/pkg/errors"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Coupon check outcomes
const (
	MsgCouponNotFound        = "Coupon not found."
	MsgCouponExpired         = "Coupon is expired."
	MsgCouponInactive        = "Coupon is inactive."
	MsgMinimumNotMet         = "Minimum purchase amount not met."
	MsgApplicableForAll      = "Coupon is applicable for all orders."
	MsgApplicableForProducts = "Coupon is applicable for the provided products."
	MsgNotApplicable         = "Coupon is not applicable for the provided products."
)

var maxPercentage = decimal.NewFromInt(100)

// CouponService handles business logic for coupons
type CouponService struct {
	couponRepo      repository.CouponRepository
	productRepo     repository.ProductRepository
	categoryRepo    repository.CategoryRepository
	subCategoryRepo repository.SubCategoryRepository
	now             func() time.Time
}

// NewCouponService creates a new coupon service
func NewCouponService(
	couponRepo repository.CouponRepository,
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	subCategoryRepo repository.SubCategoryRepository,
) *CouponService {
	return &CouponService{
		couponRepo:      couponRepo,
		productRepo:     productRepo,
		categoryRepo:    categoryRepo,
		subCategoryRepo: subCategoryRepo,
		now:             time.Now,
	}
}

// CheckCoupon decides whether a coupon applies to the given order.
// Business rejections come back as a negative response with a nil error;
// a non-nil error always means the store could not be read.
func (s *CouponService) CheckCoupon(ctx context.Context, req *model.CheckCouponRequest) (*model.CheckCouponResponse, error) {
	coupon, err := s.couponRepo.FindByCode(ctx, req.CouponCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return rejected(MsgCouponNotFound), nil
		}
		return nil, fmt.Errorf("find coupon: %w", err)
	}

	// valid through the end date instant itself
	if coupon.EndDate.Before(s.now()) {
		return rejected(MsgCouponExpired), nil
	}
	if coupon.Status != model.CouponActive {
		return rejected(MsgCouponInactive), nil
	}
	if coupon.MinimumPurchaseAmount.IsPositive() && req.PurchaseAmount.LessThan(coupon.MinimumPurchaseAmount) {
		return rejected(MsgMinimumNotMet), nil
	}
	if coupon.Unscoped() {
		return accepted(MsgApplicableForAll, coupon), nil
	}

	ids, err := uniqueIDs(req.ProductIDs)
	if err != nil {
		return nil, err
	}
	// a scoped coupon needs at least one product to match against
	if len(ids) == 0 {
		return rejected(MsgNotApplicable), nil
	}

	products, err := s.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	// unknown product ids cannot satisfy a scope
	if len(products) != len(ids) {
		return rejected(MsgNotApplicable), nil
	}

	for _, product := range products {
		if !inScope(coupon, product) {
			return rejected(MsgNotApplicable), nil
		}
	}
	return accepted(MsgApplicableForProducts, coupon), nil
}

// inScope reports whether the product satisfies every scope set on the coupon
func inScope(coupon *model.Coupon, product *model.Product) bool {
	if coupon.ApplicableCategory != nil && *coupon.ApplicableCategory != product.CategoryID {
		return false
	}
	if coupon.ApplicableSubCategory != nil && *coupon.ApplicableSubCategory != product.SubCategoryID {
		return false
	}
	if coupon.ApplicableProduct != nil && *coupon.ApplicableProduct != product.ID {
		return false
	}
	return true
}

func uniqueIDs(values []string) ([]primitive.ObjectID, error) {
	seen := make(map[primitive.ObjectID]bool, len(values))
	ids := make([]primitive.ObjectID, 0, len(values))
	for _, v := range values {
		oid, err := parseID("productIds", v)
		if err != nil {
			return nil, err
		}
		if !seen[oid] {
			seen[oid] = true
			ids = append(ids, oid)
		}
	}
	return ids, nil
}

func rejected(message string) *model.CheckCouponResponse {
	return &model.CheckCouponResponse{Applicable: false, Message: message}
}

func accepted(message string, coupon *model.Coupon) *model.CheckCouponResponse {
	return &model.CheckCouponResponse{Applicable: true, Message: message, Coupon: coupon}
}

// CreateCoupon validates and stores a new coupon
func (s *CouponService) CreateCoupon(ctx context.Context, req *model.CouponRequest) (*model.Coupon, error) {
	coupon, err := s.buildCoupon(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := s.couponRepo.Create(ctx, coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

// ListCoupons returns every coupon with its scopes populated
func (s *CouponService) ListCoupons(ctx context.Context) ([]*model.CouponDetail, error) {
	return s.couponRepo.ListDetails(ctx)
}

// GetCoupon returns one coupon with its scopes populated
func (s *CouponService) GetCoupon(ctx context.Context, id string) (*model.CouponDetail, error) {
	return s.couponRepo.GetDetail(ctx, id)
}

// UpdateCoupon replaces every editable field of an existing coupon
func (s *CouponService) UpdateCoupon(ctx context.Context, id string, req *model.CouponRequest) (*model.Coupon, error) {
	existing, err := s.couponRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	coupon, err := s.buildCoupon(ctx, req)
	if err != nil {
		return nil, err
	}
	coupon.ID = existing.ID
	coupon.CreatedAt = existing.CreatedAt

	if err := s.couponRepo.Update(ctx, coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

// DeleteCoupon removes a coupon
func (s *CouponService) DeleteCoupon(ctx context.Context, id string) error {
	return s.couponRepo.Delete(ctx, id)
}

func (s *CouponService) buildCoupon(ctx context.Context, req *model.CouponRequest) (*model.Coupon, error) {
	code, err := required("couponCode", req.CouponCode)
	if err != nil {
		return nil, err
	}

	switch req.DiscountType {
	case model.DiscountFixed, model.DiscountPercentage:
	default:
		return nil, apperrors.Invalid("discountType must be one of: fixed, percentage")
	}
	if !req.DiscountAmount.IsPositive() {
		return nil, apperrors.Invalid("discountAmount must be greater than 0")
	}
	if req.DiscountType == model.DiscountPercentage && req.DiscountAmount.GreaterThan(maxPercentage) {
		return nil, apperrors.Invalid("percentage discountAmount cannot exceed 100")
	}
	if req.MinimumPurchaseAmount.IsNegative() {
		return nil, apperrors.Invalid("minimumPurchaseAmount cannot be negative")
	}
	if req.EndDate.IsZero() {
		return nil, apperrors.Invalid("endDate is required")
	}

	status := req.Status
	switch status {
	case "":
		status = model.CouponActive
	case model.CouponActive, model.CouponInactive:
	default:
		return nil, apperrors.Invalid("status must be one of: active, inactive")
	}

	category, err := ensureOptionalRef(ctx, "applicableCategory", req.ApplicableCategory, s.categoryRepo.GetByID)
	if err != nil {
		return nil, err
	}
	subCategory, err := ensureOptionalRef(ctx, "applicableSubCategory", req.ApplicableSubCategory, s.subCategoryRepo.GetByID)
	if err != nil {
		return nil, err
	}
	product, err := ensureOptionalRef(ctx, "applicableProduct", req.ApplicableProduct, s.productRepo.GetByID)
	if err != nil {
		return nil, err
	}

	return &model.Coupon{
		CouponCode:            code,
		DiscountType:          req.DiscountType,
		DiscountAmount:        req.DiscountAmount,
		MinimumPurchaseAmount: req.MinimumPurchaseAmount,
		EndDate:               req.EndDate.UTC(),
		Status:                status,
		ApplicableCategory:    category,
		ApplicableSubCategory: subCategory,
		ApplicableProduct:     product,
	}, nil
}
