package model

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DiscountType string

const (
	DiscountFixed      DiscountType = "fixed"
	DiscountPercentage DiscountType = "percentage"
)

type CouponStatus string

const (
	CouponActive   CouponStatus = "active"
	CouponInactive CouponStatus = "inactive"
)

// Coupon represents a discount code. Each applicable_* field narrows the
// orders it applies to; a nil scope places no restriction on that axis.
type Coupon struct {
	ID                    primitive.ObjectID  `bson:"_id,omitempty" json:"_id"`
	CouponCode            string              `bson:"coupon_code" json:"couponCode"`
	DiscountType          DiscountType        `bson:"discount_type" json:"discountType"`
	DiscountAmount        decimal.Decimal     `bson:"discount_amount" json:"discountAmount"`
	MinimumPurchaseAmount decimal.Decimal     `bson:"minimum_purchase_amount" json:"minimumPurchaseAmount"`
	EndDate               time.Time           `bson:"end_date" json:"endDate"`
	Status                CouponStatus        `bson:"status" json:"status"`
	ApplicableCategory    *primitive.ObjectID `bson:"applicable_category,omitempty" json:"applicableCategory,omitempty"`
	ApplicableSubCategory *primitive.ObjectID `bson:"applicable_subcategory,omitempty" json:"applicableSubCategory,omitempty"`
	ApplicableProduct     *primitive.ObjectID `bson:"applicable_product,omitempty" json:"applicableProduct,omitempty"`
	CreatedAt             time.Time           `bson:"created_at" json:"createdAt"`
	UpdatedAt             time.Time           `bson:"updated_at" json:"updatedAt"`
}

// Unscoped reports whether the coupon applies to every order.
func (c *Coupon) Unscoped() bool {
	return c.ApplicableCategory == nil && c.ApplicableSubCategory == nil && c.ApplicableProduct == nil
}

// CouponDetail is a coupon with its scopes populated
type CouponDetail struct {
	ID                    primitive.ObjectID `bson:"_id" json:"_id"`
	CouponCode            string             `bson:"coupon_code" json:"couponCode"`
	DiscountType          DiscountType       `bson:"discount_type" json:"discountType"`
	DiscountAmount        decimal.Decimal    `bson:"discount_amount" json:"discountAmount"`
	MinimumPurchaseAmount decimal.Decimal    `bson:"minimum_purchase_amount" json:"minimumPurchaseAmount"`
	EndDate               time.Time          `bson:"end_date" json:"endDate"`
	Status                CouponStatus       `bson:"status" json:"status"`
	ApplicableCategory    *Ref               `bson:"applicable_category" json:"applicableCategory"`
	ApplicableSubCategory *Ref               `bson:"applicable_subcategory" json:"applicableSubCategory"`
	ApplicableProduct     *Ref               `bson:"applicable_product" json:"applicableProduct"`
	CreatedAt             time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt             time.Time          `bson:"updated_at" json:"updatedAt"`
}

// CouponRequest is the payload for creating or replacing a coupon
type CouponRequest struct {
	CouponCode            string          `json:"couponCode" binding:"required"`
	DiscountType          DiscountType    `json:"discountType" binding:"required,oneof=fixed percentage"`
	DiscountAmount        decimal.Decimal `json:"discountAmount"`
	MinimumPurchaseAmount decimal.Decimal `json:"minimumPurchaseAmount"`
	EndDate               Date            `json:"endDate"`
	Status                CouponStatus    `json:"status" binding:"omitempty,oneof=active inactive"`
	ApplicableCategory    string          `json:"applicableCategory" binding:"omitempty,objectid"`
	ApplicableSubCategory string          `json:"applicableSubCategory" binding:"omitempty,objectid"`
	ApplicableProduct     string          `json:"applicableProduct" binding:"omitempty,objectid"`
}

// CheckCouponRequest asks whether a coupon applies to a candidate order
type CheckCouponRequest struct {
	CouponCode     string          `json:"couponCode" binding:"required"`
	ProductIDs     []string        `json:"productIds"`
	PurchaseAmount decimal.Decimal `json:"purchaseAmount"`
}

// CheckCouponResponse is the outcome of a coupon check
type CheckCouponResponse struct {
	Applicable bool    `json:"applicable"`
	Message    string  `json:"message"`
	Coupon     *Coupon `json:"coupon,omitempty"`
}
