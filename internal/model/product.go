package model

import (
	"mime/multipart"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaxProductImages caps the images accepted per product upload
const MaxProductImages = 10

// ProductImage is one uploaded product picture
type ProductImage struct {
	Image int64  `bson:"image" json:"image"`
	URL   string `bson:"url" json:"url"`
}

// Product represents a sellable catalog item
type Product struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Name          string               `bson:"name" json:"name"`
	Description   string               `bson:"description" json:"description"`
	Quantity      int                  `bson:"quantity" json:"quantity"`
	Price         decimal.Decimal      `bson:"price" json:"price"`
	OfferPrice    *decimal.Decimal     `bson:"offer_price,omitempty" json:"offerPrice,omitempty"`
	CategoryID    primitive.ObjectID   `bson:"category_id" json:"proCategoryId"`
	SubCategoryID primitive.ObjectID   `bson:"subcategory_id" json:"proSubCategoryId"`
	BrandID       *primitive.ObjectID  `bson:"brand_id,omitempty" json:"proBrandId,omitempty"`
	VariantTypeID *primitive.ObjectID  `bson:"variant_type_id,omitempty" json:"proVariantTypeId,omitempty"`
	VariantIDs    []primitive.ObjectID `bson:"variant_ids" json:"proVariantId"`
	Images        []ProductImage       `bson:"images" json:"images"`
	CreatedAt     time.Time            `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time            `bson:"updated_at" json:"updatedAt"`
}

// ProductDetail is a product with every reference populated
type ProductDetail struct {
	ID          primitive.ObjectID `bson:"_id" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Quantity    int                `bson:"quantity" json:"quantity"`
	Price       decimal.Decimal    `bson:"price" json:"price"`
	OfferPrice  *decimal.Decimal   `bson:"offer_price,omitempty" json:"offerPrice,omitempty"`
	Category    *Ref               `bson:"category_id" json:"proCategoryId"`
	SubCategory *Ref               `bson:"subcategory_id" json:"proSubCategoryId"`
	Brand       *Ref               `bson:"brand_id" json:"proBrandId"`
	VariantType *VariantTypeRef    `bson:"variant_type_id" json:"proVariantTypeId"`
	Variants    []Ref              `bson:"variant_ids" json:"proVariantId"`
	Images      []ProductImage     `bson:"images" json:"images"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}

// ProductRequest is the multipart form for creating or updating a product.
// Prices are decimal strings.
type ProductRequest struct {
	Name          string                  `form:"name"`
	Description   string                  `form:"description"`
	Quantity      *int                    `form:"quantity"`
	Price         string                  `form:"price"`
	OfferPrice    string                  `form:"offerPrice"`
	CategoryID    string                  `form:"proCategoryId" binding:"omitempty,objectid"`
	SubCategoryID string                  `form:"proSubCategoryId" binding:"omitempty,objectid"`
	BrandID       string                  `form:"proBrandId" binding:"omitempty,objectid"`
	VariantTypeID string                  `form:"proVariantTypeId" binding:"omitempty,objectid"`
	VariantIDs    []string                `form:"proVariantId" binding:"dive,objectid"`
	Images        []*multipart.FileHeader `form:"images"`
}
