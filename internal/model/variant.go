package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VariantType groups variants, e.g. "Size" of type "clothing"
type VariantType struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string             `bson:"name" json:"name"`
	Type      string             `bson:"type" json:"type"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

// Variant is one value of a variant type, e.g. "XL"
type Variant struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name          string             `bson:"name" json:"name"`
	VariantTypeID primitive.ObjectID `bson:"variant_type_id" json:"variantTypeId"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updatedAt"`
}

// VariantDetail is a variant with its variant type populated
type VariantDetail struct {
	ID          primitive.ObjectID `bson:"_id" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	VariantType *VariantTypeRef    `bson:"variant_type_id" json:"variantTypeId"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}

type VariantTypeRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type VariantRequest struct {
	Name          string `json:"name"`
	VariantTypeID string `json:"variantTypeId" binding:"omitempty,objectid"`
}
