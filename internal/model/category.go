package model

import (
	"mime/multipart"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category is a top-level catalog grouping
type Category struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string             `bson:"name" json:"name"`
	Img       string             `bson:"img,omitempty" json:"img"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

// SubCategory belongs to one category
type SubCategory struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name       string             `bson:"name" json:"name"`
	CategoryID primitive.ObjectID `bson:"category_id" json:"categoryId"`
	CreatedAt  time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updatedAt"`
}

// SubCategoryDetail is a subcategory with its category populated
type SubCategoryDetail struct {
	ID        primitive.ObjectID `bson:"_id" json:"_id"`
	Name      string             `bson:"name" json:"name"`
	Category  *Ref               `bson:"category_id" json:"categoryId"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

// Brand belongs to one subcategory
type Brand struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name          string             `bson:"name" json:"name"`
	Img           string             `bson:"img,omitempty" json:"img"`
	SubCategoryID primitive.ObjectID `bson:"subcategory_id" json:"subcategoryId"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updatedAt"`
}

// BrandDetail is a brand with its subcategory populated
type BrandDetail struct {
	ID          primitive.ObjectID `bson:"_id" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Img         string             `bson:"img,omitempty" json:"img"`
	SubCategory *Ref               `bson:"subcategory_id" json:"subcategoryId"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}

// CategoryRequest is the multipart form for creating or updating a category
type CategoryRequest struct {
	Name string                `form:"name"`
	Img  *multipart.FileHeader `form:"img"`
}

// SubCategoryRequest is the payload for creating or updating a subcategory
type SubCategoryRequest struct {
	Name       string `json:"name"`
	CategoryID string `json:"categoryId" binding:"omitempty,objectid"`
}

// BrandRequest is the multipart form for creating or updating a brand
type BrandRequest struct {
	Name          string                `form:"name"`
	SubCategoryID string                `form:"subcategoryId" binding:"omitempty,objectid"`
	Img           *multipart.FileHeader `form:"img"`
}
