package model

import (
	"mime/multipart"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Poster is a promotional banner shown by storefront clients
type Poster struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title     string             `bson:"title" json:"title"`
	Img       string             `bson:"img,omitempty" json:"img"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

type PosterRequest struct {
	Title string                `form:"title"`
	Img   *multipart.FileHeader `form:"img"`
}
