package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Ref is a populated reference to another catalog document
type Ref struct {
	ID   primitive.ObjectID `bson:"_id" json:"_id"`
	Name string             `bson:"name" json:"name"`
}

// VariantTypeRef is a populated reference to a variant type
type VariantTypeRef struct {
	ID   primitive.ObjectID `bson:"_id" json:"_id"`
	Name string             `bson:"name" json:"name"`
	Type string             `bson:"type" json:"type"`
}
