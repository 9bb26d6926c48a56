package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	apperrors "catalog-service/pkg/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoStore holds the operations every catalog collection shares.
// T is the stored document type.
type mongoStore[T any] struct {
	collection *mongo.Collection
	entity     string
}

func newMongoStore[T any](db *mongo.Database, collection, entity string) mongoStore[T] {
	return mongoStore[T]{
		collection: db.Collection(collection),
		entity:     entity,
	}
}

// ObjectID parses a hex identifier, reporting ErrInvalidID on failure
func ObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", apperrors.ErrInvalidID, id)
	}
	return oid, nil
}

func (s mongoStore[T]) insert(ctx context.Context, doc any) (primitive.ObjectID, error) {
	result, err := s.collection.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, fmt.Errorf("%s %w", s.entity, apperrors.ErrAlreadyExists)
		}
		return primitive.NilObjectID, fmt.Errorf("failed to insert %s: %w", s.entity, err)
	}

	oid, _ := result.InsertedID.(primitive.ObjectID)
	return oid, nil
}

func (s mongoStore[T]) findOne(ctx context.Context, filter bson.M) (*T, error) {
	var doc T
	err := s.collection.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFound(s.entity)
		}
		return nil, fmt.Errorf("failed to find %s: %w", s.entity, err)
	}
	return &doc, nil
}

func (s mongoStore[T]) getByID(ctx context.Context, id string) (*T, error) {
	oid, err := ObjectID(id)
	if err != nil {
		return nil, err
	}
	return s.findOne(ctx, bson.M{"_id": oid})
}

func (s mongoStore[T]) find(ctx context.Context, filter bson.M) ([]*T, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", s.entity, err)
	}
	defer cursor.Close(ctx)

	docs := []*T{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", s.entity, err)
	}
	return docs, nil
}

// replace overwrites the stored document with the same _id
func (s mongoStore[T]) replace(ctx context.Context, id primitive.ObjectID, doc any) error {
	result, err := s.collection.ReplaceOne(ctx, bson.M{"_id": id}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%s %w", s.entity, apperrors.ErrAlreadyExists)
		}
		return fmt.Errorf("failed to update %s: %w", s.entity, err)
	}
	if result.MatchedCount == 0 {
		return apperrors.NotFound(s.entity)
	}
	return nil
}

func (s mongoStore[T]) delete(ctx context.Context, id string) error {
	oid, err := ObjectID(id)
	if err != nil {
		return err
	}

	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", s.entity, err)
	}
	if result.DeletedCount == 0 {
		return apperrors.NotFound(s.entity)
	}
	return nil
}

// aggregate runs a pipeline and decodes every result into V
func aggregate[V any](ctx context.Context, collection *mongo.Collection, pipeline mongo.Pipeline) ([]*V, error) {
	cursor, err := collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := []*V{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// populateDetails runs the lookup stages, optionally restricted to one
// document, and decodes the results into V.
func populateDetails[V any, T any](ctx context.Context, s mongoStore[T], id string, lookups ...bson.D) ([]*V, error) {
	pipeline := mongo.Pipeline{}
	if id != "" {
		oid, err := ObjectID(id)
		if err != nil {
			return nil, err
		}
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.M{"_id": oid}}})
	}
	pipeline = append(pipeline, lookups...)
	pipeline = append(pipeline, bson.D{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: 1}}}})

	docs, err := aggregate[V](ctx, s.collection, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to populate %s: %w", s.entity, err)
	}
	if id != "" && len(docs) == 0 {
		return nil, apperrors.NotFound(s.entity)
	}
	return docs, nil
}

// lookupOne replaces a single reference field with the referenced document,
// or removes it when the reference no longer resolves.
func lookupOne(from, field string) []bson.D {
	return []bson.D{
		lookupMany(from, field),
		{{Key: "$unwind", Value: bson.M{"path": "$" + field, "preserveNullAndEmptyArrays": true}}},
	}
}

// lookupMany replaces an array of references with the resolved documents
func lookupMany(from, field string) bson.D {
	return bson.D{{Key: "$lookup", Value: bson.M{
		"from":         from,
		"localField":   field,
		"foreignField": "_id",
		"as":           field,
	}}}
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
