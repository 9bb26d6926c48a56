package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names shared by the repositories and index setup
const (
	CategoriesCollection    = "categories"
	SubCategoriesCollection = "subcategories"
	BrandsCollection        = "brands"
	VariantTypesCollection  = "variant_types"
	VariantsCollection      = "variants"
	ProductsCollection      = "products"
	PostersCollection       = "posters"
	CouponsCollection       = "coupons"
)

// MongoDB wraps the MongoDB client and database
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// Connect establishes a connection to MongoDB
func Connect(ctx context.Context, uri, dbName string, timeout time.Duration) (*MongoDB, error) {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	clientOptions := options.Client().ApplyURI(uri).SetRegistry(Registry())

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	mongoDB := &MongoDB{
		Client:   client,
		Database: client.Database(dbName),
	}

	if err := mongoDB.CreateIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to create indexes: %w", err)
	}

	return mongoDB, nil
}

type indexSpec struct {
	collection string
	model      mongo.IndexModel
}

func catalogIndexes() []indexSpec {
	return []indexSpec{
		{CouponsCollection, mongo.IndexModel{
			Keys:    bson.D{{Key: "coupon_code", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("coupon_code_unique"),
		}},
		{SubCategoriesCollection, mongo.IndexModel{
			Keys:    bson.D{{Key: "category_id", Value: 1}},
			Options: options.Index().SetName("category_id_index"),
		}},
		{BrandsCollection, mongo.IndexModel{
			Keys:    bson.D{{Key: "subcategory_id", Value: 1}},
			Options: options.Index().SetName("subcategory_id_index"),
		}},
		{VariantsCollection, mongo.IndexModel{
			Keys:    bson.D{{Key: "variant_type_id", Value: 1}},
			Options: options.Index().SetName("variant_type_id_index"),
		}},
		// coupon scope checks compare against these
		{ProductsCollection, mongo.IndexModel{
			Keys:    bson.D{{Key: "category_id", Value: 1}},
			Options: options.Index().SetName("category_id_index"),
		}},
		{ProductsCollection, mongo.IndexModel{
			Keys:    bson.D{{Key: "subcategory_id", Value: 1}},
			Options: options.Index().SetName("subcategory_id_index"),
		}},
	}
}

// CreateIndexes creates all necessary indexes for the application
func (m *MongoDB) CreateIndexes(ctx context.Context) error {
	for _, idx := range catalogIndexes() {
		if _, err := m.Database.Collection(idx.collection).Indexes().CreateOne(ctx, idx.model); err != nil {
			return fmt.Errorf("failed to create index on %s: %w", idx.collection, err)
		}
	}
	return nil
}

// Disconnect closes the MongoDB connection
func (m *MongoDB) Disconnect(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}
