// Package memory is an in-process Catalog Store for local runs and tests.
// Every repository returned by a DB shares one lock, so populated reads see a
// consistent view across collections.
package memory

import (
	"fmt"
	"sync"
	"time"

	"catalog-service/internal/model"
	"catalog-service/internal/repository"
	apperrors "catalog-service/pkg/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DB holds every catalog collection in memory
type DB struct {
	mu sync.RWMutex

	categories    *table[model.Category]
	subCategories *table[model.SubCategory]
	brands        *table[model.Brand]
	variantTypes  *table[model.VariantType]
	variants      *table[model.Variant]
	products      *table[model.Product]
	posters       *table[model.Poster]
	coupons       *table[model.Coupon]
}

func New() *DB {
	return &DB{
		categories:    newTable[model.Category]("category"),
		subCategories: newTable[model.SubCategory]("subcategory"),
		brands:        newTable[model.Brand]("brand"),
		variantTypes:  newTable[model.VariantType]("variant type"),
		variants:      newTable[model.Variant]("variant"),
		products:      newTable[model.Product]("product"),
		posters:       newTable[model.Poster]("poster"),
		coupons:       newTable[model.Coupon]("coupon"),
	}
}

func (db *DB) Categories() repository.CategoryRepository { return &categoryRepo{db} }
func (db *DB) SubCategories() repository.SubCategoryRepository { return &subCategoryRepo{db} }
func (db *DB) Brands() repository.BrandRepository { return &brandRepo{db} }
func (db *DB) VariantTypes() repository.VariantTypeRepository { return &variantTypeRepo{db} }
func (db *DB) Variants() repository.VariantRepository { return &variantRepo{db} }
func (db *DB) Products() repository.ProductRepository { return &productRepo{db} }
func (db *DB) Posters() repository.PosterRepository { return &posterRepo{db} }
func (db *DB) Coupons() repository.CouponRepository { return &couponRepo{db} }

// table keeps documents in insertion order
type table[T any] struct {
	entity string
	rows   map[primitive.ObjectID]T
	order  []primitive.ObjectID
}

func newTable[T any](entity string) *table[T] {
	return &table[T]{entity: entity, rows: make(map[primitive.ObjectID]T)}
}

func (t *table[T]) insert(id primitive.ObjectID, doc T) {
	t.rows[id] = doc
	t.order = append(t.order, id)
}

func (t *table[T]) get(id string) (*T, error) {
	oid, err := repository.ObjectID(id)
	if err != nil {
		return nil, err
	}
	return t.lookup(oid)
}

func (t *table[T]) lookup(oid primitive.ObjectID) (*T, error) {
	doc, ok := t.rows[oid]
	if !ok {
		return nil, apperrors.NotFound(t.entity)
	}
	return &doc, nil
}

func (t *table[T]) replace(id primitive.ObjectID, doc T) error {
	if _, ok := t.rows[id]; !ok {
		return apperrors.NotFound(t.entity)
	}
	t.rows[id] = doc
	return nil
}

func (t *table[T]) remove(id string) error {
	oid, err := repository.ObjectID(id)
	if err != nil {
		return err
	}
	if _, ok := t.rows[oid]; !ok {
		return apperrors.NotFound(t.entity)
	}
	delete(t.rows, oid)
	for i, existing := range t.order {
		if existing == oid {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return nil
}

func (t *table[T]) all() []*T {
	docs := make([]*T, 0, len(t.order))
	for _, id := range t.order {
		doc := t.rows[id]
		docs = append(docs, &doc)
	}
	return docs
}

// ref resolves a reference to its populated form, nil when it no longer resolves
func ref[T any](t *table[T], id *primitive.ObjectID, name func(*T) string) *model.Ref {
	if id == nil {
		return nil
	}
	doc, ok := t.rows[*id]
	if !ok {
		return nil
	}
	return &model.Ref{ID: *id, Name: name(&doc)}
}

func timestamp() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func duplicate(entity string) error {
	return fmt.Errorf("%s %w", entity, apperrors.ErrAlreadyExists)
}
