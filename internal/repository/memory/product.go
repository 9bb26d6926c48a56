package memory

import (
	"context"

	"catalog-service/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type productRepo struct{ db *DB }

func (r *productRepo) Create(_ context.Context, product *model.Product) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	product.ID = primitive.NewObjectID()
	product.CreatedAt = timestamp()
	product.UpdatedAt = product.CreatedAt
	r.db.products.insert(product.ID, *product)
	return nil
}

func (r *productRepo) GetByID(_ context.Context, id string) (*model.Product, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return r.db.products.get(id)
}

func (r *productRepo) Update(_ context.Context, product *model.Product) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	product.UpdatedAt = timestamp()
	return r.db.products.replace(product.ID, *product)
}

func (r *productRepo) Delete(_ context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return r.db.products.remove(id)
}

// FindByIDs returns the products that exist, in request order
func (r *productRepo) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]*model.Product, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	products := make([]*model.Product, 0, len(ids))
	for _, id := range ids {
		if p, err := r.db.products.lookup(id); err == nil {
			products = append(products, p)
		}
	}
	return products, nil
}

func (r *productRepo) ListDetails(_ context.Context) ([]*model.ProductDetail, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	products := r.db.products.all()
	details := make([]*model.ProductDetail, 0, len(products))
	for _, p := range products {
		details = append(details, r.detail(p))
	}
	return details, nil
}

func (r *productRepo) GetDetail(_ context.Context, id string) (*model.ProductDetail, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	p, err := r.db.products.get(id)
	if err != nil {
		return nil, err
	}
	return r.detail(p), nil
}

func (r *productRepo) detail(p *model.Product) *model.ProductDetail {
	variants := make([]model.Ref, 0, len(p.VariantIDs))
	for _, id := range p.VariantIDs {
		if v, ok := r.db.variants.rows[id]; ok {
			variants = append(variants, model.Ref{ID: v.ID, Name: v.Name})
		}
	}

	return &model.ProductDetail{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Quantity:    p.Quantity,
		Price:       p.Price,
		OfferPrice:  p.OfferPrice,
		Category:    ref(r.db.categories, &p.CategoryID, categoryName),
		SubCategory: ref(r.db.subCategories, &p.SubCategoryID, subCategoryName),
		Brand:       ref(r.db.brands, p.BrandID, func(b *model.Brand) string { return b.Name }),
		VariantType: r.db.variantTypeRef(p.VariantTypeID),
		Variants:    variants,
		Images:      p.Images,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
