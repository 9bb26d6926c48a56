package memory

import (
	"context"

	"catalog-service/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func categoryName(c *model.Category) string       { return c.Name }
func subCategoryName(c *model.SubCategory) string { return c.Name }

type categoryRepo struct{ db *DB }

func (r *categoryRepo) Create(_ context.Context, category *model.Category) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	category.ID = primitive.NewObjectID()
	category.CreatedAt = timestamp()
	category.UpdatedAt = category.CreatedAt
	r.db.categories.insert(category.ID, *category)
	return nil
}

func (r *categoryRepo) List(_ context.Context) ([]*model.Category, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return r.db.categories.all(), nil
}

func (r *categoryRepo) GetByID(_ context.Context, id string) (*model.Category, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return r.db.categories.get(id)
}

func (r *categoryRepo) Update(_ context.Context, category *model.Category) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	category.UpdatedAt = timestamp()
	return r.db.categories.replace(category.ID, *category)
}

func (r *categoryRepo) Delete(_ context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return r.db.categories.remove(id)
}

type subCategoryRepo struct{ db *DB }

func (r *subCategoryRepo) Create(_ context.Context, subCategory *model.SubCategory) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	subCategory.ID = primitive.NewObjectID()
	subCategory.CreatedAt = timestamp()
	subCategory.UpdatedAt = subCategory.CreatedAt
	r.db.subCategories.insert(subCategory.ID, *subCategory)
	return nil
}

func (r *subCategoryRepo) GetByID(_ context.Context, id string) (*model.SubCategory, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return r.db.subCategories.get(id)
}

func (r *subCategoryRepo) Update(_ context.Context, subCategory *model.SubCategory) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	subCategory.UpdatedAt = timestamp()
	return r.db.subCategories.replace(subCategory.ID, *subCategory)
}

func (r *subCategoryRepo) Delete(_ context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return r.db.subCategories.remove(id)
}

func (r *subCategoryRepo) ListDetails(_ context.Context) ([]*model.SubCategoryDetail, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	subCategories := r.db.subCategories.all()
	details := make([]*model.SubCategoryDetail, 0, len(subCategories))
	for _, sc := range subCategories {
		details = append(details, r.detail(sc))
	}
	return details, nil
}

func (r *subCategoryRepo) GetDetail(_ context.Context, id string) (*model.SubCategoryDetail, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	sc, err := r.db.subCategories.get(id)
	if err != nil {
		return nil, err
	}
	return r.detail(sc), nil
}

func (r *subCategoryRepo) detail(sc *model.SubCategory) *model.SubCategoryDetail {
	return &model.SubCategoryDetail{
		ID:        sc.ID,
		Name:      sc.Name,
		Category:  ref(r.db.categories, &sc.CategoryID, categoryName),
		CreatedAt: sc.CreatedAt,
		UpdatedAt: sc.UpdatedAt,
	}
}

type brandRepo struct{ db *DB }

func (r *brandRepo) Create(_ context.Context, brand *model.Brand) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	brand.ID = primitive.NewObjectID()
	brand.CreatedAt = timestamp()
	brand.UpdatedAt = brand.CreatedAt
	r.db.brands.insert(brand.ID, *brand)
	return nil
}

func (r *brandRepo) GetByID(_ context.Context, id string) (*model.Brand, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return r.db.brands.get(id)
}

func (r *brandRepo) Update(_ context.Context, brand *model.Brand) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	brand.UpdatedAt = timestamp()
	return r.db.brands.replace(brand.ID, *brand)
}

func (r *brandRepo) Delete(_ context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return r.db.brands.remove(id)
}

func (r *brandRepo) ListDetails(_ context.Context) ([]*model.BrandDetail, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	brands := r.db.brands.all()
	details := make([]*model.BrandDetail, 0, len(brands))
	for _, b := range brands {
		details = append(details, r.detail(b))
	}
	return details, nil
}

func (r *brandRepo) GetDetail(_ context.Context, id string) (*model.BrandDetail, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	b, err := r.db.brands.get(id)
	if err != nil {
		return nil, err
	}
	return r.detail(b), nil
}

func (r *brandRepo) detail(b *model.Brand) *model.BrandDetail {
	return &model.BrandDetail{
		ID:          b.ID,
		Name:        b.Name,
		Img:         b.Img,
		SubCategory: ref(r.db.subCategories, &b.SubCategoryID, subCategoryName),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

type variantTypeRepo struct{ db *DB }

func (r *variantTypeRepo) Create(_ context.Context, variantType *model.VariantType) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	variantType.ID = primitive.NewObjectID()
	variantType.CreatedAt = timestamp()
	variantType.UpdatedAt = variantType.CreatedAt
	r.db.variantTypes.insert(variantType.ID, *variantType)
	return nil
}

func (r *variantTypeRepo) List(_ context.Context) ([]*model.VariantType, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return r.db.variantTypes.all(), nil
}

func (r *variantTypeRepo) GetByID(_ context.Context, id string) (*model.VariantType, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return r.db.variantTypes.get(id)
}

func (r *variantTypeRepo) Update(_ context.Context, variantType *model.VariantType) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	variantType.UpdatedAt = timestamp()
	return r.db.variantTypes.replace(variantType.ID, *variantType)
}

func (r *variantTypeRepo) Delete(_ context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return r.db.variantTypes.remove(id)
}

// variantTypeRef resolves a variant type reference, nil when it no longer resolves
func (db *DB) variantTypeRef(id *primitive.ObjectID) *model.VariantTypeRef {
	if id == nil {
		return nil
	}
	vt, ok := db.variantTypes.rows[*id]
	if !ok {
		return nil
	}
	return &model.VariantTypeRef{ID: vt.ID, Name: vt.Name, Type: vt.Type}
}

type variantRepo struct{ db *DB }

func (r *variantRepo) Create(_ context.Context, variant *model.Variant) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	variant.ID = primitive.NewObjectID()
	variant.CreatedAt = timestamp()
	variant.UpdatedAt = variant.CreatedAt
	r.db.variants.insert(variant.ID, *variant)
	return nil
}

func (r *variantRepo) GetByID(_ context.Context, id string) (*model.Variant, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return r.db.variants.get(id)
}

func (r *variantRepo) Update(_ context.Context, variant *model.Variant) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	variant.UpdatedAt = timestamp()
	return r.db.variants.replace(variant.ID, *variant)
}

func (r *variantRepo) Delete(_ context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return r.db.variants.remove(id)
}

func (r *variantRepo) ListDetails(_ context.Context) ([]*model.VariantDetail, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	variants := r.db.variants.all()
	details := make([]*model.VariantDetail, 0, len(variants))
	for _, v := range variants {
		details = append(details, r.detail(v))
	}
	return details, nil
}

func (r *variantRepo) GetDetail(_ context.Context, id string) (*model.VariantDetail, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	v, err := r.db.variants.get(id)
	if err != nil {
		return nil, err
	}
	return r.detail(v), nil
}

func (r *variantRepo) detail(v *model.Variant) *model.VariantDetail {
	return &model.VariantDetail{
		ID:          v.ID,
		Name:        v.Name,
		VariantType: r.db.variantTypeRef(&v.VariantTypeID),
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

type posterRepo struct{ db *DB }

func (r *posterRepo) Create(_ context.Context, poster *model.Poster) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	poster.ID = primitive.NewObjectID()
	poster.CreatedAt = timestamp()
	poster.UpdatedAt = poster.CreatedAt
	r.db.posters.insert(poster.ID, *poster)
	return nil
}

func (r *posterRepo) List(_ context.Context) ([]*model.Poster, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return r.db.posters.all(), nil
}

func (r *posterRepo) GetByID(_ context.Context, id string) (*model.Poster, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return r.db.posters.get(id)
}

func (r *posterRepo) Update(_ context.Context, poster *model.Poster) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	poster.UpdatedAt = timestamp()
	return r.db.posters.replace(poster.ID, *poster)
}

func (r *posterRepo) Delete(_ context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return r.db.posters.remove(id)
}
