package service

import (
	"context"
	"strings"
	"time"

	"catalog-service/internal/model"
	"catalog-service/internal/repository"
	apperrors "catalog-service/pkg/errors"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductService handles business logic for products
type ProductService struct {
	productRepo     repository.ProductRepository
	categoryRepo    repository.CategoryRepository
	subCategoryRepo repository.SubCategoryRepository
	brandRepo       repository.BrandRepository
	variantTypeRepo repository.VariantTypeRepository
	variantRepo     repository.VariantRepository
	media           MediaStore
	now             func() time.Time
}

// NewProductService creates a new product service
func NewProductService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	subCategoryRepo repository.SubCategoryRepository,
	brandRepo repository.BrandRepository,
	variantTypeRepo repository.VariantTypeRepository,
	variantRepo repository.VariantRepository,
	media MediaStore,
) *ProductService {
	return &ProductService{
		productRepo:     productRepo,
		categoryRepo:    categoryRepo,
		subCategoryRepo: subCategoryRepo,
		brandRepo:       brandRepo,
		variantTypeRepo: variantTypeRepo,
		variantRepo:     variantRepo,
		media:           media,
		now:             time.Now,
	}
}

// CreateProduct validates the form, stores the uploaded images and inserts the product.
// At least one image is required.
func (s *ProductService) CreateProduct(ctx context.Context, req *model.ProductRequest) (*model.Product, error) {
	product, err := s.buildProduct(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(req.Images) == 0 {
		return nil, apperrors.Invalid("No image files provided")
	}
	if product.Images, err = s.saveImages(req); err != nil {
		return nil, err
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		s.discardImages(product.Images)
		return nil, err
	}
	return product, nil
}

func (s *ProductService) ListProducts(ctx context.Context) ([]*model.ProductDetail, error) {
	return s.productRepo.ListDetails(ctx)
}

func (s *ProductService) GetProduct(ctx context.Context, id string) (*model.ProductDetail, error) {
	return s.productRepo.GetDetail(ctx, id)
}

// UpdateProduct replaces every editable field. Images are replaced only when
// new ones are uploaded.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, req *model.ProductRequest) (*model.Product, error) {
	existing, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product, err := s.buildProduct(ctx, req)
	if err != nil {
		return nil, err
	}
	product.ID = existing.ID
	product.CreatedAt = existing.CreatedAt
	product.Images = existing.Images

	var uploaded []model.ProductImage
	if len(req.Images) > 0 {
		if uploaded, err = s.saveImages(req); err != nil {
			return nil, err
		}
		product.Images = uploaded
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		s.discardImages(uploaded)
		return nil, err
	}
	if uploaded != nil {
		s.discardImages(existing.Images)
	}
	return product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.discardImages(product.Images)
	return nil
}

func (s *ProductService) buildProduct(ctx context.Context, req *model.ProductRequest) (*model.Product, error) {
	name, err := required("name", req.Name)
	if err != nil {
		return nil, err
	}
	if req.Quantity == nil {
		return nil, apperrors.Invalid("quantity is required")
	}
	if *req.Quantity < 0 {
		return nil, apperrors.Invalid("quantity cannot be negative")
	}

	price, err := parseAmount("price", req.Price)
	if err != nil {
		return nil, err
	}
	if price == nil {
		return nil, apperrors.Invalid("price is required")
	}
	offerPrice, err := parseAmount("offerPrice", req.OfferPrice)
	if err != nil {
		return nil, err
	}

	categoryID, err := ensureRef(ctx, "proCategoryId", req.CategoryID, s.categoryRepo.GetByID)
	if err != nil {
		return nil, err
	}
	subCategoryID, err := ensureRef(ctx, "proSubCategoryId", req.SubCategoryID, s.subCategoryRepo.GetByID)
	if err != nil {
		return nil, err
	}
	brandID, err := ensureOptionalRef(ctx, "proBrandId", req.BrandID, s.brandRepo.GetByID)
	if err != nil {
		return nil, err
	}
	variantTypeID, err := ensureOptionalRef(ctx, "proVariantTypeId", req.VariantTypeID, s.variantTypeRepo.GetByID)
	if err != nil {
		return nil, err
	}

	variantIDs := make([]primitive.ObjectID, 0, len(req.VariantIDs))
	for _, v := range req.VariantIDs {
		if strings.TrimSpace(v) == "" {
			continue
		}
		oid, err := ensureRef(ctx, "proVariantId", v, s.variantRepo.GetByID)
		if err != nil {
			return nil, err
		}
		variantIDs = append(variantIDs, oid)
	}

	return &model.Product{
		Name:          name,
		Description:   strings.TrimSpace(req.Description),
		Quantity:      *req.Quantity,
		Price:         *price,
		OfferPrice:    offerPrice,
		CategoryID:    categoryID,
		SubCategoryID: subCategoryID,
		BrandID:       brandID,
		VariantTypeID: variantTypeID,
		VariantIDs:    variantIDs,
	}, nil
}

// saveImages stores every uploaded image, undoing partial work on failure
func (s *ProductService) saveImages(req *model.ProductRequest) ([]model.ProductImage, error) {
	if len(req.Images) > model.MaxProductImages {
		return nil, apperrors.Invalid("at most %d images are allowed", model.MaxProductImages)
	}

	images := make([]model.ProductImage, 0, len(req.Images))
	for _, file := range req.Images {
		url, err := s.media.Save(file)
		if err != nil {
			s.discardImages(images)
			return nil, err
		}
		images = append(images, model.ProductImage{Image: s.now().UnixMilli(), URL: url})
	}
	return images, nil
}

func (s *ProductService) discardImages(images []model.ProductImage) {
	for _, img := range images {
		discardUpload(s.media, img.URL)
	}
}

// parseAmount reads an optional non-negative decimal form value
func parseAmount(field, value string) (*decimal.Decimal, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return nil, apperrors.Invalid("%s must be a number", field)
	}
	if amount.IsNegative() {
		return nil, apperrors.Invalid("%s cannot be negative", field)
	}
	return &amount, nil
}
