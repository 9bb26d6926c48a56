package service

import (
	"context"
	"strings"

	"catalog-service/internal/model"
	"catalog-service/internal/repository"
)

// CategoryService manages the category tree: categories, subcategories and brands
type CategoryService struct {
	categoryRepo    repository.CategoryRepository
	subCategoryRepo repository.SubCategoryRepository
	brandRepo       repository.BrandRepository
	media           MediaStore
}

// NewCategoryService creates a new category service
func NewCategoryService(
	categoryRepo repository.CategoryRepository,
	subCategoryRepo repository.SubCategoryRepository,
	brandRepo repository.BrandRepository,
	media MediaStore,
) *CategoryService {
	return &CategoryService{
		categoryRepo:    categoryRepo,
		subCategoryRepo: subCategoryRepo,
		brandRepo:       brandRepo,
		media:           media,
	}
}

func (s *CategoryService) CreateCategory(ctx context.Context, req *model.CategoryRequest) (*model.Category, error) {
	name, err := required("name", req.Name)
	if err != nil {
		return nil, err
	}

	category := &model.Category{Name: name}
	if req.Img != nil {
		if category.Img, err = s.media.Save(req.Img); err != nil {
			return nil, err
		}
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		discardUpload(s.media, category.Img)
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]*model.Category, error) {
	return s.categoryRepo.List(ctx)
}

func (s *CategoryService) GetCategory(ctx context.Context, id string) (*model.Category, error) {
	return s.categoryRepo.GetByID(ctx, id)
}

// UpdateCategory changes only the supplied fields
func (s *CategoryService) UpdateCategory(ctx context.Context, id string, req *model.CategoryRequest) (*model.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		category.Name = name
	}

	previousImg, newImg := category.Img, ""
	if req.Img != nil {
		if newImg, err = s.media.Save(req.Img); err != nil {
			return nil, err
		}
		category.Img = newImg
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		discardUpload(s.media, newImg)
		return nil, err
	}
	if newImg != "" {
		discardUpload(s.media, previousImg)
	}
	return category, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id string) error {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return err
	}
	discardUpload(s.media, category.Img)
	return nil
}

func (s *CategoryService) CreateSubCategory(ctx context.Context, req *model.SubCategoryRequest) (*model.SubCategory, error) {
	name, err := required("name", req.Name)
	if err != nil {
		return nil, err
	}
	categoryID, err := ensureRef(ctx, "categoryId", req.CategoryID, s.categoryRepo.GetByID)
	if err != nil {
		return nil, err
	}

	subCategory := &model.SubCategory{Name: name, CategoryID: categoryID}
	if err := s.subCategoryRepo.Create(ctx, subCategory); err != nil {
		return nil, err
	}
	return subCategory, nil
}

func (s *CategoryService) ListSubCategories(ctx context.Context) ([]*model.SubCategoryDetail, error) {
	return s.subCategoryRepo.ListDetails(ctx)
}

func (s *CategoryService) GetSubCategory(ctx context.Context, id string) (*model.SubCategoryDetail, error) {
	return s.subCategoryRepo.GetDetail(ctx, id)
}

// UpdateSubCategory changes only the supplied fields
func (s *CategoryService) UpdateSubCategory(ctx context.Context, id string, req *model.SubCategoryRequest) (*model.SubCategory, error) {
	subCategory, err := s.subCategoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		subCategory.Name = name
	}
	if req.CategoryID != "" {
		if subCategory.CategoryID, err = ensureRef(ctx, "categoryId", req.CategoryID, s.categoryRepo.GetByID); err != nil {
			return nil, err
		}
	}

	if err := s.subCategoryRepo.Update(ctx, subCategory); err != nil {
		return nil, err
	}
	return subCategory, nil
}

func (s *CategoryService) DeleteSubCategory(ctx context.Context, id string) error {
	return s.subCategoryRepo.Delete(ctx, id)
}

func (s *CategoryService) CreateBrand(ctx context.Context, req *model.BrandRequest) (*model.Brand, error) {
	name, err := required("name", req.Name)
	if err != nil {
		return nil, err
	}
	subCategoryID, err := ensureRef(ctx, "subcategoryId", req.SubCategoryID, s.subCategoryRepo.GetByID)
	if err != nil {
		return nil, err
	}

	brand := &model.Brand{Name: name, SubCategoryID: subCategoryID}
	if req.Img != nil {
		if brand.Img, err = s.media.Save(req.Img); err != nil {
			return nil, err
		}
	}

	if err := s.brandRepo.Create(ctx, brand); err != nil {
		discardUpload(s.media, brand.Img)
		return nil, err
	}
	return brand, nil
}

func (s *CategoryService) ListBrands(ctx context.Context) ([]*model.BrandDetail, error) {
	return s.brandRepo.ListDetails(ctx)
}

func (s *CategoryService) GetBrand(ctx context.Context, id string) (*model.BrandDetail, error) {
	return s.brandRepo.GetDetail(ctx, id)
}

// UpdateBrand changes only the supplied fields
func (s *CategoryService) UpdateBrand(ctx context.Context, id string, req *model.BrandRequest) (*model.Brand, error) {
	brand, err := s.brandRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		brand.Name = name
	}
	if req.SubCategoryID != "" {
		if brand.SubCategoryID, err = ensureRef(ctx, "subcategoryId", req.SubCategoryID, s.subCategoryRepo.GetByID); err != nil {
			return nil, err
		}
	}

	previousImg, newImg := brand.Img, ""
	if req.Img != nil {
		if newImg, err = s.media.Save(req.Img); err != nil {
			return nil, err
		}
		brand.Img = newImg
	}

	if err := s.brandRepo.Update(ctx, brand); err != nil {
		discardUpload(s.media, newImg)
		return nil, err
	}
	if newImg != "" {
		discardUpload(s.media, previousImg)
	}
	return brand, nil
}

func (s *CategoryService) DeleteBrand(ctx context.Context, id string) error {
	brand, err := s.brandRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.brandRepo.Delete(ctx, id); err != nil {
		return err
	}
	discardUpload(s.media, brand.Img)
	return nil
}
