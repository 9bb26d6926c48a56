package service

import (
	"context"
	"strings"

	"catalog-service/internal/model"
	"catalog-service/internal/repository"
)

// VariantService manages variant types and their variants
type VariantService struct {
	variantTypeRepo repository.VariantTypeRepository
	variantRepo     repository.VariantRepository
}

// NewVariantService creates a new variant service
func NewVariantService(variantTypeRepo repository.VariantTypeRepository, variantRepo repository.VariantRepository) *VariantService {
	return &VariantService{
		variantTypeRepo: variantTypeRepo,
		variantRepo:     variantRepo,
	}
}

func (s *VariantService) CreateVariantType(ctx context.Context, req *model.VariantTypeRequest) (*model.VariantType, error) {
	name, err := required("name", req.Name)
	if err != nil {
		return nil, err
	}
	kind, err := required("type", req.Type)
	if err != nil {
		return nil, err
	}

	variantType := &model.VariantType{Name: name, Type: kind}
	if err := s.variantTypeRepo.Create(ctx, variantType); err != nil {
		return nil, err
	}
	return variantType, nil
}

func (s *VariantService) ListVariantTypes(ctx context.Context) ([]*model.VariantType, error) {
	return s.variantTypeRepo.List(ctx)
}

func (s *VariantService) GetVariantType(ctx context.Context, id string) (*model.VariantType, error) {
	return s.variantTypeRepo.GetByID(ctx, id)
}

// UpdateVariantType changes only the supplied fields
func (s *VariantService) UpdateVariantType(ctx context.Context, id string, req *model.VariantTypeRequest) (*model.VariantType, error) {
	variantType, err := s.variantTypeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		variantType.Name = name
	}
	if kind := strings.TrimSpace(req.Type); kind != "" {
		variantType.Type = kind
	}

	if err := s.variantTypeRepo.Update(ctx, variantType); err != nil {
		return nil, err
	}
	return variantType, nil
}

func (s *VariantService) DeleteVariantType(ctx context.Context, id string) error {
	return s.variantTypeRepo.Delete(ctx, id)
}

func (s *VariantService) CreateVariant(ctx context.Context, req *model.VariantRequest) (*model.Variant, error) {
	name, err := required("name", req.Name)
	if err != nil {
		return nil, err
	}
	variantTypeID, err := ensureRef(ctx, "variantTypeId", req.VariantTypeID, s.variantTypeRepo.GetByID)
	if err != nil {
		return nil, err
	}

	variant := &model.Variant{Name: name, VariantTypeID: variantTypeID}
	if err := s.variantRepo.Create(ctx, variant); err != nil {
		return nil, err
	}
	return variant, nil
}

func (s *VariantService) ListVariants(ctx context.Context) ([]*model.VariantDetail, error) {
	return s.variantRepo.ListDetails(ctx)
}

func (s *VariantService) GetVariant(ctx context.Context, id string) (*model.VariantDetail, error) {
	return s.variantRepo.GetDetail(ctx, id)
}

// UpdateVariant changes only the supplied fields
func (s *VariantService) UpdateVariant(ctx context.Context, id string, req *model.VariantRequest) (*model.Variant, error) {
	variant, err := s.variantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		variant.Name = name
	}
	if req.VariantTypeID != "" {
		if variant.VariantTypeID, err = ensureRef(ctx, "variantTypeId", req.VariantTypeID, s.variantTypeRepo.GetByID); err != nil {
			return nil, err
		}
	}

	if err := s.variantRepo.Update(ctx, variant); err != nil {
		return nil, err
	}
	return variant, nil
}

func (s *VariantService) DeleteVariant(ctx context.Context, id string) error {
	return s.variantRepo.Delete(ctx, id)
}
