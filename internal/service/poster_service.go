package service

import (
	"context"
	"strings"

	"catalog-service/internal/model"
	"catalog-service/internal/repository"
	apperrors "catalog-service/pkg/errors"
)

// PosterService manages storefront posters
type PosterService struct {
	posterRepo repository.PosterRepository
	media      MediaStore
}

// NewPosterService creates a new poster service
func NewPosterService(posterRepo repository.PosterRepository, media MediaStore) *PosterService {
	return &PosterService{
		posterRepo: posterRepo,
		media:      media,
	}
}

func (s *PosterService) CreatePoster(ctx context.Context, req *model.PosterRequest) (*model.Poster, error) {
	title, err := required("title", req.Title)
	if err != nil {
		return nil, err
	}

	poster := &model.Poster{Title: title}
	if req.Img != nil {
		if poster.Img, err = s.media.Save(req.Img); err != nil {
			return nil, err
		}
	}

	if err := s.posterRepo.Create(ctx, poster); err != nil {
		discardUpload(s.media, poster.Img)
		return nil, err
	}
	return poster, nil
}

func (s *PosterService) ListPosters(ctx context.Context) ([]*model.Poster, error) {
	return s.posterRepo.List(ctx)
}

func (s *PosterService) GetPoster(ctx context.Context, id string) (*model.Poster, error) {
	return s.posterRepo.GetByID(ctx, id)
}

// UpdatePoster changes only the supplied fields. At least one is required
func (s *PosterService) UpdatePoster(ctx context.Context, id string, req *model.PosterRequest) (*model.Poster, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" && req.Img == nil {
		return nil, apperrors.Invalid("At least one field (title, img) is required to update.")
	}

	poster, err := s.posterRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if title != "" {
		poster.Title = title
	}

	previousImg, newImg := poster.Img, ""
	if req.Img != nil {
		if newImg, err = s.media.Save(req.Img); err != nil {
			return nil, err
		}
		poster.Img = newImg
	}

	if err := s.posterRepo.Update(ctx, poster); err != nil {
		discardUpload(s.media, newImg)
		return nil, err
	}
	if newImg != "" {
		discardUpload(s.media, previousImg)
	}
	return poster, nil
}

func (s *PosterService) DeletePoster(ctx context.Context, id string) error {
	poster, err := s.posterRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.posterRepo.Delete(ctx, id); err != nil {
		return err
	}
	discardUpload(s.media, poster.Img)
	return nil
}
