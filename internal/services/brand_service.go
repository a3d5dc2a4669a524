package services

import (
	"context"
	"fmt"
	"strings"

	"storefront-backend/internal/i18n"
	"storefront-backend/internal/models"
	"storefront-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

type BrandService interface {
	List(ctx context.Context, loc i18n.Locale) ([]models.Brand, error)
	GetBySlug(ctx context.Context, slug string, loc i18n.Locale) (*models.Brand, error)
	Create(ctx context.Context, input CreateBrandInput) (*models.Brand, error)
}

type CreateBrandInput struct {
	Name        string
	Slug        string
	Description string
	LogoURL     string
}

type brandService struct {
	repo    repository.BrandRepository
	storage ObjectStorage
	logger  *logrus.Logger
}

func NewBrandService(repo repository.BrandRepository, storage ObjectStorage, logger *logrus.Logger) BrandService {
	return &brandService{
		repo:    repo,
		storage: storage,
		logger:  logger,
	}
}

func (s *brandService) List(ctx context.Context, loc i18n.Locale) ([]models.Brand, error) {
	brands, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list brands")
		return nil, fmt.Errorf("failed to list brands: %w", err)
	}
	models.LocalizeBrands(brands, loc)
	return brands, nil
}

func (s *brandService) GetBySlug(ctx context.Context, slug string, loc i18n.Locale) (*models.Brand, error) {
	brand, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to get brand: %w", err)
	}
	if brand == nil {
		return nil, notFoundf("brand with slug %s not found", slug)
	}

	brand.Localize(loc)
	attachImageURLs(s.storage, brand.Products)
	return brand, nil
}

func (s *brandService) Create(ctx context.Context, input CreateBrandInput) (*models.Brand, error) {
	slug := strings.TrimSpace(input.Slug)

	exists, err := s.repo.SlugExists(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to check brand slug: %w", err)
	}
	if exists {
		return nil, conflictf("brand with slug %s already exists", slug)
	}

	brand := &models.Brand{
		Name:        strings.TrimSpace(input.Name),
		Slug:        slug,
		Description: input.Description,
		LogoURL:     input.LogoURL,
	}
	if err := s.repo.Create(ctx, brand); err != nil {
		s.logger.WithError(err).WithField("slug", slug).Error("Failed to create brand")
		return nil, fmt.Errorf("failed to create brand: %w", err)
	}

	s.logger.WithField("brandID", brand.ID).Info("Brand created")
	return brand, nil
}
