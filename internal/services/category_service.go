package services

import (
	"context"
	"fmt"
	"strings"

	"storefront-backend/internal/i18n"
	"storefront-backend/internal/models"
	"storefront-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type CategoryService interface {
	ListTree(ctx context.Context, loc i18n.Locale) ([]models.Category, error)
	GetBySlug(ctx context.Context, slug string, loc i18n.Locale) (*models.Category, error)
	Create(ctx context.Context, input CreateCategoryInput) (*models.Category, error)
}

type CreateCategoryInput struct {
	Name        string
	Slug        string
	Description string
	ParentID    *uuid.UUID
}

type categoryService struct {
	repo    repository.CategoryRepository
	storage ObjectStorage
	logger  *logrus.Logger
}

func NewCategoryService(repo repository.CategoryRepository, storage ObjectStorage, logger *logrus.Logger) CategoryService {
	return &categoryService{
		repo:    repo,
		storage: storage,
		logger:  logger,
	}
}

func (s *categoryService) ListTree(ctx context.Context, loc i18n.Locale) ([]models.Category, error) {
	categories, err := s.repo.FindTree(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list categories")
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	models.LocalizeCategories(categories, loc)
	return categories, nil
}

func (s *categoryService) GetBySlug(ctx context.Context, slug string, loc i18n.Locale) (*models.Category, error) {
	category, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	if category == nil {
		return nil, notFoundf("category with slug %s not found", slug)
	}

	category.Localize(loc)
	attachImageURLs(s.storage, category.Products)
	return category, nil
}

func (s *categoryService) Create(ctx context.Context, input CreateCategoryInput) (*models.Category, error) {
	slug := strings.TrimSpace(input.Slug)

	exists, err := s.repo.SlugExists(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to check category slug: %w", err)
	}
	if exists {
		return nil, conflictf("category with slug %s already exists", slug)
	}

	if input.ParentID != nil {
		parent, err := s.repo.FindByID(ctx, *input.ParentID)
		if err != nil {
			return nil, fmt.Errorf("failed to check parent category: %w", err)
		}
		if parent == nil {
			return nil, notFoundf("parent category with ID %s not found", *input.ParentID)
		}
	}

	category := &models.Category{
		Name:        strings.TrimSpace(input.Name),
		Slug:        slug,
		Description: input.Description,
		ParentID:    input.ParentID,
	}
	if err := s.repo.Create(ctx, category); err != nil {
		s.logger.WithError(err).WithField("slug", slug).Error("Failed to create category")
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	s.logger.WithField("categoryID", category.ID).Info("Category created")
	return category, nil
}
