package services

import (
	"context"
	"fmt"

	"storefront-backend/internal/models"
	"storefront-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// EntityTranslationService administers the raw translation records of one
// catalog entity type.
type EntityTranslationService[R any] interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]R, error)
	Upsert(ctx context.Context, ownerID uuid.UUID, language string, fields models.TranslationFields) (*R, error)
	Delete(ctx context.Context, ownerID uuid.UUID, language string) error
}

type entityTranslationService[R any] struct {
	kind        string
	repo        repository.EntityTranslationRepository[R]
	langRepo    repository.LanguageRepository
	ownerExists func(ctx context.Context, id uuid.UUID) (bool, error)
	build       func(ownerID uuid.UUID, language string, fields models.TranslationFields) R
	logger      *logrus.Logger
}

func NewProductTranslationService(
	repo repository.EntityTranslationRepository[models.ProductTranslation],
	langRepo repository.LanguageRepository,
	products repository.ProductRepository,
	logger *logrus.Logger,
) EntityTranslationService[models.ProductTranslation] {
	return &entityTranslationService[models.ProductTranslation]{
		kind:     "product",
		repo:     repo,
		langRepo: langRepo,
		ownerExists: func(ctx context.Context, id uuid.UUID) (bool, error) {
			product, err := products.FindPlain(ctx, id)
			return product != nil, err
		},
		build: func(ownerID uuid.UUID, language string, f models.TranslationFields) models.ProductTranslation {
			return models.ProductTranslation{
				ProductID:        ownerID,
				Language:         language,
				Name:             f.Name,
				Description:      f.Description,
				ShortDescription: f.ShortDescription,
				MetaTitle:        f.MetaTitle,
				MetaDescription:  f.MetaDescription,
			}
		},
		logger: logger,
	}
}

func NewBrandTranslationService(
	repo repository.EntityTranslationRepository[models.BrandTranslation],
	langRepo repository.LanguageRepository,
	brands repository.BrandRepository,
	logger *logrus.Logger,
) EntityTranslationService[models.BrandTranslation] {
	return &entityTranslationService[models.BrandTranslation]{
		kind:     "brand",
		repo:     repo,
		langRepo: langRepo,
		ownerExists: func(ctx context.Context, id uuid.UUID) (bool, error) {
			brand, err := brands.FindByID(ctx, id)
			return brand != nil, err
		},
		build: func(ownerID uuid.UUID, language string, f models.TranslationFields) models.BrandTranslation {
			return models.BrandTranslation{BrandID: ownerID, Language: language, Name: f.Name, Description: f.Description}
		},
		logger: logger,
	}
}

func NewCategoryTranslationService(
	repo repository.EntityTranslationRepository[models.CategoryTranslation],
	langRepo repository.LanguageRepository,
	categories repository.CategoryRepository,
	logger *logrus.Logger,
) EntityTranslationService[models.CategoryTranslation] {
	return &entityTranslationService[models.CategoryTranslation]{
		kind:     "category",
		repo:     repo,
		langRepo: langRepo,
		ownerExists: func(ctx context.Context, id uuid.UUID) (bool, error) {
			category, err := categories.FindByID(ctx, id)
			return category != nil, err
		},
		build: func(ownerID uuid.UUID, language string, f models.TranslationFields) models.CategoryTranslation {
			return models.CategoryTranslation{CategoryID: ownerID, Language: language, Name: f.Name, Description: f.Description}
		},
		logger: logger,
	}
}

func (s *entityTranslationService[R]) List(ctx context.Context, ownerID uuid.UUID) ([]R, error) {
	if err := s.requireOwner(ctx, ownerID); err != nil {
		return nil, err
	}

	records, err := s.repo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s translations: %w", s.kind, err)
	}
	return records, nil
}

func (s *entityTranslationService[R]) Upsert(ctx context.Context, ownerID uuid.UUID, language string, fields models.TranslationFields) (*R, error) {
	language = normalizeCode(language)

	if err := s.requireOwner(ctx, ownerID); err != nil {
		return nil, err
	}

	lang, err := s.langRepo.FindByCode(ctx, language)
	if err != nil {
		return nil, fmt.Errorf("failed to check language: %w", err)
	}
	if lang == nil {
		return nil, notFoundf("language with code %s not found", language)
	}

	record := s.build(ownerID, language, fields)
	if err := s.repo.Upsert(ctx, &record); err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"kind":     s.kind,
			"ownerID":  ownerID,
			"language": language,
		}).Error("Failed to upsert translation")
		return nil, fmt.Errorf("failed to upsert %s translation: %w", s.kind, err)
	}

	saved, err := s.repo.Find(ctx, ownerID, language)
	if err != nil {
		return nil, fmt.Errorf("failed to reload %s translation: %w", s.kind, err)
	}
	if saved == nil {
		return nil, notFoundf("%s translation for %s not found", s.kind, language)
	}
	return saved, nil
}

func (s *entityTranslationService[R]) Delete(ctx context.Context, ownerID uuid.UUID, language string) error {
	language = normalizeCode(language)

	deleted, err := s.repo.Delete(ctx, ownerID, language)
	if err != nil {
		return fmt.Errorf("failed to delete %s translation: %w", s.kind, err)
	}
	if !deleted {
		return notFoundf("%s translation for %s not found", s.kind, language)
	}
	return nil
}

func (s *entityTranslationService[R]) requireOwner(ctx context.Context, ownerID uuid.UUID) error {
	exists, err := s.ownerExists(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", s.kind, err)
	}
	if !exists {
		return notFoundf("%s with ID %s not found", s.kind, ownerID)
	}
	return nil
}
