package repository

import (
	"context"
	"errors"
	"time"

	"storefront-backend/internal/database"
	"storefront-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// brandProductsLimit caps the products listed on a brand page.
const brandProductsLimit = 10

type BrandRepository interface {
	Create(ctx context.Context, brand *models.Brand) error
	FindAll(ctx context.Context) ([]models.Brand, error)
	FindBySlug(ctx context.Context, slug string) (*models.Brand, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Brand, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
}

type brandRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewBrandRepository(db *database.Database) BrandRepository {
	return &brandRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *brandRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *brandRepository) Create(ctx context.Context, brand *models.Brand) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(brand).Error
}

func (r *brandRepository) FindAll(ctx context.Context) ([]models.Brand, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var brands []models.Brand
	err := r.db.WithContext(ctx).
		Preload("Translations", orderByLanguage).
		Order("name ASC").
		Find(&brands).Error
	return brands, err
}

func (r *brandRepository) FindBySlug(ctx context.Context, slug string) (*models.Brand, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var brand models.Brand
	err := r.db.WithContext(ctx).
		Preload("Translations", orderByLanguage).
		Preload("Products", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true).Order("created_at DESC").Limit(brandProductsLimit)
		}).
		Preload("Products.Translations", orderByLanguage).
		Preload("Products.Images", orderBySortOrder).
		Where("slug = ?", slug).
		First(&brand).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &brand, nil
}

func (r *brandRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Brand, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var brand models.Brand
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&brand).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &brand, nil
}

func (r *brandRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var count int64
	err := r.db.WithContext(ctx).Model(&models.Brand{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}
