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

// categoryProductsLimit caps the products listed on a category page.
const categoryProductsLimit = 20

type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	// FindTree returns root categories with two levels of children.
	FindTree(ctx context.Context) ([]models.Category, error)
	FindBySlug(ctx context.Context, slug string) (*models.Category, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Category, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
}

type categoryRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewCategoryRepository(db *database.Database) CategoryRepository {
	return &categoryRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *categoryRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func orderByName(db *gorm.DB) *gorm.DB {
	return db.Order("name ASC")
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) FindTree(ctx context.Context) ([]models.Category, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var categories []models.Category
	err := r.db.WithContext(ctx).
		Preload("Translations", orderByLanguage).
		Preload("Children", orderByName).
		Preload("Children.Translations", orderByLanguage).
		Preload("Children.Children", orderByName).
		Preload("Children.Children.Translations", orderByLanguage).
		Where("parent_id IS NULL").
		Order("name ASC").
		Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) FindBySlug(ctx context.Context, slug string) (*models.Category, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var category models.Category
	err := r.db.WithContext(ctx).
		Preload("Translations", orderByLanguage).
		Preload("Parent").
		Preload("Parent.Translations", orderByLanguage).
		Preload("Children", orderByName).
		Preload("Children.Translations", orderByLanguage).
		Preload("Products", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true).Order("created_at DESC").Limit(categoryProductsLimit)
		}).
		Preload("Products.Translations", orderByLanguage).
		Preload("Products.Brand").
		Preload("Products.Brand.Translations", orderByLanguage).
		Preload("Products.Images", orderBySortOrder).
		Where("slug = ?", slug).
		First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var category models.Category
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Category, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var categories []models.Category
	if len(ids) == 0 {
		return categories, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var count int64
	err := r.db.WithContext(ctx).Model(&models.Category{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}
