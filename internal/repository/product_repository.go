package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"storefront-backend/internal/database"
	"storefront-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	FindAll(ctx context.Context, filter models.ProductFilter) ([]models.Product, int64, error)
	FindBySlug(ctx context.Context, slug string) (*models.Product, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	// FindPlain loads the product row with its brand and categories only.
	FindPlain(ctx context.Context, id uuid.UUID) (*models.Product, error)
	SlugOrSKUExists(ctx context.Context, slug, sku string) (bool, error)
	// Delete removes the product together with its translations, category
	// links and image rows.
	Delete(ctx context.Context, id uuid.UUID) error
}

type productRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewProductRepository(db *database.Database) ProductRepository {
	return &productRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *productRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

// orderByLanguage keeps preloaded translation rows in a stable order.
func orderByLanguage(db *gorm.DB) *gorm.DB {
	return db.Order("language ASC")
}

func orderBySortOrder(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order ASC").Order("created_at ASC")
}

func (r *productRepository) withDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Translations", orderByLanguage).
		Preload("Brand").
		Preload("Brand.Translations", orderByLanguage).
		Preload("Categories").
		Preload("Categories.Translations", orderByLanguage).
		Preload("Images", orderBySortOrder)
}

func (r *productRepository) Create(ctx context.Context, product *models.Product) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Omit("Categories.*").Create(product).Error
}

func (r *productRepository) FindAll(ctx context.Context, filter models.ProductFilter) ([]models.Product, int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var products []models.Product
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Product{}).Where("is_active = ?", true)

	if filter.BrandID != nil {
		query = query.Where("brand_id = ?", *filter.BrandID)
	}

	if filter.CategoryID != nil {
		query = query.Where("id IN (?)",
			r.db.WithContext(ctx).Table("product_categories").
				Select("product_id").
				Where("category_id = ?", *filter.CategoryID))
	}

	if filter.Featured != nil {
		query = query.Where("is_featured = ?", *filter.Featured)
	}

	if search := strings.TrimSpace(filter.Search); search != "" {
		searchPattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", searchPattern, searchPattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := r.withDetails(query).
		Order("created_at DESC").
		Offset(offset).
		Limit(filter.Limit).
		Find(&products).Error

	return products, total, err
}

func (r *productRepository) FindBySlug(ctx context.Context, slug string) (*models.Product, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var product models.Product
	err := r.withDetails(r.db.WithContext(ctx)).
		Where("slug = ? AND is_active = ?", slug, true).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var product models.Product
	err := r.withDetails(r.db.WithContext(ctx)).Where("id = ?", id).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) FindPlain(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var product models.Product
	err := r.db.WithContext(ctx).
		Preload("Brand").
		Preload("Categories", func(db *gorm.DB) *gorm.DB { return db.Order("name ASC") }).
		Where("id = ?", id).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.Transaction(ctx, func(tx *database.Database) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductTranslation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductImage{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM product_categories WHERE product_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Product{}).Error
	})
}

func (r *productRepository) SlugOrSKUExists(ctx context.Context, slug, sku string) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var count int64
	err := r.db.WithContext(ctx).Model(&models.Product{}).Where("slug = ? OR sku = ?", slug, sku).Count(&count).Error
	return count > 0, err
}
