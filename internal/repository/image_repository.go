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

type ImageRepository interface {
	Create(ctx context.Context, image *models.ProductImage) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.ProductImage, error)
	FindByProduct(ctx context.Context, productID uuid.UUID) ([]models.ProductImage, error)
	CountByProduct(ctx context.Context, productID uuid.UUID) (int64, error)
	SetPrimary(ctx context.Context, id uuid.UUID) error
	// ClearPrimary unsets the primary flag on every image of the product.
	ClearPrimary(ctx context.Context, productID uuid.UUID) error
	UpdateSortOrder(ctx context.Context, id uuid.UUID, order int) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error

	Transaction(ctx context.Context, fn func(repo ImageRepository) error) error
}

type imageRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewImageRepository(db *database.Database) ImageRepository {
	return &imageRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *imageRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *imageRepository) Transaction(ctx context.Context, fn func(repo ImageRepository) error) error {
	return r.db.Transaction(ctx, func(tx *database.Database) error {
		return fn(&imageRepository{db: tx, timeout: r.timeout})
	})
}

func (r *imageRepository) Create(ctx context.Context, image *models.ProductImage) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(image).Error
}

func (r *imageRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.ProductImage, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var image models.ProductImage
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&image).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &image, nil
}

func (r *imageRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]models.ProductImage, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var images []models.ProductImage
	err := orderBySortOrder(r.db.WithContext(ctx).Where("product_id = ?", productID)).Find(&images).Error
	return images, err
}

func (r *imageRepository) CountByProduct(ctx context.Context, productID uuid.UUID) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var count int64
	err := r.db.WithContext(ctx).Model(&models.ProductImage{}).Where("product_id = ?", productID).Count(&count).Error
	return count, err
}

func (r *imageRepository) SetPrimary(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Model(&models.ProductImage{}).Where("id = ?", id).Update("is_primary", true).Error
}

func (r *imageRepository) ClearPrimary(ctx context.Context, productID uuid.UUID) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).
		Model(&models.ProductImage{}).
		Where("product_id = ? AND is_primary = ?", productID, true).
		Update("is_primary", false).Error
}

func (r *imageRepository) UpdateSortOrder(ctx context.Context, id uuid.UUID, order int) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	result := r.db.WithContext(ctx).Model(&models.ProductImage{}).Where("id = ?", id).Update("sort_order", order)
	return result.RowsAffected > 0, result.Error
}

func (r *imageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.ProductImage{}).Error
}
