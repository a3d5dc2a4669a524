package repository

import (
	"context"
	"errors"
	"time"

	"storefront-backend/internal/database"
	"storefront-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EntityTranslationRepository stores the per-language records of one kind of
// catalog entity. Rows are keyed on (owner, language).
type EntityTranslationRepository[R any] interface {
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]R, error)
	Find(ctx context.Context, ownerID uuid.UUID, language string) (*R, error)
	Upsert(ctx context.Context, record *R) error
	Delete(ctx context.Context, ownerID uuid.UUID, language string) (bool, error)
}

type entityTranslationRepository[R any] struct {
	db            *database.Database
	timeout       time.Duration
	ownerColumn   string
	updateColumns []string
}

func NewProductTranslationRepository(db *database.Database) EntityTranslationRepository[models.ProductTranslation] {
	return &entityTranslationRepository[models.ProductTranslation]{
		db:          db,
		timeout:     db.GetQueryTimeout(),
		ownerColumn: "product_id",
		updateColumns: []string{
			"name", "description", "short_description", "meta_title", "meta_description", "updated_at",
		},
	}
}

func NewBrandTranslationRepository(db *database.Database) EntityTranslationRepository[models.BrandTranslation] {
	return &entityTranslationRepository[models.BrandTranslation]{
		db:            db,
		timeout:       db.GetQueryTimeout(),
		ownerColumn:   "brand_id",
		updateColumns: []string{"name", "description", "updated_at"},
	}
}

func NewCategoryTranslationRepository(db *database.Database) EntityTranslationRepository[models.CategoryTranslation] {
	return &entityTranslationRepository[models.CategoryTranslation]{
		db:            db,
		timeout:       db.GetQueryTimeout(),
		ownerColumn:   "category_id",
		updateColumns: []string{"name", "description", "updated_at"},
	}
}

func (r *entityTranslationRepository[R]) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *entityTranslationRepository[R]) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]R, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var records []R
	err := r.db.WithContext(ctx).
		Where(r.ownerColumn+" = ?", ownerID).
		Order("language ASC").
		Find(&records).Error
	return records, err
}

func (r *entityTranslationRepository[R]) Find(ctx context.Context, ownerID uuid.UUID, language string) (*R, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var record R
	err := r.db.WithContext(ctx).
		Where(r.ownerColumn+" = ? AND language = ?", ownerID, language).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *entityTranslationRepository[R]) Upsert(ctx context.Context, record *R) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: r.ownerColumn}, {Name: "language"}},
			DoUpdates: clause.AssignmentColumns(r.updateColumns),
		}).
		Create(record).Error
}

func (r *entityTranslationRepository[R]) Delete(ctx context.Context, ownerID uuid.UUID, language string) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	result := r.db.WithContext(ctx).
		Where(r.ownerColumn+" = ? AND language = ?", ownerID, language).
		Delete(new(R))
	return result.RowsAffected > 0, result.Error
}
