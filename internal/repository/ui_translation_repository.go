package repository

import (
	"context"
	"errors"
	"time"

	"storefront-backend/internal/database"
	"storefront-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UITranslationRepository interface {
	FindByLanguage(ctx context.Context, language string) ([]models.UITranslation, error)
	Find(ctx context.Context, key, language string) (*models.UITranslation, error)
	FindAll(ctx context.Context) ([]models.UITranslation, error)
	DistinctKeys(ctx context.Context) ([]string, error)
	Upsert(ctx context.Context, translation *models.UITranslation) error
	UpdateValue(ctx context.Context, key, language, value string) (bool, error)
	Delete(ctx context.Context, key, language string) (bool, error)

	Transaction(ctx context.Context, fn func(repo UITranslationRepository) error) error
}

type uiTranslationRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewUITranslationRepository(db *database.Database) UITranslationRepository {
	return &uiTranslationRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *uiTranslationRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *uiTranslationRepository) Transaction(ctx context.Context, fn func(repo UITranslationRepository) error) error {
	return r.db.Transaction(ctx, func(tx *database.Database) error {
		return fn(&uiTranslationRepository{db: tx, timeout: r.timeout})
	})
}

func (r *uiTranslationRepository) FindByLanguage(ctx context.Context, language string) ([]models.UITranslation, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var translations []models.UITranslation
	err := r.db.WithContext(ctx).Where("language = ?", language).Order("key ASC").Find(&translations).Error
	return translations, err
}

func (r *uiTranslationRepository) Find(ctx context.Context, key, language string) (*models.UITranslation, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var translation models.UITranslation
	err := r.db.WithContext(ctx).Where("key = ? AND language = ?", key, language).First(&translation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &translation, nil
}

func (r *uiTranslationRepository) FindAll(ctx context.Context) ([]models.UITranslation, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var translations []models.UITranslation
	err := r.db.WithContext(ctx).Order("key ASC").Order("language ASC").Find(&translations).Error
	return translations, err
}

func (r *uiTranslationRepository) DistinctKeys(ctx context.Context) ([]string, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var keys []string
	err := r.db.WithContext(ctx).
		Model(&models.UITranslation{}).
		Distinct("key").
		Order("key ASC").
		Pluck("key", &keys).Error
	return keys, err
}

func (r *uiTranslationRepository) Upsert(ctx context.Context, translation *models.UITranslation) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}, {Name: "language"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(translation).Error
}

func (r *uiTranslationRepository) UpdateValue(ctx context.Context, key, language, value string) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	result := r.db.WithContext(ctx).
		Model(&models.UITranslation{}).
		Where("key = ? AND language = ?", key, language).
		Update("value", value)
	return result.RowsAffected > 0, result.Error
}

func (r *uiTranslationRepository) Delete(ctx context.Context, key, language string) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	result := r.db.WithContext(ctx).
		Where("key = ? AND language = ?", key, language).
		Delete(&models.UITranslation{})
	return result.RowsAffected > 0, result.Error
}
