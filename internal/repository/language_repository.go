package repository

import (
	"context"
	"errors"
	"time"

	"storefront-backend/internal/database"
	"storefront-backend/internal/models"

	"gorm.io/gorm"
)

type LanguageRepository interface {
	Create(ctx context.Context, language *models.Language) error
	Update(ctx context.Context, language *models.Language) error
	Delete(ctx context.Context, code string) error
	FindByCode(ctx context.Context, code string) (*models.Language, error)
	FindDefault(ctx context.Context) (*models.Language, error)
	FindAll(ctx context.Context, includeInactive bool) ([]models.Language, error)
	CountActive(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int64, error)

	// ClearDefault unsets the default flag on every language except exceptCode.
	ClearDefault(ctx context.Context, exceptCode string) error
	// RenameInTranslations rewrites the language column of all translation
	// tables from one code to another.
	RenameInTranslations(ctx context.Context, from, to string) error

	Transaction(ctx context.Context, fn func(repo LanguageRepository) error) error
}

type languageRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewLanguageRepository(db *database.Database) LanguageRepository {
	return &languageRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *languageRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *languageRepository) Transaction(ctx context.Context, fn func(repo LanguageRepository) error) error {
	return r.db.Transaction(ctx, func(tx *database.Database) error {
		return fn(&languageRepository{db: tx, timeout: r.timeout})
	})
}

func (r *languageRepository) Create(ctx context.Context, language *models.Language) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(language).Error
}

func (r *languageRepository) Update(ctx context.Context, language *models.Language) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Save(language).Error
}

func (r *languageRepository) Delete(ctx context.Context, code string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Where("code = ?", code).Delete(&models.Language{}).Error
}

func (r *languageRepository) FindByCode(ctx context.Context, code string) (*models.Language, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var language models.Language
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&language).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &language, nil
}

func (r *languageRepository) FindDefault(ctx context.Context) (*models.Language, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var language models.Language
	err := r.db.WithContext(ctx).Where("is_default = ? AND is_active = ?", true, true).First(&language).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &language, nil
}

func (r *languageRepository) FindAll(ctx context.Context, includeInactive bool) ([]models.Language, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := r.db.WithContext(ctx).Model(&models.Language{})
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}

	var languages []models.Language
	err := query.Order("is_default DESC").Order("name ASC").Find(&languages).Error
	return languages, err
}

func (r *languageRepository) CountActive(ctx context.Context) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var count int64
	err := r.db.WithContext(ctx).Model(&models.Language{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}

func (r *languageRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var count int64
	err := r.db.WithContext(ctx).Model(&models.Language{}).Count(&count).Error
	return count, err
}

func (r *languageRepository) ClearDefault(ctx context.Context, exceptCode string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := r.db.WithContext(ctx).Model(&models.Language{}).Where("is_default = ?", true)
	if exceptCode != "" {
		query = query.Where("code <> ?", exceptCode)
	}
	return query.Update("is_default", false).Error
}

func (r *languageRepository) RenameInTranslations(ctx context.Context, from, to string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	db := r.db.WithContext(ctx)
	for _, model := range []interface{}{
		&models.UITranslation{},
		&models.ProductTranslation{},
		&models.BrandTranslation{},
		&models.CategoryTranslation{},
	} {
		if err := db.Model(model).Where("language = ?", from).Update("language", to).Error; err != nil {
			return err
		}
	}
	return nil
}
