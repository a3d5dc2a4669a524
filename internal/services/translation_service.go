package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"storefront-backend/internal/i18n"
	"storefront-backend/internal/models"
	"storefront-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

// TranslationService manages storefront UI strings.
type TranslationService interface {
	// GetTranslations returns every UI string of the already resolved
	// request language as a nested object.
	GetTranslations(ctx context.Context, loc i18n.Locale) (map[string]interface{}, error)
	// GetTranslation falls back to the default language when the key has no
	// value in the requested one. ok is false when neither exists.
	GetTranslation(ctx context.Context, key, language string) (value string, ok bool, err error)
	GetAllKeys(ctx context.Context) ([]string, error)
	GetAllTranslations(ctx context.Context) ([]models.UITranslationGroup, error)
	Upsert(ctx context.Context, key, language, value string) (*models.UITranslation, error)
	BulkUpsert(ctx context.Context, language string, values map[string]string) (int, error)
	Update(ctx context.Context, key, language, value string) (*models.UITranslation, error)
	Delete(ctx context.Context, key, language string) error
}

type translationService struct {
	repo      repository.UITranslationRepository
	langRepo  repository.LanguageRepository
	languages LanguageService
	logger    *logrus.Logger
}

func NewTranslationService(
	repo repository.UITranslationRepository,
	langRepo repository.LanguageRepository,
	languages LanguageService,
	logger *logrus.Logger,
) TranslationService {
	return &translationService{
		repo:      repo,
		langRepo:  langRepo,
		languages: languages,
		logger:    logger,
	}
}

func (s *translationService) GetTranslations(ctx context.Context, loc i18n.Locale) (map[string]interface{}, error) {
	rows, err := s.repo.FindByLanguage(ctx, loc.Resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to load translations for %s: %w", loc.Resolved, err)
	}

	flat := make(map[string]string, len(rows))
	for _, row := range rows {
		flat[row.Key] = row.Value
	}
	return i18n.Nest(flat), nil
}

func (s *translationService) GetTranslation(ctx context.Context, key, language string) (string, bool, error) {
	language = normalizeCode(language)

	row, err := s.repo.Find(ctx, key, language)
	if err != nil {
		return "", false, fmt.Errorf("failed to get translation: %w", err)
	}
	if row != nil {
		return row.Value, true, nil
	}

	def := s.languages.GetDefaultLanguageCode(ctx)
	if def == language {
		return "", false, nil
	}

	row, err = s.repo.Find(ctx, key, def)
	if err != nil {
		return "", false, fmt.Errorf("failed to get translation: %w", err)
	}
	if row == nil {
		return "", false, nil
	}
	return row.Value, true, nil
}

func (s *translationService) GetAllKeys(ctx context.Context) ([]string, error) {
	keys, err := s.repo.DistinctKeys(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list translation keys: %w", err)
	}
	return keys, nil
}

func (s *translationService) GetAllTranslations(ctx context.Context) ([]models.UITranslationGroup, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list translations: %w", err)
	}

	groups := make([]models.UITranslationGroup, 0)
	for _, row := range rows {
		if n := len(groups); n == 0 || groups[n-1].Key != row.Key {
			groups = append(groups, models.UITranslationGroup{Key: row.Key})
		}
		last := &groups[len(groups)-1]
		last.Translations = append(last.Translations, models.UITranslationValue{
			Language: row.Language,
			Value:    row.Value,
		})
	}
	return groups, nil
}

func (s *translationService) Upsert(ctx context.Context, key, language, value string) (*models.UITranslation, error) {
	key = strings.TrimSpace(key)
	language = normalizeCode(language)
	if key == "" {
		return nil, badRequestf("translation key is required")
	}

	if err := s.requireLanguage(ctx, language); err != nil {
		return nil, err
	}

	row := &models.UITranslation{Key: key, Language: language, Value: value}
	if err := s.repo.Upsert(ctx, row); err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{"key": key, "language": language}).Error("Failed to upsert translation")
		return nil, fmt.Errorf("failed to upsert translation: %w", err)
	}
	return s.reload(ctx, key, language)
}

func (s *translationService) BulkUpsert(ctx context.Context, language string, values map[string]string) (int, error) {
	language = normalizeCode(language)
	if err := s.requireLanguage(ctx, language); err != nil {
		return 0, err
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		if strings.TrimSpace(k) == "" {
			return 0, badRequestf("translation key is required")
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	err := s.repo.Transaction(ctx, func(tx repository.UITranslationRepository) error {
		for _, k := range keys {
			row := &models.UITranslation{Key: strings.TrimSpace(k), Language: language, Value: values[k]}
			if err := tx.Upsert(ctx, row); err != nil {
				return fmt.Errorf("key %s: %w", k, err)
			}
		}
		return nil
	})
	if err != nil {
		s.logger.WithError(err).WithField("language", language).Error("Bulk translation upsert failed")
		return 0, fmt.Errorf("failed to bulk upsert translations: %w", err)
	}

	s.logger.WithFields(logrus.Fields{"language": language, "count": len(keys)}).Info("Bulk translations upserted")
	return len(keys), nil
}

func (s *translationService) Update(ctx context.Context, key, language, value string) (*models.UITranslation, error) {
	language = normalizeCode(language)

	ok, err := s.repo.UpdateValue(ctx, key, language, value)
	if err != nil {
		return nil, fmt.Errorf("failed to update translation: %w", err)
	}
	if !ok {
		return nil, notFoundf("translation not found for key %s and language %s", key, language)
	}
	return s.reload(ctx, key, language)
}

func (s *translationService) Delete(ctx context.Context, key, language string) error {
	language = normalizeCode(language)

	ok, err := s.repo.Delete(ctx, key, language)
	if err != nil {
		return fmt.Errorf("failed to delete translation: %w", err)
	}
	if !ok {
		return notFoundf("translation not found for key %s and language %s", key, language)
	}
	return nil
}

func (s *translationService) requireLanguage(ctx context.Context, code string) error {
	language, err := s.langRepo.FindByCode(ctx, code)
	if err != nil {
		return fmt.Errorf("failed to check language: %w", err)
	}
	if language == nil {
		return notFoundf("language with code %s not found", code)
	}
	return nil
}

func (s *translationService) reload(ctx context.Context, key, language string) (*models.UITranslation, error) {
	row, err := s.repo.Find(ctx, key, language)
	if err != nil {
		return nil, fmt.Errorf("failed to reload translation: %w", err)
	}
	if row == nil {
		return nil, notFoundf("translation not found for key %s and language %s", key, language)
	}
	return row, nil
}
