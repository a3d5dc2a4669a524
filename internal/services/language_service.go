package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"storefront-backend/internal/config"
	"storefront-backend/internal/i18n"
	"storefront-backend/internal/models"
	"storefront-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

type LanguageService interface {
	ListLanguages(ctx context.Context, includeInactive bool) ([]models.Language, error)
	// GetDefaultLanguageCode never fails: it falls back to the configured
	// fallback code when no active default exists or the store is unreachable.
	GetDefaultLanguageCode(ctx context.Context) string
	GetLanguage(ctx context.Context, code string) (*models.Language, error)
	CreateLanguage(ctx context.Context, input CreateLanguageInput) (*models.Language, error)
	UpdateLanguage(ctx context.Context, code string, update models.LanguageUpdate) (*models.Language, error)
	SetDefault(ctx context.Context, code string) (*models.Language, error)
	DeleteLanguage(ctx context.Context, code string) error
	SeedDefaults(ctx context.Context) (bool, error)
}

type CreateLanguageInput struct {
	Code      string
	Name      string
	IsDefault *bool
	IsActive  *bool
}

var defaultSeedLanguages = []models.Language{
	{Code: "en", Name: "English", IsDefault: true, IsActive: true},
	{Code: "ro", Name: "Romanian", IsActive: true},
	{Code: "ru", Name: "Russian", IsActive: true},
	{Code: "de", Name: "German", IsActive: true},
	{Code: "tr", Name: "Turkish", IsActive: true},
}

type languageService struct {
	repo     repository.LanguageRepository
	fallback string
	cache    *defaultLanguageCache
	logger   *logrus.Logger
}

func NewLanguageService(repo repository.LanguageRepository, cfg config.I18nConfig, logger *logrus.Logger) LanguageService {
	fallback := normalizeCode(cfg.FallbackLanguage)
	if fallback == "" {
		fallback = i18n.FallbackLanguage
	}

	return &languageService{
		repo:     repo,
		fallback: fallback,
		cache:    &defaultLanguageCache{ttl: cfg.DefaultCacheTTL},
		logger:   logger,
	}
}

func normalizeCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

func validCode(code string) bool {
	return len(code) >= 2 && len(code) <= 5
}

func (s *languageService) ListLanguages(ctx context.Context, includeInactive bool) ([]models.Language, error) {
	languages, err := s.repo.FindAll(ctx, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to list languages: %w", err)
	}
	return languages, nil
}

func (s *languageService) GetDefaultLanguageCode(ctx context.Context) string {
	code, ok, gen := s.cache.get()
	if ok {
		return code
	}

	language, err := s.repo.FindDefault(ctx)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to read default language, using fallback")
		return s.fallback
	}

	code = s.fallback
	if language != nil {
		code = language.Code
	}
	s.cache.set(code, gen)
	return code
}

func (s *languageService) GetLanguage(ctx context.Context, code string) (*models.Language, error) {
	code = normalizeCode(code)

	language, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get language: %w", err)
	}
	if language == nil {
		return nil, notFoundf("language with code %s not found", code)
	}
	return language, nil
}

func (s *languageService) CreateLanguage(ctx context.Context, input CreateLanguageInput) (*models.Language, error) {
	code := normalizeCode(input.Code)
	if !validCode(code) {
		return nil, badRequestf("language code must be 2 to 5 characters")
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, badRequestf("language name is required")
	}

	language := &models.Language{
		Code:     code,
		Name:     name,
		IsActive: true,
	}
	if input.IsDefault != nil {
		language.IsDefault = *input.IsDefault
	}
	if input.IsActive != nil {
		language.IsActive = *input.IsActive
	}

	err := s.repo.Transaction(ctx, func(tx repository.LanguageRepository) error {
		existing, err := tx.FindByCode(ctx, code)
		if err != nil {
			return err
		}
		if existing != nil {
			return conflictf("language with code %s already exists", code)
		}

		if language.IsDefault {
			if err := tx.ClearDefault(ctx, ""); err != nil {
				return err
			}
		}
		return tx.Create(ctx, language)
	})
	if err != nil {
		return nil, s.wrap("create", code, err)
	}
	s.cache.invalidate()

	s.logger.WithFields(logrus.Fields{
		"code":      language.Code,
		"isDefault": language.IsDefault,
		"isActive":  language.IsActive,
	}).Info("Language created")

	return language, nil
}

func (s *languageService) UpdateLanguage(ctx context.Context, code string, update models.LanguageUpdate) (*models.Language, error) {
	code = normalizeCode(code)

	var updated *models.Language
	err := s.repo.Transaction(ctx, func(tx repository.LanguageRepository) error {
		language, err := tx.FindByCode(ctx, code)
		if err != nil {
			return err
		}
		if language == nil {
			return notFoundf("language with code %s not found", code)
		}

		newCode := code
		if update.Code != nil {
			newCode = normalizeCode(*update.Code)
			if !validCode(newCode) {
				return badRequestf("language code must be 2 to 5 characters")
			}
		}

		if newCode != code {
			existing, err := tx.FindByCode(ctx, newCode)
			if err != nil {
				return err
			}
			if existing != nil {
				return conflictf("language with code %s already exists", newCode)
			}
		}

		if update.IsActive != nil && !*update.IsActive {
			if update.IsDefault != nil && *update.IsDefault {
				return badRequestf("the default language must stay active")
			}
			if language.IsDefault && update.IsDefault == nil {
				return badRequestf("cannot deactivate the default language")
			}
			if language.IsActive {
				active, err := tx.CountActive(ctx)
				if err != nil {
					return err
				}
				if active <= 1 {
					return badRequestf("cannot deactivate the only active language")
				}
			}
		}

		if update.IsDefault != nil && *update.IsDefault {
			if err := tx.ClearDefault(ctx, code); err != nil {
				return err
			}
		}

		language.Code = newCode
		if update.Name != nil && strings.TrimSpace(*update.Name) != "" {
			language.Name = strings.TrimSpace(*update.Name)
		}
		if update.IsDefault != nil {
			language.IsDefault = *update.IsDefault
		}
		if update.IsActive != nil {
			language.IsActive = *update.IsActive
		}

		if err := tx.Update(ctx, language); err != nil {
			return err
		}

		if newCode != code {
			if err := tx.RenameInTranslations(ctx, code, newCode); err != nil {
				return err
			}
		}

		updated = language
		return nil
	})
	if err != nil {
		return nil, s.wrap("update", code, err)
	}
	s.cache.invalidate()

	s.logger.WithFields(logrus.Fields{
		"code":    code,
		"newCode": updated.Code,
	}).Info("Language updated")

	return updated, nil
}

func (s *languageService) SetDefault(ctx context.Context, code string) (*models.Language, error) {
	code = normalizeCode(code)

	var language *models.Language
	err := s.repo.Transaction(ctx, func(tx repository.LanguageRepository) error {
		found, err := tx.FindByCode(ctx, code)
		if err != nil {
			return err
		}
		if found == nil {
			return notFoundf("language with code %s not found", code)
		}

		if err := tx.ClearDefault(ctx, code); err != nil {
			return err
		}

		found.IsDefault = true
		found.IsActive = true
		if err := tx.Update(ctx, found); err != nil {
			return err
		}
		language = found
		return nil
	})
	if err != nil {
		return nil, s.wrap("set default", code, err)
	}
	s.cache.invalidate()

	s.logger.WithField("code", code).Info("Default language changed")
	return language, nil
}

func (s *languageService) DeleteLanguage(ctx context.Context, code string) error {
	code = normalizeCode(code)

	err := s.repo.Transaction(ctx, func(tx repository.LanguageRepository) error {
		language, err := tx.FindByCode(ctx, code)
		if err != nil {
			return err
		}
		if language == nil {
			return notFoundf("language with code %s not found", code)
		}
		if language.IsDefault {
			return badRequestf("cannot delete the default language")
		}

		if language.IsActive {
			active, err := tx.CountActive(ctx)
			if err != nil {
				return err
			}
			if active <= 1 {
				return badRequestf("cannot delete the only active language")
			}
		}

		return tx.Delete(ctx, code)
	})
	if err != nil {
		return s.wrap("delete", code, err)
	}
	s.cache.invalidate()

	s.logger.WithField("code", code).Info("Language deleted")
	return nil
}

// SeedDefaults inserts the stock language set when the registry is empty.
// It reports whether anything was inserted.
func (s *languageService) SeedDefaults(ctx context.Context) (bool, error) {
	seeded := false
	err := s.repo.Transaction(ctx, func(tx repository.LanguageRepository) error {
		count, err := tx.Count(ctx)
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		for _, seed := range defaultSeedLanguages {
			language := seed
			if err := tx.Create(ctx, &language); err != nil {
				return err
			}
		}
		seeded = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to seed languages: %w", err)
	}
	if seeded {
		s.cache.invalidate()
		s.logger.WithField("count", len(defaultSeedLanguages)).Info("Seeded default languages")
	}
	return seeded, nil
}

// wrap passes service errors through untouched and annotates store errors.
func (s *languageService) wrap(op, code string, err error) error {
	if isServiceError(err) {
		return err
	}
	s.logger.WithError(err).WithField("code", code).Errorf("Failed to %s language", op)
	return fmt.Errorf("failed to %s language %s: %w", op, code, err)
}

// defaultLanguageCache holds the default code for a short TTL. Every
// invalidation bumps generation; a read that started before the bump cannot
// store its result.
type defaultLanguageCache struct {
	mu         sync.RWMutex
	code       string
	expires    time.Time
	ttl        time.Duration
	generation uint64
}

// get returns the cached code, if fresh, and the generation a caller must
// hand back to set.
func (c *defaultLanguageCache) get() (string, bool, uint64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.ttl <= 0 || c.code == "" || time.Now().After(c.expires) {
		return "", false, c.generation
	}
	return c.code, true, c.generation
}

func (c *defaultLanguageCache) set(code string, gen uint64) {
	if c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		return
	}
	c.code = code
	c.expires = time.Now().Add(c.ttl)
}

func (c *defaultLanguageCache) invalidate() {
	c.mu.Lock()
	c.generation++
	c.code = ""
	c.expires = time.Time{}
	c.mu.Unlock()
}
