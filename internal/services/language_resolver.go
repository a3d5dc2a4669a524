package services

import (
	"context"

	"storefront-backend/internal/i18n"
	"storefront-backend/internal/metrics"
	"storefront-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

// LanguageResolver maps a client language hint onto a language the
// storefront actually serves.
type LanguageResolver interface {
	// Resolve returns requested when it names an active language and the
	// default language code otherwise. It never fails.
	Resolve(ctx context.Context, requested string) string
	// Locale resolves requested and pairs it with the default code, reading
	// the default once.
	Locale(ctx context.Context, requested string) i18n.Locale
}

type languageResolver struct {
	languages LanguageService
	repo      repository.LanguageRepository
	logger    *logrus.Logger
}

func NewLanguageResolver(languages LanguageService, repo repository.LanguageRepository, logger *logrus.Logger) LanguageResolver {
	return &languageResolver{
		languages: languages,
		repo:      repo,
		logger:    logger,
	}
}

func (r *languageResolver) Resolve(ctx context.Context, requested string) string {
	return r.resolve(ctx, requested, r.languages.GetDefaultLanguageCode(ctx))
}

func (r *languageResolver) Locale(ctx context.Context, requested string) i18n.Locale {
	def := r.languages.GetDefaultLanguageCode(ctx)
	return i18n.Locale{
		Resolved: r.resolve(ctx, requested, def),
		Default:  def,
	}
}

func (r *languageResolver) resolve(ctx context.Context, requested, def string) string {
	if requested == "" {
		metrics.LanguageResolutions.WithLabelValues(metrics.OutcomeDefault).Inc()
		return def
	}

	language, err := r.repo.FindByCode(ctx, requested)
	if err != nil {
		r.logger.WithError(err).WithField("requested", requested).Warn("Failed to look up requested language, using default")
		metrics.LanguageResolutions.WithLabelValues(metrics.OutcomeDefault).Inc()
		return def
	}
	if language == nil || !language.IsActive {
		metrics.LanguageResolutions.WithLabelValues(metrics.OutcomeDefault).Inc()
		return def
	}

	metrics.LanguageResolutions.WithLabelValues(metrics.OutcomeRequested).Inc()
	return requested
}
