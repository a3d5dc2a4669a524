package services

import (
	"context"
	"errors"
	"testing"

	"storefront-backend/internal/i18n"
	"storefront-backend/internal/metrics"
	"storefront-backend/internal/models"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newResolverWithRepo(repo *MockLanguageRepository) LanguageResolver {
	return NewLanguageResolver(newLanguageService(repo, 0), repo, newTestLogger())
}

func TestResolve(t *testing.T) {
	repo := new(MockLanguageRepository)
	repo.On("FindDefault", mock.Anything).Return(&models.Language{Code: "ro", IsDefault: true, IsActive: true}, nil)
	repo.On("FindByCode", mock.Anything, "de").Return(&models.Language{Code: "de", IsActive: true}, nil)
	repo.On("FindByCode", mock.Anything, "tr").Return(&models.Language{Code: "tr", IsActive: false}, nil)
	repo.On("FindByCode", mock.Anything, "fr").Return(nil, nil)
	repo.On("FindByCode", mock.Anything, "ru").Return(nil, errors.New("connection reset"))

	resolver := newResolverWithRepo(repo)
	ctx := context.Background()

	tests := []struct {
		name      string
		requested string
		want      string
	}{
		{"empty uses default", "", "ro"},
		{"active language is served", "de", "de"},
		{"inactive language falls back", "tr", "ro"},
		{"unknown language falls back", "fr", "ro"},
		{"store error falls back", "ru", "ro"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolver.Resolve(ctx, tt.requested))
		})
	}
}

func TestResolve_NoDefaultUsesFallback(t *testing.T) {
	repo := new(MockLanguageRepository)
	repo.On("FindDefault", mock.Anything).Return(nil, nil)
	repo.On("FindByCode", mock.Anything, "fr").Return(nil, nil)

	resolver := newResolverWithRepo(repo)

	assert.Equal(t, "en", resolver.Resolve(context.Background(), "fr"))
}

func TestLocale_PairsResolvedWithDefault(t *testing.T) {
	repo := new(MockLanguageRepository)
	repo.On("FindDefault", mock.Anything).Return(&models.Language{Code: "en", IsDefault: true, IsActive: true}, nil)
	repo.On("FindByCode", mock.Anything, "de").Return(&models.Language{Code: "de", IsActive: true}, nil)

	resolver := newResolverWithRepo(repo)

	loc := resolver.Locale(context.Background(), "de")
	assert.Equal(t, i18n.Locale{Resolved: "de", Default: "en"}, loc)
	repo.AssertNumberOfCalls(t, "FindDefault", 1)
}

func TestResolve_CountsOutcomes(t *testing.T) {
	repo := new(MockLanguageRepository)
	repo.On("FindDefault", mock.Anything).Return(&models.Language{Code: "en", IsDefault: true, IsActive: true}, nil)
	repo.On("FindByCode", mock.Anything, "de").Return(&models.Language{Code: "de", IsActive: true}, nil)

	resolver := newResolverWithRepo(repo)
	requested := testutil.ToFloat64(metrics.LanguageResolutions.WithLabelValues(metrics.OutcomeRequested))
	fellBack := testutil.ToFloat64(metrics.LanguageResolutions.WithLabelValues(metrics.OutcomeDefault))

	resolver.Resolve(context.Background(), "de")
	resolver.Resolve(context.Background(), "")

	assert.Equal(t, requested+1, testutil.ToFloat64(metrics.LanguageResolutions.WithLabelValues(metrics.OutcomeRequested)))
	assert.Equal(t, fellBack+1, testutil.ToFloat64(metrics.LanguageResolutions.WithLabelValues(metrics.OutcomeDefault)))
}
