package services

import (
	"context"
	"testing"

	"storefront-backend/internal/config"
	"storefront-backend/internal/database"
	"storefront-backend/internal/database/dbtest"
	"storefront-backend/internal/models"
	"storefront-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type i18nFixture struct {
	db        *database.Database
	langRepo  repository.LanguageRepository
	languages LanguageService
	resolver  LanguageResolver
}

func newI18nFixture(t *testing.T) *i18nFixture {
	t.Helper()
	db := dbtest.New(t)
	langRepo := repository.NewLanguageRepository(db)
	logger := newTestLogger()
	languages := NewLanguageService(langRepo, config.I18nConfig{FallbackLanguage: "en"}, logger)

	_, err := languages.SeedDefaults(context.Background())
	require.NoError(t, err)

	return &i18nFixture{
		db:        db,
		langRepo:  langRepo,
		languages: languages,
		resolver:  NewLanguageResolver(languages, langRepo, logger),
	}
}

func (f *i18nFixture) translations() TranslationService {
	return NewTranslationService(repository.NewUITranslationRepository(f.db), f.langRepo, f.languages, newTestLogger())
}

func TestTranslationService_GetTranslationsNested(t *testing.T) {
	f := newI18nFixture(t)
	svc := f.translations()
	ctx := context.Background()

	_, err := svc.BulkUpsert(ctx, "ro", map[string]string{
		"header.menu.home":     "Acasă",
		"header.menu.products": "Produse",
		"footer.copyright":     "Toate drepturile rezervate",
	})
	require.NoError(t, err)

	loc := f.resolver.Locale(ctx, "ro")
	require.Equal(t, "ro", loc.Resolved)

	nested, err := svc.GetTranslations(ctx, loc)
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{
		"header": map[string]interface{}{
			"menu": map[string]interface{}{
				"home":     "Acasă",
				"products": "Produse",
			},
		},
		"footer": map[string]interface{}{
			"copyright": "Toate drepturile rezervate",
		},
	}, nested)
}

func TestTranslationService_GetTranslationsUnknownLanguageServesDefault(t *testing.T) {
	f := newI18nFixture(t)
	svc := f.translations()
	ctx := context.Background()

	_, err := svc.Upsert(ctx, "cart.title", "en", "Cart")
	require.NoError(t, err)

	loc := f.resolver.Locale(ctx, "fr")
	require.Equal(t, "en", loc.Resolved)

	nested, err := svc.GetTranslations(ctx, loc)
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"cart": map[string]interface{}{"title": "Cart"}}, nested)
}

func TestTranslationService_GetTranslationFallsBackToDefault(t *testing.T) {
	f := newI18nFixture(t)
	svc := f.translations()
	ctx := context.Background()

	_, err := svc.Upsert(ctx, "cart.title", "en", "Cart")
	require.NoError(t, err)
	_, err = svc.Upsert(ctx, "cart.title", "de", "Warenkorb")
	require.NoError(t, err)

	value, ok, err := svc.GetTranslation(ctx, "cart.title", "de")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Warenkorb", value)

	value, ok, err = svc.GetTranslation(ctx, "cart.title", "tr")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Cart", value)

	_, ok, err = svc.GetTranslation(ctx, "cart.missing", "tr")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTranslationService_AdminOperations(t *testing.T) {
	f := newI18nFixture(t)
	svc := f.translations()
	ctx := context.Background()

	_, err := svc.Upsert(ctx, "cart.title", "xx", "?")
	assert.ErrorIs(t, err, ErrNotFound, "unknown language")

	_, err = svc.BulkUpsert(ctx, "xx", map[string]string{"a": "b"})
	assert.ErrorIs(t, err, ErrNotFound)

	count, err := svc.BulkUpsert(ctx, "en", map[string]string{"b.key": "B", "a.key": "A"})
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	_, err = svc.Upsert(ctx, "a.key", "ro", "A ro")
	require.NoError(t, err)

	keys, err := svc.GetAllKeys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.key", "b.key"}, keys)

	groups, err := svc.GetAllTranslations(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "a.key", groups[0].Key)
	assert.Equal(t, []models.UITranslationValue{{Language: "en", Value: "A"}, {Language: "ro", Value: "A ro"}}, groups[0].Translations)

	updated, err := svc.Update(ctx, "a.key", "en", "A2")
	require.NoError(t, err)
	assert.Equal(t, "A2", updated.Value)

	_, err = svc.Update(ctx, "a.key", "de", "A de")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.Delete(ctx, "b.key", "en"))
	assert.ErrorIs(t, svc.Delete(ctx, "b.key", "en"), ErrNotFound)
}

func TestEntityTranslationService_Product(t *testing.T) {
	f := newI18nFixture(t)
	ctx := context.Background()

	brand := models.Brand{Name: "Acme", Slug: "acme"}
	require.NoError(t, f.db.Create(&brand).Error)
	product := models.Product{Name: "Anvil", Slug: "anvil", SKU: "AN-1", IsActive: true, BrandID: brand.ID}
	require.NoError(t, f.db.Create(&product).Error)

	products := repository.NewProductRepository(f.db)
	svc := NewProductTranslationService(repository.NewProductTranslationRepository(f.db), f.langRepo, products, newTestLogger())

	saved, err := svc.Upsert(ctx, product.ID, "RO", models.TranslationFields{Name: "Nicovală", MetaTitle: "Nicovală ieftină"})
	require.NoError(t, err)
	assert.Equal(t, "ro", saved.Language)
	assert.Equal(t, "Nicovală", saved.Name)

	again, err := svc.Upsert(ctx, product.ID, "ro", models.TranslationFields{Name: "Nicovală grea"})
	require.NoError(t, err)
	assert.Equal(t, saved.ID, again.ID, "upsert keeps one record per language")
	assert.Equal(t, "Nicovală grea", again.Name)

	_, err = svc.Upsert(ctx, product.ID, "xx", models.TranslationFields{Name: "?"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Upsert(ctx, uuid.New(), "ro", models.TranslationFields{Name: "?"})
	assert.ErrorIs(t, err, ErrNotFound)

	records, err := svc.List(ctx, product.ID)
	require.NoError(t, err)
	assert.Len(t, records, 1)

	require.NoError(t, svc.Delete(ctx, product.ID, "ro"))
	assert.ErrorIs(t, svc.Delete(ctx, product.ID, "ro"), ErrNotFound)
}

func TestEntityTranslationService_BrandAndCategory(t *testing.T) {
	f := newI18nFixture(t)
	ctx := context.Background()

	brand := models.Brand{Name: "Acme", Slug: "acme"}
	require.NoError(t, f.db.Create(&brand).Error)
	category := models.Category{Name: "Tools", Slug: "tools"}
	require.NoError(t, f.db.Create(&category).Error)

	brands := NewBrandTranslationService(repository.NewBrandTranslationRepository(f.db), f.langRepo, repository.NewBrandRepository(f.db), newTestLogger())
	categories := NewCategoryTranslationService(repository.NewCategoryTranslationRepository(f.db), f.langRepo, repository.NewCategoryRepository(f.db), newTestLogger())

	bt, err := brands.Upsert(ctx, brand.ID, "de", models.TranslationFields{Name: "Acme GmbH", ShortDescription: "ignored"})
	require.NoError(t, err)
	assert.Equal(t, "Acme GmbH", bt.Name)

	ct, err := categories.Upsert(ctx, category.ID, "tr", models.TranslationFields{Name: "Aletler"})
	require.NoError(t, err)
	assert.Equal(t, category.ID, ct.CategoryID)

	_, err = categories.List(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}
