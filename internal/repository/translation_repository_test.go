package repository

import (
	"context"
	"testing"

	"storefront-backend/internal/database/dbtest"
	"storefront-backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityTranslationRepository_UpsertIsIdempotent(t *testing.T) {
	repo := NewProductTranslationRepository(dbtest.New(t))
	ctx := context.Background()
	productID := uuid.New()

	require.NoError(t, repo.Upsert(ctx, &models.ProductTranslation{ProductID: productID, Language: "ro", Name: "Telefon"}))
	require.NoError(t, repo.Upsert(ctx, &models.ProductTranslation{ProductID: productID, Language: "ro", Name: "Telefon mobil", MetaTitle: "Cumpără"}))

	records, err := repo.FindByOwner(ctx, productID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Telefon mobil", records[0].Name)
	assert.Equal(t, "Cumpără", records[0].MetaTitle)
}

func TestEntityTranslationRepository_FindByOwnerOrdered(t *testing.T) {
	repo := NewBrandTranslationRepository(dbtest.New(t))
	ctx := context.Background()
	brandID := uuid.New()

	for _, lang := range []string{"tr", "de", "ro"} {
		require.NoError(t, repo.Upsert(ctx, &models.BrandTranslation{BrandID: brandID, Language: lang, Name: "Acme " + lang}))
	}
	require.NoError(t, repo.Upsert(ctx, &models.BrandTranslation{BrandID: uuid.New(), Language: "en", Name: "Other"}))

	records, err := repo.FindByOwner(ctx, brandID)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "de", records[0].Language)
	assert.Equal(t, "ro", records[1].Language)
	assert.Equal(t, "tr", records[2].Language)
}

func TestEntityTranslationRepository_FindAndDelete(t *testing.T) {
	repo := NewCategoryTranslationRepository(dbtest.New(t))
	ctx := context.Background()
	categoryID := uuid.New()

	require.NoError(t, repo.Upsert(ctx, &models.CategoryTranslation{CategoryID: categoryID, Language: "de", Name: "Elektronik"}))

	found, err := repo.Find(ctx, categoryID, "de")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Elektronik", found.Name)

	missing, err := repo.Find(ctx, categoryID, "ru")
	require.NoError(t, err)
	assert.Nil(t, missing)

	deleted, err := repo.Delete(ctx, categoryID, "de")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, categoryID, "de")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestUITranslationRepository_UpsertAndFind(t *testing.T) {
	repo := NewUITranslationRepository(dbtest.New(t))
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &models.UITranslation{Key: "header.menu.home", Language: "en", Value: "Home"}))
	require.NoError(t, repo.Upsert(ctx, &models.UITranslation{Key: "header.menu.home", Language: "en", Value: "Homepage"}))

	found, err := repo.Find(ctx, "header.menu.home", "en")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Homepage", found.Value)

	missing, err := repo.Find(ctx, "header.menu.home", "ro")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUITranslationRepository_KeysAndGrouping(t *testing.T) {
	repo := NewUITranslationRepository(dbtest.New(t))
	ctx := context.Background()

	for _, tr := range []models.UITranslation{
		{Key: "footer.copyright", Language: "ro", Value: "Drepturi"},
		{Key: "cart.title", Language: "en", Value: "Cart"},
		{Key: "footer.copyright", Language: "en", Value: "Rights"},
		{Key: "cart.title", Language: "de", Value: "Warenkorb"},
	} {
		tr := tr
		require.NoError(t, repo.Upsert(ctx, &tr))
	}

	keys, err := repo.DistinctKeys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"cart.title", "footer.copyright"}, keys)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "cart.title", all[0].Key)
	assert.Equal(t, "de", all[0].Language)
	assert.Equal(t, "footer.copyright", all[3].Key)
	assert.Equal(t, "ro", all[3].Language)

	english, err := repo.FindByLanguage(ctx, "en")
	require.NoError(t, err)
	assert.Len(t, english, 2)
}

func TestUITranslationRepository_UpdateAndDelete(t *testing.T) {
	repo := NewUITranslationRepository(dbtest.New(t))
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &models.UITranslation{Key: "cart.empty", Language: "en", Value: "Empty"}))

	updated, err := repo.UpdateValue(ctx, "cart.empty", "en", "Your cart is empty")
	require.NoError(t, err)
	assert.True(t, updated)

	updated, err = repo.UpdateValue(ctx, "cart.empty", "ro", "Coș gol")
	require.NoError(t, err)
	assert.False(t, updated)

	deleted, err := repo.Delete(ctx, "cart.empty", "en")
	require.NoError(t, err)
	assert.True(t, deleted)

	keys, err := repo.DistinctKeys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestUITranslationRepository_TransactionRollsBack(t *testing.T) {
	repo := NewUITranslationRepository(dbtest.New(t))
	ctx := context.Background()

	err := repo.Transaction(ctx, func(tx UITranslationRepository) error {
		if err := tx.Upsert(ctx, &models.UITranslation{Key: "a", Language: "en", Value: "A"}); err != nil {
			return err
		}
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
