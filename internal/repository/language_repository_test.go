package repository

import (
	"context"
	"errors"
	"testing"

	"storefront-backend/internal/database/dbtest"
	"storefront-backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedLanguages(t *testing.T, repo LanguageRepository, languages ...models.Language) {
	t.Helper()
	for i := range languages {
		require.NoError(t, repo.Create(context.Background(), &languages[i]))
	}
}

func TestLanguageRepository_FindByCode(t *testing.T) {
	repo := NewLanguageRepository(dbtest.New(t))
	ctx := context.Background()

	seedLanguages(t, repo, models.Language{Code: "en", Name: "English", IsDefault: true, IsActive: true})

	found, err := repo.FindByCode(ctx, "en")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "English", found.Name)
	assert.True(t, found.IsDefault)

	missing, err := repo.FindByCode(ctx, "xx")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestLanguageRepository_FindAll_Ordering(t *testing.T) {
	repo := NewLanguageRepository(dbtest.New(t))
	ctx := context.Background()

	seedLanguages(t, repo,
		models.Language{Code: "tr", Name: "Turkish", IsActive: true},
		models.Language{Code: "ro", Name: "Romanian", IsDefault: true, IsActive: true},
		models.Language{Code: "de", Name: "German", IsActive: false},
		models.Language{Code: "en", Name: "English", IsActive: true},
	)

	active, err := repo.FindAll(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"ro", "en", "tr"}, languageCodes(active))

	all, err := repo.FindAll(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"ro", "en", "de", "tr"}, languageCodes(all))
}

func TestLanguageRepository_FindDefault(t *testing.T) {
	repo := NewLanguageRepository(dbtest.New(t))
	ctx := context.Background()

	none, err := repo.FindDefault(ctx)
	require.NoError(t, err)
	assert.Nil(t, none)

	seedLanguages(t, repo, models.Language{Code: "ro", Name: "Romanian", IsDefault: true, IsActive: false})

	inactive, err := repo.FindDefault(ctx)
	require.NoError(t, err)
	assert.Nil(t, inactive, "an inactive default is not served")
}

func TestLanguageRepository_SingleDefaultIndex(t *testing.T) {
	repo := NewLanguageRepository(dbtest.New(t))
	ctx := context.Background()

	seedLanguages(t, repo,
		models.Language{Code: "en", Name: "English", IsDefault: true, IsActive: true},
		models.Language{Code: "ro", Name: "Romanian", IsActive: true},
		models.Language{Code: "de", Name: "German", IsActive: true},
	)

	err := repo.Create(ctx, &models.Language{Code: "tr", Name: "Turkish", IsDefault: true, IsActive: true})
	assert.Error(t, err, "a second default must be rejected by the store")
}

func TestLanguageRepository_TransactionalDefaultSwitch(t *testing.T) {
	repo := NewLanguageRepository(dbtest.New(t))
	ctx := context.Background()

	seedLanguages(t, repo,
		models.Language{Code: "en", Name: "English", IsDefault: true, IsActive: true},
		models.Language{Code: "ro", Name: "Romanian", IsActive: true},
	)

	err := repo.Transaction(ctx, func(tx LanguageRepository) error {
		if err := tx.ClearDefault(ctx, "ro"); err != nil {
			return err
		}
		ro, err := tx.FindByCode(ctx, "ro")
		if err != nil {
			return err
		}
		ro.IsDefault = true
		return tx.Update(ctx, ro)
	})
	require.NoError(t, err)

	def, err := repo.FindDefault(ctx)
	require.NoError(t, err)
	require.NotNil(t, def)
	assert.Equal(t, "ro", def.Code)

	en, err := repo.FindByCode(ctx, "en")
	require.NoError(t, err)
	assert.False(t, en.IsDefault)
}

func TestLanguageRepository_TransactionRollback(t *testing.T) {
	repo := NewLanguageRepository(dbtest.New(t))
	ctx := context.Background()

	seedLanguages(t, repo, models.Language{Code: "en", Name: "English", IsDefault: true, IsActive: true})

	boom := errors.New("boom")
	err := repo.Transaction(ctx, func(tx LanguageRepository) error {
		if err := tx.ClearDefault(ctx, ""); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	def, err := repo.FindDefault(ctx)
	require.NoError(t, err)
	require.NotNil(t, def)
	assert.Equal(t, "en", def.Code)
}

func TestLanguageRepository_CountActiveAndDelete(t *testing.T) {
	repo := NewLanguageRepository(dbtest.New(t))
	ctx := context.Background()

	seedLanguages(t, repo,
		models.Language{Code: "en", Name: "English", IsDefault: true, IsActive: true},
		models.Language{Code: "ro", Name: "Romanian", IsActive: true},
		models.Language{Code: "de", Name: "German", IsActive: false},
	)

	active, err := repo.CountActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), active)

	require.NoError(t, repo.Delete(ctx, "ro"))

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestLanguageRepository_RenameInTranslations(t *testing.T) {
	db := dbtest.New(t)
	repo := NewLanguageRepository(db)
	ctx := context.Background()

	productID := uuid.New()
	require.NoError(t, db.Create(&models.UITranslation{Key: "header.home", Language: "ua", Value: "Головна"}).Error)
	require.NoError(t, db.Create(&models.ProductTranslation{ProductID: productID, Language: "ua", Name: "Телефон"}).Error)
	require.NoError(t, db.Create(&models.ProductTranslation{ProductID: productID, Language: "ro", Name: "Telefon"}).Error)

	require.NoError(t, repo.RenameInTranslations(ctx, "ua", "uk"))

	var ui models.UITranslation
	require.NoError(t, db.First(&ui).Error)
	assert.Equal(t, "uk", ui.Language)

	var languages []string
	require.NoError(t, db.Model(&models.ProductTranslation{}).Order("language ASC").Pluck("language", &languages).Error)
	assert.Equal(t, []string{"ro", "uk"}, languages)
}

func languageCodes(languages []models.Language) []string {
	codes := make([]string, 0, len(languages))
	for _, l := range languages {
		codes = append(codes, l.Code)
	}
	return codes
}
