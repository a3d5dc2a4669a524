package models

import (
	"encoding/json"
	"testing"

	"storefront-backend/internal/i18n"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryLocalize_Tree(t *testing.T) {
	electronics := &Category{
		Name: "Electronics",
		Children: []Category{
			{
				Name:         "Phones",
				Translations: []CategoryTranslation{{Language: "ro", Name: "Telefoane"}},
			},
		},
	}

	electronics.Localize(i18n.Locale{Resolved: "ro", Default: "en"})

	assert.Equal(t, "Electronics", electronics.Name)
	assert.Equal(t, "Telefoane", electronics.Children[0].Name)
	assert.Nil(t, electronics.Translations)
	assert.Nil(t, electronics.Children[0].Translations)
}

func TestProductLocalize_NestedMembers(t *testing.T) {
	p := &Product{
		Name:        "Galaxy S24",
		Description: "Flagship phone",
		Translations: []ProductTranslation{
			{Language: "en", Name: "Galaxy S24 (EN)"},
			{Language: "de", Name: "Galaxy S24 (DE)", Description: "Flaggschiff"},
		},
		Brand: &Brand{
			Name:         "Samsung",
			Description:  "Electronics maker",
			Translations: []BrandTranslation{{Language: "de", Description: "Elektronikhersteller"}},
		},
		Categories: []Category{
			{
				Name:         "Phones",
				Translations: []CategoryTranslation{{Language: "ru", Name: "Телефоны"}},
				Parent: &Category{
					Name:         "Electronics",
					Translations: []CategoryTranslation{{Language: "de", Name: "Elektronik"}},
				},
			},
		},
	}

	p.Localize(i18n.Locale{Resolved: "de", Default: "en"})

	assert.Equal(t, "Galaxy S24 (DE)", p.Name)
	assert.Equal(t, "Flaggschiff", p.Description)
	assert.Equal(t, "Samsung", p.Brand.Name)
	assert.Equal(t, "Elektronikhersteller", p.Brand.Description)
	// Only "ru" exists, so the first available record is used.
	assert.Equal(t, "Телефоны", p.Categories[0].Name)
	assert.Equal(t, "Elektronik", p.Categories[0].Parent.Name)

	raw, err := json.Marshal(p)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), `"translations"`)
}

func TestProductLocalize_DefaultFallback(t *testing.T) {
	p := &Product{
		Name: "Base",
		Translations: []ProductTranslation{
			{Language: "tr", Name: "Temel"},
			{Language: "en", Name: "Base (EN)"},
		},
	}

	p.Localize(i18n.Locale{Resolved: "fr", Default: "en"})

	assert.Equal(t, "Base (EN)", p.Name)
}

func TestLocalize_NilSafe(t *testing.T) {
	var p *Product
	var b *Brand
	var c *Category

	assert.NotPanics(t, func() {
		p.Localize(i18n.Locale{Resolved: "en", Default: "en"})
		b.Localize(i18n.Locale{Resolved: "en", Default: "en"})
		c.Localize(i18n.Locale{Resolved: "en", Default: "en"})
	})
}

func TestBrandLocalize_ListedProducts(t *testing.T) {
	brands := []Brand{
		{
			Name: "Acme",
			Products: []Product{
				{Name: "Anvil", Translations: []ProductTranslation{{Language: "ro", Name: "Nicovală"}}},
				{Name: "Rocket"},
			},
		},
	}

	LocalizeBrands(brands, i18n.Locale{Resolved: "ro", Default: "en"})

	assert.Equal(t, "Nicovală", brands[0].Products[0].Name)
	assert.Equal(t, "Rocket", brands[0].Products[1].Name)
	assert.Nil(t, brands[0].Products[0].Translations)
}
