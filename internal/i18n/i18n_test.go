package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRecord struct {
	Language string
	Name     string
	Summary  string
}

func (r testRecord) LanguageCode() string { return r.Language }

type testEntity struct {
	Name         string
	Summary      string
	translations []testRecord
}

func (e *testEntity) TranslationRecords() []testRecord { return e.translations }
func (e *testEntity) SetTranslationRecords(r []testRecord) { e.translations = r }
func (e *testEntity) Overlay(r testRecord) {
	OverlayString(&e.Name, r.Name)
	OverlayString(&e.Summary, r.Summary)
}

func TestSelect_Empty(t *testing.T) {
	_, ok := Select([]testRecord{}, "fr", "en")
	assert.False(t, ok)

	_, ok = Select[testRecord](nil, "fr", "en")
	assert.False(t, ok)
}

func TestSelect_FallbackChain(t *testing.T) {
	tests := []struct {
		name     string
		records  []testRecord
		resolved string
		want     string
	}{
		{
			name:     "requested language wins",
			records:  []testRecord{{Language: "en", Name: "A"}, {Language: "fr", Name: "B"}},
			resolved: "fr",
			want:     "B",
		},
		{
			name:     "default language when requested is missing",
			records:  []testRecord{{Language: "en", Name: "A"}},
			resolved: "fr",
			want:     "A",
		},
		{
			name:     "first available when neither exists",
			records:  []testRecord{{Language: "de", Name: "X"}},
			resolved: "fr",
			want:     "X",
		},
		{
			name:     "first available is alphabetical by language",
			records:  []testRecord{{Language: "tr", Name: "T"}, {Language: "de", Name: "D"}, {Language: "ru", Name: "R"}},
			resolved: "fr",
			want:     "D",
		},
		{
			name:     "requested equals default",
			records:  []testRecord{{Language: "de", Name: "D"}, {Language: "en", Name: "E"}},
			resolved: "en",
			want:     "E",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec, ok := Select(tc.records, tc.resolved, "en")
			require.True(t, ok)
			assert.Equal(t, tc.want, rec.Name)
		})
	}
}

func TestSelect_IsPure(t *testing.T) {
	records := []testRecord{{Language: "tr", Name: "T"}, {Language: "de", Name: "D"}}
	snapshot := append([]testRecord(nil), records...)

	first, _ := Select(records, "fr", "en")
	second, _ := Select(records, "fr", "en")

	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, records)
}

func TestApply_OverlaysNonEmptyFields(t *testing.T) {
	e := &testEntity{
		Name:    "Phones",
		Summary: "Mobile phones",
		translations: []testRecord{
			{Language: "ro", Name: "Telefoane"},
		},
	}

	Apply[testRecord](e, Locale{Resolved: "ro", Default: "en"})

	assert.Equal(t, "Telefoane", e.Name)
	assert.Equal(t, "Mobile phones", e.Summary, "empty translated field keeps base value")
	assert.Nil(t, e.TranslationRecords())
}

func TestApply_NoTranslationsKeepsBase(t *testing.T) {
	e := &testEntity{Name: "Electronics"}

	Apply[testRecord](e, Locale{Resolved: "ro", Default: "en"})

	assert.Equal(t, "Electronics", e.Name)
	assert.Nil(t, e.TranslationRecords())
}

func TestApply_AlwaysStripsTranslations(t *testing.T) {
	e := &testEntity{
		Name:         "Base",
		translations: []testRecord{{Language: "de", Summary: "Nur Text"}},
	}

	Apply[testRecord](e, Locale{Resolved: "fr", Default: "en"})

	assert.Equal(t, "Base", e.Name)
	assert.Equal(t, "Nur Text", e.Summary)
	assert.Empty(t, e.TranslationRecords())
}

func TestParseAcceptLanguage(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"en-US,en;q=0.9,ro;q=0.8", "en"},
		{"ro-RO;q=0.5,en;q=0.9", "ro"},
		{"DE", "de"},
		{" fr-CA , en", "fr"},
		{"", ""},
		{"*", "*"},
		{";q=0.1", ""},
	}

	for _, tc := range tests {
		t.Run(tc.header, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseAcceptLanguage(tc.header))
		})
	}
}

func TestHintFromRequest_Priority(t *testing.T) {
	assert.Equal(t, "ro", HintFromRequest("ro", "de", "fr-FR"))
	assert.Equal(t, "de", HintFromRequest("", "de", "fr-FR"))
	assert.Equal(t, "fr", HintFromRequest("", "", "fr-FR,en;q=0.5"))
	assert.Equal(t, "", HintFromRequest("", "", ""))
	assert.Equal(t, "ro", HintFromRequest("RO", "", ""))
	assert.Equal(t, "de", HintFromRequest("  ", "De", ""))
}

func TestNest(t *testing.T) {
	nested := Nest(map[string]string{
		"header.menu.home":     "Home",
		"header.menu.products": "Products",
		"header.title":         "Shop",
		"footer":               "Footer",
	})

	assert.Equal(t, map[string]interface{}{
		"header": map[string]interface{}{
			"menu": map[string]interface{}{
				"home":     "Home",
				"products": "Products",
			},
			"title": "Shop",
		},
		"footer": "Footer",
	}, nested)
}

func TestNest_BranchWinsOverLeaf(t *testing.T) {
	nested := Nest(map[string]string{
		"cart":       "Cart",
		"cart.empty": "Your cart is empty",
	})

	require.Contains(t, nested, "cart")
	assert.Equal(t, map[string]interface{}{"empty": "Your cart is empty"}, nested["cart"])
	assert.Empty(t, Nest(nil))
}
