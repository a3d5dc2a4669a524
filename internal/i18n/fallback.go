// Package i18n holds the request-independent parts of storefront localization:
// picking the best translation record for an entity, overlaying it, and turning
// raw client hints into a language code.
package i18n

// FallbackLanguage is used when the registry has no active default language.
const FallbackLanguage = "en"

// Record is a per-language translation row of some entity.
type Record interface {
	LanguageCode() string
}

// Locale is the language pair computed once per request. Every translatable
// node of a single response is localized with the same pair.
type Locale struct {
	Resolved string `json:"resolved"`
	Default  string `json:"default"`
}

// Select picks the best record for resolved, falling back to fallback, then to
// the first available record. "First available" means the record with the
// alphabetically smallest language code, so the result does not depend on the
// order rows came back from the store. ok is false when records is empty.
func Select[R Record](records []R, resolved, fallback string) (rec R, ok bool) {
	if len(records) == 0 {
		return rec, false
	}

	for _, r := range records {
		if r.LanguageCode() == resolved {
			return r, true
		}
	}

	for _, r := range records {
		if r.LanguageCode() == fallback {
			return r, true
		}
	}

	first := 0
	for i := 1; i < len(records); i++ {
		if records[i].LanguageCode() < records[first].LanguageCode() {
			first = i
		}
	}
	return records[first], true
}
