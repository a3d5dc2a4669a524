package i18n

// Translatable is implemented by entities that carry their own translation
// records. Overlay receives the selected record and copies its non-empty fields
// onto the entity.
type Translatable[R Record] interface {
	TranslationRecords() []R
	SetTranslationRecords([]R)
	Overlay(R)
}

// Apply localizes a single node. The translation list is always cleared, even
// when nothing was selected, so raw records never reach an API response.
// Nested translatable members must be passed through Apply separately.
func Apply[R Record](entity Translatable[R], loc Locale) {
	if entity == nil {
		return
	}
	if rec, ok := Select(entity.TranslationRecords(), loc.Resolved, loc.Default); ok {
		entity.Overlay(rec)
	}
	entity.SetTranslationRecords(nil)
}

// OverlayString replaces *dst with value unless value is empty.
func OverlayString(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
