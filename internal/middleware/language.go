package middleware

import (
	"storefront-backend/internal/i18n"
	"storefront-backend/internal/services"

	"github.com/gofiber/fiber/v2"
)

const (
	localeKey          = "locale"
	languageQueryParam = "lang"
	languageCookie     = "lang"
)

// Language resolves the request language once and stores the resulting
// locale for handlers. The served language is echoed in Content-Language.
func Language(resolver services.LanguageResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		hint := i18n.HintFromRequest(
			c.Query(languageQueryParam),
			c.Cookies(languageCookie),
			c.Get(fiber.HeaderAcceptLanguage),
		)

		loc := resolver.Locale(c.Context(), hint)
		c.Locals(localeKey, loc)
		c.Set(fiber.HeaderContentLanguage, loc.Resolved)

		return c.Next()
	}
}

// LocaleFrom returns the locale stored by Language, or the fallback pair when
// the middleware did not run.
func LocaleFrom(c *fiber.Ctx) i18n.Locale {
	if loc, ok := c.Locals(localeKey).(i18n.Locale); ok {
		return loc
	}
	return i18n.Locale{Resolved: i18n.FallbackLanguage, Default: i18n.FallbackLanguage}
}
