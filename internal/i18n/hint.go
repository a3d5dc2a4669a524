package i18n

import "strings"

// HintFromRequest picks the language hint of a request. The query parameter
// wins over the cookie, the cookie over Accept-Language. The result is
// lowercased; an empty result means the client expressed no preference.
func HintFromRequest(query, cookie, acceptLanguage string) string {
	if q := strings.TrimSpace(query); q != "" {
		return strings.ToLower(q)
	}
	if c := strings.TrimSpace(cookie); c != "" {
		return strings.ToLower(c)
	}
	return ParseAcceptLanguage(acceptLanguage)
}

// ParseAcceptLanguage returns the primary subtag of the first entry of an
// Accept-Language header, lowercased. Quality weights are ignored:
// "ro-RO;q=0.5,en;q=0.9" yields "ro".
func ParseAcceptLanguage(header string) string {
	first, _, _ := strings.Cut(header, ",")
	first, _, _ = strings.Cut(first, ";")
	first, _, _ = strings.Cut(strings.TrimSpace(first), "-")
	return strings.ToLower(strings.TrimSpace(first))
}
