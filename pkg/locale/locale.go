package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// Fallback derives the language-only fallback from a locale identifier:
// everything before the first "_" or "-" separator. A locale without a
// separator is its own fallback.
func Fallback(loc string) string {
	if i := strings.IndexAny(loc, "_-"); i > 0 {
		return loc[:i]
	}
	return loc
}

// Normalize canonicalizes a locale identifier to BCP 47 form where it parses
// ("en_us" becomes "en-US"). Unparseable identifiers are returned trimmed but
// otherwise unchanged; catalog lookups always use the identifier verbatim, so
// normalization is a host-side convenience only.
func Normalize(loc string) string {
	trimmed := strings.TrimSpace(loc)
	tag, err := language.Parse(bcp47(trimmed))
	if err != nil {
		return trimmed
	}
	return tag.String()
}

// MatchAcceptLanguage picks the best supported locale for an Accept-Language
// header, honoring quality values. The first supported locale is returned
// when the header is empty, unparseable, or matches nothing.
func MatchAcceptLanguage(header string, supported []string) string {
	if len(supported) == 0 {
		return ""
	}
	if header == "" {
		return supported[0]
	}

	tags := make([]language.Tag, len(supported))
	for i, s := range supported {
		tag, err := language.Parse(bcp47(s))
		if err != nil {
			tag = language.Und
		}
		tags[i] = tag
	}

	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return supported[0]
	}

	matcher := language.NewMatcher(tags)
	_, index, conf := matcher.Match(desired...)
	if conf == language.No {
		return supported[0]
	}
	return supported[index]
}

func bcp47(loc string) string {
	return strings.ReplaceAll(loc, "_", "-")
}
