package lokat

import "golang.org/x/text/language"

// MatchLocale picks the best entry from supported for an Accept-Language
// header. Matching is delegated to x/text's language matcher, so regional
// variants fall back to their base language ("en-US" matches "en") and
// quality values are honored. An empty or unparsable header, or no usable
// match, yields the first supported locale. Returns "" only when supported
// is empty.
func MatchLocale(acceptLanguage string, supported []string) string {
	if len(supported) == 0 {
		return ""
	}
	if acceptLanguage == "" {
		return supported[0]
	}

	// Keep originals parallel to parsed tags so the matcher's index maps back
	// to the caller's spelling.
	tags := make([]language.Tag, 0, len(supported))
	originals := make([]string, 0, len(supported))
	for _, s := range supported {
		tag, err := language.Parse(s)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		originals = append(originals, s)
	}
	if len(tags) == 0 {
		return supported[0]
	}

	desired, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(desired) == 0 {
		return supported[0]
	}

	_, index, conf := language.NewMatcher(tags).Match(desired...)
	if conf == language.No {
		return supported[0]
	}

	return originals[index]
}
