package i18n

import (
	"golang.org/x/text/language"
)

const (
	English = "en"
	Spanish = "es"
)

var supported = []language.Tag{
	language.English,
	language.Spanish,
}

var matcher = language.NewMatcher(supported)

// Negotiate picks a supported language from an explicit choice, then an
// Accept-Language header, then the fallback.
func Negotiate(explicit, acceptLanguage, fallback string) string {
	if explicit != "" {
		if lang, ok := match(explicit); ok {
			return lang
		}
	}

	if acceptLanguage != "" {
		tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
		if err == nil && len(tags) > 0 {
			_, idx, conf := matcher.Match(tags...)
			if conf != language.No {
				return baseOf(supported[idx])
			}
		}
	}

	if lang, ok := match(fallback); ok {
		return lang
	}
	return English
}

func match(s string) (string, bool) {
	tag, err := language.Parse(s)
	if err != nil {
		return "", false
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return "", false
	}
	return baseOf(supported[idx]), true
}

func baseOf(tag language.Tag) string {
	base, _ := tag.Base()
	return base.String()
}

// T returns the label for key in lang, falling back to English and then to
// the key itself.
func T(lang, key string) string {
	if b, ok := bundles[lang]; ok {
		if v, ok := b[key]; ok {
			return v
		}
	}
	if v, ok := bundles[English][key]; ok {
		return v
	}
	return key
}

// Bundle returns a copy of every label for lang.
func Bundle(lang string) map[string]string {
	out := make(map[string]string, len(bundles[English]))
	for k, v := range bundles[English] {
		out[k] = v
	}
	for k, v := range bundles[lang] {
		out[k] = v
	}
	return out
}
