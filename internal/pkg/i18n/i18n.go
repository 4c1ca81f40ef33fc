package i18n

import "strings"

// Language is an explicit locale passed through call chains instead of
// ambient global state, so resolution stays deterministic.
type Language string

const (
	LangEN Language = "en"
	LangTA Language = "ta"
)

// Supported lists the languages the platform ships content for, in
// preference order. English is the fallback for every pair.
var Supported = []Language{LangEN, LangTA}

func (l Language) String() string {
	return string(l)
}

func (l Language) IsValid() bool {
	switch l {
	case LangEN, LangTA:
		return true
	default:
		return false
	}
}

// Text carries both supported-language variants of one user-facing string.
type Text struct {
	EN string `json:"en"`
	TA string `json:"ta"`
}

func NewText(en, ta string) Text {
	return Text{EN: en, TA: ta}
}

// Resolve returns the active-language value, falling back to English when
// the pair has no value for the active language. Never fails.
func Resolve(t Text, lang Language) string {
	if lang == LangTA && t.TA != "" {
		return t.TA
	}
	return t.EN
}

// ParseLanguage normalizes a raw locale tag ("ta", "ta-IN", "EN") to a
// supported Language; unknown tags map to English.
func ParseLanguage(raw string) Language {
	tag := strings.ToLower(strings.TrimSpace(raw))
	if idx := strings.IndexAny(tag, "-_;,"); idx >= 0 {
		tag = tag[:idx]
	}
	if Language(tag) == LangTA {
		return LangTA
	}
	return LangEN
}

// DetermineLocale picks the active language from an explicit query value
// first, then the Accept-Language header, defaulting to English.
func DetermineLocale(queryLang, acceptLanguage string) Language {
	if queryLang != "" {
		if l := Language(strings.ToLower(queryLang)); l.IsValid() {
			return l
		}
	}
	for _, part := range strings.Split(acceptLanguage, ",") {
		tag := strings.TrimSpace(part)
		if tag == "" {
			continue
		}
		if idx := strings.IndexAny(tag, "-_;"); idx >= 0 {
			tag = tag[:idx]
		}
		if l := Language(strings.ToLower(tag)); l.IsValid() {
			return l
		}
	}
	return LangEN
}
