package i18n

import "strings"

// Language is a display language of the site.
type Language string

const (
	Portuguese Language = "pt"
	Japanese   Language = "jp"
)

// Default is used when no language preference was stored.
const Default = Portuguese

// Languages lists every supported language in display order.
func Languages() []Language {
	return []Language{Portuguese, Japanese}
}

// Valid reports whether l is a supported language.
func (l Language) Valid() bool {
	return l == Portuguese || l == Japanese
}

// Parse accepts "pt"/"jp" case-insensitively; "ja" is taken as Japanese.
func Parse(s string) (Language, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pt", "pt-br":
		return Portuguese, true
	case "jp", "ja", "ja-jp":
		return Japanese, true
	}
	return "", false
}

// ParseOr falls back to def for unknown input.
func ParseOr(s string, def Language) Language {
	if l, ok := Parse(s); ok {
		return l
	}
	return def
}
