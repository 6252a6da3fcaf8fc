// Package i18n maps translation keys to display strings in the supported
// languages.
package i18n

import (
	"golang.org/x/text/language"
)

type Language string

const (
	Russian Language = "ru"
	English Language = "en"
)

// Default is the language of a client that expressed no preference.
const Default = Russian

// Option is an entry of the language selector.
type Option struct {
	Language Language
	Label    string
}

var options = []Option{
	{Language: Russian, Label: "🇷🇺 RU"},
	{Language: English, Label: "🇺🇸 EN"},
}

// Languages returns the supported languages in display order.
func Languages() []Option {
	return append([]Option(nil), options...)
}

func ParseLanguage(s string) (Language, bool) {
	l := Language(s)
	_, ok := tables[l]
	return l, ok
}

// Lookup returns the string of key in lang, or key itself when either the
// language or the key is unknown. There is no fallback to another language.
func Lookup(lang Language, key string) string {
	table, ok := tables[lang]
	if !ok {
		return key
	}

	if s, ok := table[key]; ok {
		return s
	}
	return key
}

// Translator returns the lookup function bound to lang.
func Translator(lang Language) func(string) string {
	return func(key string) string {
		return Lookup(lang, key)
	}
}

var matcher = language.NewMatcher([]language.Tag{
	language.Russian, // first tag is the default
	language.English,
})

// Negotiate picks the supported language that best matches an
// Accept-Language header.
func Negotiate(acceptLanguage string) Language {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default
	}

	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return Default
	}
	return options[index].Language
}
