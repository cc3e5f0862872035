package filter

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeText strips diacritics, collapses whitespace and lower-cases str,
// so "Hồ Chí Minh " and "ho chi minh" compare equal.
func NormalizeText(str string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, str)
	if err != nil {
		result = str
	}
	return strings.ToLower(strings.Join(strings.Fields(result), " "))
}

// TitleCase capitalizes each word of the search keywords for display.
// A Caser keeps state between calls, so each call gets its own.
func TitleCase(str string) string {
	return cases.Title(language.English).String(strings.Join(strings.Fields(str), " "))
}

// CleanText collapses runs of whitespace (including non-breaking spaces) in
// text pulled out of page markup.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return strings.Join(strings.Fields(s), " ")
}
