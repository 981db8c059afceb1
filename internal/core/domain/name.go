package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// removedNameChars are stripped from every name token.
const removedNameChars = "!#"

// NormalizeName converts free text into a name usable as an OWL entity IRI
// fragment. Each whitespace separated token has its first letter upper-cased,
// ':' replaced with '-' and '!' and '#' removed; tokens are joined without a
// separator. The result never contains whitespace, ':', '!' or '#', and
// normalizing it again returns it unchanged.
func NormalizeName(text string) string {
	var b strings.Builder
	for _, token := range strings.Fields(text) {
		token = capitalizeFirstLetter(token)
		token = strings.ReplaceAll(token, ":", "-")
		token = strings.Map(func(r rune) rune {
			if strings.ContainsRune(removedNameChars, r) {
				return -1
			}
			return r
		}, token)
		b.WriteString(token)
	}
	return b.String()
}

// capitalizeFirstLetter upper-cases the leading letter of s, looking past
// characters that are stripped afterwards. Later runes keep their case.
func capitalizeFirstLetter(s string) string {
	for i, r := range s {
		if strings.ContainsRune(removedNameChars, r) {
			continue
		}
		if !unicode.IsLetter(r) {
			return s
		}
		upper := unicode.ToUpper(r)
		if upper == r {
			return s
		}
		return s[:i] + string(upper) + s[i+utf8.RuneLen(r):]
	}
	return s
}
