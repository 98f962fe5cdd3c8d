package match

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// SpaceClass is the body of a regexp character class matching the
// whitespace runes that IsSpace reports. Patterns built elsewhere embed it
// so that regexp matching and rune predicates agree on what a space is.
const SpaceClass = `\t\n\v\f\r \x{00a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}`

// IsSpace reports whether r is a whitespace rune for matching purposes.
// The set differs from unicode.IsSpace: U+0085 is excluded and U+FEFF is included.
func IsSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ',
		'\u00a0', '\u1680', '\u2028', '\u2029', '\u202f', '\u205f', '\u3000', '\ufeff':
		return true
	}

	return r >= '\u2000' && r <= '\u200a'
}

// TrimSpace trims IsSpace runes from both ends of s.
func TrimSpace(s string) string {
	return strings.TrimFunc(s, IsSpace)
}

// foldPunct maps the non-breaking space, the dash family and the
// alternate colon glyphs onto their ASCII counterparts.
func foldPunct(r rune) rune {
	switch r {
	case '\u00a0':
		return ' '
	case '\u2010', '\u2012', '\u2013', '\u2014', '\u2212':
		return '-'
	case '\uff1a', '\ufe55':
		return ':'
	}

	return r
}

// isKept reports whether r survives normalization.
func isKept(r rune) bool {
	if unicode.IsLetter(r) || unicode.IsNumber(r) || IsSpace(r) {
		return true
	}

	switch r {
	case '-', '(', ')', '/', '&', '.':
		return true
	}

	return false
}

// CleanLine folds the non-breaking space, dash and colon variants of s to
// ASCII without changing case or removing anything.
func CleanLine(s string) string {
	out, _, err := transform.String(runes.Map(foldPunct), s)
	if err != nil {
		return s
	}

	return out
}

// Normalize canonicalizes s for comparison. The pipeline:
// 1. Fold NBSP, dash and colon variants.
// 2. Case-fold to lower.
// 3. Drop everything but letters, numbers, whitespace and - ( ) / & .
// 4. Collapse whitespace runs and trim.
//
// Normalize is idempotent.
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	// Casers keep state, so the chain is built per call.
	t := transform.Chain(
		runes.Map(foldPunct),
		cases.Lower(language.Und),
		runes.Remove(runes.Predicate(func(r rune) bool { return !isKept(r) })),
	)

	out, _, err := transform.String(t, s)
	if err != nil {
		return ""
	}

	return strings.Join(strings.FieldsFunc(out, IsSpace), " ")
}

// Tokenize splits the normalized form of s into whitespace separated tokens.
func Tokenize(s string) []string {
	return strings.FieldsFunc(Normalize(s), IsSpace)
}
