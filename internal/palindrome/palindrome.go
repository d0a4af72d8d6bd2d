package palindrome

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize maps raw text to the canonical form used for comparison:
// case-folded, accents stripped, ASCII letters and digits only.
// It is total and idempotent, so Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	folded := cases.Fold().String(s)

	// Decompose into NFD so accented letters split into base letter plus
	// combining marks, drop the marks, recompose. Only the combining-mark
	// range is removed; base letters from other scripts survive.
	strip := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(strip, folded)
	if err != nil {
		stripped = folded
	}

	var b strings.Builder
	b.Grow(len(stripped))
	for _, r := range stripped {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// IsPalindrome reports whether the input reads the same forwards and
// backwards after normalization. Empty input, or input that normalizes
// to nothing (punctuation, whitespace), is not a palindrome.
func IsPalindrome(s string) bool {
	normalized := Normalize(s)
	if normalized == "" {
		return false
	}

	return normalized == reverse(normalized)
}

func reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}
