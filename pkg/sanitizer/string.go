package sanitizer

import (
	"html"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/dmitrymomot/schemakit/pkg/cache"
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToLower converts a string to lowercase.
func ToLower(s string) string {
	return strings.ToLower(s)
}

// ToUpper converts a string to uppercase.
func ToUpper(s string) string {
	return strings.ToUpper(s)
}

// Capitalize upper-cases the first letter and lower-cases the rest.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// TitleCase upper-cases the first letter of every word and lower-cases the rest.
func TitleCase(s string) string {
	// Casers are stateful, one per call keeps TitleCase goroutine-safe.
	return cases.Title(language.Und).String(s)
}

// EscapeHTML escapes HTML special characters.
func EscapeHTML(s string) string {
	return html.EscapeString(s)
}

// UnescapeHTML unescapes HTML entities.
func UnescapeHTML(s string) string {
	return html.UnescapeString(s)
}

// StripHTML removes script and style blocks and every remaining tag.
// It is pattern based and must not be relied on against hostile markup.
func StripHTML(s string) string {
	s = scriptTagRegex.ReplaceAllString(s, "")
	s = styleTagRegex.ReplaceAllString(s, "")
	return htmlTagRegex.ReplaceAllString(s, "")
}

// Truncate shortens s to at most maxLen characters, suffix included.
// When suffix does not fit, s is cut to maxLen without it.
func Truncate(s string, maxLen int, suffix string) string {
	if maxLen <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}

	suffixLen := utf8.RuneCountInString(suffix)
	if suffixLen >= maxLen {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-suffixLen]) + suffix
}

// Normalize applies a Unicode normalization form: NFC, NFD, NFKC or NFKD.
// Unknown forms leave s unchanged.
func Normalize(s, form string) string {
	switch strings.ToUpper(form) {
	case "NFC":
		return norm.NFC.String(s)
	case "NFD":
		return norm.NFD.String(s)
	case "NFKC":
		return norm.NFKC.String(s)
	case "NFKD":
		return norm.NFKD.String(s)
	}
	return s
}

// ReplacePattern replaces every match of pattern with repl.
// It panics if pattern is not a valid regular expression.
func ReplacePattern(s, pattern, repl string) string {
	return cache.MustRegexp(pattern).ReplaceAllString(s, repl)
}

// RemovePattern deletes every match of pattern.
// It panics if pattern is not a valid regular expression.
func RemovePattern(s, pattern string) string {
	return cache.MustRegexp(pattern).ReplaceAllString(s, "")
}

// letters that do not decompose under NFD
var ligatureReplacer = strings.NewReplacer(
	"ß", "ss", "æ", "ae", "œ", "oe", "ø", "o", "ł", "l", "đ", "d", "þ", "th",
)

// StripDiacritics removes combining marks, so "café" becomes "cafe".
func StripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Slugify converts s into a lowercase, hyphen separated ASCII slug.
func Slugify(s string) string {
	s = strings.ToLower(s)
	s = ligatureReplacer.Replace(s)
	s = StripDiacritics(s)
	s = slugNonWordRegex.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	s = slugSpaceRegex.ReplaceAllString(s, "-")
	s = slugHyphenRegex.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// KeepAlphanumeric keeps only letters and digits.
func KeepAlphanumeric(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}

// KeepAlpha keeps only letters.
func KeepAlpha(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return r
		}
		return -1
	}, s)
}

// KeepDigits keeps only numeric digits.
func KeepDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}

// CollapseWhitespace replaces runs of spaces and tabs with a single space.
// Line breaks are preserved.
func CollapseWhitespace(s string) string {
	return horizontalSpaceRegex.ReplaceAllString(s, " ")
}

// NormalizeLineBreaks converts CRLF and CR line endings to LF.
func NormalizeLineBreaks(s string) string {
	return lineBreakRegex.ReplaceAllString(s, "\n")
}
