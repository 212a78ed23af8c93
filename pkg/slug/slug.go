// Package slug converts heading titles into normalized, URL-safe identifiers.
package slug

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	combiningMarks = regexp.MustCompile(`[\x{0300}-\x{036f}]`)
	controlChars   = regexp.MustCompile(`[\x00-\x1f]`)
	specialChars   = regexp.MustCompile("[\\s~`!@#$%^&*()\\-_+=\\[\\]{}|\\\\;:\"'“”‘’–—<>,.?/]+")
	repeatedDash   = regexp.MustCompile(`-{2,}`)
	leadingDigit   = regexp.MustCompile(`^(\d)`)
)

// Slugify converts a title into a lowercase, hyphenated, URL-safe slug.
// Deterministic and pure; uniqueness within a document is the caller's
// concern. Accented characters are decomposed and their combining marks
// stripped, so "Café" slugs the same as "Cafe".
func Slugify(title string) string {
	s := norm.NFKD.String(title)
	s = combiningMarks.ReplaceAllString(s, "")
	s = controlChars.ReplaceAllString(s, "")
	s = specialChars.ReplaceAllString(s, "-")
	s = repeatedDash.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	// Fragment identifiers should not begin with a digit.
	s = leadingDigit.ReplaceAllString(s, "_$1")
	return strings.ToLower(s)
}
