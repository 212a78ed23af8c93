// Package guard protects reserved identifiers in source text from a bundler's
// static define pass.
package guard

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// Zero-width space. Invisible when rendered, but it splits the identifier so
// an exact-match substitution pass no longer recognizes it.
const marker = "​"

// Constants rewrites source so that a static replacement pass no longer
// matches `import.meta`, `process.env`, or any key of defines. The marker is
// inserted after the first character of every whole-word occurrence; the text
// renders identically and re-parsing ignores the marker, so applying the
// guard twice is harmless even though the bytes differ.
//
// Only the keys of defines matter; values are whatever the bundler config
// carries and are ignored here. Keys are escaped for literal matching before
// being combined into a single alternation.
func Constants(source string, defines map[string]any) string {
	names := []string{`import\.meta`, `process\.env`}
	if len(defines) > 0 {
		keys := make([]string, 0, len(defines))
		for key := range defines {
			keys = append(keys, regexp.QuoteMeta(key))
		}
		sort.Strings(keys)
		names = append(names, keys...)
	}

	pattern := regexp.MustCompile(`\b(` + strings.Join(names, "|") + `)\b`)
	return pattern.ReplaceAllStringFunc(source, func(match string) string {
		_, size := utf8.DecodeRuneInString(match)
		return match[:size] + marker + match[size:]
	})
}
