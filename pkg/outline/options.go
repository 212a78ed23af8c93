package outline

import (
	"slices"

	"github.com/Sriram-PR/md-outline/pkg/slug"
)

// Options controls outline resolution.
type Options struct {
	// Levels selects which heading levels are captured. Headings at other
	// levels are skipped entirely and do not affect nesting.
	Levels []int
	// AllowHTML includes inline HTML runs in extracted titles.
	AllowHTML bool
	// EscapeText HTML-escapes plain text and inline code content in titles.
	EscapeText bool
	// Slugify computes the slug for headings without an explicit id
	// attribute. Defaults to slug.Slugify.
	Slugify func(string) string
	// Format, when set, is applied to each extracted title before storage.
	Format func(string) string
}

// DefaultOptions returns the options used by the toolchain when nothing is
// configured: capture h2/h3, raw text, default slugifier.
func DefaultOptions() Options {
	return Options{Levels: []int{2, 3}}
}

func (o Options) wantsLevel(level int) bool {
	return level > 0 && slices.Contains(o.Levels, level)
}

func (o Options) slugifier() func(string) string {
	if o.Slugify != nil {
		return o.Slugify
	}
	return slug.Slugify
}
