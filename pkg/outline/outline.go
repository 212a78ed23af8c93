// Package outline reconstructs a hierarchical document outline (table of
// contents) from the flat token stream of a markdown-it compatible tokenizer.
package outline

import "github.com/Sriram-PR/md-outline/pkg/token"

// Header is one entry of the resolved outline. Children are owned by their
// parent and preserve document order; the tree is plain output data with no
// further lifecycle.
type Header struct {
	Level    int       `json:"level"`
	Title    string    `json:"title"`
	Slug     string    `json:"slug"`
	Children []*Header `json:"children"`
}

// Build walks tokens in document order and resolves the nested outline.
//
// For every heading_open token at a requested level, the title is extracted
// from the inline token immediately following the opener, the slug comes from
// an explicit id attribute when present and the configured slugifier
// otherwise, and the header is inserted by heading-level depth. Non-monotonic
// level jumps nest under the closest shallower open ancestor without creating
// placeholder nodes. Token order is trusted: openers are not matched against
// closers, a dangling opener at the end of the stream is skipped, and
// duplicate slugs are left as-is.
func Build(tokens []token.Token, opts Options) []*Header {
	var headers []*Header

	// Open ancestors, innermost first. Aliases into the tree being built;
	// discarded as soon as an entry can no longer parent the next header.
	var stack []*Header

	push := func(h *Header) {
		for len(stack) != 0 && h.Level <= stack[0].Level {
			stack = stack[1:]
		}
		if len(stack) == 0 {
			headers = append(headers, h)
			stack = []*Header{h}
			return
		}
		stack[0].Children = append(stack[0].Children, h)
		stack = append([]*Header{h}, stack...)
	}

	for i := range tokens {
		tok := &tokens[i]
		if tok.Type != token.TypeHeadingOpen {
			continue
		}
		level := tok.HeadingLevel()
		if !opts.wantsLevel(level) {
			continue
		}
		if i+1 >= len(tokens) {
			continue
		}

		title := ExtractTitle(&tokens[i+1], opts)
		slug, ok := tok.AttrGet("id")
		if !ok {
			slug = opts.slugifier()(title)
		}
		if opts.Format != nil {
			title = opts.Format(title)
		}

		push(&Header{
			Level:    level,
			Title:    title,
			Slug:     slug,
			Children: []*Header{},
		})
	}

	return headers
}
