// Package token defines the wire schema of the upstream markdown tokenizer.
//
// The documentation toolchain parses markdown with a markdown-it compatible
// tokenizer and hands the resulting flat token stream to this module for
// post-processing. Tokens arrive fully materialized, typically decoded from
// JSON, and are treated as read-only input; this package never constructs or
// mutates them on behalf of the tokenizer.
package token

import "strconv"

// Token types emitted by the tokenizer that this module cares about.
const (
	TypeHeadingOpen  = "heading_open"
	TypeHeadingClose = "heading_close"
	TypeInline       = "inline"
	TypeText         = "text"
	TypeCodeInline   = "code_inline"
	TypeHTMLInline   = "html_inline"
	TypeEmoji        = "emoji"
)

// metaPermalink flags a child token as anchor-plugin decoration rather than
// visible title content.
const metaPermalink = "isPermalinkSymbol"

// Token mirrors the serialized token schema of a markdown-it compatible
// tokenizer. Field names and shapes follow the tokenizer's JSON output; in
// particular attrs is an ordered list of [name, value] pairs, not a map.
type Token struct {
	Type     string         `json:"type"`
	Tag      string         `json:"tag"`
	Attrs    [][2]string    `json:"attrs,omitempty"`
	Children []Token        `json:"children,omitempty"`
	Content  string         `json:"content,omitempty"`
	Markup   string         `json:"markup,omitempty"`
	Meta     map[string]any `json:"meta,omitempty"`
	Block    bool           `json:"block,omitempty"`
	Hidden   bool           `json:"hidden,omitempty"`
}

// AttrGet returns the value of the named attribute and whether it was present.
// When an attribute is repeated the first occurrence wins, matching the
// tokenizer's own attrGet behavior.
func (t *Token) AttrGet(name string) (string, bool) {
	for _, attr := range t.Attrs {
		if attr[0] == name {
			return attr[1], true
		}
	}
	return "", false
}

// HeadingLevel derives the numeric heading level from the token tag
// ("h3" yields 3). Returns 0 for anything that is not an h1..h6 tag.
func (t *Token) HeadingLevel() int {
	if len(t.Tag) != 2 || t.Tag[0] != 'h' {
		return 0
	}
	level, err := strconv.Atoi(t.Tag[1:])
	if err != nil || level < 1 || level > 6 {
		return 0
	}
	return level
}

// IsPermalinkSymbol reports whether the token is flagged as permalink
// decoration by the tokenizer's anchor plugin.
func (t *Token) IsPermalinkSymbol() bool {
	flagged, ok := t.Meta[metaPermalink].(bool)
	return ok && flagged
}
