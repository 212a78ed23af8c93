// Package tokenize lowers a goldmark parse into the markdown-it token schema
// consumed by pkg/outline.
//
// The outline resolver treats the tokenizer as an external collaborator; this
// package supplies an in-process one for Go callers. Markdown syntax handling
// stays fully delegated to goldmark (with heading attributes and emoji
// shortcodes enabled); only node shapes are converted here.
package tokenize

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	emoji "github.com/yuin/goldmark-emoji"
	east "github.com/yuin/goldmark-emoji/ast"

	"github.com/Sriram-PR/md-outline/pkg/outline"
	"github.com/Sriram-PR/md-outline/pkg/token"
)

var md = goldmark.New(
	goldmark.WithParserOptions(parser.WithAttribute()),
	goldmark.WithExtensions(emoji.Emoji),
)

// Headings parses source and emits the heading token triples
// (heading_open, inline, heading_close) in document order. Explicit heading
// attributes ("## Title {#custom}") surface as an id attr on the opener.
func Headings(source []byte) []token.Token {
	doc := md.Parser().Parse(text.NewReader(source))

	var tokens []token.Token
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}

		tag := fmt.Sprintf("h%d", heading.Level)
		markup := strings.Repeat("#", heading.Level)

		open := token.Token{Type: token.TypeHeadingOpen, Tag: tag, Markup: markup, Block: true}
		if id, found := heading.AttributeString("id"); found {
			open.Attrs = append(open.Attrs, [2]string{"id", attrValue(id)})
		}

		inline := token.Token{Type: token.TypeInline, Children: inlineChildren(heading, source)}
		var content strings.Builder
		for _, child := range inline.Children {
			content.WriteString(child.Content)
		}
		inline.Content = content.String()

		tokens = append(tokens,
			open,
			inline,
			token.Token{Type: token.TypeHeadingClose, Tag: tag, Markup: markup, Block: true},
		)
		return ast.WalkSkipChildren, nil
	})
	return tokens
}

// Outline is a convenience composition: parse source and resolve its outline
// in one call.
func Outline(source []byte, opts outline.Options) []*outline.Header {
	return outline.Build(Headings(source), opts)
}

// inlineChildren flattens the inline nodes under parent into child tokens.
// Containers such as emphasis and links contribute their inner runs, matching
// how the upstream tokenizer flattens inline content.
func inlineChildren(parent ast.Node, source []byte) []token.Token {
	var children []token.Token
	for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
		switch n := c.(type) {
		case *ast.Text:
			children = append(children, token.Token{
				Type:    token.TypeText,
				Content: string(n.Segment.Value(source)),
			})
		case *ast.CodeSpan:
			children = append(children, token.Token{
				Type:    token.TypeCodeInline,
				Content: nodeText(n, source),
				Markup:  "`",
			})
		case *ast.RawHTML:
			children = append(children, token.Token{
				Type:    token.TypeHTMLInline,
				Content: segmentsText(n.Segments, source),
			})
		case *east.Emoji:
			children = append(children, token.Token{
				Type:    token.TypeEmoji,
				Content: string(n.Value.Unicode),
				Markup:  string(n.ShortName),
			})
		default:
			children = append(children, inlineChildren(c, source)...)
		}
	}
	return children
}

// nodeText concatenates the text segments of a node's direct children.
func nodeText(n ast.Node, source []byte) string {
	var sb strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			sb.Write(t.Segment.Value(source))
		}
	}
	return sb.String()
}

func segmentsText(segments *text.Segments, source []byte) string {
	var sb strings.Builder
	for i := 0; i < segments.Len(); i++ {
		seg := segments.At(i)
		sb.Write(seg.Value(source))
	}
	return sb.String()
}

// attrValue normalizes goldmark attribute values, which arrive as []byte for
// parsed attributes.
func attrValue(v any) string {
	switch value := v.(type) {
	case []byte:
		return string(value)
	case string:
		return value
	default:
		return fmt.Sprint(value)
	}
}
