package outline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sriram-PR/md-outline/pkg/token"
)

func inlineToken(children ...token.Token) *token.Token {
	return &token.Token{Type: token.TypeInline, Children: children}
}

func TestExtractTitle_EscapedMixedContent(t *testing.T) {
	tok := inlineToken(
		token.Token{Type: token.TypeText, Content: "Intro "},
		token.Token{Type: token.TypeCodeInline, Content: "<b>"},
		token.Token{Type: token.TypeHTMLInline, Content: "<i>x</i>"},
	)

	got := ExtractTitle(tok, Options{AllowHTML: true, EscapeText: true})

	assert.Equal(t, "Intro &lt;b&gt;<i>x</i>", got)
}

func TestExtractTitle_HTMLExcludedByDefault(t *testing.T) {
	tok := inlineToken(
		token.Token{Type: token.TypeText, Content: "Hi "},
		token.Token{Type: token.TypeHTMLInline, Content: "<em>"},
		token.Token{Type: token.TypeText, Content: "there"},
		token.Token{Type: token.TypeHTMLInline, Content: "</em>"},
	)

	got := ExtractTitle(tok, Options{})

	assert.Equal(t, "Hi there", got)
}

func TestExtractTitle_RawWhenEscapeDisabled(t *testing.T) {
	tok := inlineToken(
		token.Token{Type: token.TypeText, Content: `a < b & c > "d"`},
	)

	got := ExtractTitle(tok, Options{})

	assert.Equal(t, `a < b & c > "d"`, got)
}

func TestExtractTitle_EmojiNeverEscaped(t *testing.T) {
	tok := inlineToken(
		token.Token{Type: token.TypeText, Content: "Ship it "},
		token.Token{Type: token.TypeEmoji, Content: "🚀", Markup: "rocket"},
	)

	got := ExtractTitle(tok, Options{EscapeText: true})

	assert.Equal(t, "Ship it 🚀", got)
}

func TestExtractTitle_PermalinkSymbolExcluded(t *testing.T) {
	tok := inlineToken(
		token.Token{Type: token.TypeText, Content: "Install"},
		token.Token{
			Type:    token.TypeHTMLInline,
			Content: "#",
			Meta:    map[string]any{"isPermalinkSymbol": true},
		},
	)

	got := ExtractTitle(tok, Options{AllowHTML: true})

	assert.Equal(t, "Install", got)
}

func TestExtractTitle_UnknownChildTypesIgnored(t *testing.T) {
	tok := inlineToken(
		token.Token{Type: "link_open", Tag: "a"},
		token.Token{Type: token.TypeText, Content: "Docs"},
		token.Token{Type: "link_close", Tag: "a"},
	)

	got := ExtractTitle(tok, Options{})

	assert.Equal(t, "Docs", got)
}

func TestExtractTitle_TrimsWhitespace(t *testing.T) {
	tok := inlineToken(token.Token{Type: token.TypeText, Content: "  padded  "})

	assert.Equal(t, "padded", ExtractTitle(tok, Options{}))
}

func TestExtractTitle_NoChildren(t *testing.T) {
	assert.Equal(t, "", ExtractTitle(&token.Token{Type: token.TypeInline}, Options{}))
}
