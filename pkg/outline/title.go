package outline

import (
	"strings"

	"github.com/Sriram-PR/md-outline/pkg/token"
)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// ExtractTitle resolves the visible title of a heading from its inline token.
//
// Plain text, emoji and inline code children contribute in order; inline HTML
// only when opts.AllowHTML. Permalink anchor symbols injected by the
// tokenizer are excluded. With opts.EscapeText, text and inline-code content
// is HTML-escaped; emoji and inline HTML always pass through raw since they
// are either pre-sanitized or intentionally literal markup.
func ExtractTitle(tok *token.Token, opts Options) string {
	var sb strings.Builder
	for i := range tok.Children {
		child := &tok.Children[i]
		if child.IsPermalinkSymbol() {
			continue
		}
		switch child.Type {
		case token.TypeText, token.TypeCodeInline:
			if opts.EscapeText {
				sb.WriteString(htmlEscaper.Replace(child.Content))
			} else {
				sb.WriteString(child.Content)
			}
		case token.TypeEmoji:
			sb.WriteString(child.Content)
		case token.TypeHTMLInline:
			if opts.AllowHTML {
				sb.WriteString(child.Content)
			}
		}
	}
	return strings.TrimSpace(sb.String())
}
