package highlight

import (
	"fmt"
	"html"
	"strings"

	"github.com/dbsuite/sqlscan/pkg/token"
)

// defaultClasses maps token kinds to the CSS classes emitted by the HTML
// formatter. Whitespace is deliberately absent: it renders bare so the
// markup stays diffable against the source.
var defaultClasses = map[token.Kind]string{
	token.ERROR:      "sql-error",
	token.COMMENT:    "sql-comment",
	token.KEYWORD:    "sql-keyword",
	token.IDENTIFIER: "sql-identifier",
	token.NUMBER:     "sql-number",
	token.STRING:     "sql-string",
	token.OPERATOR:   "sql-operator",
	token.LABEL:      "sql-label",
	token.PARAMETER:  "sql-parameter",
	token.TERMINATOR: "sql-terminator",
}

// HTML renders tokens as escaped text wrapped in kind-classed spans.
type HTML struct {
	// Classes overrides the default kind-to-class mapping when non-nil.
	Classes map[token.Kind]string
}

// NewHTML returns an HTML formatter with the default class mapping.
func NewHTML() *HTML {
	return &HTML{}
}

func (f *HTML) class(k token.Kind) (string, bool) {
	if f.Classes != nil {
		c, ok := f.Classes[k]
		return c, ok
	}
	c, ok := defaultClasses[k]
	return c, ok
}

// FormatToken renders one token as an escaped, classed span (or bare
// escaped text for kinds without a class).
func (f *HTML) FormatToken(tok token.Token) string {
	escaped := html.EscapeString(tok.Source)
	class, ok := f.class(tok.Kind)
	if !ok || escaped == "" {
		return escaped
	}
	return fmt.Sprintf(`<span class=%q>%s</span>`, class, escaped)
}

// FormatLine renders a full line of tokens wrapped in a line span carrying
// an anchor for per-line linking.
func (f *HTML) FormatLine(line int, tokens []token.Token) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<span class="sql-line" id="sql-line-%d">`, line)
	for _, tok := range tokens {
		b.WriteString(f.FormatToken(tok))
	}
	b.WriteString("</span>")
	return b.String()
}
