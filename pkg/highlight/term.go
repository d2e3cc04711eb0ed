package highlight

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dbsuite/sqlscan/pkg/token"
)

// Term renders tokens with ANSI styling for terminal output.
type Term struct {
	styles map[token.Kind]lipgloss.Style

	// LineNumbers prefixes each formatted line with its number.
	LineNumbers bool
}

// NewTerm returns a Term formatter with the default styles.
func NewTerm() *Term {
	return &Term{
		styles: map[token.Kind]lipgloss.Style{
			token.ERROR:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Underline(true),
			token.COMMENT:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),
			token.KEYWORD:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
			token.NUMBER:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			token.STRING:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			token.LABEL:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
			token.PARAMETER:  lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
			token.TERMINATOR: lipgloss.NewStyle().Bold(true),
		},
	}
}

// Style overrides the style used for a token kind.
func (f *Term) Style(k token.Kind, s lipgloss.Style) {
	f.styles[k] = s
}

// FormatToken renders one token with its kind's style; kinds without a
// style (whitespace, identifiers, operators) render verbatim.
func (f *Term) FormatToken(tok token.Token) string {
	style, ok := f.styles[tok.Kind]
	if !ok || tok.Source == "" {
		return tok.Source
	}
	return style.Render(tok.Source)
}

// FormatLine renders a full line, optionally prefixed with its number. The
// trailing line break of the last token is preserved.
func (f *Term) FormatLine(line int, tokens []token.Token) string {
	var b strings.Builder
	if f.LineNumbers {
		fmt.Fprintf(&b, "%4d  ", line)
	}
	for _, tok := range tokens {
		b.WriteString(f.FormatToken(tok))
	}
	return b.String()
}
