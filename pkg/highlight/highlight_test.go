package highlight

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbsuite/sqlscan/pkg/dialect"
	"github.com/dbsuite/sqlscan/pkg/token"
	"github.com/dbsuite/sqlscan/pkg/tokenizer"
)

func TestPlainRoundTrip(t *testing.T) {
	h := New(tokenizer.New(dialect.SQL92()), Plain{})
	sql := "SELECT *\nFROM t -- trailing\nWHERE a < 'b';"

	fragments, err := h.Parse(sql, ";", false)
	require.NoError(t, err)
	assert.Equal(t, sql, strings.Join(fragments, ""))

	// Line mode concatenates the same bytes, one fragment per line.
	lines, err := h.Parse(sql, ";", true)
	require.NoError(t, err)
	assert.Equal(t, sql, strings.Join(lines, ""))
	assert.Len(t, lines, 3)
}

func TestParseEmptyInput(t *testing.T) {
	h := New(tokenizer.New(dialect.SQL92()), Plain{})
	fragments, err := h.Parse("", ";", false)
	require.NoError(t, err)
	assert.Empty(t, fragments)
}

func TestParseRejectsEmptyTerminator(t *testing.T) {
	h := New(tokenizer.New(dialect.SQL92()), Plain{})
	_, err := h.Parse("SELECT 1", "", false)
	require.Error(t, err)
}

func TestParseSurvivesLexicalErrors(t *testing.T) {
	h := New(tokenizer.New(dialect.SQL92()), NewHTML())
	fragments, err := h.Parse("SELECT 'oops", ";", false)
	require.NoError(t, err)
	assert.Contains(t, strings.Join(fragments, ""), "sql-error")
}

func TestHTMLFormatToken(t *testing.T) {
	f := NewHTML()
	tests := []struct {
		tok  token.Token
		want string
	}{
		{token.Token{Kind: token.KEYWORD, Text: "SELECT", Source: "SELECT"},
			`<span class="sql-keyword">SELECT</span>`},
		{token.Token{Kind: token.WHITESPACE, Source: "  "}, "  "},
		{token.Token{Kind: token.OPERATOR, Text: "<", Source: "<"},
			`<span class="sql-operator">&lt;</span>`},
		{token.Token{Kind: token.STRING, Text: "a&b", Source: "'a&b'"},
			`<span class="sql-string">&#39;a&amp;b&#39;</span>`},
		{token.Token{Kind: token.EOF}, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, f.FormatToken(tt.tok), "kind %s", tt.tok.Kind)
	}
}

func TestHTMLFormatLine(t *testing.T) {
	f := NewHTML()
	got := f.FormatLine(3, []token.Token{
		{Kind: token.KEYWORD, Text: "SELECT", Source: "SELECT"},
		{Kind: token.WHITESPACE, Source: " "},
	})
	assert.Equal(t, `<span class="sql-line" id="sql-line-3">`+
		`<span class="sql-keyword">SELECT</span> </span>`, got)
}

func TestHTMLClassOverride(t *testing.T) {
	f := NewHTML()
	f.Classes = map[token.Kind]string{token.KEYWORD: "kw"}
	assert.Equal(t, `<span class="kw">IF</span>`,
		f.FormatToken(token.Token{Kind: token.KEYWORD, Text: "IF", Source: "IF"}))
	// Kinds absent from the override render bare.
	assert.Equal(t, "x",
		f.FormatToken(token.Token{Kind: token.IDENTIFIER, Text: "X", Source: "x"}))
}

func TestTermFormatterKeepsText(t *testing.T) {
	f := NewTerm()
	// Styled or not (color support depends on the environment), the token
	// text must survive rendering.
	got := f.FormatToken(token.Token{Kind: token.KEYWORD, Text: "SELECT", Source: "SELECT"})
	assert.Contains(t, got, "SELECT")

	got = f.FormatToken(token.Token{Kind: token.WHITESPACE, Source: "\t"})
	assert.Equal(t, "\t", got)
}

func TestTermFormatLineNumbers(t *testing.T) {
	f := NewTerm()
	f.LineNumbers = true
	got := f.FormatLine(7, []token.Token{{Kind: token.IDENTIFIER, Text: "X", Source: "x"}})
	assert.Contains(t, got, "   7  ")
	assert.Contains(t, got, "x")
}
