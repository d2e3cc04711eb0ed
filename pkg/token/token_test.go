package token

import (
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "KEYWORD", KEYWORD.String())
	assert.Equal(t, "EOF", EOF.String())
	assert.Equal(t, "KIND(99)", Kind(99).String())
}

func TestValue(t *testing.T) {
	num, _, err := apd.NewFromString("3.14")
	require.NoError(t, err)

	tests := []struct {
		name string
		tok  Token
		want any
	}{
		{"eof", Token{Kind: EOF}, nil},
		{"whitespace", Token{Kind: WHITESPACE, Source: "  "}, nil},
		{"terminator", Token{Kind: TERMINATOR, Source: ";"}, nil},
		{"anonymous parameter", Token{Kind: PARAMETER, Source: "?"}, nil},
		{"named parameter", Token{Kind: PARAMETER, Text: "ID", Named: true}, "ID"},
		{"number", Token{Kind: NUMBER, Num: num}, num},
		{"keyword", Token{Kind: KEYWORD, Text: "SELECT"}, "SELECT"},
		{"string", Token{Kind: STRING, Text: "it's"}, "it's"},
		{"error", Token{Kind: ERROR, Text: "boom"}, "boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tok.Value())
		})
	}
}

func TestTokenString(t *testing.T) {
	tok := Token{Kind: KEYWORD, Text: "SELECT", Source: "select", Line: 2, Column: 5}
	assert.Equal(t, `KEYWORD("select")@2:5`, tok.String())
}

func TestConcat(t *testing.T) {
	tokens := []Token{
		{Source: "SELECT"},
		{Source: " "},
		{Source: "1"},
		{Source: ";"},
		{Source: ""},
	}
	assert.Equal(t, "SELECT 1;", Concat(tokens))
	assert.Equal(t, "", Concat(nil))
}
