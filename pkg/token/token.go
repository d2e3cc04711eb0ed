// Package token defines the lexical tokens produced by the SQL tokenizer.
//
// The Kind set is closed: consumers (highlighters, splitters, formatters)
// dispatch on Kind and may rely on a token stream being finite, ending in
// exactly one EOF token, and reproducing the original source verbatim when
// the Source fields are concatenated in order.
package token

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// Kind identifies the lexical category of a token.
type Kind int32

// The closed set of token kinds.
const (
	EOF        Kind = iota // end of input
	ERROR                  // invalid/unknown token, Text holds the diagnostic
	WHITESPACE             // run of whitespace
	COMMENT                // a comment, Text holds the body without delimiters
	KEYWORD                // a reserved keyword, Text folded to uppercase
	IDENTIFIER             // a quoted or unquoted identifier
	NUMBER                 // a numeric literal, Num holds the decimal value
	STRING                 // a string literal, Text holds the unescaped content
	OPERATOR               // an operator, Text holds the canonical spelling
	LABEL                  // a procedural label
	PARAMETER              // a colon-prefixed or anonymous qmark parameter
	TERMINATOR             // a statement terminator
)

var kindNames = map[Kind]string{
	EOF:        "EOF",
	ERROR:      "ERROR",
	WHITESPACE: "WHITESPACE",
	COMMENT:    "COMMENT",
	KEYWORD:    "KEYWORD",
	IDENTIFIER: "IDENTIFIER",
	NUMBER:     "NUMBER",
	STRING:     "STRING",
	OPERATOR:   "OPERATOR",
	LABEL:      "LABEL",
	PARAMETER:  "PARAMETER",
	TERMINATOR: "TERMINATOR",
}

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("KIND(%d)", k)
}

// Token is one lexical unit of a SQL source string.
//
// Source is the exact substring of the input that produced the token,
// including whitespace and original case. Line and Column are the 1-based
// position of the token's first character.
type Token struct {
	Kind Kind

	// Text holds the string payload: the comment body, the keyword or
	// identifier (uppercase-folded when unquoted in the source), the
	// unescaped string content, the operator spelling, the parameter name,
	// or the error diagnostic. Empty for kinds without a string payload.
	Text string

	// Num holds the numeric payload for NUMBER tokens. Decimals are used
	// rather than floats so literals like 0.1 survive exactly.
	Num *apd.Decimal

	// Named reports whether a PARAMETER token was a colon-prefixed named
	// parameter (Text holds the name) as opposed to an anonymous "?".
	Named bool

	Source string
	Line   int
	Column int
}

// Value returns the semantic payload of the token: nil for EOF, WHITESPACE,
// TERMINATOR and anonymous parameters, a *apd.Decimal for NUMBER, and a
// string for everything else.
func (t Token) Value() any {
	switch t.Kind {
	case EOF, WHITESPACE, TERMINATOR:
		return nil
	case NUMBER:
		return t.Num
	case PARAMETER:
		if !t.Named {
			return nil
		}
		return t.Text
	default:
		return t.Text
	}
}

// String renders the token for debugging.
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d:%d", t.Kind, t.Source, t.Line, t.Column)
}

// Concat joins the Source fields of the given tokens in order. For a full
// token stream this reproduces the original input exactly.
func Concat(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.Source)
	}
	return b.String()
}
