// Package splitter divides SQL scripts into individual statements.
//
// Splitting works on the token stream rather than the raw text, so
// terminators inside strings, comments and quoted identifiers never end a
// statement, and a mid-script SET TERMINATOR directive (honored by the
// DB2 LUW dialect) changes the boundary character for the rest of the
// script.
package splitter

import (
	"strings"

	"github.com/dbsuite/sqlscan/pkg/token"
	"github.com/dbsuite/sqlscan/pkg/tokenizer"
)

// Statement is one statement of a script: its tokens (terminator included
// when present), the verbatim source slice, and the position of its first
// token.
type Statement struct {
	Tokens []token.Token
	Source string
	Line   int
	Column int
}

// Errors returns the lexical error tokens of the statement.
func (s Statement) Errors() []token.Token {
	var errs []token.Token
	for _, tok := range s.Tokens {
		if tok.Kind == token.ERROR {
			errs = append(errs, tok)
		}
	}
	return errs
}

// Split tokenizes sql with tk and groups the stream into statements at
// terminator tokens. Statements containing only whitespace and comments
// are dropped; a statement's position is that of its first significant
// token. The returned error is a tokenizer configuration
// error only; lexical errors stay inline in the statements.
func Split(tk *tokenizer.Tokenizer, sql, terminator string) ([]Statement, error) {
	tokens, err := tk.Parse(sql, terminator, false)
	if err != nil {
		return nil, err
	}
	var (
		stmts []Statement
		cur   []token.Token
	)
	flush := func() {
		if !significant(cur) {
			cur = nil
			return
		}
		// Position is that of the first significant token; leading
		// whitespace and comments stay in the statement so sources
		// still concatenate to the script.
		start := 0
		for cur[start].Kind == token.WHITESPACE || cur[start].Kind == token.COMMENT {
			start++
		}
		stmt := Statement{
			Tokens: cur,
			Source: token.Concat(cur),
			Line:   cur[start].Line,
			Column: cur[start].Column,
		}
		stmts = append(stmts, stmt)
		cur = nil
	}
	for _, tok := range tokens {
		switch tok.Kind {
		case token.EOF:
			flush()
		case token.TERMINATOR:
			cur = append(cur, tok)
			flush()
		default:
			cur = append(cur, tok)
		}
	}
	return stmts, nil
}

// significant reports whether the token run contains anything besides
// whitespace, comments and the terminator itself.
func significant(tokens []token.Token) bool {
	for _, tok := range tokens {
		switch tok.Kind {
		case token.WHITESPACE, token.COMMENT, token.TERMINATOR:
		default:
			return true
		}
	}
	return false
}

// Sources returns the verbatim source of each statement, trimmed of
// surrounding whitespace.
func Sources(stmts []Statement) []string {
	out := make([]string, len(stmts))
	for i, s := range stmts {
		out[i] = strings.TrimSpace(s.Source)
	}
	return out
}
