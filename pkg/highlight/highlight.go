// Package highlight renders tokenized SQL into markup.
//
// A Formatter decides how a single token (or a whole line of tokens) is
// marked up; the Highlighter drives the tokenizer and hands the stream to
// the formatter either token by token or line by line. Lexical errors never
// stop rendering: they are logged and the broken SQL is still highlighted
// from the token stream, so imperfect DDL captured from catalog metadata
// still displays something useful.
package highlight

import (
	"log/slog"

	"github.com/dbsuite/sqlscan/pkg/token"
	"github.com/dbsuite/sqlscan/pkg/tokenizer"
)

// Formatter converts tokens to markup. FormatToken renders one token;
// FormatLine renders one full line of tokens given its 1-based line number
// (only used in line-split mode, where no token crosses a line break).
type Formatter interface {
	FormatToken(tok token.Token) string
	FormatLine(line int, tokens []token.Token) string
}

// Highlighter tokenizes SQL and renders it through a Formatter.
type Highlighter struct {
	tokenizer *tokenizer.Tokenizer
	formatter Formatter
	logger    *slog.Logger
}

// New returns a Highlighter rendering through f with tokens from tk.
func New(tk *tokenizer.Tokenizer, f Formatter) *Highlighter {
	return &Highlighter{tokenizer: tk, formatter: f, logger: slog.Default()}
}

// Parse tokenizes sql and returns the marked-up fragments: one per token
// when lineSplit is false, one per source line when it is true. The only
// error is a tokenizer configuration error (empty terminator); lexical
// errors are logged and rendered like any other token.
func (h *Highlighter) Parse(sql, terminator string, lineSplit bool) ([]string, error) {
	tokens, err := h.tokenizer.Parse(sql, terminator, lineSplit)
	if err != nil {
		return nil, err
	}
	for _, tok := range tokens {
		if tok.Kind == token.ERROR {
			h.logger.Warn("lexical error",
				"error", tok.Text,
				"line", tok.Line,
				"column", tok.Column)
		}
	}
	// The stream always ends in exactly one EOF token; it renders as
	// nothing, so drop it. A blank source renders as no fragments.
	tokens = tokens[:len(tokens)-1]
	if !lineSplit {
		out := make([]string, 0, len(tokens))
		for _, tok := range tokens {
			out = append(out, h.formatter.FormatToken(tok))
		}
		return out, nil
	}
	var out []string
	for start := 0; start < len(tokens); {
		line := tokens[start].Line
		end := start
		for end < len(tokens) && tokens[end].Line == line {
			end++
		}
		out = append(out, h.formatter.FormatLine(line, tokens[start:end]))
		start = end
	}
	return out, nil
}

// Plain is the identity formatter: each token renders as its verbatim
// source. Useful as an embedding base and for testing the contract.
type Plain struct{}

// FormatToken returns the token source unchanged.
func (Plain) FormatToken(tok token.Token) string {
	return tok.Source
}

// FormatLine concatenates the line's token sources.
func (Plain) FormatLine(_ int, tokens []token.Token) string {
	return token.Concat(tokens)
}
