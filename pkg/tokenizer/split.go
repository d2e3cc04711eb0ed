package tokenizer

import (
	"strings"

	"github.com/dbsuite/sqlscan/pkg/token"
)

// splitLines rewrites the token stream so no token's source contains an
// internal line break: a token spanning lines is cut at each break, with
// line and column re-derived for every fragment (each continuation starts
// at column 1). String payloads containing breaks (multi-line comments and
// strings) are cut alongside the source; other payloads are carried on
// every fragment. Concatenating the fragment sources still reproduces the
// original token source exactly.
func splitLines(tokens []token.Token) []token.Token {
	out := make([]token.Token, 0, len(tokens))
	for _, tok := range tokens {
		for {
			i := strings.IndexByte(tok.Source, '\n')
			if i < 0 {
				break
			}
			frag := tok
			frag.Source = tok.Source[:i+1]
			if j := strings.IndexByte(tok.Text, '\n'); j >= 0 {
				frag.Text = tok.Text[:j+1]
				tok.Text = tok.Text[j+1:]
			}
			out = append(out, frag)
			tok.Source = tok.Source[i+1:]
			tok.Line++
			tok.Column = 1
		}
		out = append(out, tok)
	}
	return out
}
