// Package tokenizer converts SQL source text into an ordered sequence of
// typed tokens with exact positional bookkeeping.
//
// The engine is a character-dispatch, maximal-munch lexer: at each cursor
// position it dispatches on the current character to a handler which
// consumes one or more characters and emits exactly one token. Malformed
// SQL never aborts a scan; problems surface as inline ERROR tokens and
// lexing continues just past the erroring point. Concatenating the Source
// fields of the returned tokens reproduces the input verbatim.
//
// A Tokenizer holds its scan state in instance fields, so a single instance
// may be reused for sequential Parse calls but must not be shared between
// concurrent ones; use one Tokenizer per goroutine.
package tokenizer

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dbsuite/sqlscan/pkg/token"
)

// eof is the sentinel rune reported by the character view past the end of
// the input.
const eof rune = 0

// spaceChars are the characters handled by the whitespace handler. The
// carriage return entry is registered for completeness but never hit: the
// character view normalizes CR and CRLF to a single LF.
const spaceChars = " \t\r\n"

// Tokenizer lexes SQL source into tokens according to a Dialect.
type Tokenizer struct {
	dialect *Dialect

	src         string
	index       int // byte offset of the cursor
	markedIndex int // extraction mark, set by mark()
	line        int // 1-based line of the cursor
	lineStart   int // byte offset of the current line's first character

	tokenStart  int // byte offset of the pending token's first character
	tokenLine   int
	tokenColumn int

	tokens []token.Token

	jump       map[rune]func()
	terminator string
	saved      func() // handler displaced by the terminator entry, if any
}

// New returns a Tokenizer for the given dialect. A nil dialect gets the
// engine defaults from NewDialect.
func New(d *Dialect) *Tokenizer {
	if d == nil {
		d = NewDialect()
	}
	return &Tokenizer{dialect: d}
}

// Dialect returns the dialect configuration the tokenizer was built with.
// Mutations take effect at the next Parse call.
func (t *Tokenizer) Dialect() *Dialect {
	return t.dialect
}

// Parse lexes sql into a token sequence terminated by exactly one EOF token.
//
// terminator is the statement terminator string; its first character is
// intercepted by a dedicated handler which attempts a full match at the
// cursor and otherwise falls back to whatever handler that character had
// before. An empty terminator is a configuration error, the only error this
// method returns; lexical problems become inline ERROR tokens instead.
//
// If lineSplit is true, tokens whose source spans multiple lines are split
// so that every output line begins a new token at column 1; the source
// concatenation invariant is preserved.
func (t *Tokenizer) Parse(sql, terminator string, lineSplit bool) ([]token.Token, error) {
	t.src = sql
	t.index = 0
	t.markedIndex = -1
	t.line = 1
	t.lineStart = 0
	t.tokenStart = 0
	t.tokenLine = 1
	t.tokenColumn = 1
	t.tokens = nil
	t.initJump()
	// The terminator is installed after the dispatch table is built because
	// installing it rewrites an entry in that table. It is deliberately not
	// part of initJump: dialects may switch the terminator in the middle of
	// a script (SET TERMINATOR directives), which re-runs the same patching.
	t.terminator = ""
	t.saved = nil
	if err := t.SetTerminator(terminator); err != nil {
		return nil, err
	}
	for t.index < len(t.src) {
		if h, ok := t.jump[t.char()]; ok {
			h()
		} else {
			t.handleDefault()
		}
	}
	t.add(token.Token{Kind: token.EOF})
	if lineSplit {
		return splitLines(t.tokens), nil
	}
	return t.tokens, nil
}

// Terminator returns the current statement terminator.
func (t *Tokenizer) Terminator() string {
	return t.terminator
}

// SetTerminator changes the statement terminator, patching the dispatch
// table so the terminator's first character is intercepted and saving the
// displaced handler for fallback. It may be called mid-parse. An empty
// terminator is rejected.
func (t *Tokenizer) SetTerminator(terminator string) error {
	if terminator == "" {
		return errors.New("statement terminator must contain at least one character")
	}
	if t.jump == nil {
		t.initJump()
	}
	// Undo the previous patch, if any: restore the displaced handler, or
	// remove the entry entirely when the character had none before.
	if t.terminator != "" {
		old, _ := utf8.DecodeRuneInString(t.terminator)
		if t.saved == nil {
			delete(t.jump, old)
		} else {
			t.jump[old] = t.saved
		}
	}
	if terminator == "\r\n" || terminator == "\r" {
		terminator = "\n"
	}
	t.terminator = terminator
	first, _ := utf8.DecodeRuneInString(terminator)
	t.saved = t.jump[first]
	t.jump[first] = t.handleTerminator
	return nil
}

// initJump builds the character dispatch table from the dialect
// configuration. Extra dialect entries are layered last so they can
// displace base entries (e.g. 'x' moving from identifier to hex-string
// handling).
func (t *Tokenizer) initJump() {
	jump := make(map[rune]func(), len(t.dialect.IdentChars)+32)
	for _, r := range spaceChars {
		jump[r] = t.handleSpace
	}
	for _, r := range t.dialect.IdentChars {
		jump[r] = t.handleIdent
	}
	// Digits may appear in IdentChars; they are overwritten here because a
	// numeral is never the first character of an unquoted identifier.
	for _, r := range "0123456789" {
		jump[r] = t.handleDigit
	}
	jump['('] = t.handleOpenParen
	jump[')'] = t.handleCloseParen
	jump['+'] = t.handlePlus
	jump['-'] = t.handleMinus
	jump['*'] = t.handleAsterisk
	jump['/'] = t.handleSlash
	jump['.'] = t.handlePeriod
	jump[','] = t.handleComma
	jump[':'] = t.handleColon
	jump['?'] = t.handleQuestion
	jump['<'] = t.handleLess
	jump['='] = t.handleEqual
	jump['>'] = t.handleGreater
	jump['\''] = t.handleApos
	jump['"'] = t.handleQuote
	jump['|'] = t.handleBar
	jump[';'] = t.handleSemicolon
	for r, h := range t.dialect.Extra {
		switch h {
		case HandleNot:
			jump[r] = t.handleNot
		case HandleHexString:
			jump[r] = t.handleHexString
		case HandleGraphicString:
			jump[r] = t.handleGraphicString
		case HandleUnicodeString:
			jump[r] = t.handleUnicodeString
		case HandleOperatorChar:
			op := r
			jump[r] = func() {
				t.next()
				t.add(token.Token{Kind: token.OPERATOR, Text: string(op)})
			}
		}
	}
	t.jump = jump
}

// char returns the character at the cursor. All line breaks (CR, CRLF, LF)
// are reported as a single LF, which keeps handler code simple; the bytes
// in token Source fields are untouched by this normalization.
func (t *Tokenizer) char() rune {
	if t.index >= len(t.src) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(t.src[t.index:])
	if r == '\r' {
		return '\n'
	}
	return r
}

// nextChar returns the character one position past the cursor, with the
// same line break normalization as char.
func (t *Tokenizer) nextChar() rune {
	if t.index >= len(t.src) {
		return eof
	}
	r, w := utf8.DecodeRuneInString(t.src[t.index:])
	j := t.index + w
	if r == '\r' && j < len(t.src) && t.src[j] == '\n' {
		j++
	}
	if j >= len(t.src) {
		return eof
	}
	r2, _ := utf8.DecodeRuneInString(t.src[j:])
	if r2 == '\r' {
		return '\n'
	}
	return r2
}

// next moves the cursor forward one character, counting a CRLF pair as a
// single line break. Handlers must advance through next/advance only so the
// line and column bookkeeping stays correct.
func (t *Tokenizer) next() {
	if t.index >= len(t.src) {
		return
	}
	r, w := utf8.DecodeRuneInString(t.src[t.index:])
	switch r {
	case '\r':
		t.index += w
		if t.index < len(t.src) && t.src[t.index] == '\n' {
			t.index++
		}
		t.line++
		t.lineStart = t.index
	case '\n':
		t.index += w
		t.line++
		t.lineStart = t.index
	default:
		t.index += w
	}
}

// advance moves the cursor forward n characters.
func (t *Tokenizer) advance(n int) {
	for ; n > 0; n-- {
		t.next()
	}
}

// column returns the 1-based column of the cursor.
func (t *Tokenizer) column() int {
	return (t.index - t.lineStart) + 1
}

// mark saves the cursor position for later extraction via markedChars.
// Handlers use it to capture the interior of strings and comments,
// independent of the token-start mark maintained by add.
func (t *Tokenizer) mark() {
	t.markedIndex = t.index
}

// markedChars returns the characters from the mark to the cursor with all
// line breaks normalized to LF.
func (t *Tokenizer) markedChars() string {
	s := t.src[t.markedIndex:t.index]
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// add emits tok, filling in the source slice and position covering all
// characters consumed since the previous token, and re-arms the token-start
// mark at the cursor.
func (t *Tokenizer) add(tok token.Token) {
	tok.Source = t.src[t.tokenStart:t.index]
	tok.Line = t.tokenLine
	tok.Column = t.tokenColumn
	t.tokens = append(t.tokens, tok)
	t.tokenStart = t.index
	t.tokenLine = t.line
	t.tokenColumn = t.column()
}

func (t *Tokenizer) addError(format string, args ...any) {
	t.add(token.Token{Kind: token.ERROR, Text: fmt.Sprintf(format, args...)})
}

// setTerminatorDirective matches DB2 CLP "#SET TERMINATOR c" comment bodies.
var setTerminatorDirective = regexp.MustCompile(`(?i)^#\s*SET\s+TERMINATOR\s+(\S+)$`)

// applyTerminatorDirective switches the statement terminator when a comment
// body carries a SET TERMINATOR directive. Called after the comment token
// has been emitted, so the new terminator applies from the next token on.
func (t *Tokenizer) applyTerminatorDirective(body string) {
	m := setTerminatorDirective.FindStringSubmatch(strings.TrimSpace(body))
	if m == nil {
		return
	}
	// The directive's terminator is never empty, so this cannot fail.
	_ = t.SetTerminator(m[1])
}
