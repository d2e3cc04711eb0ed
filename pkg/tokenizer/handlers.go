package tokenizer

import (
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"

	"github.com/dbsuite/sqlscan/pkg/token"
)

// extractString consumes a quoted string (or quoted identifier) and returns
// its unescaped content. The cursor is assumed to sit on the opening quote;
// on success it ends up one past the closing quote. Doubled quote
// characters escape a literal quote. A line break is only legal when
// multiline is true. The error result signals an unterminated or illegally
// broken string; callers turn it into an ERROR token.
func (t *Tokenizer) extractString(multiline bool) (string, error) {
	q := t.char()
	qcount := 1
	t.next()
	t.mark()
	for {
		switch c := t.char(); {
		case c == eof:
			return "", fmt.Errorf("unterminated string starting on line %d", t.tokenLine)
		case c == '\n' && !multiline:
			return "", errors.New("illegal line break found in token")
		case c == q:
			qcount++
		}
		if t.char() == q && t.nextChar() != q && qcount%2 == 0 {
			break
		}
		t.next()
	}
	qs := string(q)
	content := strings.ReplaceAll(t.markedChars(), qs+qs, qs)
	t.next()
	return content, nil
}

// handleSpace lexes a run of whitespace. The run is cut just after a line
// break so a WHITESPACE token never spans more than one break.
func (t *Tokenizer) handleSpace() {
	for isSpace(t.char()) {
		if t.char() == '\n' {
			t.next()
			break
		}
		t.next()
	}
	t.add(token.Token{Kind: token.WHITESPACE})
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n'
}

// handleIdent lexes an unquoted identifier, keyword or label.
func (t *Tokenizer) handleIdent() {
	t.mark()
	t.next()
	t.scanIdent()
}

// identFallback finishes lexing an identifier whose leading characters were
// consumed by a dialect prefix handler (x, u, n, g) that found no literal.
// The extraction mark is rewound to the token start so the identifier value
// keeps its prefix letters.
func (t *Tokenizer) identFallback() {
	t.markedIndex = t.tokenStart
	if t.index == t.tokenStart {
		t.next()
	}
	t.scanIdent()
}

// scanIdent consumes the remaining identifier characters and classifies the
// marked text as KEYWORD, IDENTIFIER or (when immediately followed by a
// colon) LABEL.
func (t *Tokenizer) scanIdent() {
	for t.isIdentChar(t.char()) {
		t.next()
	}
	ident := strings.ToUpper(t.markedChars())
	switch {
	case t.char() == ':':
		t.next()
		t.add(token.Token{Kind: token.LABEL, Text: ident})
	case t.dialect.IsKeyword(ident):
		t.add(token.Token{Kind: token.KEYWORD, Text: ident})
	default:
		t.add(token.Token{Kind: token.IDENTIFIER, Text: ident})
		if t.dialect.DecimalSpecials {
			t.rewriteDecimalSpecial()
		}
	}
}

func (t *Tokenizer) isIdentChar(r rune) bool {
	return r != eof && strings.ContainsRune(t.dialect.IdentChars, r)
}

// rewriteDecimalSpecial reclassifies a just-emitted INFINITY/NAN/SNAN
// identifier as a NUMBER with the matching special decimal value.
func (t *Tokenizer) rewriteDecimalSpecial() {
	last := &t.tokens[len(t.tokens)-1]
	var special string
	switch last.Text {
	case "INFINITY":
		special = "Infinity"
	case "NAN":
		special = "NaN"
	case "SNAN":
		special = "sNaN"
	default:
		return
	}
	d, _, err := apd.NewFromString(special)
	if err != nil {
		return
	}
	last.Kind = token.NUMBER
	last.Text = ""
	last.Num = d
}

// handleDigit lexes a numeric literal: digits with an optional decimal
// point and an optional exponent. The consumed text is handed to the
// decimal parser; whatever it rejects becomes an ERROR token carrying the
// parser's message.
func (t *Tokenizer) handleDigit() {
	t.mark()
	t.next()
	point, exponent := true, true
loop:
	for {
		switch c := t.char(); {
		case c >= '0' && c <= '9':
			t.next()
		case c == '.' && point:
			point = false
			t.next()
		case (c == 'e' || c == 'E') && exponent:
			exponent, point = false, false
			if n := t.nextChar(); n == '+' || n == '-' {
				t.next()
			}
			t.next()
		default:
			break loop
		}
	}
	d, _, err := apd.NewFromString(t.markedChars())
	if err != nil {
		t.addError("%v", err)
		return
	}
	t.add(token.Token{Kind: token.NUMBER, Num: d})
}

// handleApos lexes a single-quoted string literal.
func (t *Tokenizer) handleApos() {
	s, err := t.extractString(t.dialect.MultilineStrings)
	if err != nil {
		t.addError("%v", err)
		return
	}
	t.add(token.Token{Kind: token.STRING, Text: s})
}

// handleQuote lexes a double-quoted identifier, which keeps its original
// case and may not span lines. A trailing colon promotes it to a label.
func (t *Tokenizer) handleQuote() {
	s, err := t.extractString(false)
	if err != nil {
		t.addError("%v", err)
		return
	}
	if t.char() == ':' {
		t.next()
		t.add(token.Token{Kind: token.LABEL, Text: s})
		return
	}
	t.add(token.Token{Kind: token.IDENTIFIER, Text: s})
}

// handleColon lexes a named parameter: a colon followed by a quoted or
// unquoted name. Unquoted names fold to uppercase like identifiers.
func (t *Tokenizer) handleColon() {
	t.next()
	if c := t.char(); c == '\'' || c == '"' {
		s, err := t.extractString(false)
		if err != nil {
			t.addError("%v", err)
			return
		}
		t.add(token.Token{Kind: token.PARAMETER, Text: s, Named: true})
		return
	}
	t.mark()
	for t.isIdentChar(t.char()) {
		t.next()
	}
	t.add(token.Token{Kind: token.PARAMETER, Text: strings.ToUpper(t.markedChars()), Named: true})
}

// handleQuestion lexes an anonymous parameter marker.
func (t *Tokenizer) handleQuestion() {
	t.next()
	t.add(token.Token{Kind: token.PARAMETER})
}

// handleMinus lexes either a -- comment (when enabled) or the minus
// operator. The line break after a comment is left for the whitespace
// handler. Comment bodies may carry SET TERMINATOR directives in dialects
// that allow them.
func (t *Tokenizer) handleMinus() {
	t.next()
	if t.dialect.SQLComments && t.char() == '-' {
		t.next()
		body := t.scanToLineEnd()
		t.add(token.Token{Kind: token.COMMENT, Text: body})
		if t.dialect.TerminatorDirectives {
			t.applyTerminatorDirective(body)
		}
		return
	}
	t.add(token.Token{Kind: token.OPERATOR, Text: "-"})
}

// handleSlash lexes a // comment, a /* */ comment (per dialect toggles) or
// the division operator.
func (t *Tokenizer) handleSlash() {
	t.next()
	switch {
	case t.dialect.CPPComments && t.char() == '/':
		t.next()
		t.add(token.Token{Kind: token.COMMENT, Text: t.scanToLineEnd()})
	case t.dialect.CComments && t.char() == '*':
		t.next()
		t.mark()
		for {
			if t.char() == eof {
				t.addError("unterminated comment starting on line %d", t.tokenLine)
				return
			}
			if t.char() == '*' && t.nextChar() == '/' {
				body := strings.TrimSpace(t.markedChars())
				t.advance(2)
				t.add(token.Token{Kind: token.COMMENT, Text: body})
				return
			}
			t.next()
		}
	default:
		t.add(token.Token{Kind: token.OPERATOR, Text: "/"})
	}
}

// scanToLineEnd consumes up to (not including) the next line break and
// returns the trimmed text.
func (t *Tokenizer) scanToLineEnd() string {
	t.mark()
	for t.char() != eof && t.char() != '\n' {
		t.next()
	}
	return strings.TrimSpace(t.markedChars())
}

// handlePeriod lexes the "." operator, a ".." operator in dialects that
// have one, or a number with a leading decimal point.
func (t *Tokenizer) handlePeriod() {
	if t.dialect.DotDotOperator && t.nextChar() == '.' {
		t.advance(2)
		t.add(token.Token{Kind: token.OPERATOR, Text: ".."})
		return
	}
	if c := t.nextChar(); c >= '0' && c <= '9' {
		t.handleDigit()
		return
	}
	t.next()
	t.add(token.Token{Kind: token.OPERATOR, Text: "."})
}

func (t *Tokenizer) handleOpenParen() {
	t.next()
	t.add(token.Token{Kind: token.OPERATOR, Text: "("})
}

func (t *Tokenizer) handleCloseParen() {
	t.next()
	t.add(token.Token{Kind: token.OPERATOR, Text: ")"})
}

func (t *Tokenizer) handlePlus() {
	t.next()
	t.add(token.Token{Kind: token.OPERATOR, Text: "+"})
}

func (t *Tokenizer) handleAsterisk() {
	t.next()
	t.add(token.Token{Kind: token.OPERATOR, Text: "*"})
}

func (t *Tokenizer) handleComma() {
	t.next()
	t.add(token.Token{Kind: token.OPERATOR, Text: ","})
}

func (t *Tokenizer) handleEqual() {
	t.next()
	t.add(token.Token{Kind: token.OPERATOR, Text: "="})
}

func (t *Tokenizer) handleLess() {
	t.next()
	switch t.char() {
	case '=':
		t.next()
		t.add(token.Token{Kind: token.OPERATOR, Text: "<="})
	case '>':
		t.next()
		t.add(token.Token{Kind: token.OPERATOR, Text: "<>"})
	default:
		t.add(token.Token{Kind: token.OPERATOR, Text: "<"})
	}
}

func (t *Tokenizer) handleGreater() {
	t.next()
	if t.char() == '=' {
		t.next()
		t.add(token.Token{Kind: token.OPERATOR, Text: ">="})
		return
	}
	t.add(token.Token{Kind: token.OPERATOR, Text: ">"})
}

// handleBar lexes the || concatenation operator; a lone | is not an
// operator in any supported dialect.
func (t *Tokenizer) handleBar() {
	t.next()
	if t.char() == '|' {
		t.next()
		t.add(token.Token{Kind: token.OPERATOR, Text: "||"})
		return
	}
	t.addError("invalid operator |")
}

// handleSemicolon lexes the default statement terminator. It is displaced
// by handleTerminator when the terminator starts with another character.
func (t *Tokenizer) handleSemicolon() {
	t.next()
	t.add(token.Token{Kind: token.TERMINATOR})
}

// handleTerminator attempts a full terminator match at the cursor, falling
// back to the handler the terminator's first character had before. When
// there is no such handler the character is reported as an error; either
// way the cursor advances, so a failed match cannot stall the scan.
func (t *Tokenizer) handleTerminator() {
	if strings.HasPrefix(t.src[t.index:], t.terminator) {
		t.advance(len([]rune(t.terminator)))
		t.add(token.Token{Kind: token.TERMINATOR})
		return
	}
	if t.saved != nil {
		t.saved()
		return
	}
	t.handleDefault()
}

// handleDefault consumes one unrecognized character and reports it.
func (t *Tokenizer) handleDefault() {
	c := t.char()
	t.next()
	t.addError("unexpected character %q", c)
}

// handleNot lexes the negated comparison characters (!, ^, U+00AC) into
// their canonical two-character operators.
func (t *Tokenizer) handleNot() {
	t.next()
	switch t.char() {
	case '=':
		t.next()
		t.add(token.Token{Kind: token.OPERATOR, Text: "<>"})
	case '>':
		t.next()
		t.add(token.Token{Kind: token.OPERATOR, Text: "<="})
	case '<':
		t.next()
		t.add(token.Token{Kind: token.OPERATOR, Text: ">="})
	default:
		t.addError("expected >, < or = but found %q", t.char())
	}
}

// handleHexString lexes an x'...' hex string literal, falling back to
// identifier lexing when no quote follows the prefix.
func (t *Tokenizer) handleHexString() {
	if t.nextChar() != '\'' {
		t.identFallback()
		return
	}
	t.next()
	s, err := t.extractString(false)
	if err != nil {
		t.addError("%v", err)
		return
	}
	decoded, err := decodeHexString(s)
	if err != nil {
		t.addError("%v", err)
		return
	}
	t.add(token.Token{Kind: token.STRING, Text: decoded})
}

// handleGraphicString lexes n'...' and g'...' graphic string literals and
// dispatches gx'...' to the unicode hex handler. Identifiers starting with
// these letters fall through to identifier lexing.
func (t *Tokenizer) handleGraphicString() {
	c := t.char()
	switch {
	case t.nextChar() == '\'':
		t.next()
		s, err := t.extractString(t.dialect.MultilineStrings)
		if err != nil {
			t.addError("%v", err)
			return
		}
		t.add(token.Token{Kind: token.STRING, Text: s})
	case (c == 'g' || c == 'G') && isHexPrefix(t.nextChar()):
		t.handleUniHexString()
	default:
		t.identFallback()
	}
}

// handleUniHexString lexes the x'...' tail of a gx/ux unicode hex string
// literal: groups of four hex digits, each one UTF-16 code unit.
func (t *Tokenizer) handleUniHexString() {
	if !isHexPrefix(t.nextChar()) {
		t.identFallback()
		return
	}
	t.next()
	if t.nextChar() != '\'' {
		t.identFallback()
		return
	}
	t.next()
	s, err := t.extractString(false)
	if err != nil {
		t.addError("%v", err)
		return
	}
	decoded, err := decodeUniHexString(s)
	if err != nil {
		t.addError("%v", err)
		return
	}
	t.add(token.Token{Kind: token.STRING, Text: decoded})
}

// handleUnicodeString lexes a u&'...' unicode-escaped string literal or a
// ux'...' hex literal, falling back to identifier lexing otherwise.
func (t *Tokenizer) handleUnicodeString() {
	switch {
	case t.nextChar() == '&':
		t.advance(2)
		if t.char() != '\'' {
			t.addError("expected ' after unicode string introducer")
			return
		}
		s, err := t.extractString(t.dialect.MultilineStrings)
		if err != nil {
			t.addError("%v", err)
			return
		}
		t.add(token.Token{Kind: token.STRING, Text: decodeUnicodeEscapes(s)})
	case isHexPrefix(t.nextChar()):
		t.handleUniHexString()
	default:
		t.identFallback()
	}
}

func isHexPrefix(r rune) bool {
	return r == 'x' || r == 'X'
}

// decodeHexString converts pairs of hex digits to bytes.
func decodeHexString(s string) (string, error) {
	if len(s)%2 != 0 {
		return "", errors.New("hex string must have an even length")
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return "", fmt.Errorf("invalid hex string: %w", err)
	}
	return string(b), nil
}

// decodeUniHexString converts groups of four hex digits to characters.
func decodeUniHexString(s string) (string, error) {
	if len(s)%4 != 0 {
		return "", errors.New("unicode hex string must have a length which is a multiple of 4")
	}
	var b strings.Builder
	for i := 0; i < len(s); i += 4 {
		n, err := strconv.ParseUint(s[i:i+4], 16, 32)
		if err != nil {
			return "", fmt.Errorf("invalid unicode hex string: %w", err)
		}
		b.WriteRune(rune(n))
	}
	return b.String(), nil
}

// unicodeEscape matches the \\, \xxxx and \+xxxxxx escape forms of u&''
// string literals.
var unicodeEscape = regexp.MustCompile(`\\(\\|[0-9A-Fa-f]{4}|\+[0-9A-Fa-f]{6})`)

// decodeUnicodeEscapes rewrites unicode escapes to their characters.
// Backslashes not forming a recognized escape are left verbatim.
func decodeUnicodeEscapes(s string) string {
	return unicodeEscape.ReplaceAllStringFunc(s, func(m string) string {
		esc := m[1:]
		if esc == `\` {
			return `\`
		}
		if esc[0] == '+' {
			esc = esc[1:]
		}
		n, err := strconv.ParseUint(esc, 16, 32)
		if err != nil {
			return m
		}
		return string(rune(n))
	})
}
