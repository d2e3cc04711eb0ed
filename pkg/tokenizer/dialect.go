package tokenizer

import "strings"

// ExtraHandler names an engine-provided character handler that a dialect can
// layer on top of the base dispatch table. Each handler still emits exactly
// one token per invocation and falls back to identifier lexing when its
// expected follow-up character is absent, so identifiers that merely start
// with a reserved prefix letter (e.g. a column named XRAY) are not
// misclassified.
type ExtraHandler int

// Handlers available to dialects.
const (
	// HandleNot lexes negated comparison characters (!, ^, U+00AC) into
	// <>, <= or >= operators.
	HandleNot ExtraHandler = iota
	// HandleHexString lexes x'...' hex string literals into their decoded
	// byte content.
	HandleHexString
	// HandleGraphicString lexes n'...' and g'...' graphic string literals,
	// and gx'...' unicode hex string literals.
	HandleGraphicString
	// HandleUnicodeString lexes u&'...' unicode-escaped string literals
	// (\xxxx and \+xxxxxx escape forms) and ux'...' hex literals.
	HandleUnicodeString
	// HandleOperatorChar emits the character itself as a single-character
	// operator token (brackets, braces).
	HandleOperatorChar
)

// Dialect parameterizes the tokenizer engine without altering its control
// flow: keyword and identifier character sets, comment style toggles, and
// optional extra dispatch entries. Dialects are plain data values; all
// fields may be adjusted between Parse calls (the dispatch table is rebuilt
// at each Parse entry).
type Dialect struct {
	// Name identifies the dialect (e.g. "sql92", "db2luw").
	Name string

	// Keywords is the set of reserved words, uppercase. Unquoted
	// identifiers matching an entry (case-insensitively) lex as KEYWORD.
	Keywords map[string]struct{}

	// IdentChars is the set of characters legal in an unquoted identifier.
	// Digits included here are still never accepted as the first character.
	IdentChars string

	// Comment style toggles.
	SQLComments bool // -- to end of line
	CComments   bool // /* ... */
	CPPComments bool // // to end of line

	// MultilineStrings permits string literals to span lines.
	MultilineStrings bool

	// Extra maps additional characters to engine handlers, layered over the
	// base dispatch table after all base entries.
	Extra map[rune]ExtraHandler

	// DotDotOperator lexes ".." as a single range/qualifier operator
	// distinct from two consecutive "." operators (DB2 method qualifiers).
	DotDotOperator bool

	// DecimalSpecials reclassifies the bare identifiers INFINITY, NAN and
	// SNAN as NUMBER tokens with the corresponding special decimal value.
	DecimalSpecials bool

	// TerminatorDirectives recognizes DB2 CLP style "--#SET TERMINATOR c"
	// comments and switches the statement terminator mid-parse.
	TerminatorDirectives bool
}

const ansiIdentChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"0123456789_"

// NewDialect returns a dialect with the engine defaults: ANSI identifier
// characters, SQL-style comments, multi-line strings, and no keywords.
// Dialect profiles build on this base.
func NewDialect() *Dialect {
	return &Dialect{
		Keywords:         make(map[string]struct{}),
		IdentChars:       ansiIdentChars,
		SQLComments:      true,
		MultilineStrings: true,
	}
}

// AddKeywords inserts the given words (uppercase-folded) into the keyword
// set and returns the dialect for chaining.
func (d *Dialect) AddKeywords(words ...string) *Dialect {
	if d.Keywords == nil {
		d.Keywords = make(map[string]struct{}, len(words))
	}
	for _, w := range words {
		d.Keywords[strings.ToUpper(w)] = struct{}{}
	}
	return d
}

// IsKeyword reports whether the uppercase word is reserved in this dialect.
func (d *Dialect) IsKeyword(word string) bool {
	_, ok := d.Keywords[word]
	return ok
}
