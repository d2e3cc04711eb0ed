// Package dialect provides the tokenizer dialect profiles: ANSI SQL-92,
// SQL-99 and SQL-2003, plus IBM DB2 for z/OS and DB2 for Linux/UNIX/Windows.
//
// Profiles are plain data values built on the engine defaults; every call
// to a profile constructor returns a fresh value that the caller may tune
// (keyword set, identifier characters, comment toggles) without affecting
// other tokenizers. A name-keyed registry lets configuration and CLI
// surfaces select a profile by name.
package dialect

import (
	"fmt"
	"sort"
	"sync"

	"github.com/dbsuite/sqlscan/pkg/tokenizer"
)

// db2IdentChars extends the ANSI identifier characters with the extra
// characters DB2 permits in ordinary identifiers.
const db2IdentChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"0123456789_$#@"

// SQL92 returns the ANSI SQL-92 profile.
func SQL92() *tokenizer.Dialect {
	d := tokenizer.NewDialect()
	d.Name = "sql92"
	d.AddKeywords(sql92Keywords...)
	return d
}

// SQL99 returns the ANSI SQL-99 profile.
func SQL99() *tokenizer.Dialect {
	d := SQL92()
	d.Name = "sql99"
	d.AddKeywords(sql99Keywords...)
	return d
}

// SQL2003 returns the ANSI SQL-2003 profile.
func SQL2003() *tokenizer.Dialect {
	d := SQL99()
	d.Name = "sql2003"
	d.AddKeywords(sql2003Keywords...)
	return d
}

// DB2ZOS returns the IBM DB2 for z/OS profile: DB2 identifier characters,
// NOT-negation operators and hex/graphic string literals.
func DB2ZOS() *tokenizer.Dialect {
	d := tokenizer.NewDialect()
	d.Name = "db2zos"
	d.IdentChars = db2IdentChars
	d.AddKeywords(db2zosKeywords...)
	d.Extra = map[rune]tokenizer.ExtraHandler{
		'!':    tokenizer.HandleNot,
		'^':    tokenizer.HandleNot,
		'\xac': tokenizer.HandleNot, // the EBCDIC "not" hook sign
		'x':    tokenizer.HandleHexString,
		'X':    tokenizer.HandleHexString,
		'n':    tokenizer.HandleGraphicString,
		'N':    tokenizer.HandleGraphicString,
		'g':    tokenizer.HandleGraphicString,
		'G':    tokenizer.HandleGraphicString,
	}
	return d
}

// DB2LUW returns the IBM DB2 for Linux/UNIX/Windows profile. On top of the
// z/OS profile it enables C-style comments (added in DB2 UDB v8 FP9),
// bracket/brace operators, unicode-escaped string literals, the ".." method
// qualifier operator, the INFINITY/NAN/SNAN decimal specials, and the CLP
// SET TERMINATOR directive.
func DB2LUW() *tokenizer.Dialect {
	d := DB2ZOS()
	d.Name = "db2luw"
	d.AddKeywords(db2luwKeywords...)
	d.CComments = true
	d.Extra['['] = tokenizer.HandleOperatorChar
	d.Extra[']'] = tokenizer.HandleOperatorChar
	d.Extra['{'] = tokenizer.HandleOperatorChar
	d.Extra['}'] = tokenizer.HandleOperatorChar
	d.Extra['u'] = tokenizer.HandleUnicodeString
	d.Extra['U'] = tokenizer.HandleUnicodeString
	d.DotDotOperator = true
	d.DecimalSpecials = true
	d.TerminatorDirectives = true
	return d
}

var (
	registryMu sync.RWMutex
	registry   = map[string]func() *tokenizer.Dialect{}
)

func init() {
	Register("sql92", SQL92)
	Register("sql99", SQL99)
	Register("sql2003", SQL2003)
	Register("db2zos", DB2ZOS)
	Register("db2luw", DB2LUW)
}

// Register adds a named profile constructor to the registry, replacing any
// existing entry with the same name.
func Register(name string, ctor func() *tokenizer.Dialect) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = ctor
}

// Lookup returns a fresh dialect value for the given registered name.
func Lookup(name string) (*tokenizer.Dialect, error) {
	registryMu.RLock()
	ctor, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown dialect %q (known: %v)", name, Names())
	}
	return ctor(), nil
}

// Names returns the registered dialect names, sorted.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
