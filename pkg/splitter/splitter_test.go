package splitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbsuite/sqlscan/pkg/dialect"
	"github.com/dbsuite/sqlscan/pkg/token"
	"github.com/dbsuite/sqlscan/pkg/tokenizer"
)

func split(t *testing.T, sql string) []Statement {
	t.Helper()
	stmts, err := Split(tokenizer.New(dialect.DB2LUW()), sql, ";")
	require.NoError(t, err)
	return stmts
}

func TestSplitBasic(t *testing.T) {
	stmts := split(t, "SELECT 1;\nSELECT 2;\n")
	require.Len(t, stmts, 2)

	assert.Equal(t, "SELECT 1;", stmts[0].Source)
	assert.Equal(t, 1, stmts[0].Line)
	assert.Equal(t, 1, stmts[0].Column)

	// The gap whitespace travels with the following statement, but its
	// position is that of the first significant token.
	assert.Equal(t, "\nSELECT 2;", stmts[1].Source)
	assert.Equal(t, 2, stmts[1].Line)
	assert.Equal(t, 1, stmts[1].Column)

	assert.Equal(t, []string{"SELECT 1;", "SELECT 2;"}, Sources(stmts))
}

func TestSplitSourcesConcatenate(t *testing.T) {
	sql := "CREATE TABLE t (a INT);\n\n-- fill it\nINSERT INTO t VALUES (1);"
	stmts := split(t, sql)
	require.Len(t, stmts, 2)
	var joined string
	for _, s := range stmts {
		joined += s.Source
	}
	assert.Equal(t, sql, joined)
}

func TestSplitIgnoresTerminatorsInsideTokens(t *testing.T) {
	stmts := split(t, "INSERT INTO t VALUES ('a;b'); -- tail; comment\n")
	require.Len(t, stmts, 1)
	assert.Equal(t, "INSERT INTO t VALUES ('a;b');", Sources(stmts)[0])
}

func TestSplitDropsEmptyStatements(t *testing.T) {
	stmts := split(t, " ; -- just a comment\n ; \n")
	assert.Empty(t, stmts)
}

func TestSplitWithoutTrailingTerminator(t *testing.T) {
	stmts := split(t, "SELECT 1")
	require.Len(t, stmts, 1)
	assert.Equal(t, "SELECT 1", stmts[0].Source)
}

func TestSplitHonorsTerminatorDirective(t *testing.T) {
	sql := "SELECT 1;\n--#SET TERMINATOR @\nBEGIN\n  SELECT 2;\nEND@\n"
	stmts := split(t, sql)
	// The semicolon keeps terminating after the directive (it has its own
	// dispatch entry), so the compound body splits at it too; the directive
	// adds @ as a terminator rather than replacing ;.
	require.Len(t, stmts, 3)
	assert.Equal(t, "SELECT 1;", Sources(stmts)[0])
	last := stmts[len(stmts)-1]
	lastTok := last.Tokens[len(last.Tokens)-1]
	assert.Equal(t, token.TERMINATOR, lastTok.Kind)
	assert.Equal(t, "@", lastTok.Source)
}

func TestStatementErrors(t *testing.T) {
	stmts := split(t, "SELECT 'unterminated")
	require.Len(t, stmts, 1)
	errs := stmts[0].Errors()
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Text, "unterminated string")
}

func TestSplitEmptyTerminatorRejected(t *testing.T) {
	_, err := Split(tokenizer.New(dialect.SQL92()), "SELECT 1", "")
	require.Error(t, err)
}
