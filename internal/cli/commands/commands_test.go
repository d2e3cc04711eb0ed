package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbsuite/sqlscan/internal/config"
)

// run executes cmd with the default config in context, feeding it stdin and
// capturing stdout.
func run(t *testing.T, cmd *cobra.Command, stdin string, args ...string) string {
	t.Helper()
	cfg := config.Defaults()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	require.NoError(t, cmd.ExecuteContext(WithConfig(context.Background(), &cfg)))
	return out.String()
}

func TestNewTokensCommand(t *testing.T) {
	cmd := NewTokensCommand()
	assert.Equal(t, "tokens [file]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")

	for _, flag := range []string{"json", "line-split"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestTokensJSON(t *testing.T) {
	out := run(t, NewTokensCommand(), "SELECT 1;", "--json")

	var records []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.NotEmpty(t, records)
	assert.Equal(t, "KEYWORD", records[0]["kind"])
	assert.Equal(t, "SELECT", records[0]["value"])
	assert.Equal(t, "EOF", records[len(records)-1]["kind"])
}

func TestTokensTable(t *testing.T) {
	out := run(t, NewTokensCommand(), "SELECT 1;")
	assert.Contains(t, out, "KEYWORD")
	assert.Contains(t, out, "TERMINATOR")
}

func TestNewSplitCommand(t *testing.T) {
	cmd := NewSplitCommand()
	assert.Equal(t, "split [file]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotNil(t, cmd.Flags().Lookup("json"), "flag json should exist")
}

func TestSplitJSON(t *testing.T) {
	out := run(t, NewSplitCommand(), "SELECT 1;\nSELECT 2;", "--json")

	var records []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 2)
	assert.Equal(t, float64(2), records[1]["line"])
}

func TestNewHighlightCommand(t *testing.T) {
	cmd := NewHighlightCommand()
	assert.Equal(t, "highlight [file]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")

	for _, flag := range []string{"format", "line-numbers", "watch"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestHighlightHTML(t *testing.T) {
	out := run(t, NewHighlightCommand(), "SELECT 1;", "--format", "html")
	assert.Contains(t, out, `<span class="sql-keyword">SELECT</span>`)
}

func TestHighlightUnknownFormat(t *testing.T) {
	cmd := NewHighlightCommand()
	cmd.SetIn(strings.NewReader("SELECT 1;"))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--format", "rtf"})
	cfg := config.Defaults()
	err := cmd.ExecuteContext(WithConfig(context.Background(), &cfg))
	require.Error(t, err)
}

func TestHighlightWatchRequiresFile(t *testing.T) {
	cmd := NewHighlightCommand()
	cmd.SetIn(strings.NewReader(""))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--watch"})
	cfg := config.Defaults()
	err := cmd.ExecuteContext(WithConfig(context.Background(), &cfg))
	require.Error(t, err)
}

func TestNewDialectsCommand(t *testing.T) {
	out := run(t, NewDialectsCommand(), "")
	for _, name := range []string{"sql92", "sql99", "sql2003", "db2zos", "db2luw"} {
		assert.Contains(t, out, name)
	}
}

func TestNewVersionCommand(t *testing.T) {
	out := run(t, NewVersionCommand("1.2.3"), "")
	assert.Contains(t, out, "sqlscan v1.2.3")
}

func TestGetConfigFallsBackToDefaults(t *testing.T) {
	cfg := GetConfig(context.Background())
	require.NotNil(t, cfg)
	assert.Equal(t, "db2luw", cfg.Dialect)
}
