package cli

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestNewRootCmd(t *testing.T) {
	cmd := NewRootCmd()
	assert.Equal(t, "sqlscan", cmd.Use)
	assert.NotEmpty(t, cmd.Long)

	for _, flag := range []string{"config", "dialect", "terminator", "verbose"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "flag %q should exist", flag)
	}

	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, want := range []string{"tokens", "split", "highlight", "dialects", "version", "completion"} {
		assert.True(t, names[want], "subcommand %q should be registered", want)
	}
}

func TestRootRunsVersion(t *testing.T) {
	chdir(t, t.TempDir())
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "sqlscan v")
}

func TestRootAppliesDialectFlag(t *testing.T) {
	chdir(t, t.TempDir())
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(bytes.NewReader([]byte("INFINITY")))
	cmd.SetArgs([]string{"tokens", "--json", "--dialect", "db2zos"})
	require.NoError(t, cmd.Execute())
	// In db2zos INFINITY is a plain identifier, not a decimal special.
	assert.Contains(t, out.String(), `"IDENTIFIER"`)
}

func TestRootRejectsUnknownDialect(t *testing.T) {
	chdir(t, t.TempDir())
	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(bytes.NewReader([]byte("SELECT 1;")))
	cmd.SetArgs([]string{"tokens", "--dialect", "oracle"})
	require.Error(t, cmd.Execute())
}
