package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
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

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent-dir-marker"), nil)
	// An explicit path that does not exist is an error; use none instead.
	require.Error(t, err)

	chdir(t, t.TempDir())
	cfg, err = Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "db2luw", cfg.Dialect)
	assert.Equal(t, ";", cfg.Terminator)
	assert.False(t, cfg.Verbose)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("dialect: sql99\nterminator: \"@\"\n"), 0o644))

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "sql99", cfg.Dialect)
	assert.Equal(t, "@", cfg.Terminator)
}

func TestLoadFindsFileInWorkingDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileNameAlt), []byte("dialect: sql92\n"), 0o644))
	chdir(t, dir)

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "sql92", cfg.Dialect)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("dialect: sql99\n"), 0o644))
	t.Setenv("SQLSCAN_DIALECT", "db2zos")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "db2zos", cfg.Dialect)
}

func TestFlagsOverrideEverything(t *testing.T) {
	t.Setenv("SQLSCAN_TERMINATOR", "@")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("terminator", "", "")
	flags.Bool("verbose", false, "")
	require.NoError(t, flags.Set("terminator", "#"))
	require.NoError(t, flags.Set("verbose", "true"))

	chdir(t, t.TempDir())
	cfg, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, "#", cfg.Terminator)
	assert.True(t, cfg.Verbose)
}
