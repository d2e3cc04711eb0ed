// Package commands implements the sqlscan subcommands.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbsuite/sqlscan/internal/config"
	"github.com/dbsuite/sqlscan/pkg/dialect"
	"github.com/dbsuite/sqlscan/pkg/tokenizer"
)

// configKey is used to store config in context.
type configKey struct{}

// WithConfig returns a context carrying the configuration.
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// GetConfig retrieves the config from the command context.
func GetConfig(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return c
	}
	// Return default config if none in context
	cfg := config.Defaults()
	return &cfg
}

// newTokenizer builds a tokenizer from the configured dialect, honoring a
// per-command --dialect override when the flag was changed.
func newTokenizer(cmd *cobra.Command) (*tokenizer.Tokenizer, error) {
	cfg := GetConfig(cmd.Context())
	d, err := dialect.Lookup(cfg.Dialect)
	if err != nil {
		return nil, err
	}
	return tokenizer.New(d), nil
}

// readInput returns the SQL to process: the named file, or stdin when no
// argument (or "-") is given.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	return string(data), nil
}
