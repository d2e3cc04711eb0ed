package commands

import (
	"encoding/json"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/dbsuite/sqlscan/pkg/token"
)

// NewTokensCommand creates the tokens command.
func NewTokensCommand() *cobra.Command {
	var (
		jsonOut   bool
		lineSplit bool
	)
	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Tokenize SQL and dump the token stream",
		Long: `Tokenize a SQL script and print each token with its kind, value,
position and verbatim source. Reads from stdin when no file is given.`,
		Example: `  # Dump tokens from a script
  sqlscan tokens schema.sql

  # Tokenize from stdin as JSON
  echo "SELECT 1;" | sqlscan tokens --json

  # One row per source line fragment
  sqlscan tokens --line-split schema.sql`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sql, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			tk, err := newTokenizer(cmd)
			if err != nil {
				return err
			}
			cfg := GetConfig(cmd.Context())
			tokens, err := tk.Parse(sql, cfg.Terminator, lineSplit)
			if err != nil {
				return err
			}
			if jsonOut {
				return tokensJSON(cmd, tokens)
			}
			return tokensTable(cmd, tokens)
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output tokens as JSON")
	cmd.Flags().BoolVar(&lineSplit, "line-split", false, "Split tokens at line breaks")
	return cmd
}

// tokenRecord is the JSON shape of one token.
type tokenRecord struct {
	Kind   string `json:"kind"`
	Value  any    `json:"value"`
	Source string `json:"source"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

func tokensJSON(cmd *cobra.Command, tokens []token.Token) error {
	records := make([]tokenRecord, len(tokens))
	for i, tok := range tokens {
		value := tok.Value()
		if d, ok := value.(fmt.Stringer); ok {
			value = d.String()
		}
		records[i] = tokenRecord{
			Kind:   tok.Kind.String(),
			Value:  value,
			Source: tok.Source,
			Line:   tok.Line,
			Column: tok.Column,
		}
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

func tokensTable(cmd *cobra.Command, tokens []token.Token) error {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Kind", "Value", "Line", "Col", "Source"})
	for i, tok := range tokens {
		value := ""
		if v := tok.Value(); v != nil {
			value = fmt.Sprintf("%v", v)
		}
		t.AppendRow(table.Row{i, tok.Kind.String(), value, tok.Line, tok.Column, fmt.Sprintf("%q", tok.Source)})
	}
	t.Render()
	return nil
}
