package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/dbsuite/sqlscan/pkg/highlight"
)

// NewHighlightCommand creates the highlight command.
func NewHighlightCommand() *cobra.Command {
	var (
		format      string
		lineNumbers bool
		watch       bool
	)
	cmd := &cobra.Command{
		Use:   "highlight [file]",
		Short: "Syntax-highlight SQL",
		Long: `Tokenize SQL and render it with syntax highlighting. The output
format is auto-detected: ANSI color on a terminal, HTML spans otherwise.
Lexical errors are highlighted inline and reported on stderr; rendering
never aborts. Reads from stdin when no file is given.`,
		Example: `  # Highlight to the terminal
  sqlscan highlight schema.sql

  # Emit HTML spans for embedding in documentation
  sqlscan highlight --format html schema.sql > schema.html

  # Re-render whenever the file changes
  sqlscan highlight --watch schema.sql`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if watch && (len(args) == 0 || args[0] == "-") {
				return fmt.Errorf("--watch requires a file argument")
			}
			tk, err := newTokenizer(cmd)
			if err != nil {
				return err
			}
			formatter, err := pickFormatter(format, lineNumbers)
			if err != nil {
				return err
			}
			h := highlight.New(tk, formatter)
			render := func() error {
				sql, err := readInput(cmd, args)
				if err != nil {
					return err
				}
				cfg := GetConfig(cmd.Context())
				fragments, err := h.Parse(sql, cfg.Terminator, lineNumbers)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				for _, frag := range fragments {
					fmt.Fprint(out, frag)
				}
				fmt.Fprintln(out)
				return nil
			}
			if err := render(); err != nil {
				return err
			}
			if !watch {
				return nil
			}
			return watchFile(cmd, args[0], render)
		},
	}
	cmd.Flags().StringVar(&format, "format", "auto", "Output format (auto|ansi|html)")
	cmd.Flags().BoolVar(&lineNumbers, "line-numbers", false, "Prefix each line with its number")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Re-render when the file changes")
	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "ansi", "html"}, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

// pickFormatter resolves the --format flag, auto-detecting ANSI support
// from the output environment.
func pickFormatter(format string, lineNumbers bool) (highlight.Formatter, error) {
	switch format {
	case "html":
		return highlight.NewHTML(), nil
	case "ansi":
		term := highlight.NewTerm()
		term.LineNumbers = lineNumbers
		return term, nil
	case "auto", "":
		if termenv.NewOutput(os.Stdout).EnvNoColor() || termenv.ColorProfile() == termenv.Ascii {
			return highlight.Plain{}, nil
		}
		term := highlight.NewTerm()
		term.LineNumbers = lineNumbers
		return term, nil
	default:
		return nil, fmt.Errorf("unknown format %q (want auto, ansi or html)", format)
	}
}

// watchFile re-runs render whenever path is written. Editors that replace
// the file on save (rename+create) are handled by watching the directory.
func watchFile(cmd *cobra.Command, path string, render func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return err
	}
	slog.Info("watching for changes", "file", abs)

	ctx := cmd.Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != abs || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := render(); err != nil {
				slog.Error("render failed", "error", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("watch error", "error", err)
		}
	}
}
