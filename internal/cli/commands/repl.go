// Package commands implements the scoolite CLI commands.
package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/otaviopace/scoolite/internal/cli/config"
	"github.com/otaviopace/scoolite/internal/core"
)

// NewReplCommand creates the repl command.
func NewReplCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start the interactive session",
		Long: `Start an interactive session against a fresh in-memory table.

The table lives for the duration of the session; nothing is persisted.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return RunREPL(cmd)
		},
	}
}

// RunREPL drives the interactive loop: read a line, run it through the
// interpreter, print the result, repeat until .exit or EOF. It is also the
// behavior of the bare scoolite binary.
func RunREPL(cmd *cobra.Command) error {
	cfg := config.GetCurrentConfig()
	if cfg == nil {
		cfg = &config.Config{
			Prompt:      config.DefaultPrompt,
			HistoryFile: config.DefaultHistoryFile,
		}
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.Prompt,
		HistoryFile:     cfg.HistoryFile,
		AutoComplete:    newCommandCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".exit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	if cfg.Verbose {
		slog.Info("starting session", "history_file", cfg.HistoryFile)
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "scoolite - an in-memory table interpreter")
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Type .exit to quit")
	_, _ = fmt.Fprintln(cmd.OutOrStdout())

	table := core.NewTable()

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		res, err := core.Run(table, line)
		if err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			continue
		}
		if res.Terminate {
			break
		}
		_, _ = fmt.Fprint(cmd.OutOrStdout(), res.Output)
	}

	return nil
}

// newCommandCompleter creates a readline completer for the command surface.
func newCommandCompleter() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem("insert"),
		readline.PcItem("select"),
		readline.PcItem(".exit"),
	)
}
