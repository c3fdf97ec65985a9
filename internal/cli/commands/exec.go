package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/otaviopace/scoolite/internal/core"
)

// ExecOptions holds flags for the exec command.
type ExecOptions struct {
	Summary bool
}

// lineResult records the outcome of one executed script line for the
// summary table.
type lineResult struct {
	line    int
	command string
	err     error
}

// NewExecCommand creates the exec command, which runs commands from a
// script file (or stdin) against a fresh in-memory table.
func NewExecCommand() *cobra.Command {
	opts := &ExecOptions{}

	cmd := &cobra.Command{
		Use:   "exec <file>",
		Short: "Run commands from a script file",
		Long: `Run commands from a script file, one per line, against a fresh
in-memory table. Use "-" to read from stdin. Blank lines are skipped.

A .exit line stops the script early.`,
		Example: `  scoolite exec seed.txt
  cat seed.txt | scoolite exec -
  scoolite exec seed.txt --summary`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExec(cmd, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Summary, "summary", false, "Print a per-line status table after the run")

	return cmd
}

func runExec(cmd *cobra.Command, path string, opts *ExecOptions) error {
	var in io.Reader
	if path == "-" {
		in = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open script: %w", err)
		}
		defer func() { _ = f.Close() }()
		in = f
	}

	tbl := core.NewTable()

	var results []lineResult
	failed := false

	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		res, err := core.Run(tbl, line)
		results = append(results, lineResult{line: lineNo, command: line, err: err})
		if err != nil {
			failed = true
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "line %d: Error: %v\n", lineNo, err)
			continue
		}
		if res.Terminate {
			break
		}
		_, _ = fmt.Fprint(cmd.OutOrStdout(), res.Output)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read script: %w", err)
	}

	if opts.Summary {
		renderSummary(cmd.OutOrStdout(), results)
	}

	if failed {
		return fmt.Errorf("script failed: %d of %d lines returned errors", countErrors(results), len(results))
	}
	return nil
}

func countErrors(results []lineResult) int {
	n := 0
	for _, r := range results {
		if r.err != nil {
			n++
		}
	}
	return n
}

func renderSummary(w io.Writer, results []lineResult) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"Line", "Command", "Status"})
	for _, r := range results {
		status := "ok"
		if r.err != nil {
			status = r.err.Error()
		}
		t.AppendRow(table.Row{r.line, r.command, status})
	}

	t.Render()
	_, _ = fmt.Fprintf(w, "(%d commands, %d errors)\n", len(results), countErrors(results))
}
