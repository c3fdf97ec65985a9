// Package cli provides the command-line interface for scoolite.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/otaviopace/scoolite/internal/cli/commands"
	"github.com/otaviopace/scoolite/internal/cli/config"
)

var cfgFile string

// Version information (set at build time).
var Version = "0.1.0"

// NewRootCmd creates and returns the root command. Running the bare binary
// starts the interactive session.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "scoolite",
		Short: "scoolite - an in-memory table interpreter",
		Long: `scoolite is a minimal interactive data-manipulation interpreter.

It accepts single-line commands (insert, select, .exit) and applies them
against a transient in-memory table. Nothing is persisted: the table lives
exactly as long as the session.`,
		Version: Version,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.LoadConfig(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			if cfg.Verbose {
				if configFile := config.GetConfigFileUsed(); configFile != "" {
					fmt.Fprintf(os.Stderr, "Using config file: %s\n", configFile)
				}
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return commands.RunREPL(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
An in-memory table interpreter
`)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./scoolite.yaml)")
	rootCmd.PersistentFlags().String("prompt", "", "REPL prompt")
	rootCmd.PersistentFlags().String("history-file", "", "Path to the REPL history file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(commands.NewReplCommand())
	rootCmd.AddCommand(commands.NewExecCommand())
	rootCmd.AddCommand(commands.NewVersionCommand(Version))

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
