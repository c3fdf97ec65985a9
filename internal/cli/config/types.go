// Package config provides configuration management for the scoolite CLI.
//
// Configuration is layered: defaults, then an optional scoolite.yaml file,
// then SCOOLITE_-prefixed environment variables, then command-line flags.
package config

// Default configuration values.
const (
	DefaultPrompt      = "scoolite> "
	DefaultHistoryFile = ".scoolite_history"
)

// Config holds all CLI configuration options.
type Config struct {
	Prompt      string `koanf:"prompt"`
	HistoryFile string `koanf:"history_file"`
	Verbose     bool   `koanf:"verbose"`
}
