package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	ResetConfig()

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultPrompt, cfg.Prompt)
	assert.Equal(t, DefaultHistoryFile, cfg.HistoryFile)
	assert.False(t, cfg.Verbose)
}

func TestLoadConfigFromFile(t *testing.T) {
	ResetConfig()

	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "scoolite.yaml")
	content := `prompt: "db> "
history_file: /tmp/history
verbose: true
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0644))

	cfg, err := LoadConfig(cfgPath, nil)
	require.NoError(t, err)

	assert.Equal(t, "db> ", cfg.Prompt)
	assert.Equal(t, "/tmp/history", cfg.HistoryFile)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, cfgPath, GetConfigFileUsed())
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	ResetConfig()

	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "scoolite.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("prompt: \"file> \"\n"), 0644))

	t.Setenv("SCOOLITE_PROMPT", "env> ")

	cfg, err := LoadConfig(cfgPath, nil)
	require.NoError(t, err)

	assert.Equal(t, "env> ", cfg.Prompt)
}

func TestLoadConfigFlagsOverrideEnv(t *testing.T) {
	ResetConfig()

	t.Setenv("SCOOLITE_PROMPT", "env> ")
	t.Setenv("SCOOLITE_HISTORY_FILE", "/env/history")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("prompt", "", "REPL prompt")
	flags.String("history-file", "", "history file path")
	require.NoError(t, flags.Parse([]string{"--prompt", "flag> "}))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)

	// Changed flag wins; untouched flag falls through to the env value.
	assert.Equal(t, "flag> ", cfg.Prompt)
	assert.Equal(t, "/env/history", cfg.HistoryFile)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	ResetConfig()

	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}
