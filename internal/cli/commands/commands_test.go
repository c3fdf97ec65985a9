// Package commands_test provides tests for CLI command creation.
package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewReplCommand(t *testing.T) {
	cmd := NewReplCommand()

	assert.Equal(t, "repl", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
}

func TestNewExecCommand(t *testing.T) {
	cmd := NewExecCommand()

	assert.Equal(t, "exec <file>", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")
	assert.NotNil(t, cmd.Flags().Lookup("summary"), "flag %q should exist", "summary")
}

func TestCommandCompleterCoversCommandSurface(t *testing.T) {
	completer := newCommandCompleter()

	for _, prefix := range []string{"insert", "select", ".exit"} {
		candidates, _ := completer.Do([]rune(prefix[:3]), 3)
		assert.NotEmpty(t, candidates, "completer should suggest something for %q", prefix[:3])
	}
}
