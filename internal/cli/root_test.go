package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dicta-lang/dicta/internal/cli/config"
)

func TestNewRootCmdMetadata(t *testing.T) {
	cmd := NewRootCmd()

	assert.Equal(t, "dicta", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Long, "Long should not be empty")

	for _, flag := range []string{"config", "format", "indent", "verbose"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "persistent flag %q should exist", flag)
	}

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	for _, want := range []string{"compile", "check", "fmt", "tokens", "repl", "version", "completion"} {
		assert.Contains(t, names, want, "subcommand %q should be registered", want)
	}
}

func TestRootVersionFlag(t *testing.T) {
	cmd := NewRootCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "dicta 0.1.0\nDeclarative dictionary compiler\n", out.String())
}

func TestRootUnknownCommand(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"frobnicate"})

	assert.Error(t, cmd.Execute())
}

func TestRootHelpListsCommands(t *testing.T) {
	cmd := NewRootCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--help"})

	require.NoError(t, cmd.Execute())
	for _, want := range []string{"compile", "check", "fmt", "tokens", "repl"} {
		assert.Contains(t, out.String(), want)
	}
}

func TestRootCompileWiresFlagsIntoConfig(t *testing.T) {
	defer config.ResetConfig()

	cmd := NewRootCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetIn(strings.NewReader("begin A := 1; end"))
	cmd.SetArgs([]string{"compile", "--indent", "2"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "{\n  \"A\": 1\n}\n", out.String())
}

func TestRootRejectsInvalidFormat(t *testing.T) {
	defer config.ResetConfig()

	cmd := NewRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetIn(strings.NewReader("begin end"))
	cmd.SetArgs([]string{"compile", "--format", "bogus"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestRootCompileSyntaxErrorPropagates(t *testing.T) {
	defer config.ResetConfig()

	cmd := NewRootCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetIn(strings.NewReader("begin @ end"))
	cmd.SetArgs([]string{"compile"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected character '@'")
	assert.Empty(t, out.String())
}

func TestGetConfigFallback(t *testing.T) {
	cfg := GetConfig(context.Background())
	require.NotNil(t, cfg)
	assert.Equal(t, config.DefaultFormat, cfg.Format)
	assert.Equal(t, config.DefaultIndent, cfg.Indent)
}
