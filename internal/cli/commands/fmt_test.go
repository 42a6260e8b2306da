package commands

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dicta-lang/dicta/internal/cli/output"
	"github.com/dicta-lang/dicta/internal/testutil"
)

func TestNewFmtCommand(t *testing.T) {
	cmd := NewFmtCommand()

	assert.Equal(t, "fmt [file]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")
	assert.NotNil(t, cmd.Flags().Lookup("write"), "--write flag should exist")
}

func TestFmtPrintsCanonicalForm(t *testing.T) {
	cmd := NewFmtCommand()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetIn(strings.NewReader("begin   NAME:=q(John);AGE:=25;end"))
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "begin\n    NAME := q(John);\n    AGE := 25;\nend\n", out.String())
}

func TestFmtWriteRewritesFile(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteSource(t, dir, "messy.dicta", "HOST is q(db)\nbegin URL:=HOST;end")

	cmd := NewFmtCommand()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"-w", path})

	require.NoError(t, cmd.Execute())
	assert.Empty(t, out.String(), "in-place formatting prints nothing")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "HOST is q(db)\n\nbegin\n    URL := HOST;\nend\n", string(data))
}

func TestFmtWriteIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteSource(t, dir, "doc.dicta", "begin A:=1; end")

	for i := 0; i < 2; i++ {
		cmd := NewFmtCommand()
		cmd.SetOut(new(bytes.Buffer))
		cmd.SetErr(new(bytes.Buffer))
		cmd.SetArgs([]string{"--write", path})
		require.NoError(t, cmd.Execute(), "pass %d", i)
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "begin\n    A := 1;\nend\n", string(data))
}

func TestFmtWriteRequiresFile(t *testing.T) {
	cmd := NewFmtCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetIn(strings.NewReader("begin end"))
	cmd.SetArgs([]string{"--write"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--write requires a file argument")
}

func TestFmtDoesNotEvaluate(t *testing.T) {
	// An undefined constant is a compile error but not a formatting
	// error: fmt works on tokens alone.
	cmd := NewFmtCommand()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetIn(strings.NewReader("begin K:=MISSING;end"))
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "begin\n    K := MISSING;\nend\n", out.String())
}

func TestFmtRejectsUnknownCharacters(t *testing.T) {
	cmd := NewFmtCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetIn(strings.NewReader("begin @ end"))
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(output.FormatError(err), "Syntax error: "),
		"lex failures should classify as syntax errors, got %q", output.FormatError(err))
}

func TestFmtIndentFromEnv(t *testing.T) {
	require.NoError(t, os.Setenv("DICTA_INDENT", "2"))
	defer func() { _ = os.Unsetenv("DICTA_INDENT") }()

	cmd := NewFmtCommand()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetIn(strings.NewReader("begin A:=1; end"))
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "begin\n  A := 1;\nend\n", out.String())
}
