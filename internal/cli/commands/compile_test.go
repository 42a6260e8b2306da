package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dicta-lang/dicta/internal/cli/output"
	"github.com/dicta-lang/dicta/internal/testutil"
)

func TestNewCompileCommand(t *testing.T) {
	cmd := NewCompileCommand()

	assert.Equal(t, "compile [file]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")

	for _, flag := range []string{"output", "watch", "debounce"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestCompileStdinToStdout(t *testing.T) {
	src := `GREETING is q(hello)

begin
    MESSAGE := GREETING + q( world);
    COUNT := 3;
end
`
	want := `{
    "MESSAGE": "hello world",
    "COUNT": 3
}
`

	cmd := NewCompileCommand()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetIn(strings.NewReader(src))
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, want, out.String())
}

func TestCompileDashReadsStdin(t *testing.T) {
	cmd := NewCompileCommand()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetIn(strings.NewReader("begin A := 1; end"))
	cmd.SetArgs([]string{"-"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "{\n    \"A\": 1\n}\n", out.String())
}

func TestCompileFromFile(t *testing.T) {
	path := testutil.TempSource(t, `begin
    NAME := q(svc);
    LIMITS := begin
        RETRIES := 3;
    end;
end
`)

	cmd := NewCompileCommand()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{path})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, `{
    "NAME": "svc",
    "LIMITS": {
        "RETRIES": 3
    }
}
`, out.String())
}

func TestCompileWritesOutputFile(t *testing.T) {
	dir := t.TempDir()
	src := testutil.WriteSource(t, dir, "app.dicta", "begin PORT := 8080; end")
	outPath := filepath.Join(dir, "app.json")

	cmd := NewCompileCommand()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{src, "-o", outPath})

	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	// File output carries no trailing newline; stdout stays empty.
	assert.Equal(t, "{\n    \"PORT\": 8080\n}", string(data))
	assert.Empty(t, out.String())
}

func TestCompileFailureWritesNoOutputFile(t *testing.T) {
	dir := t.TempDir()
	src := testutil.WriteSource(t, dir, "bad.dicta", "begin PORT := ; end")
	outPath := filepath.Join(dir, "bad.json")

	cmd := NewCompileCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{src, "-o", outPath})

	require.Error(t, cmd.Execute())

	_, err := os.Stat(outPath)
	assert.True(t, os.IsNotExist(err), "failed compile must not create the output file")
}

func TestCompileSyntaxError(t *testing.T) {
	cmd := NewCompileCommand()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetIn(strings.NewReader("begin @ end"))
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, "Syntax error: unexpected character '@' at line 1, column 7", output.FormatError(err))
	assert.Empty(t, out.String(), "no JSON on a failed compile")
}

func TestCompileMissingFile(t *testing.T) {
	cmd := NewCompileCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "absent.dicta")})

	err := cmd.Execute()
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(output.FormatError(err), "File operation error: "),
		"missing input should classify as a file operation error, got %q", output.FormatError(err))
}

func TestCompileIndentFromEnv(t *testing.T) {
	require.NoError(t, os.Setenv("DICTA_INDENT", "2"))
	defer func() { _ = os.Unsetenv("DICTA_INDENT") }()

	cmd := NewCompileCommand()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetIn(strings.NewReader("begin A := 1; end"))
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "{\n  \"A\": 1\n}\n", out.String())
}

func TestCompileKeepsHTMLVerbatim(t *testing.T) {
	cmd := NewCompileCommand()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetIn(strings.NewReader("begin TAG := q(<b> & more); end"))
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "{\n    \"TAG\": \"<b> & more\"\n}\n", out.String())
}

func TestCompileEmptyDictionary(t *testing.T) {
	cmd := NewCompileCommand()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetIn(strings.NewReader("begin end"))
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "{}\n", out.String())
}
