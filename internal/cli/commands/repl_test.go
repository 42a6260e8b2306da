package commands

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dicta-lang/dicta/pkg/core"
	"github.com/dicta-lang/dicta/pkg/parser"
)

// replTestCmd builds a throwaway command with captured writers so the
// dot-command handlers can be exercised without a terminal.
func replTestCmd() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	cmd := &cobra.Command{Use: "repl"}
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	return cmd, out, errOut
}

func TestNewREPLCommand(t *testing.T) {
	cmd := NewREPLCommand()

	assert.Equal(t, "repl", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Long, "Long should not be empty")
}

func TestHandleDotCommandQuit(t *testing.T) {
	cmd, _, _ := replTestCmd()
	session := parser.NewSession()

	assert.True(t, handleDotCommand(cmd, session, ".quit"))
	assert.True(t, handleDotCommand(cmd, session, ".exit"))
	assert.True(t, handleDotCommand(cmd, session, ".QUIT"), "dot-commands are case-insensitive")
}

func TestHandleDotCommandHelp(t *testing.T) {
	cmd, out, _ := replTestCmd()
	session := parser.NewSession()

	assert.False(t, handleDotCommand(cmd, session, ".help"))
	for _, want := range []string{".consts", ".clear", ".quit", "NAME is"} {
		assert.Contains(t, out.String(), want)
	}
}

func TestHandleDotCommandConsts(t *testing.T) {
	cmd, out, _ := replTestCmd()
	session := parser.NewSession()
	_, err := session.Eval("AGE is 25\nNAME is q(John)\n")
	require.NoError(t, err)

	assert.False(t, handleDotCommand(cmd, session, ".consts"))
	assert.Contains(t, out.String(), "AGE")
	assert.Contains(t, out.String(), "25")
	assert.Contains(t, out.String(), "NAME")
	assert.Contains(t, out.String(), "q(John)")
}

func TestHandleDotCommandConstsEmpty(t *testing.T) {
	cmd, out, _ := replTestCmd()
	session := parser.NewSession()

	assert.False(t, handleDotCommand(cmd, session, ".consts"))
	assert.Contains(t, out.String(), "(no constants bound)")
}

func TestHandleDotCommandClear(t *testing.T) {
	cmd, out, _ := replTestCmd()
	session := parser.NewSession()
	_, err := session.Eval("AGE is 25\n")
	require.NoError(t, err)

	assert.False(t, handleDotCommand(cmd, session, ".clear"))
	assert.Contains(t, out.String(), "constants cleared")
	assert.Empty(t, session.Constants())
}

func TestHandleDotCommandUnknown(t *testing.T) {
	cmd, _, errOut := replTestCmd()
	session := parser.NewSession()

	assert.False(t, handleDotCommand(cmd, session, ".bogus"))
	assert.Contains(t, errOut.String(), "Unknown command: .bogus")
}

func TestRenderConstant(t *testing.T) {
	dict := core.NewDict()
	dict.Set("K", core.Int(1))

	tests := []struct {
		name  string
		value core.Value
		want  string
	}{
		{"int", core.Int(42), "42"},
		{"negative int", core.Int(-7), "-7"},
		{"text", core.Text("hi"), "q(hi)"},
		{"dict", dict, `{"K":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, renderConstant(tt.value))
		})
	}
}

func TestREPLCompleterSuggestsKeywords(t *testing.T) {
	session := parser.NewSession()
	completer := newREPLCompleter(session)

	var names []string
	for _, child := range completer.GetChildren() {
		names = append(names, string(child.GetName()))
	}

	// PcItem names carry a trailing space so completion moves past the
	// word.
	assert.Contains(t, names, "begin ")
	assert.Contains(t, names, ".help ")
	assert.Contains(t, names, ".quit ")
}
