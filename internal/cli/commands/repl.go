package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/dicta-lang/dicta/internal/cli/output"
	"github.com/dicta-lang/dicta/pkg/core"
	"github.com/dicta-lang/dicta/pkg/parser"
)

const (
	replPrompt         = "dicta> "
	replContinuePrompt = "  ...> "
)

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive session",
		Long: `Evaluate declarations and values interactively.

Constants declared with NAME is <value> stay bound for the rest of the
session. Entering a value (a literal, a constant, a begin ... end
block, or a |...| expression) prints its JSON. Input that ends
mid-phrase continues on the next line.`,
		Example: `  dicta repl`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runREPL(cmd)
		},
	}
	return cmd
}

func runREPL(cmd *cobra.Command) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg

	session := parser.NewSession()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          replPrompt,
		HistoryFile:     cfg.HistoryFile,
		AutoComplete:    newREPLCompleter(session),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, "dicta interactive session")
	_, _ = fmt.Fprintln(out, "Type .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(out)

	var buffer strings.Builder
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			buffer.Reset()
			rl.SetPrompt(replPrompt)
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}

		// Dot-commands are only recognized at a phrase boundary; inside
		// a continuation the line belongs to the pending input.
		if buffer.Len() == 0 {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" {
				continue
			}
			if strings.HasPrefix(trimmed, ".") {
				if quit := handleDotCommand(cmd, session, trimmed); quit {
					break
				}
				continue
			}
		}

		buffer.WriteString(line)
		buffer.WriteString("\n")

		result, err := session.Eval(buffer.String())
		if err != nil {
			var parseErr *parser.ParseError
			if errors.As(err, &parseErr) && parseErr.AtEOF {
				// The phrase is incomplete, not wrong. Keep reading.
				rl.SetPrompt(replContinuePrompt)
				continue
			}
			buffer.Reset()
			rl.SetPrompt(replPrompt)
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), output.FormatError(err))
			continue
		}

		buffer.Reset()
		rl.SetPrompt(replPrompt)

		if result.Value != nil {
			if err := core.EncodeJSON(out, result.Value, cfg.Indent); err != nil {
				return err
			}
		}
	}

	return nil
}

// handleDotCommand executes a REPL dot-command and reports whether the
// session should end.
func handleDotCommand(cmd *cobra.Command, session *parser.Session, line string) bool {
	parts := strings.Fields(line)
	command := strings.ToLower(parts[0])

	switch command {
	case ".quit", ".exit":
		return true

	case ".help":
		printREPLHelp(cmd.OutOrStdout())

	case ".consts":
		printConstants(cmd.OutOrStdout(), session)

	case ".clear":
		session.Reset()
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "constants cleared")

	default:
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Unknown command: %s (type .help for commands)\n", command)
	}
	return false
}

func printREPLHelp(w io.Writer) {
	help := `Commands:
  .help          Show this help message
  .consts        List bound constants
  .clear         Drop all bound constants
  .quit, .exit   Exit the session

Input:
  NAME is <value>   Bind a constant for the rest of the session
  <value>           Print the value as JSON
  begin ... end     Build a dictionary (continues across lines)`
	_, _ = fmt.Fprintln(w, help)
}

func printConstants(w io.Writer, session *parser.Session) {
	names := session.Constants()
	if len(names) == 0 {
		_, _ = fmt.Fprintln(w, "(no constants bound)")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Name", "Value"})
	for _, name := range names {
		v, ok := session.Lookup(name)
		if !ok {
			continue
		}
		t.AppendRow(table.Row{name, renderConstant(v)})
	}
	t.Render()
}

// renderConstant formats a bound value on one line, using source
// syntax for text so it round-trips visually.
func renderConstant(v core.Value) string {
	switch val := v.(type) {
	case core.Int:
		return strconv.FormatInt(int64(val), 10)
	case core.Text:
		return fmt.Sprintf("q(%s)", string(val))
	case *core.Dict:
		data, err := val.MarshalJSON()
		if err != nil {
			return "begin ... end"
		}
		return string(data)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// newREPLCompleter suggests keywords, dot-commands, and the constants
// currently bound in the session.
func newREPLCompleter(session *parser.Session) *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem("begin"),
		readline.PcItem("end"),
		readline.PcItem("ord"),
		readline.PcItemDynamic(func(string) []string {
			return session.Constants()
		}),
		readline.PcItem(".help"),
		readline.PcItem(".consts"),
		readline.PcItem(".clear"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	)
}
