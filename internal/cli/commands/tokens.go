package commands

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/dicta-lang/dicta/internal/cli/output"
	"github.com/dicta-lang/dicta/pkg/parser"
	"github.com/dicta-lang/dicta/pkg/token"
)

// NewTokensCommand creates the tokens command.
func NewTokensCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Dump the token stream",
		Long: `Tokenize a document and print every token with its kind, text, and
position. Useful for debugging surprising parses.

In a terminal the tokens print as a table; piped or with
--format json they print as JSON.`,
		Example: `  # Inspect how a document tokenizes
  dicta tokens config.dicta

  # Machine-readable stream
  dicta tokens --format json config.dicta`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			return runTokens(cmd, path)
		},
	}
	return cmd
}

func runTokens(cmd *cobra.Command, path string) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	src, err := readSource(cmd, path)
	if err != nil {
		return err
	}

	toks, err := parser.Tokenize(src)
	if err != nil {
		return err
	}

	infos := make([]output.TokenInfo, 0, len(toks))
	for i, tok := range toks {
		// The synthetic EOF terminator is parser plumbing, not input.
		if tok.Kind == token.EOF {
			continue
		}
		infos = append(infos, output.TokenInfo{
			Index:  i,
			Kind:   tok.Kind.String(),
			Lexeme: tok.Lexeme,
			Line:   tok.Pos.Line,
			Column: tok.Pos.Column,
		})
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(output.TokensOutput{Tokens: infos, Count: len(infos)})
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Kind", "Lexeme", "Line", "Col"})
	for _, info := range infos {
		t.AppendRow(table.Row{info.Index, info.Kind, info.Lexeme, info.Line, info.Column})
	}
	t.Render()
	r.Printf("(%d tokens)\n", len(infos))
	return nil
}
