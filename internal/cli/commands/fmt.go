package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dicta-lang/dicta/pkg/format"
	"github.com/dicta-lang/dicta/pkg/parser"
)

// FmtOptions holds options for the fmt command.
type FmtOptions struct {
	Write bool // Rewrite the source file in place
}

// NewFmtCommand creates the fmt command.
func NewFmtCommand() *cobra.Command {
	opts := &FmtOptions{}
	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Format a document canonically",
		Long: `Rewrite a document in canonical layout: one declaration per line,
nested blocks indented, expressions spaced consistently. Only
whitespace changes; every token keeps its exact text.

Formatting needs syntactically valid input but does not evaluate it,
so a document with an undefined constant still formats.`,
		Example: `  # Print the formatted document
  dicta fmt config.dicta

  # Rewrite the file in place
  dicta fmt -w config.dicta

  # Format from stdin
  cat config.dicta | dicta fmt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			return runFmt(cmd, opts, path)
		},
	}

	cmd.Flags().BoolVarP(&opts.Write, "write", "w", false, "Rewrite the file in place instead of printing")

	return cmd
}

func runFmt(cmd *cobra.Command, opts *FmtOptions, path string) error {
	cmdCtx := NewCommandContext(cmd)

	if opts.Write && (path == "" || path == "-") {
		return fmt.Errorf("--write requires a file argument")
	}

	src, err := readSource(cmd, path)
	if err != nil {
		return err
	}

	tokens, err := parser.Tokenize(src)
	if err != nil {
		return err
	}
	formatted, err := format.Format(tokens, cmdCtx.Cfg.Indent)
	if err != nil {
		return err
	}

	if !opts.Write {
		_, err := io.WriteString(cmd.OutOrStdout(), formatted)
		return err
	}
	// Skip the write when nothing changed so the mtime stays put and
	// watchers don't retrigger.
	if formatted == src {
		return nil
	}
	return os.WriteFile(path, []byte(formatted), 0o644)
}
