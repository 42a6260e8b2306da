package commands

import (
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dicta-lang/dicta/internal/cli/config"
	"github.com/dicta-lang/dicta/pkg/core"
	"github.com/dicta-lang/dicta/pkg/parser"
)

// CompileOptions holds options for the compile command.
type CompileOptions struct {
	Output   string        // Output file path; empty writes to stdout
	Watch    bool          // Recompile when the source file changes
	Debounce time.Duration // Quiet period between a change and the rebuild
}

// NewCompileCommand creates the compile command.
func NewCompileCommand() *cobra.Command {
	opts := &CompileOptions{}
	cmd := &cobra.Command{
		Use:   "compile [file]",
		Short: "Compile a document to JSON",
		Long: `Compile a document to a JSON object.

The document's constant declarations are evaluated, the begin ... end
dictionary is built, and the result is printed as indented JSON with
entries in their source order. With no file argument (or with "-"),
the document is read from stdin.`,
		Example: `  # Compile from a file
  dicta compile config.dicta

  # Compile from stdin
  cat config.dicta | dicta compile

  # Write to a file instead of stdout
  dicta compile config.dicta -o config.json

  # Recompile on every change
  dicta compile config.dicta -o config.json --watch`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			if opts.Watch {
				return runWatch(cmd, opts, path)
			}
			return runCompile(cmd, opts, path)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Write JSON to file instead of stdout")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Recompile when the source file changes")
	cmd.Flags().DurationVar(&opts.Debounce, "debounce", config.DefaultWatchDebounce, "Quiet period before rebuilding in watch mode")

	return cmd
}

func runCompile(cmd *cobra.Command, opts *CompileOptions, path string) error {
	cmdCtx := NewCommandContext(cmd)

	src, err := readSource(cmd, path)
	if err != nil {
		return err
	}

	doc, err := parser.Parse(src)
	if err != nil {
		return err
	}

	return writeDocument(cmd, doc, opts.Output, cmdCtx.Cfg.Indent)
}

// readSource reads the document source from path, or from stdin when
// path is empty or "-".
func readSource(cmd *cobra.Command, path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// writeDocument renders doc as JSON to outPath, or to stdout when
// outPath is empty. File output is rendered in full before the file is
// touched, so a failed compile never leaves partial output behind.
// Stdout gets a trailing newline; file output does not.
func writeDocument(cmd *cobra.Command, doc *core.Dict, outPath string, indent int) error {
	if outPath == "" {
		return core.EncodeJSON(cmd.OutOrStdout(), doc, indent)
	}
	data, err := core.MarshalIndent(doc, indent)
	if err != nil {
		return err
	}
	return os.WriteFile(outPath, data, 0o644)
}
