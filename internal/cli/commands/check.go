package commands

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dicta-lang/dicta/internal/cli/output"
	"github.com/dicta-lang/dicta/pkg/parser"
)

// CheckOptions holds options for the check command.
type CheckOptions struct {
	Jobs int // Maximum number of files validated concurrently
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:   "check [file...]",
		Short: "Validate documents without writing output",
		Long: `Parse and evaluate each document, reporting errors without
producing JSON. Files are checked concurrently; results are printed in
argument order. With no arguments the document is read from stdin.`,
		Example: `  # Check one file
  dicta check config.dicta

  # Check a whole directory of documents
  dicta check configs/*.dicta

  # Check stdin
  cat config.dicta | dicta check

  # Machine-readable results
  dicta check --format json configs/*.dicta`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts, args)
		},
	}

	cmd.Flags().IntVarP(&opts.Jobs, "jobs", "j", runtime.NumCPU(), "Maximum concurrent file checks")

	return cmd
}

func runCheck(cmd *cobra.Command, opts *CheckOptions, paths []string) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	var results []output.CheckFileResult
	if len(paths) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		results = []output.CheckFileResult{checkSource("<stdin>", data, err)}
	} else {
		jobs := opts.Jobs
		if jobs < 1 {
			jobs = 1
		}

		// Each worker writes only its own slot, so no locking is
		// needed and results keep argument order.
		results = make([]output.CheckFileResult, len(paths))

		var g errgroup.Group
		g.SetLimit(jobs)
		for i, path := range paths {
			g.Go(func() error {
				data, err := os.ReadFile(path)
				results[i] = checkSource(path, data, err)
				return nil
			})
		}
		_ = g.Wait()
	}

	summary := output.CheckSummary{Total: len(results)}
	for _, res := range results {
		if res.OK {
			summary.Passed++
		} else {
			summary.Failed++
		}
	}

	if r.EffectiveMode() == output.ModeJSON {
		if err := r.JSON(output.CheckOutput{Files: results, Summary: summary}); err != nil {
			return err
		}
	} else {
		for _, res := range results {
			if res.OK {
				r.StatusLine(res.Path, "success", "")
			} else {
				r.StatusLine(res.Path, "failed", res.Error)
			}
		}
		r.Println()
		if summary.Failed == 0 {
			r.Success(fmt.Sprintf("%d of %d files passed", summary.Passed, summary.Total))
		} else {
			r.Printf("%d of %d files passed, %d failed\n", summary.Passed, summary.Total, summary.Failed)
		}
	}

	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d files failed", summary.Failed, summary.Total)
	}
	return nil
}

// checkSource validates a single document, folding in a prior read
// failure.
func checkSource(path string, data []byte, readErr error) output.CheckFileResult {
	if readErr != nil {
		return output.CheckFileResult{Path: path, Error: readErr.Error()}
	}
	if _, err := parser.Parse(string(data)); err != nil {
		return output.CheckFileResult{Path: path, Error: err.Error()}
	}
	return output.CheckFileResult{Path: path, OK: true}
}
