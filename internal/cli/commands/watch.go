package commands

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dicta-lang/dicta/internal/cli/output"
)

// runWatch compiles path once, then recompiles it on every change
// until interrupted. Compile failures are reported to stderr without
// stopping the watch.
func runWatch(cmd *cobra.Command, opts *CompileOptions, path string) error {
	if path == "" || path == "-" {
		return fmt.Errorf("watch mode requires a file argument")
	}

	cmdCtx := NewCommandContext(cmd)
	logger := cmdCtx.Logger

	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = cmdCtx.Cfg.WatchDebounce
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory rather than the file: editors that save by
	// rename replace the inode and would silently drop a file watch.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}
	base := filepath.Base(path)

	build := func() {
		buildID := uuid.New().String()
		start := time.Now()
		if err := runCompile(cmd, opts, path); err != nil {
			logger.Debug("build failed", "build_id", buildID, "file", path, "elapsed", time.Since(start))
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), output.FormatError(err))
			return
		}
		logger.Debug("build succeeded", "build_id", buildID, "file", path, "elapsed", time.Since(start))
	}

	build()
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Watching %s (Ctrl-C to stop)\n", path)

	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			// Debounce: editors fire several events per save.
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounce, func() {
				logger.Debug("file changed, rebuilding", "file", event.Name)
				build()
			})

		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher error", "error", werr)
		}
	}
}
