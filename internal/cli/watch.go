package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/aretw0/turing/pkg/ports"
	"github.com/fsnotify/fsnotify"
)

// settleDelay lets editors finish writing before the file is read again.
const settleDelay = 100 * time.Millisecond

// RunWatch runs the description file, then reruns it every time the file
// changes until ctx is cancelled. A change cancels a run still in progress.
func RunWatch(ctx context.Context, engine ports.Executor, opts RunOptions, stdout, stderr io.Writer, logger *slog.Logger) error {
	if opts.File == "" || opts.File == "-" {
		return fmt.Errorf("watch mode needs a description file")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors often replace the file instead of writing it.
	target, err := filepath.Abs(opts.File)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", opts.File, err)
	}
	logger.Info("Starting Watcher", "path", target)

	for {
		runCtx, cancel := context.WithCancel(ctx)
		done := make(chan struct{})
		go func() {
			defer close(done)
			watchIteration(runCtx, engine, opts, stdout, stderr, logger)
		}()

		changed, err := waitForChange(ctx, watcher, target)
		cancel()
		<-done
		if err != nil || !changed {
			return err
		}

		printSystemMessage(stderr, "Change detected in '%s'.", opts.File)
		logger.Info("Watcher restarting", "path", target)
	}
}

func watchIteration(ctx context.Context, engine ports.Executor, opts RunOptions, stdout, stderr io.Writer, logger *slog.Logger) {
	p, err := LoadProgram(opts, nil)
	if err != nil {
		logger.Error("Reload failed", "err", err)
		printSystemMessage(stderr, "%v", err)
		return
	}
	if _, err := Run(ctx, engine, p, opts, stdout, stderr, logger); err != nil && !IsInterrupted(err) {
		logger.Error("Runtime error", "err", err)
	}
	if ctx.Err() == nil {
		printSystemMessage(stderr, "Waiting for changes...")
	}
}

// waitForChange blocks until target is written or replaced. It returns
// false when ctx is done.
func waitForChange(ctx context.Context, watcher *fsnotify.Watcher, target string) (bool, error) {
	for {
		select {
		case <-ctx.Done():
			return false, nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return false, nil
			}
			return false, fmt.Errorf("watcher: %w", err)
		case event, ok := <-watcher.Events:
			if !ok {
				return false, nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			time.Sleep(settleDelay)
			drain(watcher)
			return true, nil
		}
	}
}

func drain(watcher *fsnotify.Watcher) {
	for {
		select {
		case <-watcher.Events:
		default:
			return
		}
	}
}
