package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/alnah/go-coursepdf/internal/fileutil"
)

// watchDebounce coalesces the burst of events an editor emits on save.
const watchDebounce = 300 * time.Millisecond

// sourceWatcher re-converts sources of its targets when they change.
type sourceWatcher struct {
	watcher  *fsnotify.Watcher
	targets  []batchTarget
	debounce time.Duration
}

// newSourceWatcher watches every target's input directory.
func newSourceWatcher(targets []batchTarget) (*sourceWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("fsnotify: %w", err)
	}
	for _, t := range targets {
		if !fileutil.DirExists(t.inputDir) {
			continue
		}
		if err := w.Add(t.inputDir); err != nil {
			_ = w.Close()
			return nil, fmt.Errorf("watching %s: %w", t.inputDir, err)
		}
	}
	return &sourceWatcher{watcher: w, targets: targets, debounce: watchDebounce}, nil
}

// Close stops watching.
func (sw *sourceWatcher) Close() error {
	return sw.watcher.Close()
}

// target returns the batch a changed path belongs to.
func (sw *sourceWatcher) target(path string) (batchTarget, bool) {
	dir, name := filepath.Dir(path), filepath.Base(path)
	for _, t := range sw.targets {
		if dir == t.inputDir && t.profile.matches(name) {
			return t, true
		}
	}
	return batchTarget{}, false
}

// run converts changed files until ctx is canceled or the watcher closes.
// onChange receives the debounced set of changed files for one target.
func (sw *sourceWatcher) run(ctx context.Context, logger *slog.Logger, onChange func(batchTarget, []FileToConvert)) error {
	pending := make(map[string]batchTarget)
	timer := time.NewTimer(sw.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-sw.watcher.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			t, ok := sw.target(filepath.Clean(ev.Name))
			if !ok {
				continue
			}
			logger.Debug("source changed", "path", ev.Name, "op", ev.Op.String())
			pending[filepath.Clean(ev.Name)] = t
			timer.Reset(sw.debounce)

		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "error", err)

		case <-timer.C:
			for _, t := range sw.targets {
				if files := takePending(pending, t); len(files) > 0 {
					onChange(t, files)
				}
			}
		}
	}
}

// takePending removes and returns the pending files of t, sorted.
func takePending(pending map[string]batchTarget, t batchTarget) []FileToConvert {
	var paths []string
	for path, owner := range pending {
		if owner.inputDir == t.inputDir && owner.profile.command == t.profile.command {
			paths = append(paths, path)
		}
	}
	slices.Sort(paths)

	files := make([]FileToConvert, 0, len(paths))
	for _, path := range paths {
		delete(pending, path)
		files = append(files, FileToConvert{
			InputPath:  path,
			OutputPath: t.profile.outputPath(path, t.outputDir),
		})
	}
	return files
}

// watchSources blocks, re-converting changed sources and reporting each
// file like the initial batch. Returns nil when ctx is canceled.
func watchSources(ctx context.Context, targets []batchTarget, pool Pool, flags *convertFlags, env *Environment, logger *slog.Logger, report reportOptions) error {
	sw, err := newSourceWatcher(targets)
	if err != nil {
		return err
	}
	defer sw.Close()

	dirs := make([]string, 0, len(targets))
	for _, t := range targets {
		dirs = append(dirs, t.inputDir)
	}
	if !report.quiet {
		fmt.Fprintf(env.Stdout, "\nWatching %s for changes (Ctrl+C to stop)...\n", strings.Join(dirs, ", "))
	}

	return sw.run(ctx, logger, func(t batchTarget, files []FileToConvert) {
		results := convertBatch(ctx, pool, files, &batchParams{
			kind:      t.profile.kind,
			writeHTML: flags.html,
			logger:    logger,
		})
		printChanged(env, results, report)
	})
}

// printChanged reports a watch-triggered conversion without the batch
// header and summary.
func printChanged(env *Environment, results []ConversionResult, report reportOptions) {
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stdout, "  ERROR converting %s: %v%s\n", filepath.Base(r.InputPath), r.Err, errorHint(r.Err))
			continue
		}
		if !report.quiet {
			fmt.Fprintf(env.Stdout, "  [%s] Updated: %s\n", env.Now().Format(time.TimeOnly), filepath.Base(r.OutputPath))
		}
	}
}
