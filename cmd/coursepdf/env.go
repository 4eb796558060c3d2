package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	coursepdf "github.com/alnah/go-coursepdf"
	"go.uber.org/automaxprocs/maxprocs"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now    func() time.Time
	Stdout io.Writer
	Stderr io.Writer

	// NewPool builds the converter pool for a run.
	NewPool func(size int, opts ...coursepdf.Option) Pool

	// SetMaxProcs adjusts GOMAXPROCS to the container CPU quota.
	// Nil in tests.
	SetMaxProcs func(logger *slog.Logger)
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:         time.Now,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		NewPool:     newConverterPool,
		SetMaxProcs: setMaxProcs,
	}
}

// newLogger builds the diagnostic logger: warnings only, debug with --verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// setMaxProcs routes automaxprocs output to the debug log.
// The error is ignored: maxprocs.Set only fails on an invalid GOMAXPROCS
// env var, and the runtime default then applies.
func setMaxProcs(logger *slog.Logger) {
	_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
		logger.Debug(fmt.Sprintf(format, args...))
	}))
}
