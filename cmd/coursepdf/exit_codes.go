package main

import (
	"context"
	"errors"
	"os"

	coursepdf "github.com/alnah/go-coursepdf"
	"github.com/alnah/go-coursepdf/internal/config"
)

// Exit codes for the coursepdf CLI.
// Per-file conversion failures exit 0 unless --strict is set.
const (
	ExitSuccess     = 0   // Batch ran (individual files may have failed)
	ExitGeneral     = 1   // Unexpected error, or failures under --strict
	ExitUsage       = 2   // Invalid flags, arguments, config or assets
	ExitIO          = 3   // Missing input directory, unreadable source, unwritable output
	ExitBrowser     = 4   // Chrome could not be started or printed
	ExitInterrupted = 130 // SIGINT/SIGTERM
)

// exitCodeFor maps an error to an exit code.
// It uses errors.Is, so callers must wrap with %w.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, context.Canceled) {
		return ExitInterrupted
	}

	if errors.Is(err, coursepdf.ErrBrowserConnect) ||
		errors.Is(err, coursepdf.ErrPageCreate) ||
		errors.Is(err, coursepdf.ErrPageLoad) ||
		errors.Is(err, coursepdf.ErrPDFGeneration) {
		return ExitBrowser
	}

	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, coursepdf.ErrStyleNotFound) ||
		errors.Is(err, coursepdf.ErrTemplateNotFound) ||
		errors.Is(err, coursepdf.ErrTemplateParse) ||
		errors.Is(err, coursepdf.ErrInvalidAssetPath) ||
		errors.Is(err, ErrInvalidArgs) ||
		errors.Is(err, ErrInvalidWorkerCount) {
		return ExitUsage
	}

	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrNoInputDir) ||
		errors.Is(err, ErrReadSource) ||
		errors.Is(err, ErrWritePDF) ||
		errors.Is(err, ErrWriteHTML) {
		return ExitIO
	}

	return ExitGeneral
}
