package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	coursepdf "github.com/alnah/go-coursepdf"
	"github.com/alnah/go-coursepdf/internal/fileutil"
	"github.com/alnah/go-coursepdf/internal/hints"
)

// Sentinel errors for batch operations.
var (
	ErrNoInputDir         = errors.New("input directory not found")
	ErrReadSource         = errors.New("failed to read source file")
	ErrWritePDF           = errors.New("failed to write PDF file")
	ErrWriteHTML          = errors.New("failed to write HTML file")
	ErrConverterInit      = errors.New("failed to initialize converter")
	ErrInvalidArgs        = errors.New("invalid arguments")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrBatchFailed        = errors.New("conversions failed")
)

// CLIConverter is the part of coursepdf.Converter the batch driver uses.
type CLIConverter interface {
	Convert(ctx context.Context, input coursepdf.Input) (*coursepdf.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ CLIConverter = (*coursepdf.Converter)(nil)

// Pool abstracts converter pool operations for testability.
type Pool interface {
	Acquire() (CLIConverter, error)
	Release(CLIConverter)
	Size() int
	Close() error
}

// batchParams groups settings shared by every file of a batch.
type batchParams struct {
	kind      coursepdf.Kind
	writeHTML bool // also write the assembled HTML next to the PDF
	logger    *slog.Logger
}

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// convertBatch converts files with up to pool.Size() workers.
// Each file gets its own result slot, in discovery order; a failure never
// stops the batch.
func convertBatch(ctx context.Context, pool Pool, files []FileToConvert, params *batchParams) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := min(pool.Size(), len(files))
	results := make([]ConversionResult, len(files))
	jobs := make(chan int, len(files))
	var wg sync.WaitGroup

	for range concurrency {
		wg.Add(1)
		go func() {
			defer wg.Done()

			conv, err := pool.Acquire()
			if err != nil {
				for idx := range jobs {
					results[idx] = ConversionResult{
						InputPath:  files[idx].InputPath,
						OutputPath: files[idx].OutputPath,
						Err:        fmt.Errorf("%w: %v", ErrConverterInit, err),
					}
				}
				return
			}
			defer pool.Release(conv)

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath:  files[idx].InputPath,
						OutputPath: files[idx].OutputPath,
						Err:        ctx.Err(),
					}
					continue
				}
				results[idx] = convertFile(ctx, conv, files[idx], params)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile reads, converts and writes one source file.
func convertFile(ctx context.Context, conv CLIConverter, f FileToConvert, params *batchParams) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	finish := func(err error) ConversionResult {
		result.Err = err
		result.Duration = time.Since(start)
		if params.logger != nil {
			params.logger.Debug("converted", "source", f.InputPath, "output", f.OutputPath,
				"duration", result.Duration, "error", err)
		}
		return result
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		return finish(fmt.Errorf("%w: %v", ErrReadSource, err))
	}

	input := coursepdf.Input{
		Kind:    params.kind,
		Path:    f.InputPath,
		Content: string(content),
	}
	if params.kind == coursepdf.KindLecture {
		input.SourceDir = filepath.Dir(f.InputPath)
	}

	doc, err := conv.Convert(ctx, input)
	if err != nil {
		return finish(err)
	}

	if params.writeHTML {
		if err := fileutil.WriteOutput(fileutil.ReplaceExt(f.OutputPath, ".html"), doc.HTML); err != nil {
			return finish(fmt.Errorf("%w: %v", ErrWriteHTML, err))
		}
	}

	if err := fileutil.WriteOutput(f.OutputPath, doc.PDF); err != nil {
		return finish(fmt.Errorf("%w: %v", ErrWritePDF, err))
	}

	return finish(nil)
}

// ResultSummary holds the count of succeeded and failed conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// Total returns the number of files attempted.
func (s ResultSummary) Total() int {
	return s.Succeeded + s.Failed
}

// add accumulates another batch into s.
func (s *ResultSummary) add(other ResultSummary) {
	s.Succeeded += other.Succeeded
	s.Failed += other.Failed
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// reportOptions controls report verbosity.
type reportOptions struct {
	quiet   bool // only ERROR lines
	verbose bool // add per-file durations
}

// printFound writes the batch header.
func printFound(w io.Writer, p profile, n int, opts reportOptions) {
	if opts.quiet {
		return
	}
	fmt.Fprintf(w, "Found %d %s files. Converting to PDF...\n\n", n, p.noun)
}

// printResults writes one line per file and the batch summary.
// ERROR lines are printed even in quiet mode.
func printResults(w io.Writer, t batchTarget, results []ConversionResult, opts reportOptions) ResultSummary {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(w, "  ERROR converting %s: %v%s\n", filepath.Base(r.InputPath), r.Err, errorHint(r.Err))
			continue
		}
		if opts.quiet {
			continue
		}
		if opts.verbose {
			fmt.Fprintf(w, "  Created: %s (%v)\n", filepath.Base(r.OutputPath), r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(w, "  Created: %s\n", filepath.Base(r.OutputPath))
		}
	}

	if opts.quiet {
		return summary
	}
	if t.profile.summaryDir {
		fmt.Fprintf(w, "\nDone! %d/%d PDFs created in %s/\n", summary.Succeeded, summary.Total(), t.outputDir)
	} else {
		fmt.Fprintf(w, "\nDone! %d/%d PDFs created.\n", summary.Succeeded, summary.Total())
	}
	return summary
}

// errorHint suggests a fix for the failure classes a user can act on.
func errorHint(err error) string {
	switch {
	case errors.Is(err, coursepdf.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, coursepdf.ErrPageLoad):
		return hints.ForTimeout()
	case errors.Is(err, ErrWritePDF), errors.Is(err, ErrWriteHTML):
		return hints.ForOutputDirectory()
	default:
		return ""
	}
}
