package main

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/alnah/go-coursepdf/internal/fileutil"
	"github.com/alnah/go-coursepdf/internal/hints"
)

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// discoverFiles lists the target's sources in lexicographic order.
// An empty result is not an error. A missing input directory returns
// ErrNoInputDir, which the batch driver reports as nothing found.
func discoverFiles(t batchTarget) ([]FileToConvert, error) {
	if !fileutil.DirExists(t.inputDir) {
		return nil, fmt.Errorf("%w: %s%s", ErrNoInputDir, t.inputDir, hints.ForInputDirectory(t.profile.command))
	}

	matches, err := filepath.Glob(filepath.Join(t.inputDir, t.profile.pattern))
	if err != nil {
		return nil, fmt.Errorf("discovering files: %w", err)
	}
	slices.Sort(matches)

	files := make([]FileToConvert, 0, len(matches))
	for _, path := range matches {
		if !fileutil.FileExists(path) {
			continue
		}
		files = append(files, FileToConvert{
			InputPath:  path,
			OutputPath: t.profile.outputPath(path, t.outputDir),
		})
	}
	return files, nil
}
