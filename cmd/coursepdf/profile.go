package main

import (
	"fmt"
	"path/filepath"

	coursepdf "github.com/alnah/go-coursepdf"
	"github.com/alnah/go-coursepdf/internal/config"
	"github.com/alnah/go-coursepdf/internal/fileutil"
)

// profile describes one batch: which sources to find, how to name the PDFs,
// and how to word the report.
type profile struct {
	command      string
	kind         coursepdf.Kind
	pattern      string // glob matched against base names in the input dir
	defaultInput string
	noun         string // "Found N <noun> files"
	emptyMessage string
	summaryDir   bool // "Done! ... created in <dir>/"
}

var (
	codeProfile = profile{
		command:      "code",
		kind:         coursepdf.KindCode,
		pattern:      "lecture-*-samples.cpp",
		defaultInput: "code",
		noun:         "C++",
		emptyMessage: "No C++ sample files found!",
	}

	lecturesProfile = profile{
		command:      "lectures",
		kind:         coursepdf.KindLecture,
		pattern:      "Lecture-*.md",
		defaultInput: "lectures",
		noun:         "lecture",
		emptyMessage: "No lecture markdown files found!",
		summaryDir:   true,
	}
)

// profilesFor returns the batches a command runs, in order.
func profilesFor(command string) ([]profile, error) {
	switch command {
	case "code":
		return []profile{codeProfile}, nil
	case "lectures":
		return []profile{lecturesProfile}, nil
	case "all":
		return []profile{codeProfile, lecturesProfile}, nil
	default:
		return nil, fmt.Errorf("%w: unknown command %q", ErrInvalidArgs, command)
	}
}

// settings returns the config section for this profile.
func (p profile) settings(cfg *config.Config) config.ProfileConfig {
	if p.kind == coursepdf.KindLecture {
		return cfg.Lectures
	}
	return cfg.Code
}

// defaultOutput is where PDFs go when neither flag nor config says otherwise:
// next to the sources for code, the parent of the lectures directory for notes.
func (p profile) defaultOutput(inputDir string) string {
	if p.kind != coursepdf.KindLecture {
		return inputDir
	}
	abs, err := filepath.Abs(inputDir)
	if err != nil {
		return filepath.Dir(filepath.Clean(inputDir))
	}
	return filepath.Dir(abs)
}

// outputPath derives the PDF path for a source file.
// Code samples keep their base name; lecture notes become Lecture-<NN>.pdf.
func (p profile) outputPath(inputPath, outputDir string) string {
	base := filepath.Base(inputPath)
	if p.kind == coursepdf.KindLecture {
		return filepath.Join(outputDir, "Lecture-"+coursepdf.ParseNumber(base)+".pdf")
	}
	return filepath.Join(outputDir, fileutil.ReplaceExt(base, ".pdf"))
}

// matches reports whether a base name belongs to this profile.
func (p profile) matches(name string) bool {
	ok, err := filepath.Match(p.pattern, name)
	return err == nil && ok
}

// batchTarget is a profile bound to concrete directories for one run.
type batchTarget struct {
	profile   profile
	inputDir  string
	outputDir string
}

// resolveTarget picks directories: positional argument, then --output, then
// config, then the profile defaults.
func resolveTarget(p profile, args []string, flagOutput string, cfg *config.Config) batchTarget {
	settings := p.settings(cfg)

	inputDir := p.defaultInput
	switch {
	case len(args) > 0:
		inputDir = args[0]
	case settings.InputDir != "":
		inputDir = settings.InputDir
	}
	inputDir = filepath.Clean(inputDir)

	outputDir := p.defaultOutput(inputDir)
	switch {
	case flagOutput != "":
		outputDir = flagOutput
	case settings.OutputDir != "":
		outputDir = settings.OutputDir
	}

	return batchTarget{profile: p, inputDir: inputDir, outputDir: filepath.Clean(outputDir)}
}
