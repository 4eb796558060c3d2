package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// convertFlags holds all flags for the code, lectures and all commands.
type convertFlags struct {
	common     commonFlags
	output     string
	workers    int
	workersSet bool
	timeout    string
	titles     string
	style      string
	assetPath  string
	strict     bool
	html       bool
	watch      bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show timings and debug logs")
}

// parseConvertFlags parses flags for a conversion command.
// Parse errors and --help output go to stderr.
func parseConvertFlags(command string, args []string, stderr io.Writer) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet(command, flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &convertFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto, default 1)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "per-file timeout (e.g. 30s, 2m)")
	fs.StringVar(&f.titles, "titles", "", "YAML file of lecture titles")
	fs.StringVar(&f.style, "style", "", "chroma highlight style (default monokai)")
	fs.StringVar(&f.assetPath, "asset-path", "", "directory with custom styles and templates")
	fs.BoolVar(&f.strict, "strict", false, "exit 1 when any file fails")
	fs.BoolVar(&f.html, "html", false, "also write the assembled HTML")
	fs.BoolVar(&f.watch, "watch", false, "re-convert sources when they change")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printConvertUsage(stderr, command) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	f.workersSet = fs.Changed("workers")

	return f, fs.Args(), nil
}

// doctorFlags holds flags for the doctor command.
type doctorFlags struct {
	config string
	json   bool
}

// parseDoctorFlags parses flags for the doctor command.
func parseDoctorFlags(args []string, stderr io.Writer) (*doctorFlags, error) {
	fs := flag.NewFlagSet("doctor", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &doctorFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVar(&f.json, "json", false, "print results as JSON")
	fs.Usage = func() { printDoctorUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}
