package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: coursepdf <command> [flags] [dir]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  code       Convert lecture-NN-samples.cpp files to highlighted PDFs")
	fmt.Fprintln(w, "  lectures   Convert Lecture-NN.md notes to styled PDFs")
	fmt.Fprintln(w, "  all        Run code, then lectures")
	fmt.Fprintln(w, "  doctor     Check Chrome and the environment")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'coursepdf help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for a conversion command.
func printConvertUsage(w io.Writer, command string) {
	switch command {
	case "code":
		fmt.Fprintln(w, "Usage: coursepdf code [dir] [flags]")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Convert lecture-NN-samples.cpp files in dir (default ./code) to PDFs")
		fmt.Fprintln(w, "written next to each source.")
	case "lectures":
		fmt.Fprintln(w, "Usage: coursepdf lectures [dir] [flags]")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Convert Lecture-NN.md files in dir (default ./lectures) to Lecture-NN.pdf")
		fmt.Fprintln(w, "in the parent of dir.")
	default:
		fmt.Fprintln(w, "Usage: coursepdf all [flags]")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Run the code batch, then the lectures batch, with directories from")
		fmt.Fprintln(w, "the config file or the defaults.")
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path (default: coursepdf)")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers, 0 = auto (default 1)")
	fmt.Fprintln(w, "  -t, --timeout <d>         Per-file timeout (default 60s)")
	fmt.Fprintln(w, "      --html                Also write the assembled HTML")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Content:")
	fmt.Fprintln(w, "      --titles <file>       YAML table of lecture titles")
	fmt.Fprintln(w, "      --style <name>        Chroma highlight style (default monokai)")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom code/lecture .css and .html files")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Behavior:")
	fmt.Fprintln(w, "      --strict              Exit 1 when any file fails")
	fmt.Fprintln(w, "      --watch               Re-convert sources when they change")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show timings and debug logs")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  ROD_BROWSER_BIN           Chrome binary to use")
	fmt.Fprintln(w, "  ROD_NO_SANDBOX=1          Disable the Chrome sandbox (Docker/CI)")
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: coursepdf doctor [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check Chrome, the environment and the source directories.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --json                Print results as JSON")
}

// runHelp prints help for a command and returns an exit code.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "code", "lectures", "all":
		printConvertUsage(env.Stdout, args[0])
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: coursepdf version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: coursepdf help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
