// Command coursepdf converts course sources to PDF: C++ sample files to
// syntax-highlighted listings and lecture notes in Markdown to styled
// handouts.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(run(os.Args, DefaultEnv()))
}

// run dispatches a command and returns the process exit code.
func run(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	command, rest := args[1], args[2:]
	switch command {
	case "help", "-h", "--help":
		return runHelp(rest, env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "coursepdf %s\n", Version)
		return ExitSuccess
	case "doctor":
		return runDoctorCmd(rest, env)
	case "code", "lectures", "all":
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", command)
		printUsage(env.Stderr)
		return ExitUsage
	}

	flags, positional, err := parseConvertFlags(command, rest, env.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		return ExitUsage
	}

	logger := newLogger(env.Stderr, flags.common.verbose)
	if env.SetMaxProcs != nil {
		env.SetMaxProcs(logger)
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := runConvert(ctx, command, positional, flags, env, logger); err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}
