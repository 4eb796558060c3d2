package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	flag "github.com/spf13/pflag"
)

func TestParseConvertFlags(t *testing.T) {
	t.Parallel()

	var stderr bytes.Buffer
	f, args, err := parseConvertFlags("lectures", []string{
		"-o", "out", "-w", "2", "-t", "90s", "--titles", "titles.yaml", "--style", "github",
		"--asset-path", "assets", "--strict", "--html", "--watch", "-c", "course", "-q", "-v", "notes",
	}, &stderr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if f.output != "out" || f.workers != 2 || !f.workersSet || f.timeout != "90s" || f.titles != "titles.yaml" {
		t.Errorf("flags = %+v", f)
	}
	if f.style != "github" || f.assetPath != "assets" || !f.strict || !f.html || !f.watch {
		t.Errorf("flags = %+v", f)
	}
	if f.common.config != "course" || !f.common.quiet || !f.common.verbose {
		t.Errorf("common = %+v", f.common)
	}
	if len(args) != 1 || args[0] != "notes" {
		t.Errorf("args = %v, want [notes]", args)
	}
}

func TestParseConvertFlags_WorkersUnset(t *testing.T) {
	t.Parallel()

	f, _, err := parseConvertFlags("code", nil, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.workersSet {
		t.Error("workersSet = true without --workers")
	}
}

func TestParseConvertFlags_Errors(t *testing.T) {
	t.Parallel()

	var stderr bytes.Buffer
	if _, _, err := parseConvertFlags("code", []string{"--bogus"}, &stderr); err == nil {
		t.Error("expected error for unknown flag")
	}
	if !strings.Contains(stderr.String(), "Usage: coursepdf code") {
		t.Errorf("stderr = %q, want usage", stderr.String())
	}

	_, _, err := parseConvertFlags("code", []string{"-h"}, &bytes.Buffer{})
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("error = %v, want ErrHelp", err)
	}
}

func TestParseDoctorFlags(t *testing.T) {
	t.Parallel()

	f, err := parseDoctorFlags([]string{"--json", "-c", "course"}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !f.json || f.config != "course" {
		t.Errorf("flags = %+v", f)
	}
}

func TestPrintConvertUsage(t *testing.T) {
	t.Parallel()

	for _, command := range []string{"code", "lectures", "all"} {
		var buf bytes.Buffer
		printConvertUsage(&buf, command)
		if !strings.Contains(buf.String(), "Usage: coursepdf "+command) {
			t.Errorf("%s usage = %q", command, buf.String())
		}
		if !strings.Contains(buf.String(), "--strict") {
			t.Errorf("%s usage does not document --strict", command)
		}
	}
}
