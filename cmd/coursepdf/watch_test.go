package main

// Notes:
// - The watcher test depends on real filesystem events; it uses a short
//   debounce and a generous deadline so slow CI machines still pass.

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestSourceWatcher_Target(t *testing.T) {
	t.Parallel()

	code := batchTarget{profile: codeProfile, inputDir: filepath.Clean("course/code"), outputDir: "course/code"}
	lectures := batchTarget{profile: lecturesProfile, inputDir: filepath.Clean("course/lectures"), outputDir: "course"}
	sw := &sourceWatcher{targets: []batchTarget{code, lectures}}

	tests := []struct {
		path    string
		want    string
		matched bool
	}{
		{filepath.Join("course", "code", "lecture-01-samples.cpp"), "code", true},
		{filepath.Join("course", "lectures", "Lecture-01.md"), "lectures", true},
		{filepath.Join("course", "code", "lecture-01-samples.pdf"), "", false},
		{filepath.Join("course", "lectures", "lecture-01-samples.cpp"), "", false},
		{filepath.Join("elsewhere", "Lecture-01.md"), "", false},
	}

	for _, tt := range tests {
		got, ok := sw.target(tt.path)
		if ok != tt.matched {
			t.Errorf("target(%q) matched = %v, want %v", tt.path, ok, tt.matched)
			continue
		}
		if ok && got.profile.command != tt.want {
			t.Errorf("target(%q) = %s, want %s", tt.path, got.profile.command, tt.want)
		}
	}
}

func TestTakePending(t *testing.T) {
	t.Parallel()

	code := batchTarget{profile: codeProfile, inputDir: "code", outputDir: "code"}
	lectures := batchTarget{profile: lecturesProfile, inputDir: "lectures", outputDir: "."}
	pending := map[string]batchTarget{
		filepath.Join("code", "lecture-02-samples.cpp"): code,
		filepath.Join("code", "lecture-01-samples.cpp"): code,
		filepath.Join("lectures", "Lecture-01.md"):      lectures,
	}

	files := takePending(pending, code)

	if len(files) != 2 || filepath.Base(files[0].InputPath) != "lecture-01-samples.cpp" {
		t.Fatalf("files = %+v, want two sorted code files", files)
	}
	if files[1].OutputPath != filepath.Join("code", "lecture-02-samples.pdf") {
		t.Errorf("OutputPath = %s", files[1].OutputPath)
	}
	if len(pending) != 1 {
		t.Errorf("pending has %d entries, want only the lecture left", len(pending))
	}
}

func TestSourceWatcher_Run(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := batchTarget{profile: lecturesProfile, inputDir: filepath.Clean(dir), outputDir: filepath.Dir(dir)}

	sw, err := newSourceWatcher([]batchTarget{target})
	if err != nil {
		t.Fatalf("newSourceWatcher: %v", err)
	}
	defer sw.Close()
	sw.debounce = 20 * time.Millisecond

	changes := make(chan []FileToConvert, 4)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- sw.run(ctx, newLogger(&bytes.Buffer{}, false), func(_ batchTarget, files []FileToConvert) {
			changes <- files
		})
	}()

	writeFiles(t, dir, "notes.txt", "Lecture-04.md")

	select {
	case files := <-changes:
		if len(files) != 1 || filepath.Base(files[0].InputPath) != "Lecture-04.md" {
			t.Errorf("changed files = %+v, want Lecture-04.md only", files)
		}
		if files[0].OutputPath != filepath.Join(filepath.Dir(dir), "Lecture-04.pdf") {
			t.Errorf("OutputPath = %s", files[0].OutputPath)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("run returned %v, want nil on cancel", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("run did not stop after cancel")
	}
}

func TestNewSourceWatcher_MissingDirSkipped(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	lectures := filepath.Join(root, "lectures")
	if err := os.Mkdir(lectures, 0o750); err != nil {
		t.Fatal(err)
	}
	targets := []batchTarget{
		{profile: codeProfile, inputDir: filepath.Join(root, "gone")},
		{profile: lecturesProfile, inputDir: lectures, outputDir: root},
	}

	sw, err := newSourceWatcher(targets)
	if err != nil {
		t.Fatalf("newSourceWatcher: %v", err)
	}
	defer sw.Close()

	if got := sw.watcher.WatchList(); len(got) != 1 || got[0] != lectures {
		t.Errorf("watching %v, want only %s", got, lectures)
	}
}

func TestPrintChanged(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv(&mockPool{}, nil)
	printChanged(env, []ConversionResult{
		{InputPath: "code/lecture-01-samples.cpp", OutputPath: "code/lecture-01-samples.pdf"},
		{InputPath: "code/lecture-02-samples.cpp", Err: errMockRender},
	}, reportOptions{})

	out := stdout.String()
	if !strings.Contains(out, "  [09:30:00] Updated: lecture-01-samples.pdf\n") {
		t.Errorf("stdout = %q", out)
	}
	if !strings.Contains(out, "  ERROR converting lecture-02-samples.cpp: render exploded\n") {
		t.Errorf("stdout = %q", out)
	}
}

func TestWatchSources_CanceledContext(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "lecture-01-samples.cpp"), nil, 0o600); err != nil {
		t.Fatal(err)
	}
	env, stdout, _ := testEnv(&mockPool{conv: &mockConverter{}}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	targets := []batchTarget{{profile: codeProfile, inputDir: dir, outputDir: dir}}
	err := watchSources(ctx, targets, &mockPool{conv: &mockConverter{}}, &convertFlags{}, env, newLogger(&bytes.Buffer{}, false), reportOptions{})
	if err != nil {
		t.Errorf("watchSources() = %v, want nil", err)
	}
	if !strings.Contains(stdout.String(), "Watching "+dir) {
		t.Errorf("stdout = %q", stdout.String())
	}
}
