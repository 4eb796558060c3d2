//go:build integration

package main

// Notes:
// - Runs the real converter pool and Chrome. Requires a browser.
// - Run with: go test -tags integration ./cmd/coursepdf/

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestIntegration_All(t *testing.T) {
	isolateConfig(t)

	if err := os.MkdirAll("code", 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll("lectures", 0o750); err != nil {
		t.Fatal(err)
	}
	cpp := "#include <queue>\n\nint main() {\n\tstd::priority_queue<int> pq;\n\treturn 0;\n}\n"
	if err := os.WriteFile(filepath.Join("code", "lecture-05-samples.cpp"), []byte(cpp), 0o600); err != nil {
		t.Fatal(err)
	}
	md := "# String Sorts\n\n```cpp\nint x = 1;\n```\n"
	if err := os.WriteFile(filepath.Join("lectures", "Lecture-13.md"), []byte(md), 0o600); err != nil {
		t.Fatal(err)
	}

	env := DefaultEnv()
	var stdout, stderr bytes.Buffer
	env.Stdout, env.Stderr = &stdout, &stderr
	env.SetMaxProcs = nil

	if code := run([]string{"coursepdf", "all", "--html", "--timeout", "2m"}, env); code != ExitSuccess {
		t.Fatalf("exit code = %d\nstdout: %s\nstderr: %s", code, stdout.String(), stderr.String())
	}
	if !strings.Contains(stdout.String(), "Done! 1/1 PDFs created.") {
		t.Errorf("stdout = %s", stdout.String())
	}

	for _, path := range []string{filepath.Join("code", "lecture-05-samples.pdf"), "Lecture-13.pdf"} {
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading %s: %v", path, err)
		}
		if !bytes.HasPrefix(data, []byte("%PDF")) {
			t.Errorf("%s is not a PDF", path)
		}
	}

	html, err := os.ReadFile(filepath.Join("code", "lecture-05-samples.html"))
	if err != nil {
		t.Fatalf("reading HTML: %v", err)
	}
	if !strings.Contains(string(html), "Lecture 05: Priority Queues and Heapsort") {
		t.Error("code header missing catalog title")
	}
	lecture, err := os.ReadFile("Lecture-13.html")
	if err != nil {
		t.Fatalf("reading lecture HTML: %v", err)
	}
	if !strings.Contains(string(lecture), "Lecture 13: Lecture Notes") {
		t.Error("unmapped lecture should use the fallback title")
	}
}
