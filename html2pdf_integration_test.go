//go:build integration

package coursepdf

// Notes:
// - Requires Chrome/Chromium (or network access for rod's managed download).
// - Run with: go test -tags integration ./...

import (
	"bytes"
	"context"
	"testing"
	"time"
)

func TestIntegration_ConvertBothKinds(t *testing.T) {
	pool := NewConverterPool(1, WithTimeout(2*time.Minute))
	defer func() { _ = pool.Close() }()

	conv, err := pool.Acquire()
	if err != nil {
		t.Fatalf("Acquire() error: %v", err)
	}
	defer pool.Release(conv)

	inputs := []Input{
		{Kind: KindCode, Path: "lecture-05-samples.cpp", Content: "#include <vector>\nint main() { return 0; }\n"},
		{Kind: KindLecture, Path: "Lecture-13.md", Content: "[TOC]\n\n# String Sorts\n\n| sort | stable |\n|---|---|\n| LSD | yes |\n"},
	}

	for _, input := range inputs {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		result, err := conv.Convert(ctx, input)
		cancel()
		if err != nil {
			t.Fatalf("Convert(%s) error: %v", input.Path, err)
		}
		if !bytes.HasPrefix(result.PDF, []byte("%PDF")) {
			t.Errorf("Convert(%s) did not return a PDF", input.Path)
		}
	}
}
