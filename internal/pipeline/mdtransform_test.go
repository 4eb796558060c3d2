package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestLecturePreprocessor - Line endings and front matter
// ---------------------------------------------------------------------------

func TestLecturePreprocessor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		wantBody  string
		wantTitle string
	}{
		{
			name:     "no front matter",
			input:    "# Hash Tables\n\nbody\n",
			wantBody: "# Hash Tables\n\nbody\n",
		},
		{
			name:      "front matter title",
			input:     "---\ntitle: Tries and Suffix Arrays\n---\n# Tries\n",
			wantBody:  "# Tries",
			wantTitle: "Tries and Suffix Arrays",
		},
		{
			name:     "CRLF normalized",
			input:    "line1\r\nline2\rline3",
			wantBody: "line1\nline2\nline3",
		},
		{
			name:     "empty front matter",
			input:    "---\n---\nbody",
			wantBody: "body",
		},
		{
			name:     "unknown keys tolerated",
			input:    "---\nauthor: someone\n---\nbody",
			wantBody: "body",
		},
	}

	p := &LecturePreprocessor{}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := p.PreprocessMarkdown(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("PreprocessMarkdown() error: %v", err)
			}
			if strings.TrimSpace(got.Body) != strings.TrimSpace(tt.wantBody) {
				t.Errorf("Body = %q, want %q", got.Body, tt.wantBody)
			}
			if got.FrontMatter.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", got.FrontMatter.Title, tt.wantTitle)
			}
		})
	}
}

func TestLecturePreprocessor_HeaderNotYAML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "thematic breaks around prose",
			input: "---\nA heap is a complete binary tree.\n---\n# Heapsort\n",
		},
		{
			name:  "thematic breaks around a list",
			input: "---\n- sink\n- swim\n---\nbody\n",
		},
		{
			name:  "malformed YAML",
			input: "---\ntitle: [unclosed\n---\nbody",
		},
	}

	p := &LecturePreprocessor{}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := p.PreprocessMarkdown(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("PreprocessMarkdown() error: %v", err)
			}
			if got.Body != tt.input {
				t.Errorf("Body = %q, want content unchanged %q", got.Body, tt.input)
			}
			if got.FrontMatter.Title != "" {
				t.Errorf("Title = %q, want empty", got.FrontMatter.Title)
			}
		})
	}
}

func TestLecturePreprocessor_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := (&LecturePreprocessor{}).PreprocessMarkdown(ctx, "x")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}
