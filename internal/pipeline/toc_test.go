package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestExpandTOC - [TOC] marker expansion
// ---------------------------------------------------------------------------

func TestExpandTOC(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		input        string
		wantContains []string
		wantExcludes []string
	}{
		{
			name:  "nested headings",
			input: `<h1 id="a">A</h1><p>[TOC]</p><h2 id="b">B</h2><h3 id="c">C</h3><h2 id="d">D</h2>`,
			wantContains: []string{
				`<nav class="toc"><ul><li><a href="#a">A</a><ul><li><a href="#b">B</a><ul><li><a href="#c">C</a></li></ul></li><li><a href="#d">D</a></li></ul></li></ul></nav>`,
			},
			wantExcludes: []string{TOCMarker},
		},
		{
			name:         "level gap nests one step",
			input:        `<p>[TOC]</p><h1 id="a">A</h1><h3 id="b">B</h3>`,
			wantContains: []string{`<li><a href="#a">A</a><ul><li><a href="#b">B</a></li></ul></li>`},
		},
		{
			name:         "heading without id skipped",
			input:        `<p>[TOC]</p><h2>No anchor</h2><h2 id="x">X</h2>`,
			wantContains: []string{`<a href="#x">X</a>`},
			wantExcludes: []string{"No anchor</a>"},
		},
		{
			name:         "heading text escaped",
			input:        `<p>[TOC]</p><h2 id="ops">get &amp; put</h2>`,
			wantContains: []string{`<a href="#ops">get &amp; put</a>`},
		},
		{
			name:         "no headings leaves empty list",
			input:        `<p>[TOC]</p><p>text</p>`,
			wantContains: []string{`<nav class="toc"><ul></ul></nav>`},
		},
		{
			name:         "marker inside text untouched",
			input:        `<p>see [TOC] above</p>`,
			wantContains: []string{`<p>see [TOC] above</p>`},
			wantExcludes: []string{"<nav"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ExpandTOC(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("ExpandTOC() error: %v", err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q\ngot: %s", want, got)
				}
			}
			for _, exclude := range tt.wantExcludes {
				if strings.Contains(got, exclude) {
					t.Errorf("output should not contain %q\ngot: %s", exclude, got)
				}
			}
		})
	}
}

func TestExpandTOC_NoMarkerUnchanged(t *testing.T) {
	t.Parallel()

	input := "<h1 id=\"a\">A</h1>\n<p>body</p>\n"
	got, err := ExpandTOC(context.Background(), input)
	if err != nil {
		t.Fatal(err)
	}
	if got != input {
		t.Errorf("ExpandTOC() = %q, want input unchanged", got)
	}
}

func TestExpandTOC_WithGoldmark(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	fragment, err := NewGoldmarkConverter("").ToHTML(ctx, "[TOC]\n\n# Graphs\n\n## Depth-First Search\n")
	if err != nil {
		t.Fatal(err)
	}

	got, err := ExpandTOC(ctx, fragment)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, `<a href="#depth-first-search">Depth-First Search</a>`) {
		t.Errorf("TOC should link goldmark heading ids\ngot: %s", got)
	}
}

func TestExpandTOC_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := ExpandTOC(ctx, "<p>[TOC]</p>"); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}
