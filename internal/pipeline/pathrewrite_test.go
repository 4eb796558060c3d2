package pipeline

// Notes:
// - Expected file:// URLs are Unix-shaped, so the table is skipped on Windows.

import (
	"runtime"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestRewriteRelativePaths - Lecture image references
// ---------------------------------------------------------------------------

func TestRewriteRelativePaths(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("expected URLs use Unix paths")
	}

	tests := []struct {
		name      string
		html      string
		sourceDir string
		want      string
	}{
		{name: "relative image", html: `<img src="img/heap.png">`, sourceDir: "/course/lectures", want: `src="file:///course/lectures/img/heap.png"`},
		{name: "dot slash image", html: `<img src="./heap.png">`, sourceDir: "/course/lectures", want: `src="file:///course/lectures/heap.png"`},
		{name: "relative link", html: `<a href="notes/extra.md">x</a>`, sourceDir: "/course/lectures", want: `href="file:///course/lectures/notes/extra.md"`},
		{name: "anchor unchanged", html: `<a href="#intro">x</a>`, sourceDir: "/course/lectures", want: `href="#intro"`},
		{name: "https unchanged", html: `<img src="https://example.com/a.png">`, sourceDir: "/course/lectures", want: `src="https://example.com/a.png"`},
		{name: "data URI unchanged", html: `<img src="data:image/png;base64,AA">`, sourceDir: "/course/lectures", want: `src="data:image/png;base64,AA"`},
		{name: "mailto unchanged", html: `<a href="mailto:ta@example.com">x</a>`, sourceDir: "/course/lectures", want: `href="mailto:ta@example.com"`},
		{name: "absolute unchanged", html: `<img src="/srv/a.png">`, sourceDir: "/course/lectures", want: `src="/srv/a.png"`},
		{name: "traversal unchanged", html: `<img src="../../etc/passwd">`, sourceDir: "/course/lectures", want: `src="../../etc/passwd"`},
		{name: "empty source dir", html: `<img src="a.png">`, sourceDir: "", want: `src="a.png"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := RewriteRelativePaths(tt.html, tt.sourceDir)
			if err != nil {
				t.Fatalf("RewriteRelativePaths() error: %v", err)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("got %q, want it to contain %q", got, tt.want)
			}
		})
	}
}

func TestRewriteRelativePaths_KeepsSurroundingMarkup(t *testing.T) {
	t.Parallel()

	got, err := RewriteRelativePaths(`<p>before</p><table><tr><td>cell</td></tr></table>`, t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"<p>before</p>", "<td>cell</td>"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q\ngot: %s", want, got)
		}
	}
	if strings.Contains(got, "<body>") {
		t.Error("fragment should not gain a body wrapper")
	}
}
