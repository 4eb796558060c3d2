package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Highlighting defaults for course code samples.
const (
	DefaultLanguage = "cpp"
	DefaultStyle    = "monokai"
	TabWidth        = 4
)

// ErrHighlight indicates source highlighting failed.
var ErrHighlight = errors.New("highlighting failed")

// Highlighter turns source code into highlighted HTML markup.
type Highlighter interface {
	Highlight(ctx context.Context, source string) (string, error)
}

// ChromaHighlighter highlights source with chroma using inline styles,
// so the output needs no companion stylesheet.
type ChromaHighlighter struct {
	lexer     chroma.Lexer
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

// NewChromaHighlighter creates a ChromaHighlighter for the given chroma lexer
// and style names. Empty names select the defaults. Unknown lexers fall back
// to plain text, unknown styles to chroma's fallback style.
func NewChromaHighlighter(language, style string) *ChromaHighlighter {
	if language == "" {
		language = DefaultLanguage
	}
	if style == "" {
		style = DefaultStyle
	}

	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}

	return &ChromaHighlighter{
		lexer: chroma.Coalesce(lexer),
		style: styles.Get(style),
		formatter: chromahtml.New(
			chromahtml.WithClasses(false),
			chromahtml.TabWidth(TabWidth),
		),
	}
}

// Highlight renders source as a highlighted <pre> block.
// Tokenizing has no cancellation hook, so it runs in a goroutine and the
// caller's context is honored via select.
func (h *ChromaHighlighter) Highlight(ctx context.Context, source string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		iterator, err := h.lexer.Tokenise(nil, source)
		if err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHighlight, err)}
			return
		}

		var buf bytes.Buffer
		if err := h.formatter.Format(&buf, h.style, iterator); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHighlight, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// StyleName returns the name of the resolved chroma style.
func (h *ChromaHighlighter) StyleName() string {
	return h.style.Name
}

var _ Highlighter = (*ChromaHighlighter)(nil)
