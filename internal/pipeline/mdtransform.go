package pipeline

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/alnah/go-coursepdf/internal/yamlutil"
)

var crlfOrCR = regexp.MustCompile(`\r\n?`)

// FrontMatter holds the optional YAML header of a lecture file.
type FrontMatter struct {
	Title string `yaml:"title"` // Overrides the catalog title when set
}

// Preprocessed is a lecture ready for Markdown conversion.
type Preprocessed struct {
	Body        string
	FrontMatter FrontMatter
}

// MarkdownPreprocessor prepares lecture Markdown for conversion.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) (*Preprocessed, error)
}

// LecturePreprocessor normalizes line endings and strips a leading
// "---" delimited YAML header.
type LecturePreprocessor struct{}

// yamlFormat restricts front matter detection to "---" blocks. Other
// delimiters (+++, ;;;) are ordinary Markdown in lecture notes.
var yamlFormat = frontmatter.NewFormat("---", "---", unmarshalFrontMatter)

// unmarshalFrontMatter accepts an empty header.
func unmarshalFrontMatter(data []byte, v any) error {
	if err := yamlutil.Decode(data, v); !errors.Is(err, yamlutil.ErrEmpty) {
		return err
	}
	return nil
}

// PreprocessMarkdown normalizes content and separates its front matter.
// Content without front matter is returned whole, and so is content whose
// leading "---" block is not a YAML mapping: notes may open with a
// thematic break.
func (p *LecturePreprocessor) PreprocessMarkdown(ctx context.Context, content string) (*Preprocessed, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content = normalizeLineEndings(content)

	var meta FrontMatter
	body, err := frontmatter.Parse(strings.NewReader(content), &meta, yamlFormat)
	if err != nil {
		return &Preprocessed{Body: content}, nil
	}

	meta.Title = strings.TrimSpace(meta.Title)
	return &Preprocessed{Body: string(body), FrontMatter: meta}, nil
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

var _ MarkdownPreprocessor = (*LecturePreprocessor)(nil)
