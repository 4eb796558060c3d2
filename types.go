package coursepdf

import (
	"fmt"
	"strings"
	"time"

	"github.com/alnah/go-coursepdf/internal/assets"
)

// Kind selects the transform, page template and stylesheet for a document.
type Kind int

// Document kinds.
const (
	KindCode Kind = iota + 1
	KindLecture
)

// String returns the kind's name as used on the command line.
func (k Kind) String() string {
	switch k {
	case KindCode:
		return "code"
	case KindLecture:
		return "lecture"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k == KindCode || k == KindLecture
}

// assetName returns the built-in style and template name for k.
func (k Kind) assetName() string {
	if k == KindLecture {
		return assets.LectureAsset
	}
	return assets.CodeAsset
}

// ParseKind parses "code" or "lecture" (also "lectures"), case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "code":
		return KindCode, nil
	case "lecture", "lectures":
		return KindLecture, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidKind, s)
	}
}

// Input contains conversion parameters.
type Input struct {
	Kind      Kind   // Required
	Path      string // Source file path; its base name drives number and title
	Content   string // Source text; may be empty
	SourceDir string // Lectures: base for relative image paths (empty = no rewriting)
	HTMLOnly  bool   // Skip PDF rendering
}

// ConvertResult holds the assembled HTML and the rendered PDF.
type ConvertResult struct {
	Source SourceFile // Metadata the document was built with
	HTML   []byte
	PDF    []byte // nil when Input.HTMLOnly
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	timeout           time.Duration
	assetPath         string
	highlightLanguage string
	highlightStyle    string
	titles            map[string]string
}

// defaultTimeout bounds one conversion, browser start included.
const defaultTimeout = 60 * time.Second

// WithTimeout sets the per-document conversion timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("coursepdf: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithAssetPath loads styles and page templates from dir, falling back to
// the embedded assets for files dir does not provide.
func WithAssetPath(dir string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = dir
	}
}

// WithHighlight selects the chroma lexer for code documents and the chroma
// style for both kinds. Empty values keep the defaults (cpp, monokai).
func WithHighlight(language, style string) Option {
	return func(c *Converter) {
		c.cfg.highlightLanguage = language
		c.cfg.highlightStyle = style
	}
}

// WithTitles adds or replaces catalog titles for both kinds.
func WithTitles(titles map[string]string) Option {
	return func(c *Converter) {
		if c.cfg.titles == nil {
			c.cfg.titles = make(map[string]string, len(titles))
		}
		for num, title := range titles {
			c.cfg.titles[num] = title
		}
	}
}
