package coursepdf

import (
	"context"
	"fmt"
	"html/template"

	"github.com/alnah/go-coursepdf/internal/assets"
	"github.com/alnah/go-coursepdf/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.Highlighter          = (*pipeline.ChromaHighlighter)(nil)
	_ pipeline.MarkdownPreprocessor = (*pipeline.LecturePreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.DocumentAssembler    = (*pipeline.Assembler)(nil)
	_ pdfConverter                  = (*rodConverter)(nil)
	_ pdfRenderer                   = (*rodRenderer)(nil)
)

// page is the assembled look of one document kind.
type page struct {
	assembler pipeline.DocumentAssembler
	css       template.CSS
}

// Converter runs the course document pipeline.
// Create with NewConverter, use Convert per file, and Close when done.
// A Converter owns one browser and is not safe for concurrent Convert calls;
// use ConverterPool for parallel work.
type Converter struct {
	cfg           converterConfig
	assetLoader   assets.AssetLoader
	catalogs      map[Kind]*Catalog
	highlighter   pipeline.Highlighter
	preprocessor  pipeline.MarkdownPreprocessor
	htmlConverter pipeline.HTMLConverter
	pages         map[Kind]*page
	pdfConverter  pdfConverter
}

// NewConverter creates a Converter with the built-in catalog, embedded
// assets and a lazily started browser.
// Returns error if the asset path is invalid or an asset fails to load or parse.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:          converterConfig{timeout: defaultTimeout},
		assetLoader:  assets.NewEmbeddedLoader(),
		preprocessor: &pipeline.LecturePreprocessor{},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		c.assetLoader = resolver
	}

	c.catalogs = map[Kind]*Catalog{
		KindCode:    CourseCatalog(KindCode).With(c.cfg.titles),
		KindLecture: CourseCatalog(KindLecture).With(c.cfg.titles),
	}

	if c.highlighter == nil {
		c.highlighter = pipeline.NewChromaHighlighter(c.cfg.highlightLanguage, c.cfg.highlightStyle)
	}
	if c.htmlConverter == nil {
		c.htmlConverter = pipeline.NewGoldmarkConverter(c.cfg.highlightStyle)
	}

	c.pages = make(map[Kind]*page, 2)
	for _, kind := range []Kind{KindCode, KindLecture} {
		p, err := c.loadPage(kind)
		if err != nil {
			return nil, err
		}
		c.pages[kind] = p
	}

	if c.pdfConverter == nil {
		c.pdfConverter = newRodConverter(c.cfg.timeout)
	}

	return c, nil
}

// loadPage reads the stylesheet and template for kind.
func (c *Converter) loadPage(kind Kind) (*page, error) {
	name := kind.assetName()

	css, err := c.assetLoader.LoadStyle(name)
	if err != nil {
		return nil, fmt.Errorf("loading %s style: %w", kind, err)
	}

	tmpl, err := c.assetLoader.LoadTemplate(name)
	if err != nil {
		return nil, fmt.Errorf("loading %s template: %w", kind, err)
	}

	assembler, err := pipeline.NewAssembler(name, tmpl)
	if err != nil {
		return nil, err
	}

	// #nosec G203 -- stylesheet comes from embedded or operator-provided assets
	return &page{assembler: assembler, css: template.CSS(css)}, nil
}

// Catalog returns the title catalog used for kind.
func (c *Converter) Catalog(kind Kind) *Catalog {
	return c.catalogs[kind]
}

// Convert builds the document for one source file and renders it to PDF.
// The configured timeout applies on top of ctx.
// Recovers from internal panics so one bad file cannot crash a batch.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if !input.Kind.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKind, input.Kind)
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.timeout)
	defer cancel()

	source := DescribeSource(input.Path, c.catalogs[input.Kind])

	var content string
	switch input.Kind {
	case KindCode:
		content, err = c.highlighter.Highlight(ctx, input.Content)
		if err != nil {
			return nil, fmt.Errorf("highlighting source: %w", err)
		}
	case KindLecture:
		content, source.Title, err = c.transformLecture(ctx, input, source.Title)
		if err != nil {
			return nil, err
		}
	}

	pg := c.pages[input.Kind]
	// #nosec G203 -- content is markup produced by chroma or goldmark
	htmlDoc, err := pg.assembler.Assemble(ctx, &pipeline.DocumentData{
		Title:      source.Title,
		Number:     source.Number,
		SourceName: source.Name(),
		CSS:        pg.css,
		Content:    template.HTML(content),
	})
	if err != nil {
		return nil, fmt.Errorf("assembling document: %w", err)
	}

	result = &ConvertResult{Source: source, HTML: []byte(htmlDoc)}
	if input.HTMLOnly {
		return result, nil
	}

	pdf, err := c.pdfConverter.ToPDF(ctx, htmlDoc)
	if err != nil {
		return nil, err
	}
	result.PDF = pdf
	return result, nil
}

// transformLecture turns lecture Markdown into an HTML fragment. A front
// matter title replaces catalogTitle.
func (c *Converter) transformLecture(ctx context.Context, input Input, catalogTitle string) (string, string, error) {
	pre, err := c.preprocessor.PreprocessMarkdown(ctx, input.Content)
	if err != nil {
		return "", "", fmt.Errorf("preprocessing markdown: %w", err)
	}

	title := catalogTitle
	if pre.FrontMatter.Title != "" {
		title = pre.FrontMatter.Title
	}

	fragment, err := c.htmlConverter.ToHTML(ctx, pre.Body)
	if err != nil {
		return "", "", fmt.Errorf("converting to HTML: %w", err)
	}

	fragment, err = pipeline.ExpandTOC(ctx, fragment)
	if err != nil {
		return "", "", err
	}

	fragment, err = pipeline.RewriteRelativePaths(fragment, input.SourceDir)
	if err != nil {
		return "", "", fmt.Errorf("rewriting relative paths: %w", err)
	}

	return fragment, title, nil
}

// Close releases browser resources.
func (c *Converter) Close() error {
	if c.pdfConverter != nil {
		return c.pdfConverter.Close()
	}
	return nil
}
