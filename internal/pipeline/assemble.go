package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
)

// Sentinel errors for document assembly.
var (
	ErrTemplateParse  = errors.New("page template parsing failed")
	ErrTemplateRender = errors.New("page template rendering failed")
)

// DocumentData fills a page template.
// Content and CSS are trusted output of earlier stages and are inserted
// verbatim; Title and SourceName are escaped.
type DocumentData struct {
	Title      string
	Number     string
	SourceName string
	CSS        template.CSS
	Content    template.HTML
}

// DocumentAssembler renders a complete HTML document.
type DocumentAssembler interface {
	Assemble(ctx context.Context, data *DocumentData) (string, error)
}

// Assembler renders one parsed page template.
type Assembler struct {
	tmpl *template.Template
}

// NewAssembler parses tmplContent as an html/template page.
func NewAssembler(name, tmplContent string) (*Assembler, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateParse, name, err)
	}
	return &Assembler{tmpl: tmpl}, nil
}

// Assemble renders the page for data.
func (a *Assembler) Assemble(ctx context.Context, data *DocumentData) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if data == nil {
		return "", fmt.Errorf("%w: nil document data", ErrTemplateRender)
	}

	var buf bytes.Buffer
	if err := a.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	return buf.String(), nil
}

var _ DocumentAssembler = (*Assembler)(nil)
