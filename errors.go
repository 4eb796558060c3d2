package coursepdf

import (
	"errors"

	"github.com/alnah/go-coursepdf/internal/assets"
	"github.com/alnah/go-coursepdf/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrInvalidKind    = errors.New("invalid document kind")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPDFGeneration  = errors.New("PDF generation failed")

	// Content stage errors.
	ErrHighlight      = pipeline.ErrHighlight
	ErrHTMLConversion = pipeline.ErrHTMLConversion
	ErrTemplateParse  = pipeline.ErrTemplateParse
	ErrTemplateRender = pipeline.ErrTemplateRender

	// Asset loading errors.
	ErrStyleNotFound    = assets.ErrStyleNotFound
	ErrTemplateNotFound = assets.ErrTemplateNotFound
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
