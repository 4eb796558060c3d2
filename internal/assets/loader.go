package assets

// Built-in asset names, one per document kind.
const (
	CodeAsset    = "code"
	LectureAsset = "lecture"
)

// AssetLoader loads stylesheets and page templates by name.
type AssetLoader interface {
	// LoadStyle returns the CSS for name (without .css extension).
	LoadStyle(name string) (string, error)

	// LoadTemplate returns the page template for name (without .html extension).
	LoadTemplate(name string) (string, error)
}
