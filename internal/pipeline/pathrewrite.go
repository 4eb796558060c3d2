package pipeline

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RewriteRelativePaths turns relative img[src] and a[href] references into
// absolute file:// URLs under sourceDir. The assembled page is loaded from a
// temp file, so a lecture's relative image paths would otherwise dangle.
// URLs, anchors, absolute paths and paths escaping sourceDir are left alone.
// An empty sourceDir returns the fragment unchanged.
func RewriteRelativePaths(fragment, sourceDir string) (string, error) {
	if sourceDir == "" {
		return fragment, nil
	}

	absDir, err := filepath.Abs(sourceDir)
	if err != nil {
		return "", fmt.Errorf("resolving source directory: %w", err)
	}

	root, err := parseFragment(fragment)
	if err != nil {
		return "", fmt.Errorf("parsing HTML for path rewriting: %w", err)
	}

	walk(root, func(n *html.Node) {
		if n.Type != html.ElementNode {
			return
		}
		switch n.DataAtom {
		case atom.Img:
			rewriteAttr(n, "src", absDir)
		case atom.A:
			rewriteAttr(n, "href", absDir)
		}
	})

	return renderFragment(root)
}

func rewriteAttr(n *html.Node, key, dir string) {
	for i := range n.Attr {
		if n.Attr[i].Key != key || !isRelativeRef(n.Attr[i].Val) {
			continue
		}
		target := filepath.Join(dir, filepath.FromSlash(n.Attr[i].Val))
		if !isWithin(target, dir) {
			continue
		}
		n.Attr[i].Val = (&url.URL{Scheme: "file", Path: filepath.ToSlash(target)}).String()
	}
}

// isRelativeRef reports whether ref is a relative filesystem reference.
func isRelativeRef(ref string) bool {
	if ref == "" || strings.HasPrefix(ref, "#") || strings.HasPrefix(ref, "//") {
		return false
	}
	if u, err := url.Parse(ref); err == nil && u.Scheme != "" {
		return false
	}
	return !filepath.IsAbs(ref) && !strings.HasPrefix(ref, "/")
}

// isWithin reports whether path is dir or lies below it.
func isWithin(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
