package pipeline

import (
	"context"
	"fmt"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// TOCMarker is the paragraph text replaced by a table of contents.
const TOCMarker = "[TOC]"

// headingInfo is a heading eligible for the table of contents.
type headingInfo struct {
	Level int
	ID    string
	Text  string
}

var headingLevels = map[atom.Atom]int{
	atom.H1: 1, atom.H2: 2, atom.H3: 3,
	atom.H4: 4, atom.H5: 5, atom.H6: 6,
}

// ExpandTOC replaces every paragraph consisting solely of [TOC] with a
// nested list linking to the fragment's headings. Headings without an id
// are skipped. Content without a marker is returned unchanged.
func ExpandTOC(ctx context.Context, fragment string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	root, err := parseFragment(fragment)
	if err != nil {
		return "", fmt.Errorf("parsing HTML for table of contents: %w", err)
	}

	var markers []*html.Node
	var headings []headingInfo
	walk(root, func(n *html.Node) {
		if n.Type != html.ElementNode {
			return
		}
		if n.DataAtom == atom.P && textContent(n) == TOCMarker {
			markers = append(markers, n)
			return
		}
		if level, ok := headingLevels[n.DataAtom]; ok {
			if id := attr(n, "id"); id != "" {
				headings = append(headings, headingInfo{Level: level, ID: id, Text: textContent(n)})
			}
		}
	})

	if len(markers) == 0 {
		return fragment, nil
	}

	for _, marker := range markers {
		marker.Parent.InsertBefore(buildTOC(headings), marker)
		marker.Parent.RemoveChild(marker)
	}

	return renderFragment(root)
}

// buildTOC nests headings by relative level: a deeper heading opens a
// sublist under the previous entry, a shallower one climbs back out. Level
// gaps (h1 then h3) nest one step only.
func buildTOC(headings []headingInfo) *html.Node {
	nav := element(atom.Nav, html.Attribute{Key: "class", Val: "toc"})
	list := element(atom.Ul)
	nav.AppendChild(list)

	type frame struct {
		list  *html.Node
		level int
	}
	stack := []frame{}
	var lastItem *html.Node

	for _, h := range headings {
		switch {
		case len(stack) == 0:
			stack = append(stack, frame{list: list, level: h.Level})
		case h.Level > stack[len(stack)-1].level && lastItem != nil:
			sub := element(atom.Ul)
			lastItem.AppendChild(sub)
			stack = append(stack, frame{list: sub, level: h.Level})
		default:
			for len(stack) > 1 && h.Level < stack[len(stack)-1].level {
				stack = stack[:len(stack)-1]
			}
		}

		item := element(atom.Li)
		link := element(atom.A, html.Attribute{Key: "href", Val: "#" + h.ID})
		link.AppendChild(&html.Node{Type: html.TextNode, Data: h.Text})
		item.AppendChild(link)
		stack[len(stack)-1].list.AppendChild(item)
		lastItem = item
	}

	return nav
}
