// Package pipeline implements the content stages shared by both document kinds.
//
// Code documents:
//   - C++ source highlighted by chroma into inline-styled HTML
//
// Lecture documents:
//   - Markdown preprocessing (line endings, YAML front matter)
//   - Markdown to HTML conversion via Goldmark (tables, fenced code, hard wraps)
//   - [TOC] marker expansion and relative path rewriting on the HTML tree
//
// Both kinds end in the Assembler, which renders the kind's page template
// with the stylesheet and the transformed content. PDF rendering lives in the
// root coursepdf package.
package pipeline
