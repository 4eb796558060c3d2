package coursepdf

import (
	"maps"
	"path/filepath"
	"strings"
)

// NoNumber is the lecture number given to file names without a "-".
const NoNumber = "00"

// Fallback titles for numbers missing from the catalog.
const (
	CodeFallbackTitle    = "Code Samples"
	LectureFallbackTitle = "Lecture Notes"
)

// courseTitles is the built-in lecture table of the algorithms course.
var courseTitles = map[string]string{
	"01": "Introduction, Algorithm Analysis, Big-O Notation",
	"02": "Elementary Data Structures (Arrays, Linked Lists, Stacks, Queues)",
	"03": "Elementary Sorting (Selection, Insertion, Shellsort)",
	"04": "Mergesort and Quicksort",
	"05": "Priority Queues and Heapsort",
	"06": "Binary Search Trees",
	"07": "Balanced Search Trees (Red-Black BSTs)",
	"08": "Hash Tables",
	"09": "Graph Fundamentals and Depth-First Search",
	"10": "Breadth-First Search and Graph Applications",
	"11": "Minimum Spanning Trees and Shortest Paths",
	"12": "Advanced Topics (String Algorithms, Tries, Dynamic Programming)",
}

// SourceFile is the metadata of one input file.
type SourceFile struct {
	Path   string
	Number string
	Title  string
}

// Name returns the base name of the source path.
func (s SourceFile) Name() string {
	return filepath.Base(s.Path)
}

// Heading returns "Lecture NN: Title".
func (s SourceFile) Heading() string {
	return "Lecture " + s.Number + ": " + s.Title
}

// ParseNumber extracts the lecture number from a file name: the second
// "-" separated token, cut at its first ".". Names without a "-" yield
// NoNumber. Malformed names never fail.
//
//	lecture-05-samples.cpp -> "05"
//	Lecture-13.md          -> "13"
//	notes.md               -> "00"
func ParseNumber(name string) string {
	base := filepath.Base(name)
	parts := strings.Split(base, "-")
	if len(parts) < 2 {
		return NoNumber
	}
	number, _, _ := strings.Cut(parts[1], ".")
	return number
}

// Catalog maps lecture numbers to titles, with a fallback for the rest.
// A Catalog is immutable once built.
type Catalog struct {
	titles   map[string]string
	fallback string
}

// NewCatalog builds a Catalog from a copy of titles.
func NewCatalog(titles map[string]string, fallback string) *Catalog {
	return &Catalog{titles: maps.Clone(titles), fallback: fallback}
}

// CourseCatalog returns the built-in course table with the fallback title
// for kind.
func CourseCatalog(kind Kind) *Catalog {
	fallback := CodeFallbackTitle
	if kind == KindLecture {
		fallback = LectureFallbackTitle
	}
	return NewCatalog(courseTitles, fallback)
}

// With returns a new Catalog with overrides added or replacing entries.
// Blank titles are ignored.
func (c *Catalog) With(overrides map[string]string) *Catalog {
	merged := maps.Clone(c.titles)
	if merged == nil {
		merged = make(map[string]string, len(overrides))
	}
	for num, title := range overrides {
		if strings.TrimSpace(title) != "" {
			merged[num] = title
		}
	}
	return &Catalog{titles: merged, fallback: c.fallback}
}

// Title returns the title for number, or the fallback.
func (c *Catalog) Title(number string) string {
	if title, ok := c.titles[number]; ok {
		return title
	}
	return c.fallback
}

// Lookup returns the title for number and whether the catalog has it.
func (c *Catalog) Lookup(number string) (string, bool) {
	title, ok := c.titles[number]
	return title, ok
}

// Fallback returns the title used for unknown numbers.
func (c *Catalog) Fallback() string {
	return c.fallback
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.titles)
}

// DescribeSource builds the SourceFile record for path.
func DescribeSource(path string, catalog *Catalog) SourceFile {
	number := ParseNumber(path)
	return SourceFile{
		Path:   path,
		Number: number,
		Title:  catalog.Title(number),
	}
}
