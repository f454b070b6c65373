// Package document holds the page-text model extracted from a PDF file.
package document

import (
	"path/filepath"
	"strings"
)

// Document is an ordered sequence of page texts. It is immutable after
// construction and owned by the reader for the lifetime of the open file.
type Document struct {
	path  string
	pages []string
}

// New builds a Document from extracted page texts. The slice is copied so
// later mutation by the caller cannot affect the document.
func New(path string, pages []string) *Document {
	copied := make([]string, len(pages))
	copy(copied, pages)
	return &Document{path: path, pages: copied}
}

// Path returns the source file path.
func (d *Document) Path() string {
	return d.path
}

// Name returns the base file name for display.
func (d *Document) Name() string {
	return filepath.Base(d.path)
}

// PageCount returns the number of pages.
func (d *Document) PageCount() int {
	return len(d.pages)
}

// Page returns the text of page i, or "" if i is out of range.
func (d *Document) Page(i int) string {
	if i < 0 || i >= len(d.pages) {
		return ""
	}
	return d.pages[i]
}

// PageIsEmpty reports whether page i has no speakable text.
func (d *Document) PageIsEmpty(i int) bool {
	return strings.TrimSpace(d.Page(i)) == ""
}

// NextNonEmpty returns the index of the first non-empty page at or after
// from, or -1 if there is none.
func (d *Document) NextNonEmpty(from int) int {
	for i := from; i < len(d.pages); i++ {
		if !d.PageIsEmpty(i) {
			return i
		}
	}
	return -1
}
