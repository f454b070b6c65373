// Package extract turns PDF files into page-text documents.
package extract

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
	"go.uber.org/zap"

	"github.com/LN405Rx/lectern/internal/document"
)

var (
	// ErrNotFound is returned when the file does not exist.
	ErrNotFound = errors.New("file not found")
	// ErrInvalidPDF is returned when the file cannot be parsed as a PDF.
	ErrInvalidPDF = errors.New("invalid or corrupted PDF")
	// ErrEmptyDocument is returned when the PDF contains no pages.
	ErrEmptyDocument = errors.New("document has no pages")
)

// Extractor reads page texts from PDF files. It tries the Go library first
// and can fall back to pdftotext when the library fails on a file.
type Extractor struct {
	FallbackPdftotext bool

	logger *zap.Logger
}

// New creates an Extractor. logger may not be nil.
func New(logger *zap.Logger) *Extractor {
	return &Extractor{logger: logger}
}

// Extract loads the PDF at path and returns its ordered page texts.
func (e *Extractor) Extract(path string) (*document.Document, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	pages, err := extractPages(path)
	if err != nil && e.FallbackPdftotext {
		e.logger.Warn("pdf library failed, falling back to pdftotext",
			zap.String("file", path), zap.Error(err))
		pages, err = extractPdftotext(path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPDF, err)
	}
	if len(pages) == 0 {
		return nil, ErrEmptyDocument
	}

	e.logger.Info("document loaded",
		zap.String("file", path), zap.Int("pages", len(pages)))

	return document.New(path, pages), nil
}

func extractPages(path string) ([]string, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	numPages := reader.NumPage()
	pages := make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single unreadable page should not fail the whole document.
			pages = append(pages, "")
			continue
		}
		pages = append(pages, text)
	}
	return pages, nil
}

func extractPdftotext(path string) ([]string, error) {
	cmd := exec.Command("pdftotext", "-layout", path, "-")
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("pdftotext: %w", err)
	}
	// pdftotext separates pages with form feeds.
	return splitPages(string(out)), nil
}

func splitPages(text string) []string {
	pages := strings.Split(text, "\f")
	// A trailing form feed produces an empty final page; drop it.
	if n := len(pages); n > 1 && strings.TrimSpace(pages[n-1]) == "" {
		pages = pages[:n-1]
	}
	return pages
}
