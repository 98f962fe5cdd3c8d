package source

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/tsawler/tabula"
	"github.com/tsawler/tabula/ocr"
	"github.com/tsawler/tabula/reader"

	"docfield-mapper/internal/diagnostic"
	"docfield-mapper/internal/match"
)

// Defaults for Options.
const (
	DefaultMinTextChars = 20
	DefaultOCRLanguage  = "eng"
)

// Options controls how documents are read.
type Options struct {
	// MinTextChars is the amount of trimmed text below which a page is
	// reported as sparse.
	MinTextChars int
	// OCRLanguage is the Tesseract language used for images.
	OCRLanguage string
}

// DefaultOptions returns the default Options.
func DefaultOptions() Options {
	return Options{
		MinTextChars: DefaultMinTextChars,
		OCRLanguage:  DefaultOCRLanguage,
	}
}

// Document is a loaded document.
type Document struct {
	Path   string
	Format Format
	// Pages holds the cleaned text of each page.
	Pages []string
	// Lines is the joined page text split into lines.
	Lines []string

	Diagnostics diagnostic.Diagnostics
}

// Text returns the joined page text.
func (d *Document) Text() string {
	return JoinPages(d.Pages)
}

// Load reads the document at path and splits it into lines.
func Load(ctx context.Context, path string, opts Options) (*Document, error) {
	if opts.MinTextChars <= 0 {
		opts.MinTextChars = DefaultMinTextChars
	}

	if opts.OCRLanguage == "" {
		opts.OCRLanguage = DefaultOCRLanguage
	}

	format := DetectFormat(path)

	var (
		pages []string
		err   error
	)

	switch format {
	case FormatPDF:
		pages, err = readPDF(ctx, path)
	case FormatDOCX, FormatODT:
		pages, err = readOffice(path)
	case FormatImage:
		pages, err = readImage(path, opts.OCRLanguage)
	case FormatText:
		pages, err = readText(path)
	}

	if err != nil {
		return nil, err
	}

	slog.Debug("loaded document", "path", path, "format", format, "pages", len(pages))

	return newDocument(path, format, pages, opts), nil
}

// FromText builds a Document from text that is already in memory.
func FromText(name, text string, opts Options) *Document {
	if opts.MinTextChars <= 0 {
		opts.MinTextChars = DefaultMinTextChars
	}

	return newDocument(name, FormatText, []string{text}, opts)
}

func newDocument(path string, format Format, raw []string, opts Options) *Document {
	doc := &Document{
		Path:   path,
		Format: format,
		Pages:  make([]string, len(raw)),
	}

	for i, p := range raw {
		doc.Pages[i] = CleanPage(p)

		if n := utf8.RuneCountInString(match.TrimSpace(doc.Pages[i])); n < opts.MinTextChars {
			doc.Diagnostics.AddWarning(diagnostic.CodeSparseText,
				fmt.Sprintf("page %d has %d characters of text; scanned pages need OCR", i+1, n), "")
		}
	}

	doc.Lines = SplitLines(doc.Text())

	return doc
}

func readText(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	return []string{string(data)}, nil
}

func readOffice(path string) ([]string, error) {
	text, warnings, err := tabula.Open(path).Text()
	if err != nil {
		return nil, fmt.Errorf("failed to extract text from %s: %w", path, err)
	}

	logWarnings(path, 0, warnings)

	return []string{text}, nil
}

// readPDF extracts each page on its own so that sparse pages can be
// reported individually.
func readPDF(ctx context.Context, path string) ([]string, error) {
	r, err := reader.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer r.Close()

	count, err := r.PageCount()
	if err != nil {
		return nil, fmt.Errorf("failed to count PDF pages: %w", err)
	}

	pages := make([]string, 0, count)

	for i := 1; i <= count; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		text, warnings, err := tabula.FromReader(r).Pages(i).Text()
		if err != nil {
			return nil, fmt.Errorf("failed to extract page %d: %w", i, err)
		}

		logWarnings(path, i, warnings)

		pages = append(pages, text)
	}

	return pages, nil
}

func readImage(path, language string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}

	client, err := ocr.New()
	if err != nil {
		return nil, fmt.Errorf("failed to start OCR: %w", err)
	}
	defer client.Close()

	if err := client.SetLanguage(language); err != nil {
		return nil, fmt.Errorf("failed to set OCR language %q: %w", language, err)
	}

	text, err := client.RecognizeImage(data)
	if err != nil {
		return nil, fmt.Errorf("failed to recognize %s: %w", path, err)
	}

	return []string{text}, nil
}

func logWarnings(path string, page int, warnings []tabula.Warning) {
	for _, w := range warnings {
		slog.Warn("text extraction warning", "path", path, "page", page, "warning", fmt.Sprint(w))
	}
}
