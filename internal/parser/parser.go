package parser

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned by ForFile for unknown extensions.
var ErrUnsupportedFormat = errors.New("unsupported file extension")

// Document is an open paginated document.
type Document interface {
	// Name is the base filename the document was opened from.
	Name() string
	PageCount() int
	// Page returns page n, 1-based.
	Page(n int) (*Page, error)
	// Outline returns the embedded bookmark table in document order, or nil
	// when the document has none.
	Outline() ([]OutlineItem, error)
	Close() error
}

// OutlineItem is one entry of an embedded outline.
type OutlineItem struct {
	Depth int
	Title string
	Page  int
}

// Opener opens documents of one format.
type Opener interface {
	Open(path string) (Document, error)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".pdf":      true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".docx":     true,
	".txt":      true,
}

// ForFile returns the appropriate opener for a filename.
func ForFile(filename string) (Opener, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return &PDFParser{}, nil
	case ".md", ".markdown":
		return &MarkdownParser{}, nil
	case ".html", ".htm":
		return &HTMLParser{}, nil
	case ".docx":
		return &DOCXParser{}, nil
	case ".txt":
		return &TextParser{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

// Open picks a parser by extension and opens path.
func Open(path string) (Document, error) {
	p, err := ForFile(path)
	if err != nil {
		return nil, err
	}
	return p.Open(path)
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// IsBoldFont reports whether a font name denotes a bold or black weight.
func IsBoldFont(font string) bool {
	f := strings.ToLower(font)
	return strings.Contains(f, "bold") || strings.Contains(f, "black")
}
