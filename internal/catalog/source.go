package catalog

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"html"
	"os"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

//go:generate mockgen -source=source.go -destination=mock_source.go -package=catalog

// Source loads the catalog from wherever it is kept.
type Source interface {
	Load(ctx context.Context) (*Catalog, error)
}

//go:embed sample_catalog.json
var sampleFS embed.FS

const sampleFile = "sample_catalog.json"

// Document is the on-disk JSON shape of a catalog.
type Document struct {
	Books   []Book            `json:"books"`
	Authors map[string]string `json:"authors"`
	Genres  map[string]string `json:"genres"`
}

// JSONSource reads a catalog document from a file, or the embedded sample when path is empty.
type JSONSource struct {
	path     string
	pageSize int
}

func NewJSONSource(path string, pageSize int) *JSONSource {
	return &JSONSource{
		path:     path,
		pageSize: pageSize,
	}
}

// NewSampleSource returns a source backed by the embedded sample catalog.
func NewSampleSource(pageSize int) *JSONSource {
	return NewJSONSource("", pageSize)
}

func (s *JSONSource) Load(ctx context.Context) (*Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := s.read()
	if err != nil {
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidCatalog, err)
	}

	for i := range doc.Books {
		doc.Books[i].Description = SanitizeText(doc.Books[i].Description)
	}

	return New(doc.Books, doc.Authors, doc.Genres, s.pageSize)
}

var textPolicy = bluemonday.StrictPolicy()

// SanitizeText strips markup from free text coming from a catalog source. The result is
// plain text; escaping is left to the renderer.
func SanitizeText(text string) string {
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(text)))
}

func (s *JSONSource) read() ([]byte, error) {
	if s.path == "" {
		return sampleFS.ReadFile(sampleFile)
	}
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", s.path, err)
	}
	return raw, nil
}
