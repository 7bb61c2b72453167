package catalog

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// AnyID is the option value that matches every author or genre.
const AnyID = "any"

// DefaultPageSize is the number of previews rendered per increment.
const DefaultPageSize = 36

var (
	// ErrInvalidCatalog is returned when loaded catalog data breaks an invariant.
	ErrInvalidCatalog = errors.New("invalid catalog")
	// ErrNotFound is returned when a book id is not in the catalog.
	ErrNotFound = errors.New("book not found")
)

// Book is a single catalog record. Books are immutable once loaded.
type Book struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Image       string    `json:"image"`
	Description string    `json:"description"`
	Published   time.Time `json:"published"`
	Genres      []string  `json:"genres"`
}

// HasGenre reports whether the book is tagged with the genre id.
func (b Book) HasGenre(id string) bool {
	for _, g := range b.Genres {
		if g == id {
			return true
		}
	}
	return false
}

// Option is an id/display-name pair used to populate a dropdown.
type Option struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Catalog is the read-only, pre-loaded collection the browser works against.
type Catalog struct {
	Books    []Book
	Authors  map[string]string
	Genres   map[string]string
	PageSize int

	byID map[string]int
}

// New builds a catalog and indexes it by book id.
func New(books []Book, authors, genres map[string]string, pageSize int) (*Catalog, error) {
	if pageSize < 1 {
		return nil, fmt.Errorf("%w: page size %d", ErrInvalidCatalog, pageSize)
	}
	if authors == nil {
		authors = map[string]string{}
	}
	if genres == nil {
		genres = map[string]string{}
	}

	byID := make(map[string]int, len(books))
	for i, b := range books {
		if b.ID == "" {
			return nil, fmt.Errorf("%w: book at position %d has no id", ErrInvalidCatalog, i)
		}
		if _, dup := byID[b.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate book id %q", ErrInvalidCatalog, b.ID)
		}
		byID[b.ID] = i
	}

	return &Catalog{
		Books:    books,
		Authors:  authors,
		Genres:   genres,
		PageSize: pageSize,
		byID:     byID,
	}, nil
}

// Book looks up a book by id.
func (c *Catalog) Book(id string) (Book, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Book{}, false
	}
	return c.Books[i], true
}

// AuthorName resolves an author id to its display name.
func (c *Catalog) AuthorName(id string) (string, bool) {
	name, ok := c.Authors[id]
	return name, ok
}

// GenreName resolves a genre id to its display name.
func (c *Catalog) GenreName(id string) (string, bool) {
	name, ok := c.Genres[id]
	return name, ok
}

// SortedAuthors returns the author map as options ordered by name.
func (c *Catalog) SortedAuthors() []Option {
	return sortedOptions(c.Authors)
}

// SortedGenres returns the genre map as options ordered by name.
func (c *Catalog) SortedGenres() []Option {
	return sortedOptions(c.Genres)
}

func sortedOptions(m map[string]string) []Option {
	out := make([]Option, 0, len(m))
	for id, name := range m {
		out = append(out, Option{ID: id, Name: name})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out
}
