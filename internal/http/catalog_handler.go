package http

import (
	"net/http"
	"net/url"
	"strconv"

	"bookconnect/internal/catalog"
	"bookconnect/internal/httpx"
	"bookconnect/internal/pagination"
	"bookconnect/internal/render"
	"bookconnect/internal/search"

	"github.com/go-chi/chi/v5"
)

// CatalogHandler serves the read-only JSON view of the catalog.
type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(c *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: c}
}

type BookResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	AuthorID    string   `json:"author_id"`
	Author      string   `json:"author"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Published   string   `json:"published"`
	Year        int      `json:"year"`
	Genres      []string `json:"genres"`
}

func (h *CatalogHandler) toResponse(b catalog.Book) BookResponse {
	author, ok := h.catalog.AuthorName(b.Author)
	if !ok {
		author = render.UnknownAuthor
	}
	genres := b.Genres
	if genres == nil {
		genres = []string{}
	}
	return BookResponse{
		ID:          b.ID,
		Title:       b.Title,
		AuthorID:    b.Author,
		Author:      author,
		Image:       b.Image,
		Description: b.Description,
		Published:   b.Published.Format("2006-01-02"),
		Year:        b.Published.Year(),
		Genres:      genres,
	}
}

// ListQuery is the query string of GET /v1/catalog/books.
type ListQuery struct {
	Page     int    `query:"page" validate:"min=1"`
	PageSize int    `query:"page_size" validate:"min=1,max=100"`
	Genre    string `query:"genre" validate:"omitempty,catalog_id"`
	Author   string `query:"author" validate:"omitempty,catalog_id"`
	Title    string `query:"title" validate:"max=200"`
}

func (h *CatalogHandler) parseListQuery(q url.Values) ListQuery {
	return ListQuery{
		Page:     intParam(q.Get("page"), 1),
		PageSize: intParam(q.Get("page_size"), min(h.catalog.PageSize, 100)),
		Genre:    q.Get("genre"),
		Author:   q.Get("author"),
		Title:    q.Get("title"),
	}
}

// List handles GET /v1/catalog/books. Filters use the same rules as the
// search overlay.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	q := h.parseListQuery(r.URL.Query())
	if details := ValidateStruct(q); len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters", details)
		return
	}

	criteria := search.CriteriaFromForm(url.Values{
		"genre":  {q.Genre},
		"author": {q.Author},
		"title":  {q.Title},
	})
	matches := search.Filter(criteria, h.catalog.Books)
	window := pagination.Window(matches, q.Page, q.PageSize)

	out := make([]BookResponse, len(window))
	for i, b := range window {
		out[i] = h.toResponse(b)
	}

	httpx.JSONSuccess(w, r, out, map[string]any{
		"page":        q.Page,
		"page_size":   q.PageSize,
		"total":       len(matches),
		"total_pages": pagination.TotalPages(len(matches), q.PageSize),
	})
}

// Get handles GET /v1/catalog/books/{id}.
func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	b, ok := h.catalog.Book(chi.URLParam(r, "id"))
	if !ok {
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", catalog.ErrNotFound.Error(), nil)
		return
	}
	httpx.JSONSuccess(w, r, h.toResponse(b), nil)
}

// Genres handles GET /v1/catalog/genres.
func (h *CatalogHandler) Genres(w http.ResponseWriter, r *http.Request) {
	httpx.JSONSuccess(w, r, h.catalog.SortedGenres(), nil)
}

// Authors handles GET /v1/catalog/authors.
func (h *CatalogHandler) Authors(w http.ResponseWriter, r *http.Request) {
	httpx.JSONSuccess(w, r, h.catalog.SortedAuthors(), nil)
}

// intParam parses an integer query value. Non-numbers map to 0 so validation
// rejects them.
func intParam(raw string, def int) int {
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}
