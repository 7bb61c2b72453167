package render

import (
	"fmt"

	"bookconnect/internal/catalog"
	"bookconnect/internal/pagination"
	"bookconnect/internal/view"

	"github.com/sirupsen/logrus"
)

// UnknownAuthor is shown when a book's author id is not in the author map.
const UnknownAuthor = "Unknown author"

// Renderer turns catalog records into document content.
type Renderer struct {
	catalog *catalog.Catalog
	ports   view.Ports
	log     logrus.FieldLogger
}

func New(c *catalog.Catalog, ports view.Ports, log logrus.FieldLogger) *Renderer {
	return &Renderer{catalog: c, ports: ports, log: log}
}

// RenderPage replaces the list with matches[0, page*pageSize).
func (r *Renderer) RenderPage(matches []catalog.Book, page, pageSize int) {
	list := r.ports.ListItems()
	list.Clear()
	list.Append(r.previews(pagination.Slice(matches, 0, page*pageSize))...)
}

// RenderIncrement appends matches[page*pageSize, (page+1)*pageSize).
func (r *Renderer) RenderIncrement(matches []catalog.Book, page, pageSize int) {
	start := page * pageSize
	r.ports.ListItems().Append(r.previews(pagination.Slice(matches, start, start+pageSize))...)
}

// UpdateLoadMoreControl shows the remaining count and disables the control at zero.
func (r *Renderer) UpdateLoadMoreControl(remaining int) {
	button := r.ports.ListButton()
	button.SetRemaining(max(remaining, 0))
	button.SetDisabled(remaining < 1)
}

// ShowDetail opens the detail panel for a book.
func (r *Renderer) ShowDetail(b catalog.Book) {
	r.ports.Overlay(view.ListActive).SetOpen(true)
	r.ports.Detail().Show(view.Detail{
		Blur:        b.Image,
		Image:       b.Image,
		Title:       b.Title,
		Subtitle:    fmt.Sprintf("%s (%d)", r.authorName(b), b.Published.Year()),
		Description: b.Description,
	})
}

// PopulateDropdowns fills the search form's genre and author selects.
func (r *Renderer) PopulateDropdowns() {
	r.ports.Select(view.SearchGenres).SetOptions(options("All Genres", r.catalog.SortedGenres()))
	r.ports.Select(view.SearchAuthors).SetOptions(options("All Authors", r.catalog.SortedAuthors()))
}

// Preview builds the list entry for a book.
func (r *Renderer) Preview(b catalog.Book) view.Preview {
	return view.Preview{
		ID:     b.ID,
		Image:  b.Image,
		Title:  b.Title,
		Author: r.authorName(b),
	}
}

func (r *Renderer) previews(books []catalog.Book) []view.Preview {
	out := make([]view.Preview, len(books))
	for i, b := range books {
		out[i] = r.Preview(b)
	}
	return out
}

func (r *Renderer) authorName(b catalog.Book) string {
	name, ok := r.catalog.AuthorName(b.Author)
	if !ok {
		r.log.WithFields(logrus.Fields{"book_id": b.ID, "author_id": b.Author}).Debug("render: unknown author")
		return UnknownAuthor
	}
	return name
}

func options(anyLabel string, opts []catalog.Option) []view.Option {
	out := make([]view.Option, 0, len(opts)+1)
	out = append(out, view.Option{Value: catalog.AnyID, Label: anyLabel})
	for _, o := range opts {
		out = append(out, view.Option{Value: o.ID, Label: o.Name})
	}
	return out
}
