package search

import (
	"net/url"
	"strings"

	"bookconnect/internal/catalog"

	"golang.org/x/text/cases"
)

// Criteria is a single search submission. Genre and Author hold an id or catalog.AnyID.
type Criteria struct {
	Genre  string `json:"genre"`
	Author string `json:"author"`
	Title  string `json:"title"`
}

// All matches every book.
func All() Criteria {
	return Criteria{Genre: catalog.AnyID, Author: catalog.AnyID}
}

// CriteriaFromForm reads the search form fields. Absent selects mean "any".
func CriteriaFromForm(form url.Values) Criteria {
	c := Criteria{
		Genre:  form.Get("genre"),
		Author: form.Get("author"),
		Title:  form.Get("title"),
	}
	if c.Genre == "" {
		c.Genre = catalog.AnyID
	}
	if c.Author == "" {
		c.Author = catalog.AnyID
	}
	return c
}

// Filter returns the books matching every criterion, in catalog order.
func Filter(c Criteria, books []catalog.Book) []catalog.Book {
	m := newMatcher(c)
	out := make([]catalog.Book, 0, len(books))
	for _, b := range books {
		if m.match(b) {
			out = append(out, b)
		}
	}
	return out
}

// Matches reports whether a single book satisfies the criteria.
func Matches(c Criteria, b catalog.Book) bool {
	return newMatcher(c).match(b)
}

type matcher struct {
	criteria Criteria
	fold     cases.Caser
	title    string
}

func newMatcher(c Criteria) *matcher {
	m := &matcher{criteria: c, fold: cases.Fold()}
	if strings.TrimSpace(c.Title) != "" {
		m.title = m.fold.String(c.Title)
	}
	return m
}

func (m *matcher) match(b catalog.Book) bool {
	genreMatch := m.criteria.Genre == catalog.AnyID || b.HasGenre(m.criteria.Genre)
	titleMatch := m.title == "" || strings.Contains(m.fold.String(b.Title), m.title)
	authorMatch := m.criteria.Author == catalog.AnyID || b.Author == m.criteria.Author
	return titleMatch && authorMatch && genreMatch
}
