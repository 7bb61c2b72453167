package search

import (
	"fmt"
	"net/url"
	"testing"

	"bookconnect/internal/catalog"

	"github.com/stretchr/testify/assert"
)

func testBooks() []catalog.Book {
	return []catalog.Book{
		{ID: "1", Title: "Dune", Author: "herbert", Genres: []string{"scifi", "classic"}},
		{ID: "2", Title: "Emma", Author: "austen", Genres: []string{"romance", "classic"}},
		{ID: "3", Title: "Children of Dune", Author: "herbert", Genres: []string{"scifi"}},
		{ID: "4", Title: "Persuasion", Author: "austen", Genres: []string{"romance"}},
		{ID: "5", Title: "Straße der Ölsardinen", Author: "steinbeck", Genres: []string{"classic"}},
	}
}

func ids(books []catalog.Book) []string {
	out := make([]string, len(books))
	for i, b := range books {
		out[i] = b.ID
	}
	return out
}

func TestFilter(t *testing.T) {
	books := testBooks()

	tests := []struct {
		name     string
		criteria Criteria
		want     []string
	}{
		{"identity", All(), []string{"1", "2", "3", "4", "5"}},
		{"whitespace title is ignored", Criteria{Genre: "any", Author: "any", Title: "   "}, []string{"1", "2", "3", "4", "5"}},
		{"title is case insensitive", Criteria{Genre: "any", Author: "any", Title: "dUNe"}, []string{"1", "3"}},
		{"title uses case folding", Criteria{Genre: "any", Author: "any", Title: "STRASSE"}, []string{"5"}},
		{"genre", Criteria{Genre: "classic", Author: "any"}, []string{"1", "2", "5"}},
		{"author", Criteria{Genre: "any", Author: "austen"}, []string{"2", "4"}},
		{"all three", Criteria{Genre: "scifi", Author: "herbert", Title: "children"}, []string{"3"}},
		{"no match", Criteria{Genre: "romance", Author: "herbert"}, []string{}},
		{"unknown genre", Criteria{Genre: "horror", Author: "any"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Filter(tt.criteria, books)))
		})
	}
}

func TestFilter_EmptyCatalog(t *testing.T) {
	assert.Empty(t, Filter(All(), nil))
}

func TestFilter_Properties(t *testing.T) {
	books := testBooks()
	criteria := []Criteria{
		All(),
		{Genre: "classic", Author: "any", Title: "e"},
		{Genre: "any", Author: "herbert", Title: "dune"},
		{Genre: "romance", Author: "any", Title: "x"},
	}

	for i, c := range criteria {
		t.Run(fmt.Sprintf("criteria %d", i), func(t *testing.T) {
			got := Filter(c, books)

			// subset, in catalog order
			pos := -1
			for _, b := range got {
				idx := indexOf(books, b.ID)
				assert.Greater(t, idx, pos)
				pos = idx
			}

			// idempotent
			assert.Equal(t, ids(got), ids(Filter(c, got)))
		})
	}
}

func indexOf(books []catalog.Book, id string) int {
	for i, b := range books {
		if b.ID == id {
			return i
		}
	}
	return -1
}

func TestFilter_SingleDune(t *testing.T) {
	books := []catalog.Book{
		{ID: "1", Title: "Dune", Author: "herbert"},
		{ID: "2", Title: "Emma", Author: "austen"},
	}
	got := Filter(Criteria{Genre: "any", Author: "any", Title: "dune"}, books)
	assert.Equal(t, []string{"1"}, ids(got))
}

func TestCriteriaFromForm(t *testing.T) {
	t.Run("defaults to any", func(t *testing.T) {
		c := CriteriaFromForm(url.Values{"title": {" dune "}})
		assert.Equal(t, Criteria{Genre: "any", Author: "any", Title: " dune "}, c)
	})

	t.Run("reads selects", func(t *testing.T) {
		c := CriteriaFromForm(url.Values{"genre": {"g1"}, "author": {"a1"}})
		assert.Equal(t, Criteria{Genre: "g1", Author: "a1"}, c)
	})
}

func TestMatches(t *testing.T) {
	b := catalog.Book{ID: "1", Title: "Dune", Author: "herbert", Genres: []string{"scifi"}}
	assert.True(t, Matches(Criteria{Genre: "scifi", Author: "any", Title: "un"}, b))
	assert.False(t, Matches(Criteria{Genre: "scifi", Author: "austen"}, b))
}
