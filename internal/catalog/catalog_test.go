package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	books := []Book{
		{ID: "b1", Title: "Dune", Author: "a1", Genres: []string{"g1"}},
		{ID: "b2", Title: "Emma", Author: "a2"},
	}

	t.Run("indexes books by id", func(t *testing.T) {
		c, err := New(books, map[string]string{"a1": "Frank Herbert"}, nil, 12)
		require.NoError(t, err)

		b, ok := c.Book("b2")
		assert.True(t, ok)
		assert.Equal(t, "Emma", b.Title)

		_, ok = c.Book("missing")
		assert.False(t, ok)
		assert.NotNil(t, c.Genres)
	})

	t.Run("rejects zero page size", func(t *testing.T) {
		_, err := New(books, nil, nil, 0)
		assert.True(t, errors.Is(err, ErrInvalidCatalog))
	})

	t.Run("rejects duplicate ids", func(t *testing.T) {
		_, err := New(append(books, Book{ID: "b1"}), nil, nil, 12)
		assert.ErrorIs(t, err, ErrInvalidCatalog)
		assert.Contains(t, err.Error(), `"b1"`)
	})

	t.Run("rejects empty id", func(t *testing.T) {
		_, err := New([]Book{{Title: "Untitled"}}, nil, nil, 12)
		assert.ErrorIs(t, err, ErrInvalidCatalog)
	})
}

func TestCatalog_Lookups(t *testing.T) {
	c, err := New(nil,
		map[string]string{"a2": "Jane Austen", "a1": "Frank Herbert", "a3": "Jane Austen"},
		map[string]string{"g2": "Fantasy", "g1": "Science Fiction"},
		12)
	require.NoError(t, err)

	name, ok := c.AuthorName("a1")
	assert.True(t, ok)
	assert.Equal(t, "Frank Herbert", name)

	_, ok = c.AuthorName("nobody")
	assert.False(t, ok)

	name, ok = c.GenreName("g2")
	assert.True(t, ok)
	assert.Equal(t, "Fantasy", name)

	assert.Equal(t, []Option{
		{ID: "a1", Name: "Frank Herbert"},
		{ID: "a2", Name: "Jane Austen"},
		{ID: "a3", Name: "Jane Austen"},
	}, c.SortedAuthors())
	assert.Equal(t, []Option{
		{ID: "g2", Name: "Fantasy"},
		{ID: "g1", Name: "Science Fiction"},
	}, c.SortedGenres())
}

func TestBook_HasGenre(t *testing.T) {
	b := Book{Genres: []string{"g1", "g3"}}
	assert.True(t, b.HasGenre("g3"))
	assert.False(t, b.HasGenre("g2"))
	assert.False(t, Book{}.HasGenre("g1"))
}
