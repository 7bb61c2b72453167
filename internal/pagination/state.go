package pagination

import "bookconnect/internal/catalog"

// State tracks the active result set and how many pages of it have been shown.
// Page starts at 1 and only grows until the next Reset.
type State struct {
	page     int
	pageSize int
	matches  []catalog.Book
}

func New(matches []catalog.Book, pageSize int) *State {
	if pageSize < 1 {
		pageSize = catalog.DefaultPageSize
	}
	return &State{page: 1, pageSize: pageSize, matches: matches}
}

// Reset replaces the result set wholesale and goes back to the first page.
func (s *State) Reset(matches []catalog.Book) {
	s.matches = matches
	s.page = 1
}

// Advance moves to the next page. The caller renders the increment first.
func (s *State) Advance() {
	s.page++
}

// RemainingCount is the number of matches not yet shown, never negative.
func (s *State) RemainingCount() int {
	return max(len(s.matches)-s.page*s.pageSize, 0)
}

// Visible returns the matches currently shown.
func (s *State) Visible() []catalog.Book {
	return Slice(s.matches, 0, s.page*s.pageSize)
}

func (s *State) Page() int { return s.page }
func (s *State) PageSize() int { return s.pageSize }
func (s *State) Matches() []catalog.Book { return s.matches }

// Slice clamps [start, end) to the bounds of books.
func Slice(books []catalog.Book, start, end int) []catalog.Book {
	start = min(max(start, 0), len(books))
	end = min(max(end, start), len(books))
	return books[start:end]
}

// Window returns the page-th (1-based) run of pageSize books.
// A page past the last one yields no books.
func Window(books []catalog.Book, page, pageSize int) []catalog.Book {
	if page < 1 || pageSize < 1 || page-1 > len(books)/pageSize {
		return nil
	}
	return Slice(books, (page-1)*pageSize, page*pageSize)
}

// TotalPages is the number of windows needed to show every book.
func TotalPages(total, pageSize int) int {
	if pageSize < 1 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}
