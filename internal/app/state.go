package app

import (
	"bookconnect/internal/catalog"
	"bookconnect/internal/pagination"
	"bookconnect/internal/theme"
)

// State is the mutable part of one browser session. It is created explicitly and
// handed to every event handler; nothing else holds it.
type State struct {
	Pages *pagination.State
	Theme theme.Theme
}

// NewState starts with every catalog book as the result set, on page 1.
func NewState(c *catalog.Catalog) *State {
	return &State{
		Pages: pagination.New(c.Books, c.PageSize),
		Theme: theme.Day,
	}
}
