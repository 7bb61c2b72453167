package overlay

import (
	"bookconnect/internal/catalog"
	"bookconnect/internal/view"
)

// BookLookup resolves a preview id to its book.
type BookLookup interface {
	Book(id string) (catalog.Book, bool)
}

// DetailRenderer fills and opens the detail panel.
type DetailRenderer interface {
	ShowDetail(b catalog.Book)
}

// Controller opens and closes the search, settings and detail overlays. Each overlay
// is independent of the others.
type Controller struct {
	ports view.Ports
}

func New(ports view.Ports) *Controller {
	return &Controller{ports: ports}
}

func (c *Controller) OpenSearch() {
	c.ports.Overlay(view.SearchOverlay).SetOpen(true)
	c.ports.Focus(view.SearchTitle)
}

func (c *Controller) CloseSearch() {
	c.ports.Overlay(view.SearchOverlay).SetOpen(false)
}

func (c *Controller) OpenSettings() {
	c.ports.Overlay(view.SettingsOverlay).SetOpen(true)
}

func (c *Controller) CloseSettings() {
	c.ports.Overlay(view.SettingsOverlay).SetOpen(false)
}

func (c *Controller) CloseDetail() {
	c.ports.Overlay(view.ListActive).SetOpen(false)
}

// ShowDetail opens the detail panel for the preview that was clicked. An empty
// targetID means the click landed outside any preview; nothing happens and no
// lookup is made. It reports whether the panel was shown.
func (c *Controller) ShowDetail(targetID string, books BookLookup, r DetailRenderer) bool {
	if targetID == "" {
		return false
	}
	b, ok := books.Book(targetID)
	if !ok {
		return false
	}
	r.ShowDetail(b)
	return true
}
