package view

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocument_HasEveryHook(t *testing.T) {
	d := NewDocument()
	for _, h := range AllHooks {
		assert.True(t, d.Has(h), "missing %s", h)
	}
}

func TestNewPartialDocument(t *testing.T) {
	d := NewPartialDocument(ListButton, ListItemsHook)
	assert.True(t, d.Has(ListButton))
	assert.False(t, d.Has(SearchOverlay))
}

func TestDocument_Ports(t *testing.T) {
	var p Ports = NewDocument()
	d := p.(*Document)

	p.ListItems().Append(Preview{ID: "1"}, Preview{ID: "2"})
	p.ListItems().Append(Preview{ID: "3"})
	assert.Len(t, d.Previews(), 3)
	p.ListItems().Clear()
	assert.Empty(t, d.Previews())

	p.ListButton().SetRemaining(13)
	p.ListButton().SetDisabled(false)
	assert.Equal(t, "Show more (13)", d.ButtonLabel())
	assert.False(t, d.ButtonDisabled())

	p.Overlay(SettingsOverlay).SetOpen(true)
	assert.True(t, d.IsOpen(SettingsOverlay))
	assert.False(t, d.IsOpen(SearchOverlay))

	// unknown overlays are detached from the document
	p.Overlay(ListTitle).SetOpen(true)
	assert.False(t, d.IsOpen(ListTitle))

	p.Select(SearchGenres).SetOptions([]Option{{Value: "any", Label: "All Genres"}})
	assert.Equal(t, []Option{{Value: "any", Label: "All Genres"}}, d.Options(SearchGenres))
	assert.Nil(t, d.Options(SearchAuthors))

	p.Field(SettingsTheme).SetValue("night")
	assert.Equal(t, "night", d.Value(SettingsTheme))

	p.Style().SetProperty("--color-light", "10, 10, 20")
	p.Style().SetProperty("--color-dark", "255, 255, 255")
	assert.Equal(t, []Property{
		{Name: "--color-dark", Value: "255, 255, 255"},
		{Name: "--color-light", Value: "10, 10, 20"},
	}, d.Properties())

	p.Focus(SearchTitle)
	assert.Equal(t, SearchTitle, d.Focused())

	p.ScrollToTop()
	assert.True(t, d.TakeScroll())
	assert.False(t, d.TakeScroll())
}

func TestDocument_Render(t *testing.T) {
	d := NewDocument()
	d.ListItems().Append(Preview{ID: "b1", Image: "https://img.example/b1.jpg", Title: "Dune <Messiah>", Author: "Frank Herbert"})
	d.ListButton().SetRemaining(0)
	d.ListButton().SetDisabled(true)
	d.Overlay(ListActive).SetOpen(true)
	d.Detail().Show(Detail{Title: "Dune", Subtitle: "Frank Herbert (1965)", Description: "Spice & sand"})
	d.Select(SearchGenres).SetOptions([]Option{{Value: "any", Label: "All Genres"}, {Value: "g1", Label: "Science Fiction"}})
	d.Field(SettingsTheme).SetValue("night")
	d.Style().SetProperty("--color-dark", "255, 255, 255")
	d.Focus(SearchTitle)

	var buf bytes.Buffer
	require.NoError(t, d.Render(&buf))
	html := buf.String()

	assert.Contains(t, html, `data-preview="b1"`)
	assert.Contains(t, html, `Dune &lt;Messiah&gt;`)
	assert.Contains(t, html, `Frank Herbert (1965)`)
	assert.Contains(t, html, `Spice &amp; sand`)
	assert.Contains(t, html, `data-list-button disabled`)
	assert.Contains(t, html, `data-list-active open`)
	assert.NotContains(t, html, `data-search-overlay open`)
	assert.Contains(t, html, `<option value="g1">Science Fiction</option>`)
	assert.Contains(t, html, `<option value="night" selected>Night</option>`)
	assert.Contains(t, html, `--color-dark: 255, 255, 255;`)
	assert.Contains(t, html, `autofocus`)
	assert.Contains(t, html, `action="/events/list-items/click"`)
	assert.NotContains(t, html, "ZgotmplZ")

	for _, h := range AllHooks {
		assert.True(t, strings.Contains(html, h.Attr()), "rendered page lacks %s", h.Attr())
	}
}

func TestDocument_RenderConsumesFocus(t *testing.T) {
	d := NewDocument()
	d.Focus(SearchTitle)

	var first, second bytes.Buffer
	require.NoError(t, d.Render(&first))
	require.NoError(t, d.Render(&second))

	assert.Contains(t, first.String(), "autofocus")
	assert.NotContains(t, second.String(), "autofocus")
	assert.Equal(t, Hook(""), d.Focused())
}

func TestDocument_RenderEmptyList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewDocument().Render(&buf))
	assert.Contains(t, buf.String(), "No results found")
}

func TestEventPath(t *testing.T) {
	assert.Equal(t, "/events/search-form/submit", EventPath(SearchForm, "submit"))
}
