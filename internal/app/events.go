package app

import (
	"net/url"

	"bookconnect/internal/view"
)

const (
	Click  = "click"
	Submit = "submit"
)

// Event is one user action on a hooked element.
type Event struct {
	Hook   view.Hook
	Action string
	Form   url.Values
	// Target is the id carried by the preview the click originated from, if any.
	Target string
}

func (e Event) Name() string {
	return string(e.Hook) + ":" + e.Action
}

type eventKey struct {
	hook   view.Hook
	action string
}

type handler func(a *App, s *State, e Event)

// routes is the dispatch table: every UI event the document can raise maps to one
// state transition.
var routes = map[eventKey]handler{
	{view.ListButton, Click}:     (*App).loadMore,
	{view.SearchForm, Submit}:    (*App).search,
	{view.ListItemsHook, Click}:  (*App).showDetail,
	{view.SettingsForm, Submit}:  (*App).updateTheme,
	{view.SearchCancel, Click}:   func(a *App, _ *State, _ Event) { a.overlays.CloseSearch() },
	{view.SettingsCancel, Click}: func(a *App, _ *State, _ Event) { a.overlays.CloseSettings() },
	{view.HeaderSearch, Click}:   func(a *App, _ *State, _ Event) { a.overlays.OpenSearch() },
	{view.HeaderSettings, Click}: func(a *App, _ *State, _ Event) { a.overlays.OpenSettings() },
	{view.ListClose, Click}:      func(a *App, _ *State, _ Event) { a.overlays.CloseDetail() },
}

// Routable reports whether the dispatch table has a handler for the event.
func Routable(h view.Hook, action string) bool {
	_, ok := routes[eventKey{h, action}]
	return ok
}
