package view

// Hook names an element of the document the browser core binds to.
type Hook string

const (
	ListButton      Hook = "list-button"
	SearchForm      Hook = "search-form"
	ListItemsHook   Hook = "list-items"
	SettingsForm    Hook = "settings-form"
	SearchCancel    Hook = "search-cancel"
	SettingsCancel  Hook = "settings-cancel"
	HeaderSearch    Hook = "header-search"
	HeaderSettings  Hook = "header-settings"
	ListClose       Hook = "list-close"
	ListActive      Hook = "list-active"
	ListBlur        Hook = "list-blur"
	ListImage       Hook = "list-image"
	ListTitle       Hook = "list-title"
	ListSubtitle    Hook = "list-subtitle"
	ListDescription Hook = "list-description"
	SearchGenres    Hook = "search-genres"
	SearchAuthors   Hook = "search-authors"
	SettingsTheme   Hook = "settings-theme"
	SearchTitle     Hook = "search-title"
	SearchOverlay   Hook = "search-overlay"
	SettingsOverlay Hook = "settings-overlay"
)

// AllHooks lists every hook a complete document carries, in binding order.
var AllHooks = []Hook{
	ListButton, SearchForm, ListItemsHook, SettingsForm, SearchCancel, SettingsCancel,
	HeaderSearch, HeaderSettings, ListClose, ListActive, ListBlur, ListImage, ListTitle,
	ListSubtitle, ListDescription, SearchGenres, SearchAuthors, SettingsTheme, SearchTitle,
	SearchOverlay, SettingsOverlay,
}

// Attr is the data attribute the hook is tagged with in markup.
func (h Hook) Attr() string {
	return "data-" + string(h)
}
