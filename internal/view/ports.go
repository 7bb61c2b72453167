package view

// Preview is one rendered list entry. ID is what a click on it reports back.
type Preview struct {
	ID     string
	Image  string
	Title  string
	Author string
}

// Detail holds the fields of the book detail panel.
type Detail struct {
	Blur        string
	Image       string
	Title       string
	Subtitle    string
	Description string
}

// Option is one entry of a select element.
type Option struct {
	Value string
	Label string
}

type ListItems interface {
	Clear()
	Append(previews ...Preview)
}

type LoadMoreButton interface {
	SetRemaining(n int)
	SetDisabled(disabled bool)
}

type Overlay interface {
	SetOpen(open bool)
	IsOpen() bool
}

type DetailPanel interface {
	Show(d Detail)
}

type Select interface {
	SetOptions(options []Option)
}

type Field interface {
	SetValue(v string)
	Value() string
}

type StyleSheet interface {
	SetProperty(name, value string)
}

// Ports is everything the browser core needs from a document, one capability per hook.
type Ports interface {
	Has(h Hook) bool
	ListItems() ListItems
	ListButton() LoadMoreButton
	Overlay(h Hook) Overlay
	Detail() DetailPanel
	Select(h Hook) Select
	Field(h Hook) Field
	Focus(h Hook)
	Style() StyleSheet
	ScrollToTop()
}
