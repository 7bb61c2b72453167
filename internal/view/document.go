package view

import (
	"fmt"
	"sort"
)

// Document is an in-memory page holding the state of every hook. It is not safe for
// concurrent use; callers serialize access per session.
type Document struct {
	hooks map[Hook]bool

	list     listItems
	button   loadMore
	overlays map[Hook]*overlay
	detail   Detail
	selects  map[Hook]*selectHook
	fields   map[Hook]*field
	style    styleSheet
	focus    Hook
	scroll   bool
}

// NewDocument returns a document carrying every hook.
func NewDocument() *Document {
	return NewPartialDocument(AllHooks...)
}

// NewPartialDocument returns a document carrying only the given hooks.
func NewPartialDocument(hooks ...Hook) *Document {
	d := &Document{
		hooks: make(map[Hook]bool, len(hooks)),
		overlays: map[Hook]*overlay{
			SearchOverlay:   {},
			SettingsOverlay: {},
			ListActive:      {},
		},
		selects: map[Hook]*selectHook{
			SearchGenres:  {},
			SearchAuthors: {},
		},
		fields: map[Hook]*field{
			SettingsTheme: {},
		},
		style: styleSheet{props: map[string]string{}},
	}
	for _, h := range hooks {
		d.hooks[h] = true
	}
	return d
}

func (d *Document) Has(h Hook) bool { return d.hooks[h] }

func (d *Document) ListItems() ListItems { return &d.list }

func (d *Document) ListButton() LoadMoreButton { return &d.button }

func (d *Document) Overlay(h Hook) Overlay {
	if o, ok := d.overlays[h]; ok {
		return o
	}
	return &overlay{}
}

func (d *Document) Detail() DetailPanel { return detailPanel{d} }

func (d *Document) Select(h Hook) Select {
	if s, ok := d.selects[h]; ok {
		return s
	}
	return &selectHook{}
}

func (d *Document) Field(h Hook) Field {
	if f, ok := d.fields[h]; ok {
		return f
	}
	return &field{}
}

func (d *Document) Focus(h Hook) { d.focus = h }

func (d *Document) Style() StyleSheet { return &d.style }

func (d *Document) ScrollToTop() { d.scroll = true }

// Previews returns the list content in display order.
func (d *Document) Previews() []Preview {
	return append([]Preview(nil), d.list.items...)
}

// ButtonLabel is the rendered text of the load-more control.
func (d *Document) ButtonLabel() string {
	return fmt.Sprintf("Show more (%d)", d.button.remaining)
}

func (d *Document) ButtonRemaining() int { return d.button.remaining }

func (d *Document) ButtonDisabled() bool { return d.button.disabled }

func (d *Document) IsOpen(h Hook) bool { return d.Overlay(h).IsOpen() }

func (d *Document) DetailFields() Detail { return d.detail }

func (d *Document) Options(h Hook) []Option {
	if s, ok := d.selects[h]; ok {
		return append([]Option(nil), s.options...)
	}
	return nil
}

func (d *Document) Value(h Hook) string { return d.Field(h).Value() }

// Property returns a CSS custom property set on the document root.
func (d *Document) Property(name string) string { return d.style.props[name] }

// Properties returns the root CSS custom properties sorted by name.
func (d *Document) Properties() []Property {
	out := make([]Property, 0, len(d.style.props))
	for k, v := range d.style.props {
		out = append(out, Property{Name: k, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (d *Document) Focused() Hook { return d.focus }

// TakeScroll reports and clears a pending scroll-to-top request.
func (d *Document) TakeScroll() bool {
	s := d.scroll
	d.scroll = false
	return s
}

// Property is a single CSS custom property.
type Property struct {
	Name  string
	Value string
}

type listItems struct {
	items []Preview
}

func (l *listItems) Clear() { l.items = nil }

func (l *listItems) Append(previews ...Preview) { l.items = append(l.items, previews...) }

type loadMore struct {
	remaining int
	disabled  bool
}

func (b *loadMore) SetRemaining(n int) { b.remaining = n }

func (b *loadMore) SetDisabled(disabled bool) { b.disabled = disabled }

type overlay struct {
	open bool
}

func (o *overlay) SetOpen(open bool) { o.open = open }

func (o *overlay) IsOpen() bool { return o.open }

type detailPanel struct {
	d *Document
}

func (p detailPanel) Show(d Detail) { p.d.detail = d }

type selectHook struct {
	options []Option
}

func (s *selectHook) SetOptions(options []Option) {
	s.options = append([]Option(nil), options...)
}

type field struct {
	value string
}

func (f *field) SetValue(v string) { f.value = v }

func (f *field) Value() string { return f.value }

type styleSheet struct {
	props map[string]string
}

func (s *styleSheet) SetProperty(name, value string) { s.props[name] = value }
