package view

import (
	"embed"
	"html/template"
	"io"
)

//go:embed templates/document.html
var templateFS embed.FS

var documentTemplate = template.Must(
	template.New("document.html").Funcs(template.FuncMap{
		"event": EventPath,
		"attr":  func(h Hook) template.HTMLAttr { return template.HTMLAttr(h.Attr()) },
	}).ParseFS(templateFS, "templates/document.html"),
)

// EventPath is the URL a control posts to when its event fires.
func EventPath(h Hook, action string) string {
	return "/events/" + string(h) + "/" + action
}

type page struct {
	Previews        []Preview
	ButtonRemaining int
	ButtonDisabled  bool
	SearchOpen      bool
	SettingsOpen    bool
	DetailOpen      bool
	Detail          Detail
	Genres          []Option
	Authors         []Option
	Theme           string
	Properties      []cssProperty
	FocusTitle      bool
}

// cssProperty values only ever come from the theme controller.
type cssProperty struct {
	Name  template.CSS
	Value template.CSS
}

// Render writes the document as an HTML page. A pending focus request is
// consumed by the render.
func (d *Document) Render(w io.Writer) error {
	focusTitle := d.focus == SearchTitle
	d.focus = ""
	return documentTemplate.Execute(w, page{
		Previews:        d.list.items,
		ButtonRemaining: d.button.remaining,
		ButtonDisabled:  d.button.disabled,
		SearchOpen:      d.IsOpen(SearchOverlay),
		SettingsOpen:    d.IsOpen(SettingsOverlay),
		DetailOpen:      d.IsOpen(ListActive),
		Detail:          d.detail,
		Genres:          d.Options(SearchGenres),
		Authors:         d.Options(SearchAuthors),
		Theme:           d.Value(SettingsTheme),
		Properties:      d.cssProperties(),
		FocusTitle:      focusTitle,
	})
}

func (d *Document) cssProperties() []cssProperty {
	props := d.Properties()
	out := make([]cssProperty, len(props))
	for i, p := range props {
		out[i] = cssProperty{Name: template.CSS(p.Name), Value: template.CSS(p.Value)}
	}
	return out
}
