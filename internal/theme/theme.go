package theme

import (
	"net/url"

	"bookconnect/internal/view"
)

type Theme string

const (
	Day   Theme = "day"
	Night Theme = "night"
)

// CSS custom properties the theme drives.
const (
	PropDark  = "--color-dark"
	PropLight = "--color-light"
)

const (
	nearBlack = "10, 10, 20"
	nearWhite = "255, 255, 255"
)

// Parse maps a submitted value to a theme. Anything but "night" is day.
func Parse(s string) Theme {
	if Theme(s) == Night {
		return Night
	}
	return Day
}

// FromPreference picks the theme matching the system dark-mode preference.
func FromPreference(prefersDark bool) Theme {
	if prefersDark {
		return Night
	}
	return Day
}

// Colors returns the dark and light color values for a theme.
func (t Theme) Colors() (dark, light string) {
	if t == Night {
		return nearWhite, nearBlack
	}
	return nearBlack, nearWhite
}

// Closer closes the settings overlay once a theme is saved.
type Closer interface {
	CloseSettings()
}

type Controller struct {
	ports view.Ports
}

func New(ports view.Ports) *Controller {
	return &Controller{ports: ports}
}

// Setup applies the theme matching the system preference and reflects it into the
// settings form. It runs once per document.
func (c *Controller) Setup(prefersDark bool) Theme {
	t := FromPreference(prefersDark)
	c.ports.Field(view.SettingsTheme).SetValue(string(t))
	c.Apply(t)
	return t
}

// Apply swaps the two root colors. It is the theme's only visual effect.
func (c *Controller) Apply(t Theme) {
	dark, light := t.Colors()
	style := c.ports.Style()
	style.SetProperty(PropDark, dark)
	style.SetProperty(PropLight, light)
}

// Update applies the theme submitted with the settings form and closes the overlay.
func (c *Controller) Update(form url.Values, overlays Closer) Theme {
	t := Parse(form.Get("theme"))
	c.ports.Field(view.SettingsTheme).SetValue(string(t))
	c.Apply(t)
	overlays.CloseSettings()
	return t
}
