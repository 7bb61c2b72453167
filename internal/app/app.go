package app

import (
	"errors"
	"fmt"
	"strings"

	"bookconnect/internal/catalog"
	"bookconnect/internal/metrics"
	"bookconnect/internal/overlay"
	"bookconnect/internal/render"
	"bookconnect/internal/search"
	"bookconnect/internal/theme"
	"bookconnect/internal/view"

	"github.com/sirupsen/logrus"
)

var (
	// ErrMissingHook means the document lacks an element the app binds to.
	ErrMissingHook = errors.New("missing document hook")
	// ErrUnknownEvent means no handler is bound for the event.
	ErrUnknownEvent = errors.New("unknown event")
)

// App wires one document to the catalog. Events are handled one at a time, each
// running to completion before the next.
type App struct {
	catalog  *catalog.Catalog
	ports    view.Ports
	state    *State
	renderer *render.Renderer
	overlays *overlay.Controller
	theme    *theme.Controller
	log      logrus.FieldLogger
}

// New binds the app to a document. A document missing any hook is rejected.
func New(c *catalog.Catalog, ports view.Ports, log logrus.FieldLogger) (*App, error) {
	if err := Bind(ports); err != nil {
		return nil, err
	}

	a := &App{
		catalog:  c,
		ports:    ports,
		state:    NewState(c),
		renderer: render.New(c, ports, log),
		overlays: overlay.New(ports),
		theme:    theme.New(ports),
		log:      log,
	}
	return a, nil
}

// Bind checks that every hook the app listens on or writes to is present.
func Bind(ports view.Ports) error {
	var missing []string
	for _, h := range view.AllHooks {
		if !ports.Has(h) {
			missing = append(missing, string(h))
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingHook, strings.Join(missing, ", "))
	}
	return nil
}

// Init sets up the theme from the system preference, fills the search dropdowns
// and renders the first page.
func (a *App) Init(prefersDark bool) {
	a.state.Theme = a.theme.Setup(prefersDark)
	a.renderer.PopulateDropdowns()
	pages := a.state.Pages
	a.renderer.RenderPage(pages.Matches(), pages.Page(), pages.PageSize())
	a.renderer.UpdateLoadMoreControl(pages.RemainingCount())
}

// Dispatch routes an event to its handler.
func (a *App) Dispatch(e Event) error {
	h, ok := routes[eventKey{e.Hook, e.Action}]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownEvent, e.Name())
	}
	metrics.UIEventsTotal.WithLabelValues(e.Name()).Inc()
	a.log.WithField("event", e.Name()).Debug("app: dispatch")
	h(a, a.state, e)
	return nil
}

func (a *App) State() *State { return a.state }

func (a *App) Catalog() *catalog.Catalog { return a.catalog }

func (a *App) loadMore(s *State, _ Event) {
	pages := s.Pages
	a.renderer.RenderIncrement(pages.Matches(), pages.Page(), pages.PageSize())
	pages.Advance()
	a.renderer.UpdateLoadMoreControl(pages.RemainingCount())
}

// search replaces the result set and re-renders from page 1 before the control
// label is recomputed.
func (a *App) search(s *State, e Event) {
	criteria := search.CriteriaFromForm(e.Form)
	matches := search.Filter(criteria, a.catalog.Books)

	pages := s.Pages
	pages.Reset(matches)
	a.renderer.RenderPage(matches, pages.Page(), pages.PageSize())
	a.renderer.UpdateLoadMoreControl(pages.RemainingCount())
	a.ports.ScrollToTop()
	a.overlays.CloseSearch()

	a.log.WithFields(logrus.Fields{
		"genre":   criteria.Genre,
		"author":  criteria.Author,
		"title":   criteria.Title,
		"matches": len(matches),
	}).Debug("app: search")
}

func (a *App) showDetail(_ *State, e Event) {
	a.overlays.ShowDetail(e.Target, a.catalog, a.renderer)
}

func (a *App) updateTheme(s *State, e Event) {
	s.Theme = a.theme.Update(e.Form, a.overlays)
}
