package http

import (
	"bytes"
	"errors"
	"net/http"
	"strings"

	"bookconnect/internal/app"
	"bookconnect/internal/httpx"
	"bookconnect/internal/logger"
	"bookconnect/internal/session"
	"bookconnect/internal/view"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

const (
	SessionCookie = "bc_session"

	colorSchemeHint = "Sec-CH-Prefers-Color-Scheme"
	previewField    = "preview"
)

// BrowserHandler hosts the catalog browser page. Every UI event is a form
// post that mutates the session document, followed by a redirect back to the
// page.
type BrowserHandler struct {
	sessions *session.Service
	log      logrus.FieldLogger
}

func NewBrowserHandler(sessions *session.Service, log logrus.FieldLogger) *BrowserHandler {
	return &BrowserHandler{sessions: sessions, log: log}
}

// Page handles GET /.
func (h *BrowserHandler) Page(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Accept-CH", colorSchemeHint)
	w.Header().Add("Vary", colorSchemeHint)

	sess, err := h.session(w, r)
	if err != nil {
		logger.For(r.Context(), h.log).WithError(err).Error("browser: start session")
		http.Error(w, "session unavailable", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	err = sess.Do(func(_ *app.App, doc *view.Document) error {
		return doc.Render(&buf)
	})
	if err != nil {
		logger.For(r.Context(), h.log).WithError(err).Error("browser: render")
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = buf.WriteTo(w)
}

// Event handles POST /events/{hook}/{action}.
func (h *BrowserHandler) Event(w http.ResponseWriter, r *http.Request) {
	hook := view.Hook(chi.URLParam(r, "hook"))
	action := chi.URLParam(r, "action")
	if !app.Routable(hook, action) {
		http.NotFound(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "request too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	sess, err := h.session(w, r)
	if err != nil {
		logger.For(r.Context(), h.log).WithError(err).Error("browser: start session")
		http.Error(w, "session unavailable", http.StatusInternalServerError)
		return
	}

	e := app.Event{
		Hook:   hook,
		Action: action,
		Form:   r.PostForm,
		Target: r.PostForm.Get(previewField),
	}

	location := "/"
	err = sess.Do(func(a *app.App, doc *view.Document) error {
		if err := a.Dispatch(e); err != nil {
			return err
		}
		if doc.TakeScroll() {
			location = "/#top"
		}
		return nil
	})
	if errors.Is(err, app.ErrUnknownEvent) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		logger.For(r.Context(), h.log).WithError(err).Error("browser: dispatch")
		http.Error(w, "event failed", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, location, http.StatusSeeOther)
}

// session resolves the caller's session from its cookie, starting a new one
// when the cookie is missing or stale.
func (h *BrowserHandler) session(w http.ResponseWriter, r *http.Request) (*session.Session, error) {
	if c, err := r.Cookie(SessionCookie); err == nil {
		sess, err := h.sessions.Get(r.Context(), c.Value)
		if err == nil {
			httpx.SetSessionID(r, sess.ID)
			return sess, nil
		}
		if !errors.Is(err, session.ErrNotFound) {
			return nil, err
		}
	}

	sess, err := h.sessions.Start(r.Context(), prefersDark(r))
	if err != nil {
		return nil, err
	}
	httpx.SetSessionID(r, sess.ID)
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    sess.ID,
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
	return sess, nil
}

// prefersDark reads the color scheme client hint. Browsers that do not send it
// get the day theme.
func prefersDark(r *http.Request) bool {
	v := strings.Trim(strings.TrimSpace(r.Header.Get(colorSchemeHint)), `"`)
	return strings.EqualFold(v, "dark")
}
