package session

import (
	"errors"
	"sync"
	"time"

	"bookconnect/internal/app"
	"bookconnect/internal/view"
)

// ErrNotFound is returned for unknown or expired session ids.
var ErrNotFound = errors.New("session not found")

// Session is one browser's document and app state. Events on a session are
// serialized; each runs to completion before the next starts.
type Session struct {
	ID         string
	CreatedAt  time.Time
	LastUsedAt time.Time

	mu  sync.Mutex
	app *app.App
	doc *view.Document
}

// Do runs fn while holding the session lock.
func (s *Session) Do(fn func(a *app.App, doc *view.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.app, s.doc)
}
