package session

import (
	"context"
	"fmt"
	"time"

	"bookconnect/internal/app"
	"bookconnect/internal/metrics"
	"bookconnect/internal/view"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Factory builds and initializes a fresh app over a new document.
type Factory func(prefersDark bool) (*app.App, *view.Document, error)

type Service struct {
	repo    Repository
	factory Factory
	ttl     time.Duration
	log     logrus.FieldLogger
	now     func() time.Time
}

func NewService(repo Repository, factory Factory, ttl time.Duration, log logrus.FieldLogger) *Service {
	return &Service{
		repo:    repo,
		factory: factory,
		ttl:     ttl,
		log:     log,
		now:     time.Now,
	}
}

// Start creates a session for a new browser.
func (s *Service) Start(ctx context.Context, prefersDark bool) (*Session, error) {
	a, doc, err := s.factory(prefersDark)
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}

	now := s.now()
	sess := &Session{
		ID:         uuid.New().String(),
		CreatedAt:  now,
		LastUsedAt: now,
		app:        a,
		doc:        doc,
	}
	if err := s.repo.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	metrics.SessionsActive.Inc()
	s.log.WithField("session_id", sess.ID).Debug("session: started")
	return sess, nil
}

// Get returns a live session and marks it used. Expired sessions are dropped
// and reported as ErrNotFound.
func (s *Service) Get(ctx context.Context, id string) (*Session, error) {
	sess, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if now.Sub(sess.LastUsedAt) > s.ttl {
		if err := s.repo.Delete(ctx, id); err == nil {
			metrics.SessionsActive.Dec()
		}
		return nil, ErrNotFound
	}
	if err := s.repo.UpdateLastUsed(ctx, id, now); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	metrics.SessionsActive.Dec()
	return nil
}

// CleanupExpired drops every session idle longer than the TTL.
func (s *Service) CleanupExpired(ctx context.Context) (int, error) {
	n, err := s.repo.CleanupExpired(ctx, s.now().Add(-s.ttl))
	if err != nil {
		return 0, err
	}
	metrics.SessionsActive.Sub(float64(n))
	return n, nil
}

// RunCleanup sweeps expired sessions every interval until ctx is done.
func (s *Service) RunCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.CleanupExpired(ctx)
			if err != nil {
				s.log.WithError(err).Warn("session: cleanup failed")
				continue
			}
			if n > 0 {
				s.log.WithField("expired", n).Info("session: cleanup")
			}
		}
	}
}
