package session

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
	UpdateLastUsed(ctx context.Context, id string, at time.Time) error
	// CleanupExpired drops sessions idle since before cutoff and reports how many went.
	CleanupExpired(ctx context.Context, cutoff time.Time) (int, error)
	Count(ctx context.Context) (int, error)
}
