package httpx

import (
	"context"
	"net/http"

	"bookconnect/internal/logger"
)

type contextKey string

const sessionHolderKey contextKey = "sessionHolder"

// RequestIDFrom retrieves the request ID from the request context.
func RequestIDFrom(r *http.Request) string {
	return logger.IDFrom(r.Context())
}

// ContextWithRequestID returns a new context carrying the request ID.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return logger.ContextWithID(ctx, id)
}

// sessionHolder lets an inner handler report the session it resolved back to
// the access log.
type sessionHolder struct {
	id string
}

func contextWithSessionHolder(ctx context.Context, h *sessionHolder) context.Context {
	return context.WithValue(ctx, sessionHolderKey, h)
}

// SetSessionID records the session id for the access log of this request.
func SetSessionID(r *http.Request, id string) {
	if h, ok := r.Context().Value(sessionHolderKey).(*sessionHolder); ok {
		h.id = id
	}
}
