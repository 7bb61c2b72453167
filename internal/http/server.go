package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"bookconnect/internal/app"
	"bookconnect/internal/catalog"
	"bookconnect/internal/httpx"
	"bookconnect/internal/logger"
	"bookconnect/internal/session"
	"bookconnect/internal/view"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Options struct {
	SessionTTL     time.Duration
	RateLimitRPS   float64
	RateLimitBurst int
	MaxBodyBytes   int64
	EnableHSTS     bool
	CORSOrigins    []string
	// DB is pinged by /readyz when set.
	DB Pinger
}

type Server struct {
	catalog  *catalog.Catalog
	sessions *session.Service
	opts     Options
	log      logrus.FieldLogger
	router   chi.Router
}

// NewServer loads the catalog from src and builds the HTTP surface over it.
// Background sweeps stop when ctx is done.
func NewServer(ctx context.Context, src catalog.Source, opts Options, log logrus.FieldLogger) (*Server, error) {
	done := logger.Track(ctx, log, "load catalog")
	c, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	done()
	log.WithFields(logrus.Fields{
		"books":   len(c.Books),
		"authors": len(c.Authors),
		"genres":  len(c.Genres),
	}).Info("catalog loaded")

	s := &Server{
		catalog: c,
		opts:    opts,
		log:     log,
	}
	s.sessions = session.NewService(session.NewMemoryRepo(), s.newApp, opts.SessionTTL, log)
	go s.sessions.RunCleanup(ctx, time.Minute)

	s.router = s.buildRouter(ctx)
	return s, nil
}

// newApp builds one session's document and app.
func (s *Server) newApp(prefersDark bool) (*app.App, *view.Document, error) {
	doc := view.NewDocument()
	a, err := app.New(s.catalog, doc, s.log)
	if err != nil {
		return nil, nil, err
	}
	a.Init(prefersDark)
	return a, doc, nil
}

func (s *Server) buildRouter(ctx context.Context) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(httpx.RequestIDMiddleware)
	r.Use(httpx.AccessLogMiddleware(s.log))
	r.Use(httpx.RecoveryMiddleware(s.log))
	r.Use(httpx.SecurityHeadersMiddleware(s.opts.EnableHSTS))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/readyz", s.ready)
	r.Handle("/metrics", promhttp.Handler())

	limiter := httpx.NewRateLimitMiddleware(ctx, s.opts.RateLimitRPS, s.opts.RateLimitBurst)
	browser := NewBrowserHandler(s.sessions, s.log)
	books := NewCatalogHandler(s.catalog)

	r.Group(func(r chi.Router) {
		r.Use(limiter.Middleware)
		r.Use(httpx.RequestSizeLimitMiddleware(s.opts.MaxBodyBytes))

		r.Get("/", browser.Page)
		r.Post("/events/{hook}/{action}", browser.Event)

		r.Route("/v1/catalog", func(r chi.Router) {
			r.Use(httpx.CORSMiddleware(s.opts.CORSOrigins))
			r.Get("/books", books.List)
			r.Get("/books/{id}", books.Get)
			r.Get("/genres", books.Genres)
			r.Get("/authors", books.Authors)
		})
	})

	return r
}

func (s *Server) ready(w http.ResponseWriter, r *http.Request) {
	if s.opts.DB != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := s.opts.DB.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

func (s *Server) Router() chi.Router { return s.router }

func (s *Server) Catalog() *catalog.Catalog { return s.catalog }
