package ingest

import (
	"time"
)

// Run summarizes one import.
type Run struct {
	Source          string
	StartedAt       time.Time
	FinishedAt      time.Time
	BooksFetched    int
	BooksUpserted   int
	AuthorsUpserted int
	GenresUpserted  int
}
