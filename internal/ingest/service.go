package ingest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"bookconnect/internal/catalog"
	"bookconnect/internal/platform/openlibrary"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Config struct {
	Subjects []string
	// PerSubject caps how many works are pulled for each subject.
	PerSubject int
}

type OpenLibraryClient interface {
	SearchBySubject(ctx context.Context, subject string, limit int) (*openlibrary.SearchResponse, error)
	GetWork(ctx context.Context, key string) (*openlibrary.Work, error)
	CoverURL(coverID int) string
}

// Writer is the part of the catalog repository an import writes to.
type Writer interface {
	UpsertBook(ctx context.Context, position int, b *catalog.Book) error
	UpsertAuthor(ctx context.Context, id, name string) error
	UpsertGenre(ctx context.Context, id, name string) error
	GetTotalBooks(ctx context.Context) (int, error)
}

type Service struct {
	repo Writer
	log  logrus.FieldLogger
	now  func() time.Time
}

func NewService(repo Writer, log logrus.FieldLogger) *Service {
	return &Service{repo: repo, log: log, now: time.Now}
}

// ImportCatalog writes a loaded catalog to the repository, appending books
// after the ones already stored.
func (s *Service) ImportCatalog(ctx context.Context, source string, c *catalog.Catalog) (*Run, error) {
	run := &Run{Source: source, StartedAt: s.now(), BooksFetched: len(c.Books)}
	defer func() { run.FinishedAt = s.now() }()

	for id, name := range c.Genres {
		if err := s.repo.UpsertGenre(ctx, id, name); err != nil {
			return run, fmt.Errorf("genre %s: %w", id, err)
		}
		run.GenresUpserted++
	}
	for id, name := range c.Authors {
		if err := s.repo.UpsertAuthor(ctx, id, name); err != nil {
			return run, fmt.Errorf("author %s: %w", id, err)
		}
		run.AuthorsUpserted++
	}

	offset, err := s.repo.GetTotalBooks(ctx)
	if err != nil {
		return run, fmt.Errorf("count books: %w", err)
	}
	for i := range c.Books {
		b := c.Books[i]
		if err := s.repo.UpsertBook(ctx, offset+i, &b); err != nil {
			return run, fmt.Errorf("book %s: %w", b.ID, err)
		}
		run.BooksUpserted++
	}

	s.log.WithFields(logrus.Fields{
		"source":  source,
		"books":   run.BooksUpserted,
		"authors": run.AuthorsUpserted,
		"genres":  run.GenresUpserted,
	}).Info("ingest: catalog imported")
	return run, nil
}

// ImportOpenLibrary pulls works for each subject and imports them. A work
// listed under several subjects becomes one book tagged with every subject.
// Works without an author are skipped.
func (s *Service) ImportOpenLibrary(ctx context.Context, ol OpenLibraryClient, cfg Config) (*Run, error) {
	var (
		books   []catalog.Book
		byID    = map[string]int{}
		authors = map[string]string{}
		genres  = map[string]string{}
		title   = cases.Title(language.English)
	)

	for _, subject := range cfg.Subjects {
		genreID := subjectID(subject)
		genres[genreID] = title.String(strings.ReplaceAll(genreID, "_", " "))

		res, err := ol.SearchBySubject(ctx, genreID, cfg.PerSubject)
		if err != nil {
			return nil, fmt.Errorf("search subject %s: %w", subject, err)
		}

		for _, doc := range res.Docs {
			id := strings.TrimPrefix(doc.Key, "/works/")
			if id == "" || len(doc.AuthorKeys) == 0 || len(doc.AuthorNames) == 0 {
				continue
			}
			if i, seen := byID[id]; seen {
				if !books[i].HasGenre(genreID) {
					books[i].Genres = append(books[i].Genres, genreID)
				}
				continue
			}

			var description string
			work, err := ol.GetWork(ctx, doc.Key)
			if err != nil {
				s.log.WithError(err).WithField("work", doc.Key).Warn("ingest: fetch work")
			} else {
				description = catalog.SanitizeText(work.DescriptionText())
			}

			authors[doc.AuthorKeys[0]] = doc.AuthorNames[0]
			byID[id] = len(books)
			books = append(books, catalog.Book{
				ID:          id,
				Title:       doc.Title,
				Author:      doc.AuthorKeys[0],
				Image:       ol.CoverURL(doc.CoverID),
				Description: description,
				Published:   time.Date(doc.FirstPublishYear, time.January, 1, 0, 0, 0, 0, time.UTC),
				Genres:      []string{genreID},
			})
		}
	}

	c, err := catalog.New(books, authors, genres, catalog.DefaultPageSize)
	if err != nil {
		return nil, err
	}
	return s.ImportCatalog(ctx, "openlibrary", c)
}

// subjectID normalizes a subject the way Open Library keys them.
func subjectID(subject string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(subject)), " ", "_")
}
