package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository is the writable side of the Postgres catalog used by the seeder.
type Repository interface {
	Source
	UpsertBook(ctx context.Context, position int, b *Book) error
	UpsertAuthor(ctx context.Context, id, name string) error
	UpsertGenre(ctx context.Context, id, name string) error
	GetTotalBooks(ctx context.Context) (int, error)
}

type PostgresRepo struct {
	db       *pgxpool.Pool
	pageSize int
	timeout  time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, pageSize int, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, pageSize: pageSize, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

// Load reads the whole catalog in position order.
func (r *PostgresRepo) Load(ctx context.Context) (*Catalog, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	authors, err := r.names(ctx, "SELECT id, name FROM catalog_authors")
	if err != nil {
		return nil, fmt.Errorf("load authors: %w", err)
	}
	genres, err := r.names(ctx, "SELECT id, name FROM catalog_genres")
	if err != nil {
		return nil, fmt.Errorf("load genres: %w", err)
	}

	const booksSQL = `
		SELECT id, title, author_id, image, description, published
		FROM catalog_books
		ORDER BY position ASC, id ASC`

	rows, err := r.db.Query(ctx, booksSQL)
	if err != nil {
		return nil, fmt.Errorf("load books: %w", err)
	}
	books, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Book, error) {
		var b Book
		err := row.Scan(&b.ID, &b.Title, &b.Author, &b.Image, &b.Description, &b.Published)
		return b, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan books: %w", err)
	}

	bookGenres, err := r.bookGenres(ctx)
	if err != nil {
		return nil, fmt.Errorf("load book genres: %w", err)
	}
	for i := range books {
		books[i].Genres = bookGenres[books[i].ID]
	}

	return New(books, authors, genres, r.pageSize)
}

func (r *PostgresRepo) names(ctx context.Context, query string) (map[string]string, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		out[id] = name
	}
	return out, rows.Err()
}

func (r *PostgresRepo) bookGenres(ctx context.Context) (map[string][]string, error) {
	const query = `
		SELECT book_id, genre_id
		FROM catalog_book_genres
		ORDER BY book_id ASC, position ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][]string)
	for rows.Next() {
		var bookID, genreID string
		if err := rows.Scan(&bookID, &genreID); err != nil {
			return nil, err
		}
		out[bookID] = append(out[bookID], genreID)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) UpsertBook(ctx context.Context, position int, b *Book) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	const bookSQL = `
		INSERT INTO catalog_books (id, position, title, author_id, image, description, published, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())
		ON CONFLICT (id) DO UPDATE SET
			position = EXCLUDED.position,
			title = EXCLUDED.title,
			author_id = EXCLUDED.author_id,
			image = EXCLUDED.image,
			description = EXCLUDED.description,
			published = EXCLUDED.published,
			updated_at = now()`

	if _, err := tx.Exec(ctx, bookSQL, b.ID, position, b.Title, b.Author, b.Image, b.Description, b.Published); err != nil {
		return fmt.Errorf("upsert book: %w", err)
	}

	if _, err := tx.Exec(ctx, "DELETE FROM catalog_book_genres WHERE book_id = $1", b.ID); err != nil {
		return fmt.Errorf("clear book genres: %w", err)
	}
	for i, g := range b.Genres {
		const genreSQL = `
			INSERT INTO catalog_book_genres (book_id, genre_id, position)
			VALUES ($1, $2, $3)
			ON CONFLICT (book_id, genre_id) DO NOTHING`
		if _, err := tx.Exec(ctx, genreSQL, b.ID, g, i); err != nil {
			return fmt.Errorf("link book genre %s: %w", g, err)
		}
	}

	return tx.Commit(ctx)
}

func (r *PostgresRepo) UpsertAuthor(ctx context.Context, id, name string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	const sql = `
		INSERT INTO catalog_authors (id, name, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			updated_at = now()`

	if _, err := r.db.Exec(ctx, sql, id, name); err != nil {
		return fmt.Errorf("upsert author: %w", err)
	}
	return nil
}

func (r *PostgresRepo) UpsertGenre(ctx context.Context, id, name string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	const sql = `
		INSERT INTO catalog_genres (id, name)
		VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name`

	if _, err := r.db.Exec(ctx, sql, id, name); err != nil {
		return fmt.Errorf("upsert genre: %w", err)
	}
	return nil
}

func (r *PostgresRepo) GetTotalBooks(ctx context.Context) (int, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM catalog_books").Scan(&count)
	return count, err
}
