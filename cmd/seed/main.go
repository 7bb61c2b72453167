package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"bookconnect/internal/catalog"
	"bookconnect/internal/config"
	"bookconnect/internal/ingest"
	"bookconnect/internal/logger"
	"bookconnect/internal/platform/openlibrary"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

func main() {
	var (
		source     = flag.String("source", "sample", "Catalog to seed: sample, file, openlibrary")
		file       = flag.String("file", "", "Catalog JSON document for -source=file")
		subjects   = flag.String("subjects", "science_fiction,fantasy,romance,mystery,history", "Comma-separated Open Library subjects")
		perSubject = flag.Int("per-subject", 20, "Works to pull per Open Library subject")
		retries    = flag.Int("retries", 3, "Open Library retries per request")
	)
	flag.Parse()

	config.LoadEnvFiles()
	cfg, err := config.Load("")
	if err != nil {
		logrus.Fatalf("config: %v", err)
	}
	log := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.DSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	repo := catalog.NewPostgresRepo(pool, cfg.PageSize, cfg.DBTimeout)
	svc := ingest.NewService(repo, log)

	var run *ingest.Run
	switch *source {
	case "sample", "file":
		if *source == "file" && *file == "" {
			log.Fatal("-file is required for -source=file")
		}
		c, lerr := catalog.NewJSONSource(*file, cfg.PageSize).Load(ctx)
		if lerr != nil {
			log.Fatalf("Failed to load catalog: %v", lerr)
		}
		run, err = svc.ImportCatalog(ctx, *source, c)
	case "openlibrary":
		client := openlibrary.NewClient(cfg.OpenLibrary.UserAgent, cfg.OpenLibrary.RPS, *retries)
		run, err = svc.ImportOpenLibrary(ctx, client, ingest.Config{
			Subjects:   splitList(*subjects),
			PerSubject: *perSubject,
		})
	default:
		log.Fatalf("Unknown source: %s. Use: sample, file, openlibrary", *source)
	}
	if err != nil {
		log.Fatalf("Seed failed: %v", err)
	}

	total, err := repo.GetTotalBooks(ctx)
	if err != nil {
		log.WithError(err).Warn("count books")
	}
	log.WithFields(logrus.Fields{
		"source":   run.Source,
		"upserted": run.BooksUpserted,
		"total":    total,
		"took":     run.FinishedAt.Sub(run.StartedAt).String(),
	}).Info("seed complete")
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
