package infra_postgres_remote_url

import (
	"context"
	"fmt"
	"sort"

	"github.com/adithyagarapati/movie-analyzer/internal/model"
	"github.com/jmoiron/sqlx"
)

const schema = `
	CREATE TABLE IF NOT EXISTS remote_image_urls (
		movie_id   TEXT PRIMARY KEY,
		url        TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
`

type Repository struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create remote_image_urls: %w", err)
	}
	return nil
}

func (r *Repository) Load(ctx context.Context) (model.URLMapping, error) {
	query := `
		SELECT movie_id, url
		FROM remote_image_urls
	`

	var rows []RemoteURLDB
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to query remote urls: %w", err)
	}

	return ToDomain(rows), nil
}

// StoreBatch upserts every entry in one transaction.
func (r *Repository) StoreBatch(ctx context.Context, mapping model.URLMapping) error {
	if len(mapping) == 0 {
		return nil
	}

	query := `
		INSERT INTO remote_image_urls (movie_id, url, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (movie_id) DO UPDATE SET
			url = EXCLUDED.url,
			updated_at = EXCLUDED.updated_at
	`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	ids := make([]string, 0, len(mapping))
	for id := range mapping {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		if _, err := tx.ExecContext(ctx, query, id, mapping[id]); err != nil {
			return fmt.Errorf("failed to store remote url for %s: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit remote urls: %w", err)
	}
	return nil
}
