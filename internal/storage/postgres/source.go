package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"media_archive/internal/domain"
)

type SourceStore struct {
	db *sqlx.DB
}

func NewSourceStore(db *sqlx.DB) *SourceStore {
	return &SourceStore{db: db}
}

const sourceColumns = `id, name, version, config, metadata, created_time, updated_time`

// GetOrCreate resolves a source by name, creating it on first use. An
// existing source picks up the integration's current version and config;
// its name keeps the stored casing.
func (s *SourceStore) GetOrCreate(ctx context.Context, name string, version int, config *string) (*domain.Source, error) {
	query := `
		INSERT INTO source (name, version, config)
		VALUES ($1, $2, $3)
		ON CONFLICT (lower(name)) DO UPDATE SET
			version = EXCLUDED.version,
			config = COALESCE(EXCLUDED.config, source.config),
			updated_time = now()
		RETURNING ` + sourceColumns

	var src domain.Source
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &src, query, name, version, config)
	if err != nil {
		return nil, mapError(err)
	}
	return &src, nil
}

func (s *SourceStore) GetByName(ctx context.Context, name string) (*domain.Source, error) {
	var src domain.Source
	query := `SELECT ` + sourceColumns + ` FROM source WHERE lower(name) = lower($1)`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &src, query, name)
	if err != nil {
		return nil, mapError(err)
	}
	return &src, nil
}

func (s *SourceStore) GetByID(ctx context.Context, id int64) (*domain.Source, error) {
	var src domain.Source
	query := `SELECT ` + sourceColumns + ` FROM source WHERE id = $1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &src, query, id)
	if err != nil {
		return nil, mapError(err)
	}
	return &src, nil
}

// UpdateMetadata stores the integration-owned metadata blob verbatim.
func (s *SourceStore) UpdateMetadata(ctx context.Context, id int64, metadata *string) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE source SET metadata = $2, updated_time = now() WHERE id = $1`,
		id, metadata,
	)
	if err != nil {
		return mapError(err)
	}
	return requireRow(res)
}

// Delete removes the source; remote posts, remote tags and subscriptions go
// with it, files linked to its posts are orphaned with remote_id nulled.
func (s *SourceStore) Delete(ctx context.Context, id int64) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, `DELETE FROM source WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	return requireRow(res)
}
