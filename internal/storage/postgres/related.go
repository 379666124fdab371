package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"media_archive/internal/domain"
)

type RelatedStore struct {
	db *sqlx.DB
}

func NewRelatedStore(db *sqlx.DB) *RelatedStore {
	return &RelatedStore{db: db}
}

const relatedColumns = `id, related_to_id, remote_id, url, created_time, updated_time`

// Record stores a URL a remote post points at. The same (post, url) edge is
// recorded once; re-ingesting a post does not pile up duplicates.
func (s *RelatedStore) Record(ctx context.Context, relatedToID int64, url string) error {
	query := `
		INSERT INTO related (related_to_id, url)
		SELECT $1, $2
		WHERE NOT EXISTS (
			SELECT 1 FROM related WHERE related_to_id = $1 AND url = $2
		)`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, relatedToID, url)
	return mapError(err)
}

// ResolveURL backfills dangling edges once the URL they point at has been
// ingested as a remote post. Opportunistic: unresolved rows are a valid
// steady state.
func (s *RelatedStore) ResolveURL(ctx context.Context, url string, remotePostID int64) (int64, error) {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE related SET remote_id = $2, updated_time = now() WHERE url = $1 AND remote_id IS NULL`,
		url, remotePostID,
	)
	if err != nil {
		return 0, mapError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return n, nil
}

// ListByOrigin returns the outgoing edges of a remote post.
func (s *RelatedStore) ListByOrigin(ctx context.Context, relatedToID int64) ([]domain.Related, error) {
	query := `SELECT ` + relatedColumns + ` FROM related WHERE related_to_id = $1 ORDER BY id`

	var edges []domain.Related
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &edges, query, relatedToID)
	if err != nil {
		return nil, mapError(err)
	}
	return edges, nil
}

// ListUnresolved returns edges whose URL has not been ingested yet.
func (s *RelatedStore) ListUnresolved(ctx context.Context, limit int) ([]domain.Related, error) {
	query := `SELECT ` + relatedColumns + ` FROM related WHERE remote_id IS NULL ORDER BY id LIMIT $1`

	var edges []domain.Related
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &edges, query, limit)
	if err != nil {
		return nil, mapError(err)
	}
	return edges, nil
}
