package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"media_archive/internal/domain"
)

type RemotePostStore struct {
	db *sqlx.DB
}

func NewRemotePostStore(db *sqlx.DB) *RemotePostStore {
	return &RemotePostStore{db: db}
}

const remotePostColumns = `id, source_id, original_id, url, title, comment, type, flags, metadata, post_time, created_time, updated_time`

// Upsert resolves a remote post by (source, original_id), creating it on
// first ingest and merging attributes on every later one. The identity
// columns and created_time never change across updates to the same logical
// remote item. The second return reports whether the row is new.
func (s *RemotePostStore) Upsert(ctx context.Context, sourceID int64, originalID string, attrs domain.RemotePostAttrs) (*domain.RemotePost, bool, error) {
	if !attrs.Type.Valid() {
		return nil, false, fmt.Errorf("%w: %d", domain.ErrInvalidPostType, int(attrs.Type))
	}

	query := `
		INSERT INTO remote_post (source_id, original_id, url, title, comment, type, metadata, post_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (source_id, original_id) DO UPDATE SET
			url = COALESCE(EXCLUDED.url, remote_post.url),
			title = COALESCE(EXCLUDED.title, remote_post.title),
			comment = COALESCE(EXCLUDED.comment, remote_post.comment),
			type = EXCLUDED.type,
			metadata = COALESCE(EXCLUDED.metadata, remote_post.metadata),
			post_time = COALESCE(EXCLUDED.post_time, remote_post.post_time),
			updated_time = now()
		RETURNING ` + remotePostColumns + `, (xmax = 0) AS is_new`

	var row struct {
		domain.RemotePost
		IsNew bool `db:"is_new"`
	}
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &row, query,
		sourceID, originalID,
		attrs.URL, attrs.Title, attrs.Comment, attrs.Type, attrs.Metadata, attrs.PostTime,
	)
	if err != nil {
		return nil, false, mapError(err)
	}
	return &row.RemotePost, row.IsNew, nil
}

func (s *RemotePostStore) GetByID(ctx context.Context, id int64) (*domain.RemotePost, error) {
	var post domain.RemotePost
	query := `SELECT ` + remotePostColumns + ` FROM remote_post WHERE id = $1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &post, query, id)
	if err != nil {
		return nil, mapError(err)
	}
	return &post, nil
}

func (s *RemotePostStore) GetBySourceAndOriginalID(ctx context.Context, sourceID int64, originalID string) (*domain.RemotePost, error) {
	var post domain.RemotePost
	query := `SELECT ` + remotePostColumns + ` FROM remote_post WHERE source_id = $1 AND original_id = $2`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &post, query, sourceID, originalID)
	if err != nil {
		return nil, mapError(err)
	}
	return &post, nil
}

func (s *RemotePostStore) SetFlag(ctx context.Context, id int64, flag domain.Flags, on bool) error {
	return setFlag(ctx, GetExecutor(ctx, s.db), "remote_post", id, flag, on)
}

// Delete removes a remote post; tag links, feed rows and outgoing related
// edges cascade, while files and incoming related edges keep their rows
// with the reference nulled.
func (s *RemotePostStore) Delete(ctx context.Context, id int64) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, `DELETE FROM remote_post WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	return requireRow(res)
}
