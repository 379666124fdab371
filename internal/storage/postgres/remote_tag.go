package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"media_archive/internal/domain"
)

type RemoteTagStore struct {
	db *sqlx.DB
}

func NewRemoteTagStore(db *sqlx.DB) *RemoteTagStore {
	return &RemoteTagStore{db: db}
}

const remoteTagColumns = `id, source_id, category, name, metadata, flags, created_time, updated_time`

// GetOrCreate resolves a remote tag by (source, category, name),
// case-insensitive, inserting it when absent.
func (s *RemoteTagStore) GetOrCreate(ctx context.Context, sourceID int64, category domain.TagCategory, name string) (*domain.RemoteTag, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidCategory, int(category))
	}

	query := `
		INSERT INTO remote_tag (source_id, category, name)
		VALUES ($1, $2, $3)
		ON CONFLICT (source_id, category, lower(name)) DO UPDATE SET
			name = remote_tag.name
		RETURNING ` + remoteTagColumns

	var tag domain.RemoteTag
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &tag, query, sourceID, category, name)
	if err != nil {
		return nil, mapError(err)
	}
	return &tag, nil
}

func (s *RemoteTagStore) GetByID(ctx context.Context, id int64) (*domain.RemoteTag, error) {
	var tag domain.RemoteTag
	query := `SELECT ` + remoteTagColumns + ` FROM remote_tag WHERE id = $1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &tag, query, id)
	if err != nil {
		return nil, mapError(err)
	}
	return &tag, nil
}

func (s *RemoteTagStore) UpdateMetadata(ctx context.Context, id int64, metadata *string) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE remote_tag SET metadata = $2, updated_time = now() WHERE id = $1`,
		id, metadata,
	)
	if err != nil {
		return mapError(err)
	}
	return requireRow(res)
}

func (s *RemoteTagStore) SetFlag(ctx context.Context, id int64, flag domain.Flags, on bool) error {
	return setFlag(ctx, GetExecutor(ctx, s.db), "remote_tag", id, flag, on)
}

// LinkToPost attaches tags to a remote post as a set union: already-attached
// tags are left alone, never an error.
func (s *RemoteTagStore) LinkToPost(ctx context.Context, remotePostID int64, tagIDs []int64) error {
	if len(tagIDs) == 0 {
		return nil
	}

	query := `
		INSERT INTO remote_post_tag (post_id, tag_id)
		SELECT $1, unnest($2::bigint[])
		ON CONFLICT DO NOTHING`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, remotePostID, pq.Array(tagIDs))
	return mapError(err)
}

func (s *RemoteTagStore) GetByPostID(ctx context.Context, remotePostID int64) ([]domain.RemoteTag, error) {
	query := `
		SELECT t.id, t.source_id, t.category, t.name, t.metadata, t.flags, t.created_time, t.updated_time
		FROM remote_tag t
		INNER JOIN remote_post_tag pt ON pt.tag_id = t.id
		WHERE pt.post_id = $1
		ORDER BY t.category, lower(t.name)`

	var tags []domain.RemoteTag
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &tags, query, remotePostID)
	if err != nil {
		return nil, mapError(err)
	}
	return tags, nil
}
