package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"media_archive/internal/domain"
)

type PostStore struct {
	db *sqlx.DB
}

func NewPostStore(db *sqlx.DB) *PostStore {
	return &PostStore{db: db}
}

const postColumns = `id, title, comment, type, flags, metadata, post_time, created_time, updated_time`

func (s *PostStore) Create(ctx context.Context, attrs domain.PostAttrs) (*domain.Post, error) {
	if !attrs.Type.Valid() {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidPostType, int(attrs.Type))
	}

	query := `
		INSERT INTO post (title, comment, type, metadata, post_time)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + postColumns

	var post domain.Post
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &post, query,
		attrs.Title, attrs.Comment, attrs.Type, attrs.Metadata, attrs.PostTime,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return &post, nil
}

func (s *PostStore) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	var post domain.Post
	query := `SELECT ` + postColumns + ` FROM post WHERE id = $1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &post, query, id)
	if err != nil {
		return nil, mapError(err)
	}
	return &post, nil
}

func (s *PostStore) SetFlag(ctx context.Context, id int64, flag domain.Flags, on bool) error {
	return setFlag(ctx, GetExecutor(ctx, s.db), "post", id, flag, on)
}

// LinkTags attaches local tags to a post as a set union.
func (s *PostStore) LinkTags(ctx context.Context, postID int64, tagIDs []int64) error {
	if len(tagIDs) == 0 {
		return nil
	}

	query := `
		INSERT INTO post_tag (post_id, tag_id)
		SELECT $1, unnest($2::bigint[])
		ON CONFLICT DO NOTHING`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, postID, pq.Array(tagIDs))
	return mapError(err)
}

func (s *PostStore) GetTags(ctx context.Context, postID int64) ([]domain.Tag, error) {
	query := `
		SELECT t.id, t.category, t.name, t.flags, t.created_time, t.updated_time
		FROM tag t
		INNER JOIN post_tag pt ON pt.tag_id = t.id
		WHERE pt.post_id = $1
		ORDER BY t.category, lower(t.name)`

	var tags []domain.Tag
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &tags, query, postID)
	if err != nil {
		return nil, mapError(err)
	}
	return tags, nil
}

func (s *PostStore) Delete(ctx context.Context, id int64) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, `DELETE FROM post WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	return requireRow(res)
}
