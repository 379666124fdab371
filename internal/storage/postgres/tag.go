package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"media_archive/internal/domain"
)

type TagStore struct {
	db *sqlx.DB
}

func NewTagStore(db *sqlx.DB) *TagStore {
	return &TagStore{db: db}
}

const tagColumns = `id, category, name, flags, created_time, updated_time`

// GetOrCreate resolves a local tag by (category, name), case-insensitive,
// inserting it when absent. The ON CONFLICT clause keeps this atomic under
// concurrent ingest; an existing tag keeps its stored casing.
func (s *TagStore) GetOrCreate(ctx context.Context, category domain.TagCategory, name string) (*domain.Tag, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidCategory, int(category))
	}

	query := `
		INSERT INTO tag (category, name)
		VALUES ($1, $2)
		ON CONFLICT (category, lower(name)) DO UPDATE SET
			name = tag.name
		RETURNING ` + tagColumns

	var tag domain.Tag
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &tag, query, category, name)
	if err != nil {
		return nil, mapError(err)
	}
	return &tag, nil
}

func (s *TagStore) GetByID(ctx context.Context, id int64) (*domain.Tag, error) {
	var tag domain.Tag
	query := `SELECT ` + tagColumns + ` FROM tag WHERE id = $1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &tag, query, id)
	if err != nil {
		return nil, mapError(err)
	}
	return &tag, nil
}

// SetFlag sets or clears one flag bit as an atomic read-modify-write of the
// stored value; concurrent writers to other bits are not lost.
func (s *TagStore) SetFlag(ctx context.Context, id int64, flag domain.Flags, on bool) error {
	return setFlag(ctx, GetExecutor(ctx, s.db), "tag", id, flag, on)
}

// Delete removes a local tag. Translations pointing at it survive with
// local_tag_id nulled; the remote tags themselves are untouched.
func (s *TagStore) Delete(ctx context.Context, id int64) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, `DELETE FROM tag WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	return requireRow(res)
}

// Translate records the local tag a remote tag corresponds to. The row
// shares the remote tag's id; localTagID nil means "ignore this remote tag".
// Concurrent writers resolve last-committed-wins.
func (s *TagStore) Translate(ctx context.Context, remoteTagID int64, localTagID *int64) error {
	query := `
		INSERT INTO tag_translation (id, local_tag_id)
		VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET
			local_tag_id = EXCLUDED.local_tag_id,
			updated_time = now()`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, remoteTagID, localTagID)
	return mapError(err)
}

// GetTranslation returns the translation for a remote tag, or ErrNotFound
// when the tag is still untranslated (pending).
func (s *TagStore) GetTranslation(ctx context.Context, remoteTagID int64) (*domain.TagTranslation, error) {
	var tr domain.TagTranslation
	query := `
		SELECT id, local_tag_id, created_time, updated_time
		FROM tag_translation
		WHERE id = $1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &tr, query, remoteTagID)
	if err != nil {
		return nil, mapError(err)
	}
	return &tr, nil
}
