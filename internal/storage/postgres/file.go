package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"media_archive/internal/domain"
)

type FileStore struct {
	db *sqlx.DB
}

func NewFileStore(db *sqlx.DB) *FileStore {
	return &FileStore{db: db}
}

const fileColumns = `id, local_id, remote_id, local_order, remote_order, hash, filename, mime, ext, thumb_ext, metadata, flags, created_time, updated_time`

func (s *FileStore) Create(ctx context.Context, attrs domain.FileAttrs) (*domain.File, error) {
	query := `
		INSERT INTO file (hash, filename, mime, ext, thumb_ext, metadata)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + fileColumns

	var file domain.File
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &file, query,
		attrs.Hash, attrs.Filename, attrs.Mime, attrs.Ext, attrs.ThumbExt, attrs.Metadata,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return &file, nil
}

func (s *FileStore) GetByID(ctx context.Context, id int64) (*domain.File, error) {
	var file domain.File
	query := `SELECT ` + fileColumns + ` FROM file WHERE id = $1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &file, query, id)
	if err != nil {
		return nil, mapError(err)
	}
	return &file, nil
}

// FindByHash returns the newest file with the given content hash, or
// ErrNotFound. A match is a hint for the ingest layer to reuse the record or
// skip re-downloading, not a guarantee of semantic identity: the hash column
// is not unique and unrelated uploads may collide.
func (s *FileStore) FindByHash(ctx context.Context, hash []byte) (*domain.File, error) {
	var file domain.File
	query := `SELECT ` + fileColumns + ` FROM file WHERE hash = $1 ORDER BY id DESC LIMIT 1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &file, query, hash)
	if err != nil {
		return nil, mapError(err)
	}
	return &file, nil
}

// LinkToRemote attaches a file to a remote post at the next sequential
// remote_order. Re-linking a file already attached to the same post keeps
// its position, so repeated ingests of the same item are idempotent.
func (s *FileStore) LinkToRemote(ctx context.Context, fileID, remotePostID int64) error {
	query := `
		UPDATE file SET
			remote_order = CASE
				WHEN file.remote_id IS NOT DISTINCT FROM $2 THEN file.remote_order
				ELSE COALESCE((SELECT max(f.remote_order) + 1 FROM file f WHERE f.remote_id = $2), 0)
			END,
			remote_id = $2,
			updated_time = now()
		WHERE id = $1`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, fileID, remotePostID)
	if err != nil {
		return mapError(err)
	}
	return requireRow(res)
}

// LinkToLocal attaches a file to a curated post at the next sequential
// local_order; the remote link, if any, is untouched so the same content
// row serves both sides.
func (s *FileStore) LinkToLocal(ctx context.Context, fileID, postID int64) error {
	query := `
		UPDATE file SET
			local_order = CASE
				WHEN file.local_id IS NOT DISTINCT FROM $2 THEN file.local_order
				ELSE COALESCE((SELECT max(f.local_order) + 1 FROM file f WHERE f.local_id = $2), 0)
			END,
			local_id = $2,
			updated_time = now()
		WHERE id = $1`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, fileID, postID)
	if err != nil {
		return mapError(err)
	}
	return requireRow(res)
}

func (s *FileStore) SetFlag(ctx context.Context, id int64, flag domain.Flags, on bool) error {
	return setFlag(ctx, GetExecutor(ctx, s.db), "file", id, flag, on)
}

func (s *FileStore) GetByRemotePostID(ctx context.Context, remotePostID int64) ([]domain.File, error) {
	query := `SELECT ` + fileColumns + ` FROM file WHERE remote_id = $1 ORDER BY remote_order`

	var files []domain.File
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &files, query, remotePostID)
	if err != nil {
		return nil, mapError(err)
	}
	return files, nil
}

func (s *FileStore) GetByPostID(ctx context.Context, postID int64) ([]domain.File, error) {
	query := `SELECT ` + fileColumns + ` FROM file WHERE local_id = $1 ORDER BY local_order`

	var files []domain.File
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &files, query, postID)
	if err != nil {
		return nil, mapError(err)
	}
	return files, nil
}
