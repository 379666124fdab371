package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"media_archive/internal/domain"
)

type SourceStore interface {
	GetOrCreate(ctx context.Context, name string, version int, config *string) (*domain.Source, error)
	GetByID(ctx context.Context, id int64) (*domain.Source, error)
	UpdateMetadata(ctx context.Context, id int64, metadata *string) error
}

type TagStore interface {
	GetOrCreate(ctx context.Context, category domain.TagCategory, name string) (*domain.Tag, error)
	GetByID(ctx context.Context, id int64) (*domain.Tag, error)
	SetFlag(ctx context.Context, id int64, flag domain.Flags, on bool) error
	Translate(ctx context.Context, remoteTagID int64, localTagID *int64) error
	GetTranslation(ctx context.Context, remoteTagID int64) (*domain.TagTranslation, error)
}

type RemoteTagStore interface {
	GetOrCreate(ctx context.Context, sourceID int64, category domain.TagCategory, name string) (*domain.RemoteTag, error)
	SetFlag(ctx context.Context, id int64, flag domain.Flags, on bool) error
	LinkToPost(ctx context.Context, remotePostID int64, tagIDs []int64) error
	GetByPostID(ctx context.Context, remotePostID int64) ([]domain.RemoteTag, error)
}

type PostStore interface {
	Create(ctx context.Context, attrs domain.PostAttrs) (*domain.Post, error)
	SetFlag(ctx context.Context, id int64, flag domain.Flags, on bool) error
	LinkTags(ctx context.Context, postID int64, tagIDs []int64) error
}

type RemotePostStore interface {
	Upsert(ctx context.Context, sourceID int64, originalID string, attrs domain.RemotePostAttrs) (*domain.RemotePost, bool, error)
	GetBySourceAndOriginalID(ctx context.Context, sourceID int64, originalID string) (*domain.RemotePost, error)
	SetFlag(ctx context.Context, id int64, flag domain.Flags, on bool) error
}

type FileStore interface {
	Create(ctx context.Context, attrs domain.FileAttrs) (*domain.File, error)
	FindByHash(ctx context.Context, hash []byte) (*domain.File, error)
	LinkToRemote(ctx context.Context, fileID, remotePostID int64) error
	LinkToLocal(ctx context.Context, fileID, postID int64) error
	SetFlag(ctx context.Context, id int64, flag domain.Flags, on bool) error
}

type SubscriptionStore interface {
	GetOrCreate(ctx context.Context, sourceID int64, name string, options *string) (*domain.Subscription, error)
	ListEnabled(ctx context.Context) ([]domain.Subscription, error)
	UpdateState(ctx context.Context, id int64, state *string) error
	SetFlag(ctx context.Context, id int64, flag domain.Flags, on bool) error
	AppendToFeed(ctx context.Context, subscriptionID int64, remotePostIDs []int64) error
}

type RelatedStore interface {
	Record(ctx context.Context, relatedToID int64, url string) error
	ResolveURL(ctx context.Context, url string, remotePostID int64) (int64, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, event *PostEvent, isNew bool) error
	Close() error
}

// TagRef names a remote tag within its source's vocabulary.
type TagRef struct {
	Category domain.TagCategory
	Name     string
}

// RemoteItem is one remote post as handed over by the fetch collaborator.
// Cursor is the opaque position to persist once the item is ingested.
type RemoteItem struct {
	OriginalID string
	URL        *string
	Title      *string
	Comment    *string
	Type       domain.PostType
	Metadata   *string
	PostTime   *time.Time
	Tags       []TagRef
	Files      []domain.FileAttrs
	Related    []string
	Cursor     *string
}

// Fetcher is the external collaborator that talks to the remote site. It
// returns items beyond the given cursor, oldest first.
type Fetcher interface {
	FetchItems(ctx context.Context, sub *domain.Subscription, cursor *string, max int) ([]RemoteItem, error)
}

// Ingestor is the slice of the ingest API the poll service needs.
type Ingestor interface {
	IngestRemotePost(ctx context.Context, source *domain.Source, item RemoteItem) (*domain.RemotePost, bool, error)
}
