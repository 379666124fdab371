package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"media_archive/internal/domain"
)

// PostEvent announces an archived or updated remote post to downstream
// consumers.
type PostEvent struct {
	SourceName string    `json:"source_name"`
	OriginalID string    `json:"original_id"`
	Title      *string   `json:"title,omitempty"`
	URL        *string   `json:"url,omitempty"`
	PostTime   *time.Time `json:"post_time,omitempty"`
}

// IngestService implements the ingest API consumed by the fetch
// collaborator: source resolution, remote post ingestion and related-link
// recording.
type IngestService struct {
	sources     SourceStore
	remotePosts RemotePostStore
	remoteTags  RemoteTagStore
	files       FileStore
	related     RelatedStore
	txManager   TransactionManager
	publisher   Publisher
	logger      *slog.Logger
}

func NewIngestService(
	sources SourceStore,
	remotePosts RemotePostStore,
	remoteTags RemoteTagStore,
	files FileStore,
	related RelatedStore,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
) *IngestService {
	return &IngestService{
		sources:     sources,
		remotePosts: remotePosts,
		remoteTags:  remoteTags,
		files:       files,
		related:     related,
		txManager:   txManager,
		publisher:   publisher,
		logger:      logger,
	}
}

// ResolveSource returns the source for a remote integration, creating it on
// first use and tracking the integration's version as it evolves.
func (s *IngestService) ResolveSource(ctx context.Context, name string, version int, config *string) (*domain.Source, error) {
	src, err := s.sources.GetOrCreate(ctx, name, version, config)
	if err != nil {
		return nil, fmt.Errorf("resolve source %q: %w", name, err)
	}
	return src, nil
}

// IngestRemotePost resolves or creates the remote post keyed by
// (source, original_id), attaches its tags as a set union, attaches newly
// seen files at the next remote_order, records related links and backfills
// edges pointing at this post's URL. The whole item commits or rolls back
// as one unit. Returns the post and whether it was newly created.
func (s *IngestService) IngestRemotePost(ctx context.Context, source *domain.Source, item RemoteItem) (*domain.RemotePost, bool, error) {
	var (
		post  *domain.RemotePost
		isNew bool
	)

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		post, isNew, err = s.remotePosts.Upsert(txCtx, source.ID, item.OriginalID, domain.RemotePostAttrs{
			URL:      item.URL,
			Title:    item.Title,
			Comment:  item.Comment,
			Type:     item.Type,
			Metadata: item.Metadata,
			PostTime: item.PostTime,
		})
		if err != nil {
			return fmt.Errorf("upsert remote post: %w", err)
		}

		if err := s.attachTags(txCtx, source.ID, post.ID, item.Tags); err != nil {
			return err
		}

		if err := s.attachFiles(txCtx, post.ID, item.Files); err != nil {
			return err
		}

		for _, url := range item.Related {
			if err := s.related.Record(txCtx, post.ID, url); err != nil {
				return fmt.Errorf("record related %q: %w", url, err)
			}
		}

		if item.URL != nil {
			if _, err := s.related.ResolveURL(txCtx, *item.URL, post.ID); err != nil {
				return fmt.Errorf("resolve related url: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("ingest %s/%s: %w", source.Name, item.OriginalID, err)
	}

	s.logger.Debug("ingested remote post",
		"source", source.Name,
		"original_id", item.OriginalID,
		"new", isNew,
		"tags", len(item.Tags),
		"files", len(item.Files),
	)

	if s.publisher != nil {
		event := &PostEvent{
			SourceName: source.Name,
			OriginalID: post.OriginalID,
			Title:      post.Title,
			URL:        post.URL,
			PostTime:   post.PostTime,
		}
		if err := s.publisher.Publish(ctx, event, isNew); err != nil {
			// the post is committed; a lost event is not worth a retry loop
			s.logger.Warn("publish post event failed",
				"source", source.Name,
				"original_id", post.OriginalID,
				"error", err,
			)
		}
	}

	return post, isNew, nil
}

// RecordRelated stores a URL a remote post points at, outside the ingest of
// the post itself.
func (s *IngestService) RecordRelated(ctx context.Context, remotePost *domain.RemotePost, url string) error {
	if err := s.related.Record(ctx, remotePost.ID, url); err != nil {
		return fmt.Errorf("record related: %w", err)
	}
	return nil
}

func (s *IngestService) attachTags(ctx context.Context, sourceID, postID int64, refs []TagRef) error {
	if len(refs) == 0 {
		return nil
	}

	tagIDs := make([]int64, 0, len(refs))
	for _, ref := range refs {
		tag, err := s.remoteTags.GetOrCreate(ctx, sourceID, ref.Category, ref.Name)
		if err != nil {
			return fmt.Errorf("resolve tag %s:%s: %w", ref.Category, ref.Name, err)
		}
		tagIDs = append(tagIDs, tag.ID)
	}

	if err := s.remoteTags.LinkToPost(ctx, postID, tagIDs); err != nil {
		return fmt.Errorf("link tags: %w", err)
	}
	return nil
}

func (s *IngestService) attachFiles(ctx context.Context, postID int64, attrs []domain.FileAttrs) error {
	for _, fa := range attrs {
		file, err := s.resolveFile(ctx, postID, fa)
		if err != nil {
			return err
		}

		if err := s.files.LinkToRemote(ctx, file.ID, postID); err != nil {
			return fmt.Errorf("link file: %w", err)
		}
	}
	return nil
}

// resolveFile reuses an existing row for the same content hash when it is
// unattached or already belongs to this post; a hash held by a different
// post gets a fresh row, since equal hashes across unrelated uploads are
// only a hint, not an identity.
func (s *IngestService) resolveFile(ctx context.Context, postID int64, attrs domain.FileAttrs) (*domain.File, error) {
	if len(attrs.Hash) > 0 {
		existing, err := s.files.FindByHash(ctx, attrs.Hash)
		switch {
		case err == nil:
			if existing.RemoteID == nil || *existing.RemoteID == postID {
				return existing, nil
			}
		case !errors.Is(err, domain.ErrNotFound):
			return nil, fmt.Errorf("find file by hash: %w", err)
		}
	}

	file, err := s.files.Create(ctx, attrs)
	if err != nil {
		return nil, fmt.Errorf("create file: %w", err)
	}
	return file, nil
}
