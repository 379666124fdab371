package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"media_archive/internal/domain"
)

// CurationService implements the curation API consumed by local tooling:
// creating posts, accepting files, flag management and tag translation.
type CurationService struct {
	posts         PostStore
	tags          TagStore
	files         FileStore
	subscriptions SubscriptionStore
	txManager     TransactionManager
	logger        *slog.Logger
}

func NewCurationService(
	posts PostStore,
	tags TagStore,
	files FileStore,
	subscriptions SubscriptionStore,
	txManager TransactionManager,
	logger *slog.Logger,
) *CurationService {
	return &CurationService{
		posts:         posts,
		tags:          tags,
		files:         files,
		subscriptions: subscriptions,
		txManager:     txManager,
		logger:        logger,
	}
}

// CreatePost creates a locally curated post with its tags in one
// transaction.
func (s *CurationService) CreatePost(ctx context.Context, attrs domain.PostAttrs, tagIDs []int64) (*domain.Post, error) {
	var post *domain.Post

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		post, err = s.posts.Create(txCtx, attrs)
		if err != nil {
			return fmt.Errorf("create post: %w", err)
		}
		if err := s.posts.LinkTags(txCtx, post.ID, tagIDs); err != nil {
			return fmt.Errorf("link tags: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return post, nil
}

// AttachFileToPost links a file into a post's ordered file list.
func (s *CurationService) AttachFileToPost(ctx context.Context, fileID, postID int64) error {
	if err := s.files.LinkToLocal(ctx, fileID, postID); err != nil {
		return fmt.Errorf("attach file: %w", err)
	}
	return nil
}

// AcceptRemoteFile curates a remote file into a local post: the row gains a
// local link alongside its remote one and is marked processed.
func (s *CurationService) AcceptRemoteFile(ctx context.Context, fileID, postID int64) error {
	return s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.files.LinkToLocal(txCtx, fileID, postID); err != nil {
			return fmt.Errorf("attach file: %w", err)
		}
		if err := s.files.SetFlag(txCtx, fileID, domain.FileFlagProcessed, true); err != nil {
			return fmt.Errorf("mark processed: %w", err)
		}
		return nil
	})
}

func (s *CurationService) SetTagFlag(ctx context.Context, tagID int64, flag domain.Flags, on bool) error {
	return s.tags.SetFlag(ctx, tagID, flag, on)
}

func (s *CurationService) SetPostFlag(ctx context.Context, postID int64, flag domain.Flags, on bool) error {
	return s.posts.SetFlag(ctx, postID, flag, on)
}

func (s *CurationService) SetFileFlag(ctx context.Context, fileID int64, flag domain.Flags, on bool) error {
	return s.files.SetFlag(ctx, fileID, flag, on)
}

// MarkFilePresent records that the payload landed on disk.
func (s *CurationService) MarkFilePresent(ctx context.Context, fileID int64) error {
	return s.files.SetFlag(ctx, fileID, domain.FileFlagPresent, true)
}

// MarkThumbPresent records that the thumbnail landed on disk.
func (s *CurationService) MarkThumbPresent(ctx context.Context, fileID int64) error {
	return s.files.SetFlag(ctx, fileID, domain.FileFlagThumbPresent, true)
}

// SetSubscriptionEnabled turns a subscription's polling on or off.
func (s *CurationService) SetSubscriptionEnabled(ctx context.Context, subscriptionID int64, enabled bool) error {
	return s.subscriptions.SetFlag(ctx, subscriptionID, domain.SubscriptionFlagEnabled, enabled)
}

// TranslateTag maps a remote tag to a local tag. A nil localTagID is the
// explicit "do not import this tag" marker. Concurrent translations of the
// same remote tag resolve last-committed-wins.
func (s *CurationService) TranslateTag(ctx context.Context, remoteTagID int64, localTagID *int64) error {
	if err := s.tags.Translate(ctx, remoteTagID, localTagID); err != nil {
		return fmt.Errorf("translate tag: %w", err)
	}
	return nil
}

// ResolveTag looks up the local tag a remote tag translates to. The second
// return reports whether a translation exists at all: (nil, false) means
// the tag is still pending a decision, (nil, true) means it is explicitly
// ignored.
func (s *CurationService) ResolveTag(ctx context.Context, remoteTag *domain.RemoteTag) (*domain.Tag, bool, error) {
	tr, err := s.tags.GetTranslation(ctx, remoteTag.ID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get translation: %w", err)
	}

	if tr.LocalTagID == nil {
		return nil, true, nil
	}

	tag, err := s.tags.GetByID(ctx, *tr.LocalTagID)
	if err != nil {
		return nil, false, fmt.Errorf("load local tag: %w", err)
	}
	return tag, true, nil
}
