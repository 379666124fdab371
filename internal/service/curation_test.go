package service_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"media_archive/internal/domain"
	"media_archive/internal/service"
	"media_archive/internal/service/mocks"
	"media_archive/testdata/utils"
)

type CurationServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	posts         *mocks.MockPostStore
	tags          *mocks.MockTagStore
	files         *mocks.MockFileStore
	subscriptions *mocks.MockSubscriptionStore
	txManager     *mocks.MockTransactionManager

	svc *service.CurationService
	logger  *slog.Logger
}

func (s *CurationServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.posts = mocks.NewMockPostStore(s.ctrl)
	s.tags = mocks.NewMockTagStore(s.ctrl)
	s.files = mocks.NewMockFileStore(s.ctrl)
	s.subscriptions = mocks.NewMockSubscriptionStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.svc = service.NewCurationService(
		s.posts,
		s.tags,
		s.files,
		s.subscriptions,
		s.txManager,
		s.logger,
	)
}

func (s *CurationServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCurationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CurationServiceTestSuite))
}

func (s *CurationServiceTestSuite) expectTransaction(ctx context.Context) {
	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func (s *CurationServiceTestSuite) TestCreatePost() {
	ctx := context.Background()

	attrs := domain.PostAttrs{
		Title: utils.Ptr("my collection"),
		Type:  domain.TypeCollection,
	}

	s.expectTransaction(ctx)
	s.posts.EXPECT().Create(ctx, attrs).Return(&domain.Post{ID: 10, Type: domain.TypeCollection}, nil)
	s.posts.EXPECT().LinkTags(ctx, int64(10), []int64{1, 2}).Return(nil)

	post, err := s.svc.CreatePost(ctx, attrs, []int64{1, 2})

	s.NoError(err)
	s.Equal(int64(10), post.ID)
}

func (s *CurationServiceTestSuite) TestCreatePost_LinkErrorRollsBack() {
	ctx := context.Background()

	attrs := domain.PostAttrs{Type: domain.TypeSet}

	s.expectTransaction(ctx)
	s.posts.EXPECT().Create(ctx, attrs).Return(&domain.Post{ID: 10, Type: domain.TypeSet}, nil)
	s.posts.EXPECT().LinkTags(ctx, int64(10), []int64{1}).Return(errors.New("db down"))

	post, err := s.svc.CreatePost(ctx, attrs, []int64{1})

	s.Error(err)
	s.Nil(post)
}

func (s *CurationServiceTestSuite) TestAcceptRemoteFile() {
	ctx := context.Background()

	s.expectTransaction(ctx)
	s.files.EXPECT().LinkToLocal(ctx, int64(42), int64(10)).Return(nil)
	s.files.EXPECT().SetFlag(ctx, int64(42), domain.FileFlagProcessed, true).Return(nil)

	err := s.svc.AcceptRemoteFile(ctx, 42, 10)
	s.NoError(err)
}

func (s *CurationServiceTestSuite) TestAttachFileToPost() {
	ctx := context.Background()

	s.files.EXPECT().LinkToLocal(ctx, int64(42), int64(10)).Return(nil)

	err := s.svc.AttachFileToPost(ctx, 42, 10)
	s.NoError(err)
}

func (s *CurationServiceTestSuite) TestMarkFilePresent() {
	ctx := context.Background()

	s.files.EXPECT().SetFlag(ctx, int64(42), domain.FileFlagPresent, true).Return(nil)

	err := s.svc.MarkFilePresent(ctx, 42)
	s.NoError(err)
}

func (s *CurationServiceTestSuite) TestMarkThumbPresent() {
	ctx := context.Background()

	s.files.EXPECT().SetFlag(ctx, int64(42), domain.FileFlagThumbPresent, true).Return(nil)

	err := s.svc.MarkThumbPresent(ctx, 42)
	s.NoError(err)
}

func (s *CurationServiceTestSuite) TestSetSubscriptionEnabled() {
	ctx := context.Background()

	s.subscriptions.EXPECT().SetFlag(ctx, int64(5), domain.SubscriptionFlagEnabled, false).Return(nil)

	err := s.svc.SetSubscriptionEnabled(ctx, 5, false)
	s.NoError(err)
}

func (s *CurationServiceTestSuite) TestTranslateTag() {
	ctx := context.Background()

	s.tags.EXPECT().Translate(ctx, int64(7), utils.Ptr(int64(3))).Return(nil)

	err := s.svc.TranslateTag(ctx, 7, utils.Ptr(int64(3)))
	s.NoError(err)
}

func (s *CurationServiceTestSuite) TestTranslateTag_ExplicitIgnore() {
	ctx := context.Background()

	s.tags.EXPECT().Translate(ctx, int64(7), gomock.Nil()).Return(nil)

	err := s.svc.TranslateTag(ctx, 7, nil)
	s.NoError(err)
}

func (s *CurationServiceTestSuite) TestResolveTag_Pending() {
	ctx := context.Background()
	remoteTag := &domain.RemoteTag{ID: 7}

	s.tags.EXPECT().GetTranslation(ctx, int64(7)).Return(nil, domain.ErrNotFound)

	tag, translated, err := s.svc.ResolveTag(ctx, remoteTag)

	s.NoError(err)
	s.Nil(tag)
	s.False(translated)
}

func (s *CurationServiceTestSuite) TestResolveTag_Ignored() {
	ctx := context.Background()
	remoteTag := &domain.RemoteTag{ID: 7}

	s.tags.EXPECT().GetTranslation(ctx, int64(7)).
		Return(&domain.TagTranslation{ID: 7, LocalTagID: nil}, nil)

	tag, translated, err := s.svc.ResolveTag(ctx, remoteTag)

	s.NoError(err)
	s.Nil(tag)
	s.True(translated)
}

func (s *CurationServiceTestSuite) TestResolveTag_Mapped() {
	ctx := context.Background()
	remoteTag := &domain.RemoteTag{ID: 7}

	s.tags.EXPECT().GetTranslation(ctx, int64(7)).
		Return(&domain.TagTranslation{ID: 7, LocalTagID: utils.Ptr(int64(3))}, nil)
	s.tags.EXPECT().GetByID(ctx, int64(3)).
		Return(&domain.Tag{ID: 3, Category: domain.CategoryArtist, Name: "someone"}, nil)

	tag, translated, err := s.svc.ResolveTag(ctx, remoteTag)

	s.NoError(err)
	s.True(translated)
	s.Equal(int64(3), tag.ID)
}

func (s *CurationServiceTestSuite) TestSetPostFlag() {
	ctx := context.Background()

	s.posts.EXPECT().SetFlag(ctx, int64(10), domain.PostFlagFavorite, true).Return(nil)

	err := s.svc.SetPostFlag(ctx, 10, domain.PostFlagFavorite, true)
	s.NoError(err)
}
