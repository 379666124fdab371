//go:build integration

package postgres

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"media_archive/internal/domain"
	"media_archive/testdata/utils"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	migrationsPath, err := filepath.Abs("../../../migrations")
	s.Require().NoError(err)

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.WithInitScripts(
			filepath.Join(migrationsPath, "001_create_schema.up.sql"),
			filepath.Join(migrationsPath, "002_create_related.up.sql"),
		),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	for _, table := range []string{
		"feed", "related", "file",
		"remote_post_tag", "post_tag", "tag_translation",
		"remote_post", "post", "remote_tag", "tag",
		"subscription", "source",
	} {
		_, _ = s.db.ExecContext(s.ctx, "DELETE FROM "+table)
	}
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func (s *PostgresIntegrationSuite) createSource(name string) *domain.Source {
	src, err := NewSourceStore(s.db).GetOrCreate(s.ctx, name, 1, nil)
	s.Require().NoError(err)
	return src
}

func (s *PostgresIntegrationSuite) createRemotePost(sourceID int64, originalID string) *domain.RemotePost {
	post, _, err := NewRemotePostStore(s.db).Upsert(s.ctx, sourceID, originalID, domain.RemotePostAttrs{
		Type: domain.TypeSet,
	})
	s.Require().NoError(err)
	return post
}

func (s *PostgresIntegrationSuite) TestSourceStore_GetOrCreate_CaseInsensitive() {
	store := NewSourceStore(s.db)

	first, err := store.GetOrCreate(s.ctx, "Booru", 1, nil)
	s.NoError(err)

	second, err := store.GetOrCreate(s.ctx, "booru", 2, utils.Ptr(`{"a":1}`))
	s.NoError(err)

	s.Equal(first.ID, second.ID)
	s.Equal("Booru", second.Name) // stored casing wins
	s.Equal(2, second.Version)

	var count int
	s.NoError(s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM source"))
	s.Equal(1, count)
}

func (s *PostgresIntegrationSuite) TestTagStore_GetOrCreate_CaseInsensitive() {
	store := NewTagStore(s.db)

	first, err := store.GetOrCreate(s.ctx, domain.CategoryArtist, "SomeOne")
	s.NoError(err)

	second, err := store.GetOrCreate(s.ctx, domain.CategoryArtist, "someone")
	s.NoError(err)

	s.Equal(first.ID, second.ID)
	s.Equal("SomeOne", second.Name)

	// same name in another category is a different tag
	other, err := store.GetOrCreate(s.ctx, domain.CategoryCharacter, "someone")
	s.NoError(err)
	s.NotEqual(first.ID, other.ID)
}

func (s *PostgresIntegrationSuite) TestTagStore_GetOrCreate_RejectsInvalidCategory() {
	store := NewTagStore(s.db)

	_, err := store.GetOrCreate(s.ctx, domain.TagCategory(99), "whatever")
	s.ErrorIs(err, domain.ErrInvalidCategory)
}

func (s *PostgresIntegrationSuite) TestRemoteTagStore_ScopedBySource() {
	store := NewRemoteTagStore(s.db)
	src1 := s.createSource("booru-a")
	src2 := s.createSource("booru-b")

	tag1, err := store.GetOrCreate(s.ctx, src1.ID, domain.CategoryGeneral, "landscape")
	s.NoError(err)

	again, err := store.GetOrCreate(s.ctx, src1.ID, domain.CategoryGeneral, "Landscape")
	s.NoError(err)
	s.Equal(tag1.ID, again.ID)

	tag2, err := store.GetOrCreate(s.ctx, src2.ID, domain.CategoryGeneral, "landscape")
	s.NoError(err)
	s.NotEqual(tag1.ID, tag2.ID)
}

func (s *PostgresIntegrationSuite) TestRemotePostStore_Upsert_Insert() {
	store := NewRemotePostStore(s.db)
	src := s.createSource("booru")

	post, isNew, err := store.Upsert(s.ctx, src.ID, "12345", domain.RemotePostAttrs{
		URL:   utils.Ptr("https://booru.example/posts/12345"),
		Title: utils.Ptr("a title"),
		Type:  domain.TypeSet,
	})
	s.NoError(err)
	s.True(isNew)
	s.Equal("12345", post.OriginalID)
	s.Equal("a title", *post.Title)
}

func (s *PostgresIntegrationSuite) TestRemotePostStore_Upsert_ReingestKeepsRow() {
	store := NewRemotePostStore(s.db)
	src := s.createSource("booru")

	first, isNew, err := store.Upsert(s.ctx, src.ID, "12345", domain.RemotePostAttrs{
		Title: utils.Ptr("original title"),
		Type:  domain.TypeSet,
	})
	s.NoError(err)
	s.True(isNew)

	second, isNew, err := store.Upsert(s.ctx, src.ID, "12345", domain.RemotePostAttrs{
		Title:   utils.Ptr("updated title"),
		Comment: utils.Ptr("now with a comment"),
		Type:    domain.TypeSet,
	})
	s.NoError(err)
	s.False(isNew)

	s.Equal(first.ID, second.ID)
	s.Equal("updated title", *second.Title)
	s.Equal(first.CreatedTime, second.CreatedTime)

	var count int
	s.NoError(s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM remote_post"))
	s.Equal(1, count)
}

func (s *PostgresIntegrationSuite) TestRemotePostStore_Upsert_NilAttrsKeepStoredValues() {
	store := NewRemotePostStore(s.db)
	src := s.createSource("booru")

	_, _, err := store.Upsert(s.ctx, src.ID, "12345", domain.RemotePostAttrs{
		Title: utils.Ptr("keep me"),
		Type:  domain.TypeSet,
	})
	s.NoError(err)

	post, _, err := store.Upsert(s.ctx, src.ID, "12345", domain.RemotePostAttrs{
		Type: domain.TypeSet,
	})
	s.NoError(err)
	s.Require().NotNil(post.Title)
	s.Equal("keep me", *post.Title)
}

func (s *PostgresIntegrationSuite) TestRemotePostStore_Upsert_RejectsInvalidType() {
	store := NewRemotePostStore(s.db)
	src := s.createSource("booru")

	_, _, err := store.Upsert(s.ctx, src.ID, "12345", domain.RemotePostAttrs{
		Type: domain.PostType(9),
	})
	s.ErrorIs(err, domain.ErrInvalidPostType)
}

func (s *PostgresIntegrationSuite) TestRemoteTagStore_LinkToPost_IsUnion() {
	tagStore := NewRemoteTagStore(s.db)
	src := s.createSource("booru")
	post := s.createRemotePost(src.ID, "1")

	t1, err := tagStore.GetOrCreate(s.ctx, src.ID, domain.CategoryGeneral, "a")
	s.Require().NoError(err)
	t2, err := tagStore.GetOrCreate(s.ctx, src.ID, domain.CategoryGeneral, "b")
	s.Require().NoError(err)

	s.NoError(tagStore.LinkToPost(s.ctx, post.ID, []int64{t1.ID}))
	// re-ingest with a different tag set keeps the old link
	s.NoError(tagStore.LinkToPost(s.ctx, post.ID, []int64{t1.ID, t2.ID}))

	tags, err := tagStore.GetByPostID(s.ctx, post.ID)
	s.NoError(err)
	s.Len(tags, 2)
}

func (s *PostgresIntegrationSuite) TestTagStore_Translate_LastCommittedWins() {
	tagStore := NewTagStore(s.db)
	remoteTagStore := NewRemoteTagStore(s.db)
	src := s.createSource("booru")

	remoteTag, err := remoteTagStore.GetOrCreate(s.ctx, src.ID, domain.CategoryArtist, "someone")
	s.Require().NoError(err)

	local1, err := tagStore.GetOrCreate(s.ctx, domain.CategoryArtist, "someone")
	s.Require().NoError(err)
	local2, err := tagStore.GetOrCreate(s.ctx, domain.CategoryArtist, "someone else")
	s.Require().NoError(err)

	s.NoError(tagStore.Translate(s.ctx, remoteTag.ID, &local1.ID))
	s.NoError(tagStore.Translate(s.ctx, remoteTag.ID, &local2.ID))

	tr, err := tagStore.GetTranslation(s.ctx, remoteTag.ID)
	s.NoError(err)
	s.Equal(local2.ID, *tr.LocalTagID)
}

func (s *PostgresIntegrationSuite) TestTagStore_Translate_NilMeansIgnored() {
	tagStore := NewTagStore(s.db)
	remoteTagStore := NewRemoteTagStore(s.db)
	src := s.createSource("booru")

	remoteTag, err := remoteTagStore.GetOrCreate(s.ctx, src.ID, domain.CategoryMeta, "watermark")
	s.Require().NoError(err)

	// untranslated: no row at all
	_, err = tagStore.GetTranslation(s.ctx, remoteTag.ID)
	s.ErrorIs(err, domain.ErrNotFound)

	// explicitly ignored: row with null target
	s.NoError(tagStore.Translate(s.ctx, remoteTag.ID, nil))

	tr, err := tagStore.GetTranslation(s.ctx, remoteTag.ID)
	s.NoError(err)
	s.Nil(tr.LocalTagID)
}

func (s *PostgresIntegrationSuite) TestTagStore_Delete_NullsTranslation() {
	tagStore := NewTagStore(s.db)
	remoteTagStore := NewRemoteTagStore(s.db)
	src := s.createSource("booru")

	remoteTag, err := remoteTagStore.GetOrCreate(s.ctx, src.ID, domain.CategoryArtist, "someone")
	s.Require().NoError(err)
	local, err := tagStore.GetOrCreate(s.ctx, domain.CategoryArtist, "someone")
	s.Require().NoError(err)
	s.NoError(tagStore.Translate(s.ctx, remoteTag.ID, &local.ID))

	s.NoError(tagStore.Delete(s.ctx, local.ID))

	// the translation row survives with its target nulled
	tr, err := tagStore.GetTranslation(s.ctx, remoteTag.ID)
	s.NoError(err)
	s.Nil(tr.LocalTagID)
}

func (s *PostgresIntegrationSuite) TestSourceStore_Delete_CascadesAndOrphansFiles() {
	sourceStore := NewSourceStore(s.db)
	fileStore := NewFileStore(s.db)
	src := s.createSource("booru")
	post := s.createRemotePost(src.ID, "1")

	_, err := NewRemoteTagStore(s.db).GetOrCreate(s.ctx, src.ID, domain.CategoryGeneral, "a")
	s.Require().NoError(err)

	_, err = NewSubscriptionStore(s.db).GetOrCreate(s.ctx, src.ID, "feed", nil)
	s.Require().NoError(err)

	file, err := fileStore.Create(s.ctx, domain.FileAttrs{Hash: []byte{0x01}})
	s.Require().NoError(err)
	s.Require().NoError(fileStore.LinkToRemote(s.ctx, file.ID, post.ID))

	s.NoError(sourceStore.Delete(s.ctx, src.ID))

	var count int
	s.NoError(s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM remote_post"))
	s.Equal(0, count)
	s.NoError(s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM remote_tag"))
	s.Equal(0, count)
	s.NoError(s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM subscription"))
	s.Equal(0, count)

	// the file row survives, orphaned from its remote post
	orphan, err := fileStore.GetByID(s.ctx, file.ID)
	s.NoError(err)
	s.Nil(orphan.RemoteID)
}

func (s *PostgresIntegrationSuite) TestFileStore_LinkToRemote_AssignsSequentialOrder() {
	fileStore := NewFileStore(s.db)
	src := s.createSource("booru")
	post := s.createRemotePost(src.ID, "1")

	var ids []int64
	for i := byte(0); i < 3; i++ {
		file, err := fileStore.Create(s.ctx, domain.FileAttrs{Hash: []byte{i}})
		s.Require().NoError(err)
		s.Require().NoError(fileStore.LinkToRemote(s.ctx, file.ID, post.ID))
		ids = append(ids, file.ID)
	}

	files, err := fileStore.GetByRemotePostID(s.ctx, post.ID)
	s.NoError(err)
	s.Require().Len(files, 3)
	for i, f := range files {
		s.Equal(i, f.RemoteOrder)
		s.Equal(ids[i], f.ID)
	}
}

func (s *PostgresIntegrationSuite) TestFileStore_LinkToRemote_RelinkKeepsPosition() {
	fileStore := NewFileStore(s.db)
	src := s.createSource("booru")
	post := s.createRemotePost(src.ID, "1")

	f1, err := fileStore.Create(s.ctx, domain.FileAttrs{Hash: []byte{0x01}})
	s.Require().NoError(err)
	f2, err := fileStore.Create(s.ctx, domain.FileAttrs{Hash: []byte{0x02}})
	s.Require().NoError(err)

	s.NoError(fileStore.LinkToRemote(s.ctx, f1.ID, post.ID))
	s.NoError(fileStore.LinkToRemote(s.ctx, f2.ID, post.ID))

	// re-ingest relinks the first file; it must not move to the end
	s.NoError(fileStore.LinkToRemote(s.ctx, f1.ID, post.ID))

	got, err := fileStore.GetByID(s.ctx, f1.ID)
	s.NoError(err)
	s.Equal(0, got.RemoteOrder)
}

func (s *PostgresIntegrationSuite) TestFileStore_SharedLocalAndRemoteLink() {
	fileStore := NewFileStore(s.db)
	postStore := NewPostStore(s.db)
	src := s.createSource("booru")
	remotePost := s.createRemotePost(src.ID, "1")

	localPost, err := postStore.Create(s.ctx, domain.PostAttrs{Type: domain.TypeSet})
	s.Require().NoError(err)

	file, err := fileStore.Create(s.ctx, domain.FileAttrs{Hash: []byte{0x01}})
	s.Require().NoError(err)

	s.NoError(fileStore.LinkToRemote(s.ctx, file.ID, remotePost.ID))
	s.NoError(fileStore.LinkToLocal(s.ctx, file.ID, localPost.ID))

	got, err := fileStore.GetByID(s.ctx, file.ID)
	s.NoError(err)
	s.Equal(remotePost.ID, *got.RemoteID)
	s.Equal(localPost.ID, *got.LocalID)
}

func (s *PostgresIntegrationSuite) TestFileStore_HashIsNotUnique() {
	fileStore := NewFileStore(s.db)
	hash := []byte{0xde, 0xad}

	f1, err := fileStore.Create(s.ctx, domain.FileAttrs{Hash: hash})
	s.NoError(err)
	f2, err := fileStore.Create(s.ctx, domain.FileAttrs{Hash: hash})
	s.NoError(err)
	s.NotEqual(f1.ID, f2.ID)

	// the newest row wins the lookup
	found, err := fileStore.FindByHash(s.ctx, hash)
	s.NoError(err)
	s.Equal(f2.ID, found.ID)
}

func (s *PostgresIntegrationSuite) TestFileStore_FindByHash_NotFound() {
	_, err := NewFileStore(s.db).FindByHash(s.ctx, []byte{0xff, 0xff})
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *PostgresIntegrationSuite) TestSetFlag_AtomicBitUpdates() {
	store := NewRemotePostStore(s.db)
	src := s.createSource("booru")
	post := s.createRemotePost(src.ID, "1")

	s.NoError(store.SetFlag(s.ctx, post.ID, domain.PostFlagFavorite, true))
	s.NoError(store.SetFlag(s.ctx, post.ID, domain.PostFlagHidden, true))

	got, err := store.GetByID(s.ctx, post.ID)
	s.NoError(err)
	s.True(got.Flags.Has(domain.PostFlagFavorite))
	s.True(got.Flags.Has(domain.PostFlagHidden))

	s.NoError(store.SetFlag(s.ctx, post.ID, domain.PostFlagFavorite, false))

	got, err = store.GetByID(s.ctx, post.ID)
	s.NoError(err)
	s.False(got.Flags.Has(domain.PostFlagFavorite))
	s.True(got.Flags.Has(domain.PostFlagHidden))
}

func (s *PostgresIntegrationSuite) TestSetFlag_MissingRow() {
	err := NewTagStore(s.db).SetFlag(s.ctx, 999999, domain.TagFlagFavorite, true)
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *PostgresIntegrationSuite) TestSubscriptionStore_DefaultEnabled() {
	store := NewSubscriptionStore(s.db)
	src := s.createSource("booru")

	sub, err := store.GetOrCreate(s.ctx, src.ID, "artist-feed", nil)
	s.NoError(err)
	s.True(sub.Enabled())

	subs, err := store.ListEnabled(s.ctx)
	s.NoError(err)
	s.Len(subs, 1)

	s.NoError(store.SetFlag(s.ctx, sub.ID, domain.SubscriptionFlagEnabled, false))

	subs, err = store.ListEnabled(s.ctx)
	s.NoError(err)
	s.Len(subs, 0)
}

func (s *PostgresIntegrationSuite) TestSubscriptionStore_UpdateState() {
	store := NewSubscriptionStore(s.db)
	src := s.createSource("booru")

	sub, err := store.GetOrCreate(s.ctx, src.ID, "artist-feed", nil)
	s.Require().NoError(err)
	s.Nil(sub.State)

	s.NoError(store.UpdateState(s.ctx, sub.ID, utils.Ptr(`{"cursor":"c42"}`)))

	got, err := store.GetByID(s.ctx, sub.ID)
	s.NoError(err)
	s.Equal(`{"cursor":"c42"}`, *got.State)
}

func (s *PostgresIntegrationSuite) TestSubscriptionStore_AppendToFeed_Idempotent() {
	store := NewSubscriptionStore(s.db)
	src := s.createSource("booru")
	p1 := s.createRemotePost(src.ID, "1")
	p2 := s.createRemotePost(src.ID, "2")

	sub, err := store.GetOrCreate(s.ctx, src.ID, "artist-feed", nil)
	s.Require().NoError(err)

	s.NoError(store.AppendToFeed(s.ctx, sub.ID, []int64{p1.ID}))
	// a re-poll hands the same post over again
	s.NoError(store.AppendToFeed(s.ctx, sub.ID, []int64{p1.ID, p2.ID}))

	count, err := store.CountFeed(s.ctx, sub.ID)
	s.NoError(err)
	s.Equal(int64(2), count)

	ok, err := store.FeedContains(s.ctx, sub.ID, p1.ID)
	s.NoError(err)
	s.True(ok)
}

func (s *PostgresIntegrationSuite) TestRelatedStore_RecordAndResolve() {
	store := NewRelatedStore(s.db)
	src := s.createSource("booru")
	origin := s.createRemotePost(src.ID, "1")

	url := "https://booru.example/posts/99"
	s.NoError(store.Record(s.ctx, origin.ID, url))
	s.NoError(store.Record(s.ctx, origin.ID, url)) // no duplicate edge

	edges, err := store.ListByOrigin(s.ctx, origin.ID)
	s.NoError(err)
	s.Require().Len(edges, 1)
	s.Nil(edges[0].RemoteID)

	// the URL's post arrives later and the edge is backfilled
	target, _, err := NewRemotePostStore(s.db).Upsert(s.ctx, src.ID, "99", domain.RemotePostAttrs{
		URL:  &url,
		Type: domain.TypeSet,
	})
	s.Require().NoError(err)

	n, err := store.ResolveURL(s.ctx, url, target.ID)
	s.NoError(err)
	s.Equal(int64(1), n)

	edges, err = store.ListByOrigin(s.ctx, origin.ID)
	s.NoError(err)
	s.Equal(target.ID, *edges[0].RemoteID)

	unresolved, err := store.ListUnresolved(s.ctx, 10)
	s.NoError(err)
	s.Len(unresolved, 0)
}

func (s *PostgresIntegrationSuite) TestRelatedStore_TargetDeleteDanglesEdge() {
	store := NewRelatedStore(s.db)
	src := s.createSource("booru")
	origin := s.createRemotePost(src.ID, "1")
	target := s.createRemotePost(src.ID, "99")

	url := "https://booru.example/posts/99"
	s.NoError(store.Record(s.ctx, origin.ID, url))
	_, err := store.ResolveURL(s.ctx, url, target.ID)
	s.Require().NoError(err)

	s.NoError(NewRemotePostStore(s.db).Delete(s.ctx, target.ID))

	edges, err := store.ListByOrigin(s.ctx, origin.ID)
	s.NoError(err)
	s.Require().Len(edges, 1)
	s.Nil(edges[0].RemoteID)
}

func (s *PostgresIntegrationSuite) TestTransaction_Commit() {
	tm := NewTransactionManager(s.db)
	store := NewRemotePostStore(s.db)
	src := s.createSource("booru")

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		_, _, err := store.Upsert(ctx, src.ID, "tx-post", domain.RemotePostAttrs{Type: domain.TypeSet})
		return err
	})
	s.NoError(err)

	var count int
	s.NoError(s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM remote_post WHERE original_id = 'tx-post'"))
	s.Equal(1, count)
}

func (s *PostgresIntegrationSuite) TestTransaction_Rollback() {
	tm := NewTransactionManager(s.db)
	store := NewRemotePostStore(s.db)
	src := s.createSource("booru")

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		if _, _, err := store.Upsert(ctx, src.ID, "doomed", domain.RemotePostAttrs{Type: domain.TypeSet}); err != nil {
			return err
		}
		return context.Canceled
	})
	s.Error(err)

	var count int
	s.NoError(s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM remote_post WHERE original_id = 'doomed'"))
	s.Equal(0, count)
}
