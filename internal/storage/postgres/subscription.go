package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"media_archive/internal/domain"
)

type SubscriptionStore struct {
	db *sqlx.DB
}

func NewSubscriptionStore(db *sqlx.DB) *SubscriptionStore {
	return &SubscriptionStore{db: db}
}

const subscriptionColumns = `id, source_id, name, options, state, flags, created_time, updated_time`

// GetOrCreate resolves a subscription by (source, name), creating it enabled
// when absent. The enabled default comes from the schema, so it applies even
// when the caller never touches flags.
func (s *SubscriptionStore) GetOrCreate(ctx context.Context, sourceID int64, name string, options *string) (*domain.Subscription, error) {
	query := `
		INSERT INTO subscription (source_id, name, options)
		VALUES ($1, $2, $3)
		ON CONFLICT (source_id, name) DO UPDATE SET
			options = COALESCE(EXCLUDED.options, subscription.options),
			updated_time = now()
		RETURNING ` + subscriptionColumns

	var sub domain.Subscription
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &sub, query, sourceID, name, options)
	if err != nil {
		return nil, mapError(err)
	}
	return &sub, nil
}

func (s *SubscriptionStore) GetByID(ctx context.Context, id int64) (*domain.Subscription, error) {
	var sub domain.Subscription
	query := `SELECT ` + subscriptionColumns + ` FROM subscription WHERE id = $1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &sub, query, id)
	if err != nil {
		return nil, mapError(err)
	}
	return &sub, nil
}

// ListEnabled returns every subscription whose enabled bit is set, across
// all sources, in creation order.
func (s *SubscriptionStore) ListEnabled(ctx context.Context) ([]domain.Subscription, error) {
	query := `SELECT ` + subscriptionColumns + ` FROM subscription WHERE flags & $1 <> 0 ORDER BY id`

	var subs []domain.Subscription
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &subs, query, int64(domain.SubscriptionFlagEnabled))
	if err != nil {
		return nil, mapError(err)
	}
	return subs, nil
}

// UpdateState persists the opaque poll cursor in a single statement; a
// cancelled poll leaves the previous fully-committed state in place.
func (s *SubscriptionStore) UpdateState(ctx context.Context, id int64, state *string) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE subscription SET state = $2, updated_time = now() WHERE id = $1`,
		id, state,
	)
	if err != nil {
		return mapError(err)
	}
	return requireRow(res)
}

func (s *SubscriptionStore) SetFlag(ctx context.Context, id int64, flag domain.Flags, on bool) error {
	return setFlag(ctx, GetExecutor(ctx, s.db), "subscription", id, flag, on)
}

// AppendToFeed records remote posts as observed by the subscription.
// Membership is append-only and idempotent: a post reappearing in a re-poll
// never duplicates its feed row.
func (s *SubscriptionStore) AppendToFeed(ctx context.Context, subscriptionID int64, remotePostIDs []int64) error {
	if len(remotePostIDs) == 0 {
		return nil
	}

	query := `
		INSERT INTO feed (subscription_id, remote_post_id)
		SELECT $1, unnest($2::bigint[])
		ON CONFLICT DO NOTHING`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, subscriptionID, pq.Array(remotePostIDs))
	return mapError(err)
}

func (s *SubscriptionStore) FeedContains(ctx context.Context, subscriptionID, remotePostID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM feed WHERE subscription_id = $1 AND remote_post_id = $2)`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &exists, query, subscriptionID, remotePostID)
	if err != nil {
		return false, mapError(err)
	}
	return exists, nil
}

func (s *SubscriptionStore) CountFeed(ctx context.Context, subscriptionID int64) (int64, error) {
	var count int64
	query := `SELECT count(*) FROM feed WHERE subscription_id = $1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &count, query, subscriptionID)
	if err != nil {
		return 0, mapError(err)
	}
	return count, nil
}
