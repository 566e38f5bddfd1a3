package events

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"githubWebhookMonitor/internal/model"

	"github.com/redis/go-redis/v9"
)

var ErrStoreUnavailable = errors.New("storage unavailable")

const recentCacheKey = "events:recent"

type RepoInterface interface {
	Save(ctx context.Context, e *model.Event) error
	ListRecent(ctx context.Context, limit int) ([]model.Event, error)
	CountEvents(ctx context.Context) (int64, error)
	GetRecentJSON(ctx context.Context) ([]byte, bool, error)
	SetRecentJSON(ctx context.Context, data []byte, ttl time.Duration) error
	InvalidateRecentJSON(ctx context.Context) error
}

type Repo struct {
	db  *sql.DB
	Rdb *redis.Client
}

func NewRepo(db *sql.DB, Rdb *redis.Client) *Repo {
	return &Repo{db: db, Rdb: Rdb}
}

// Save appends one record. Duplicate request_ids from webhook
// redelivery land as separate rows; the store does not deduplicate.
func (r *Repo) Save(ctx context.Context, e *model.Event) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO events
		(request_id, author, action, from_branch, to_branch, timestamp)
		VALUES (?, ?, ?, ?, ?, ?)`,
		e.RequestID, e.Author, e.Action, e.FromBranch, e.ToBranch,
		e.Timestamp.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// ListRecent returns at most limit records, newest first. Rows sharing
// a timestamp come back most-recently-inserted first.
func (r *Repo) ListRecent(ctx context.Context, limit int) ([]model.Event, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT request_id, author, action, from_branch, to_branch, timestamp
		FROM events
		ORDER BY timestamp DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var out []model.Event
	for rows.Next() {
		var e model.Event
		var ts string
		if err := rows.Scan(&e.RequestID, &e.Author, &e.Action,
			&e.FromBranch, &e.ToBranch, &ts); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		e.Timestamp, err = time.Parse(time.RFC3339, ts)
		if err != nil {
			return nil, fmt.Errorf("%w: bad timestamp %q", ErrStoreUnavailable, ts)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return out, nil
}

// CountEvents doubles as the connectivity probe for /test.
func (r *Repo) CountEvents(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return n, nil
}

func (r *Repo) GetRecentJSON(ctx context.Context) ([]byte, bool, error) {
	val, err := r.Rdb.Get(ctx, recentCacheKey).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(val), true, nil
}

func (r *Repo) SetRecentJSON(ctx context.Context, data []byte, ttl time.Duration) error {
	return r.Rdb.Set(ctx, recentCacheKey, data, ttl).Err()
}

func (r *Repo) InvalidateRecentJSON(ctx context.Context) error {
	return r.Rdb.Del(ctx, recentCacheKey).Err()
}
