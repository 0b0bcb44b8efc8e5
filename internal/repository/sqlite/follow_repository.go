package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"foodiegram/internal/domain"
	"foodiegram/internal/repository"
)

const createFollowsTable = `
CREATE TABLE IF NOT EXISTS follows (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	follower_id INTEGER NOT NULL REFERENCES users(id),
	following_id INTEGER NOT NULL REFERENCES users(id),
	created_at DATETIME NOT NULL,
	UNIQUE (follower_id, following_id)
);
`

type FollowRepository struct {
	db *sql.DB
}

func NewFollowRepository(db *sql.DB) repository.FollowRepository {
	return &FollowRepository{db: db}
}

func (r *FollowRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createFollowsTable); err != nil {
		return fmt.Errorf("create follows table: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS idx_follows_follower ON follows (follower_id)`); err != nil {
		return fmt.Errorf("create follows index: %w", err)
	}
	return nil
}

// Create inserts the edge and bumps both denormalized counters in one
// transaction, so a failed counter update never leaves a dangling edge.
func (r *FollowRepository) Create(ctx context.Context, followerID, followingID int64) (*domain.Follow, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin follow tx: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	res, err := tx.ExecContext(ctx, `
INSERT INTO follows (follower_id, following_id, created_at)
VALUES (?, ?, ?)`,
		followerID, followingID, now,
	)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return nil, fmt.Errorf("%w: already following", domain.ErrConflict)
		}
		return nil, fmt.Errorf("insert follow: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("follow last insert id: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
UPDATE users SET following_count = following_count + 1, updated_at = ? WHERE id = ?`, now, followerID); err != nil {
		return nil, fmt.Errorf("increment following count: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `
UPDATE users SET follower_count = follower_count + 1, updated_at = ? WHERE id = ?`, now, followingID); err != nil {
		return nil, fmt.Errorf("increment follower count: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit follow tx: %w", err)
	}

	return &domain.Follow{
		ID:          id,
		FollowerID:  followerID,
		FollowingID: followingID,
		CreatedAt:   now,
	}, nil
}

// Delete removes the edge and decrements both counters atomically. Counters
// are floored at zero so drifted state cannot go negative.
func (r *FollowRepository) Delete(ctx context.Context, followerID, followingID int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin unfollow tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
DELETE FROM follows WHERE follower_id = ? AND following_id = ?`,
		followerID, followingID,
	)
	if err != nil {
		return fmt.Errorf("delete follow: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete follow rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: follow relationship", domain.ErrNotFound)
	}

	now := time.Now().UTC()
	if _, err := tx.ExecContext(ctx, `
UPDATE users SET following_count = MAX(following_count - 1, 0), updated_at = ? WHERE id = ?`, now, followerID); err != nil {
		return fmt.Errorf("decrement following count: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `
UPDATE users SET follower_count = MAX(follower_count - 1, 0), updated_at = ? WHERE id = ?`, now, followingID); err != nil {
		return fmt.Errorf("decrement follower count: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit unfollow tx: %w", err)
	}
	return nil
}

func (r *FollowRepository) Exists(ctx context.Context, followerID, followingID int64) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, `
SELECT 1 FROM follows WHERE follower_id = ? AND following_id = ?`,
		followerID, followingID,
	).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query follow: %w", err)
	}
	return true, nil
}

func (r *FollowRepository) ListFollowingIDs(ctx context.Context, followerID int64) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT following_id FROM follows WHERE follower_id = ? ORDER BY id`,
		followerID,
	)
	if err != nil {
		return nil, fmt.Errorf("query followed ids: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan followed id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate followed ids: %w", err)
	}
	return ids, nil
}
