package repository

import (
	"context"

	"foodiegram/internal/domain"
)

// FollowRepository manages directed follow edges and the denormalized
// follower/following counters on users. Create and Delete must apply the
// edge write and both counter updates atomically.
type FollowRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, followerID, followingID int64) (*domain.Follow, error)
	Delete(ctx context.Context, followerID, followingID int64) error
	Exists(ctx context.Context, followerID, followingID int64) (bool, error)
	ListFollowingIDs(ctx context.Context, followerID int64) ([]int64, error)
}
