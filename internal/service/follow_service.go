package service

import (
	"context"
	"fmt"

	"foodiegram/internal/domain"
	"foodiegram/internal/repository"
)

// FollowService maintains the directed follow graph between users.
type FollowService interface {
	Follow(ctx context.Context, followerID, followingID int64) (*domain.Follow, error)
	Unfollow(ctx context.Context, followerID, followingID int64) error
}

type followService struct {
	users   repository.UserRepository
	follows repository.FollowRepository
}

func NewFollowService(users repository.UserRepository, follows repository.FollowRepository) FollowService {
	return &followService{users: users, follows: follows}
}

func (s *followService) Follow(ctx context.Context, followerID, followingID int64) (*domain.Follow, error) {
	if followerID == followingID {
		return nil, fmt.Errorf("%w: users cannot follow themselves", domain.ErrValidation)
	}

	if _, err := s.users.GetByID(ctx, followerID); err != nil {
		return nil, fmt.Errorf("follower: %w", err)
	}
	if _, err := s.users.GetByID(ctx, followingID); err != nil {
		return nil, fmt.Errorf("following: %w", err)
	}

	return s.follows.Create(ctx, followerID, followingID)
}

func (s *followService) Unfollow(ctx context.Context, followerID, followingID int64) error {
	return s.follows.Delete(ctx, followerID, followingID)
}
