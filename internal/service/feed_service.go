package service

import (
	"context"

	"foodiegram/internal/domain"
	"foodiegram/internal/repository"
)

const (
	defaultFeedLimit = 50
	maxFeedLimit     = 100
)

// FeedService aggregates posts from all accounts a user follows, newest
// first, windowed by limit/offset so feeds stay bounded.
type FeedService interface {
	GetFeed(ctx context.Context, userID int64, limit, offset int) ([]domain.FeedItem, error)
}

type feedService struct {
	follows repository.FollowRepository
	posts   repository.PostRepository
}

func NewFeedService(follows repository.FollowRepository, posts repository.PostRepository) FeedService {
	return &feedService{follows: follows, posts: posts}
}

func (s *feedService) GetFeed(ctx context.Context, userID int64, limit, offset int) ([]domain.FeedItem, error) {
	if limit <= 0 {
		limit = defaultFeedLimit
	}
	if limit > maxFeedLimit {
		limit = maxFeedLimit
	}
	if offset < 0 {
		offset = 0
	}

	followedIDs, err := s.follows.ListFollowingIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(followedIDs) == 0 {
		return []domain.FeedItem{}, nil
	}

	items, err := s.posts.ListByAuthors(ctx, followedIDs, limit, offset)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.FeedItem{}
	}
	return items, nil
}
