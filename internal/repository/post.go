package repository

import (
	"context"

	"foodiegram/internal/domain"
)

// PostRepository exposes persistence operations for Post entities.
type PostRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, post *domain.Post) (int64, error)
	Get(ctx context.Context, id int64) (*domain.Post, error)
	ListByAuthors(ctx context.Context, authorIDs []int64, limit, offset int) ([]domain.FeedItem, error)
}
