package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"foodiegram/internal/domain"
	"foodiegram/internal/repository"
)

const createPostsTable = `
CREATE TABLE IF NOT EXISTS posts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL REFERENCES users(id),
	description TEXT NOT NULL,
	image_url TEXT NOT NULL,
	tags TEXT NOT NULL DEFAULT '[]',
	created_at DATETIME NOT NULL
);
`

type PostRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) repository.PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createPostsTable); err != nil {
		return fmt.Errorf("create posts table: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS idx_posts_user_created ON posts (user_id, created_at)`); err != nil {
		return fmt.Errorf("create posts index: %w", err)
	}
	return nil
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) (int64, error) {
	post.CreatedAt = time.Now().UTC()

	tags, err := encodeTags(post.Tags)
	if err != nil {
		return 0, err
	}

	res, err := r.db.ExecContext(ctx, `
INSERT INTO posts (user_id, description, image_url, tags, created_at)
VALUES (?, ?, ?, ?, ?)`,
		post.UserID,
		post.Description,
		post.ImageURL,
		tags,
		post.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("insert post: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("post last insert id: %w", err)
	}
	post.ID = id
	return id, nil
}

func (r *PostRepository) Get(ctx context.Context, id int64) (*domain.Post, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, user_id, description, image_url, tags, created_at
FROM posts
WHERE id = ?`,
		id,
	)

	var (
		post    domain.Post
		rawTags string
	)
	if err := row.Scan(&post.ID, &post.UserID, &post.Description, &post.ImageURL, &rawTags, &post.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: post", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("scan post: %w", err)
	}

	tags, err := decodeTags(rawTags)
	if err != nil {
		return nil, err
	}
	post.Tags = tags
	return &post, nil
}

// ListByAuthors returns posts by any of the given authors, newest first,
// joined with the author projection feeds render. Post id breaks timestamp
// ties deterministically.
func (r *PostRepository) ListByAuthors(ctx context.Context, authorIDs []int64, limit, offset int) ([]domain.FeedItem, error) {
	if len(authorIDs) == 0 {
		return nil, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(authorIDs)), ",")
	args := make([]any, 0, len(authorIDs)+2)
	for _, id := range authorIDs {
		args = append(args, id)
	}
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(`
SELECT p.id, p.user_id, p.description, p.image_url, p.tags, p.created_at,
       u.id, u.username, u.profile_picture
FROM posts p
JOIN users u ON u.id = p.user_id
WHERE p.user_id IN (%s)
ORDER BY p.created_at DESC, p.id DESC
LIMIT ? OFFSET ?`, placeholders),
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("query feed posts: %w", err)
	}
	defer rows.Close()

	var items []domain.FeedItem
	for rows.Next() {
		var (
			item    domain.FeedItem
			rawTags string
		)
		if err := rows.Scan(
			&item.Post.ID,
			&item.Post.UserID,
			&item.Post.Description,
			&item.Post.ImageURL,
			&rawTags,
			&item.Post.CreatedAt,
			&item.Author.ID,
			&item.Author.Username,
			&item.Author.ProfilePicture,
		); err != nil {
			return nil, fmt.Errorf("scan feed post: %w", err)
		}
		tags, err := decodeTags(rawTags)
		if err != nil {
			return nil, err
		}
		item.Post.Tags = tags
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate feed posts: %w", err)
	}
	return items, nil
}

func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	raw, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("encode tags: %w", err)
	}
	return string(raw), nil
}

func decodeTags(raw string) ([]string, error) {
	if raw == "" {
		return []string{}, nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return nil, fmt.Errorf("decode tags: %w", err)
	}
	if tags == nil {
		tags = []string{}
	}
	return tags, nil
}
