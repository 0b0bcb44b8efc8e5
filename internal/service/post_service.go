package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"foodiegram/internal/domain"
	"foodiegram/internal/repository"
	"foodiegram/internal/storage"
)

// ImageUpload is an incoming image file attached to a post submission.
type ImageUpload struct {
	Filename string
	Body     io.Reader
}

// PostService runs the ingest pipeline for new posts: validate, store the
// image, persist the record.
type PostService interface {
	CreatePost(ctx context.Context, userID int64, description, tags string, image *ImageUpload) (*domain.Post, error)
}

type postService struct {
	posts  repository.PostRepository
	users  repository.UserRepository
	images storage.Service
}

func NewPostService(posts repository.PostRepository, users repository.UserRepository, images storage.Service) PostService {
	return &postService{
		posts:  posts,
		users:  users,
		images: images,
	}
}

func (s *postService) CreatePost(ctx context.Context, userID int64, description, tags string, image *ImageUpload) (*domain.Post, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, fmt.Errorf("%w: description is required", domain.ErrValidation)
	}
	if image == nil || image.Body == nil {
		return nil, fmt.Errorf("%w: image is required", domain.ErrValidation)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	name := fmt.Sprintf("%s-%s", uuid.NewString(), filepath.Base(image.Filename))
	imageURL, err := s.images.SaveImage(ctx, name, image.Body)
	if err != nil {
		return nil, fmt.Errorf("store image: %w", err)
	}

	post := &domain.Post{
		UserID:      user.ID,
		Description: description,
		ImageURL:    imageURL,
		Tags:        SplitTags(tags),
	}
	if _, err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// SplitTags turns a comma-delimited tag string into a trimmed sequence.
// Empty input yields an empty sequence.
func SplitTags(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{}
	}

	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
