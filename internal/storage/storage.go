package storage

import (
	"context"
	"io"
)

// Service persists uploaded image bytes and returns the URL (or relative
// path) a Post record should reference.
type Service interface {
	SaveImage(ctx context.Context, name string, body io.Reader) (string, error)
}
