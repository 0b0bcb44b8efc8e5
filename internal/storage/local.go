package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalService writes images to a directory on the local filesystem and hands
// back paths under a public base path (served statically by the HTTP layer).
type LocalService struct {
	dir        string
	publicPath string
}

func NewLocalService(dir, publicPath string) (*LocalService, error) {
	if dir == "" {
		return nil, fmt.Errorf("upload dir is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalService{
		dir:        dir,
		publicPath: "/" + strings.Trim(publicPath, "/"),
	}, nil
}

// Dir returns the directory images are written to.
func (s *LocalService) Dir() string { return s.dir }

// PublicPath returns the normalized base path images are served under.
func (s *LocalService) PublicPath() string { return s.publicPath }

func (s *LocalService) SaveImage(ctx context.Context, name string, body io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	// the name is server-generated, but never trust it as a path
	name = filepath.Base(filepath.Clean(name))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "", fmt.Errorf("invalid image name")
	}

	dst := filepath.Join(s.dir, name)
	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}

	if _, err := io.Copy(f, body); err != nil {
		f.Close()
		os.Remove(dst)
		return "", fmt.Errorf("write image file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("close image file: %w", err)
	}

	return s.publicPath + "/" + name, nil
}
