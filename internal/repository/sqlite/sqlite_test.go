package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"foodiegram/internal/domain"
	"foodiegram/internal/repository"
)

type testRepos struct {
	db      *sql.DB
	users   repository.UserRepository
	follows repository.FollowRepository
	posts   repository.PostRepository
}

func openTestRepos(t *testing.T) *testRepos {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	r := &testRepos{
		db:      db,
		users:   NewUserRepository(db),
		follows: NewFollowRepository(db),
		posts:   NewPostRepository(db),
	}

	ctx := context.Background()
	require.NoError(t, r.users.Init(ctx))
	require.NoError(t, r.follows.Init(ctx))
	require.NoError(t, r.posts.Init(ctx))
	return r
}

func (r *testRepos) createUser(t *testing.T, email string) *domain.User {
	t.Helper()
	user := &domain.User{
		Email:        email,
		Username:     strings.SplitN(email, "@", 2)[0],
		Name:         "Test",
		PasswordHash: "hash",
		Role:         domain.RoleUser,
	}
	_, err := r.users.Create(context.Background(), user)
	require.NoError(t, err)
	return user
}
