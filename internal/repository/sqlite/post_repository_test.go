package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodiegram/internal/domain"
)

func TestPostCreateAndGet(t *testing.T) {
	r := openTestRepos(t)
	ctx := context.Background()

	ada := r.createUser(t, "ada@example.com")
	post := &domain.Post{
		UserID:      ada.ID,
		Description: "homemade pasta",
		ImageURL:    "/uploads/abc-pasta.jpg",
		Tags:        []string{"italian", "dinner"},
	}
	_, err := r.posts.Create(ctx, post)
	require.NoError(t, err)
	require.NotZero(t, post.ID)

	got, err := r.posts.Get(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "homemade pasta", got.Description)
	assert.Equal(t, []string{"italian", "dinner"}, got.Tags)

	_, err = r.posts.Get(ctx, 404)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestPostEmptyTagsRoundTrip(t *testing.T) {
	r := openTestRepos(t)
	ctx := context.Background()

	ada := r.createUser(t, "ada@example.com")
	post := &domain.Post{UserID: ada.ID, Description: "no tags", ImageURL: "/uploads/x.jpg"}
	_, err := r.posts.Create(ctx, post)
	require.NoError(t, err)

	got, err := r.posts.Get(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{}, got.Tags)
}

func TestListByAuthorsNewestFirst(t *testing.T) {
	r := openTestRepos(t)
	ctx := context.Background()

	grace := r.createUser(t, "grace@example.com")
	linus := r.createUser(t, "linus@example.com")
	outsider := r.createUser(t, "mallory@example.com")

	var ids []int64
	for _, p := range []*domain.Post{
		{UserID: grace.ID, Description: "first", ImageURL: "/uploads/1.jpg"},
		{UserID: linus.ID, Description: "second", ImageURL: "/uploads/2.jpg"},
		{UserID: outsider.ID, Description: "hidden", ImageURL: "/uploads/3.jpg"},
		{UserID: grace.ID, Description: "third", ImageURL: "/uploads/4.jpg"},
	} {
		id, err := r.posts.Create(ctx, p)
		require.NoError(t, err)
		ids = append(ids, id)
	}

	items, err := r.posts.ListByAuthors(ctx, []int64{grace.ID, linus.ID}, 50, 0)
	require.NoError(t, err)
	require.Len(t, items, 3)

	// newest first, the outsider's post excluded
	assert.Equal(t, ids[3], items[0].Post.ID)
	assert.Equal(t, ids[1], items[1].Post.ID)
	assert.Equal(t, ids[0], items[2].Post.ID)
	assert.Equal(t, "grace", items[0].Author.Username)
}

func TestListByAuthorsWindow(t *testing.T) {
	r := openTestRepos(t)
	ctx := context.Background()

	grace := r.createUser(t, "grace@example.com")
	for i := 0; i < 5; i++ {
		_, err := r.posts.Create(ctx, &domain.Post{UserID: grace.ID, Description: "post", ImageURL: "/uploads/p.jpg"})
		require.NoError(t, err)
	}

	page1, err := r.posts.ListByAuthors(ctx, []int64{grace.ID}, 2, 0)
	require.NoError(t, err)
	require.Len(t, page1, 2)

	page2, err := r.posts.ListByAuthors(ctx, []int64{grace.ID}, 2, 2)
	require.NoError(t, err)
	require.Len(t, page2, 2)
	assert.NotEqual(t, page1[0].Post.ID, page2[0].Post.ID)

	page3, err := r.posts.ListByAuthors(ctx, []int64{grace.ID}, 2, 4)
	require.NoError(t, err)
	require.Len(t, page3, 1)
}

func TestListByAuthorsEmptySet(t *testing.T) {
	r := openTestRepos(t)

	items, err := r.posts.ListByAuthors(context.Background(), nil, 50, 0)
	require.NoError(t, err)
	assert.Empty(t, items)
}
