package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodiegram/internal/domain"
)

func TestFollowCreateUpdatesCounters(t *testing.T) {
	r := openTestRepos(t)
	ctx := context.Background()

	ada := r.createUser(t, "ada@example.com")
	grace := r.createUser(t, "grace@example.com")

	follow, err := r.follows.Create(ctx, ada.ID, grace.ID)
	require.NoError(t, err)
	assert.Equal(t, ada.ID, follow.FollowerID)
	assert.Equal(t, grace.ID, follow.FollowingID)

	gotAda, err := r.users.GetByID(ctx, ada.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, gotAda.FollowingCount)
	assert.Equal(t, 0, gotAda.FollowerCount)

	gotGrace, err := r.users.GetByID(ctx, grace.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, gotGrace.FollowerCount)
	assert.Equal(t, 0, gotGrace.FollowingCount)
}

func TestFollowUnfollowRestoresCounters(t *testing.T) {
	r := openTestRepos(t)
	ctx := context.Background()

	ada := r.createUser(t, "ada@example.com")
	grace := r.createUser(t, "grace@example.com")

	_, err := r.follows.Create(ctx, ada.ID, grace.ID)
	require.NoError(t, err)
	require.NoError(t, r.follows.Delete(ctx, ada.ID, grace.ID))

	exists, err := r.follows.Exists(ctx, ada.ID, grace.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	gotAda, err := r.users.GetByID(ctx, ada.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, gotAda.FollowingCount)

	gotGrace, err := r.users.GetByID(ctx, grace.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, gotGrace.FollowerCount)
}

func TestFollowDuplicateEdgeConflicts(t *testing.T) {
	r := openTestRepos(t)
	ctx := context.Background()

	ada := r.createUser(t, "ada@example.com")
	grace := r.createUser(t, "grace@example.com")

	_, err := r.follows.Create(ctx, ada.ID, grace.ID)
	require.NoError(t, err)

	_, err = r.follows.Create(ctx, ada.ID, grace.ID)
	assert.True(t, errors.Is(err, domain.ErrConflict))

	// the failed insert must not bump counters
	gotAda, err := r.users.GetByID(ctx, ada.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, gotAda.FollowingCount)

	gotGrace, err := r.users.GetByID(ctx, grace.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, gotGrace.FollowerCount)
}

func TestUnfollowMissingEdgeLeavesCounters(t *testing.T) {
	r := openTestRepos(t)
	ctx := context.Background()

	ada := r.createUser(t, "ada@example.com")
	grace := r.createUser(t, "grace@example.com")

	err := r.follows.Delete(ctx, ada.ID, grace.ID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	gotAda, err := r.users.GetByID(ctx, ada.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, gotAda.FollowingCount)
	assert.Equal(t, 0, gotAda.FollowerCount)
}

func TestUnfollowClampsDriftedCountersAtZero(t *testing.T) {
	r := openTestRepos(t)
	ctx := context.Background()

	ada := r.createUser(t, "ada@example.com")
	grace := r.createUser(t, "grace@example.com")

	_, err := r.follows.Create(ctx, ada.ID, grace.ID)
	require.NoError(t, err)

	// simulate pre-existing drift
	_, err = r.db.ExecContext(ctx, `UPDATE users SET following_count = 0 WHERE id = ?`, ada.ID)
	require.NoError(t, err)

	require.NoError(t, r.follows.Delete(ctx, ada.ID, grace.ID))

	gotAda, err := r.users.GetByID(ctx, ada.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, gotAda.FollowingCount)
}

func TestListFollowingIDs(t *testing.T) {
	r := openTestRepos(t)
	ctx := context.Background()

	ada := r.createUser(t, "ada@example.com")
	grace := r.createUser(t, "grace@example.com")
	linus := r.createUser(t, "linus@example.com")

	ids, err := r.follows.ListFollowingIDs(ctx, ada.ID)
	require.NoError(t, err)
	assert.Empty(t, ids)

	_, err = r.follows.Create(ctx, ada.ID, grace.ID)
	require.NoError(t, err)
	_, err = r.follows.Create(ctx, ada.ID, linus.ID)
	require.NoError(t, err)

	ids, err = r.follows.ListFollowingIDs(ctx, ada.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{grace.ID, linus.ID}, ids)
}
