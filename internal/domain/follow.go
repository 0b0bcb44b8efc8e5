package domain

import "time"

// Follow is a directed edge: FollowerID receives FollowingID's posts in their
// feed. At most one edge may exist per ordered pair.
type Follow struct {
	ID          int64
	FollowerID  int64
	FollowingID int64
	CreatedAt   time.Time
}
