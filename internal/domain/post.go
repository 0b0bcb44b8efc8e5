package domain

import "time"

// Post is an image post authored by a user. Posts are immutable once created.
type Post struct {
	ID          int64
	UserID      int64
	Description string
	ImageURL    string
	Tags        []string
	CreatedAt   time.Time
}

// FeedItem is a post joined with the minimal author projection shown in feeds.
type FeedItem struct {
	Post   Post
	Author FeedAuthor
}

// FeedAuthor carries only the author fields a feed entry needs.
type FeedAuthor struct {
	ID             int64
	Username       string
	ProfilePicture string
}
