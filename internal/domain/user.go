package domain

import "time"

// Role classifies a user account.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User represents a registered account of the system.
type User struct {
	ID             int64
	Email          string
	Username       string
	Name           string
	PasswordHash   string
	Role           Role
	Bio            string
	ProfilePicture string
	FollowerCount  int
	FollowingCount int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Profile is the public projection of a User; it never carries credentials.
type Profile struct {
	ID             int64
	Email          string
	Username       string
	Name           string
	Role           Role
	Bio            string
	ProfilePicture string
	FollowerCount  int
	FollowingCount int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// PublicProfile projects the user's public fields.
func (u *User) PublicProfile() *Profile {
	if u == nil {
		return nil
	}
	return &Profile{
		ID:             u.ID,
		Email:          u.Email,
		Username:       u.Username,
		Name:           u.Name,
		Role:           u.Role,
		Bio:            u.Bio,
		ProfilePicture: u.ProfilePicture,
		FollowerCount:  u.FollowerCount,
		FollowingCount: u.FollowingCount,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}
