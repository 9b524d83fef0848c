package models

import "time"

// Follow represents a follow relationship between two users
type Follow struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	FollowerID  uint      `json:"follower_id" gorm:"index;uniqueIndex:idx_follower_following"`
	FollowingID uint      `json:"following_id" gorm:"index;uniqueIndex:idx_follower_following"`
	CreatedAt   time.Time `json:"created_at"`
}

// FollowEdge is a follow row joined with the user on the far side of the
// relation (the followed user for following listings, the follower for
// follower listings).
type FollowEdge struct {
	FollowID   uint      `json:"follow_id"`
	FollowedAt time.Time `json:"followed_at"`
	ID         uint      `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	FullName   string    `json:"full_name"`
}

// FollowStats holds the follower/following counts for a user.
type FollowStats struct {
	FollowerCount  int64 `json:"follower_count"`
	FollowingCount int64 `json:"following_count"`
}
