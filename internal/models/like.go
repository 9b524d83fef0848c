package models

import "time"

// Like represents a like on a post. The composite unique index is the real
// duplicate guard; handler pre-checks only produce friendlier errors.
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    uint      `json:"post_id" gorm:"index;uniqueIndex:idx_post_user_like"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_post_user_like"`
	CreatedAt time.Time `json:"created_at"`
}

// LikeDetail is a like row joined with the liking user.
type LikeDetail struct {
	ID        uint      `json:"id"`
	PostID    uint      `json:"post_id"`
	UserID    uint      `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
}

// LikedPost is a post row annotated with when the user liked it.
type LikedPost struct {
	LikeID          uint      `json:"like_id"`
	LikedAt         time.Time `json:"liked_at"`
	ID              uint      `json:"id"`
	UserID          uint      `json:"user_id"`
	Content         string    `json:"content"`
	MediaURL        string    `json:"media_url"`
	CommentsEnabled bool      `json:"comments_enabled"`
	CreatedAt       time.Time `json:"created_at"`
	Username        string    `json:"username"`
	FullName        string    `json:"full_name"`
}
