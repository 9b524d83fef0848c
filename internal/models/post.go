package models

import "time"

// Post represents a social media post
type Post struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	UserID          uint      `json:"user_id" gorm:"index"`
	Content         string    `json:"content" gorm:"type:text"`
	MediaURL        string    `json:"media_url"`
	CommentsEnabled bool      `json:"comments_enabled" gorm:"not null"`
	CreatedAt       time.Time `json:"created_at"`
	IsDeleted       bool      `json:"-" gorm:"not null;default:false;index"`
}

// CreatePostRequest defines the request body for creating a new post.
// CommentsEnabled defaults to true when omitted.
type CreatePostRequest struct {
	Content         string  `json:"content" validate:"required,min=1,max=5000"`
	MediaURL        *string `json:"media_url,omitempty" validate:"omitempty,uri"`
	CommentsEnabled *bool   `json:"comments_enabled,omitempty"`
}

// UpdatePostRequest defines the request body for updating an existing post.
// All fields are optional but at least one must be present.
type UpdatePostRequest struct {
	Content         *string `json:"content,omitempty" validate:"omitempty,min=1,max=5000"`
	MediaURL        *string `json:"media_url,omitempty" validate:"omitempty,uri"`
	CommentsEnabled *bool   `json:"comments_enabled,omitempty"`
}

// PostDetail is a post row joined with its author and per-post counts,
// the shape returned by every post read.
type PostDetail struct {
	ID              uint      `json:"id"`
	UserID          uint      `json:"user_id"`
	Content         string    `json:"content"`
	MediaURL        string    `json:"media_url"`
	CommentsEnabled bool      `json:"comments_enabled"`
	CreatedAt       time.Time `json:"created_at"`
	Username        string    `json:"username"`
	FullName        string    `json:"full_name"`
	LikeCount       int64     `json:"like_count"`
	CommentCount    int64     `json:"comment_count"`
}
