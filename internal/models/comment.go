package models

import "time"

// Comment represents a comment on a post
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    uint      `json:"post_id" gorm:"index"`
	UserID    uint      `json:"user_id" gorm:"index"`
	Content   string    `json:"content" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	IsDeleted bool      `json:"-" gorm:"not null;default:false;index"`
}

// CommentRequest defines the request body for creating or updating a comment
type CommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=2000"`
}

// CommentDetail is a comment row joined with its author.
type CommentDetail struct {
	ID        uint      `json:"id"`
	PostID    uint      `json:"post_id"`
	UserID    uint      `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
}

// UserComment is a comment row joined with the post it was left on.
type UserComment struct {
	ID          uint      `json:"id"`
	PostID      uint      `json:"post_id"`
	UserID      uint      `json:"user_id"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
	PostContent string    `json:"post_content"`
	PostUserID  uint      `json:"post_user_id"`
}
