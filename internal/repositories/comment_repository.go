package repositories

import (
	"errors"

	"github.com/adnanhq/social-media-api/internal/models"
	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByID(id uint) (*models.CommentDetail, error)
	GetByPostID(postID uint, limit, offset int) ([]models.CommentDetail, error)
	CountByPostID(postID uint) (int64, error)
	GetByUserID(userID uint, limit, offset int) ([]models.UserComment, error)
	Update(commentID, userID uint, content string) (*models.Comment, error)
	SoftDelete(commentID, userID uint) (bool, error)
}

// PostgresCommentRepository implements CommentRepository over GORM
type PostgresCommentRepository struct {
	db *gorm.DB
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository
func NewPostgresCommentRepository(db *gorm.DB) *PostgresCommentRepository {
	return &PostgresCommentRepository{db: db}
}

// Create inserts a comment after checking the parent post inside the same
// transaction: the post must exist, be visible, and allow comments. Fails
// with models.ErrPostNotFound or models.ErrCommentsDisabled.
func (r *PostgresCommentRepository) Create(comment *models.Comment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		err := tx.Scopes(visible("posts")).Take(&post, comment.PostID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrPostNotFound
		}
		if err != nil {
			return err
		}
		if !post.CommentsEnabled {
			return models.ErrCommentsDisabled
		}
		return tx.Create(comment).Error
	})
}

// GetByID retrieves a visible comment with its author.
func (r *PostgresCommentRepository) GetByID(id uint) (*models.CommentDetail, error) {
	var detail models.CommentDetail
	err := r.db.Model(&models.Comment{}).
		Select("comments.id, comments.post_id, comments.user_id, comments.content, comments.created_at, users.username, users.full_name").
		Joins("JOIN users ON users.id = comments.user_id").
		Scopes(visible("comments")).
		Where("comments.id = ?", id).
		Take(&detail).Error
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

// GetByPostID retrieves a post's visible comments, oldest first.
func (r *PostgresCommentRepository) GetByPostID(postID uint, limit, offset int) ([]models.CommentDetail, error) {
	var details []models.CommentDetail
	err := r.db.Model(&models.Comment{}).
		Select("comments.id, comments.post_id, comments.user_id, comments.content, comments.created_at, users.username, users.full_name").
		Joins("JOIN users ON users.id = comments.user_id").
		Scopes(visible("comments")).
		Where("comments.post_id = ?", postID).
		Order("comments.created_at ASC").
		Scopes(paginate(limit, offset)).
		Find(&details).Error
	return details, err
}

// CountByPostID counts a post's visible comments.
func (r *PostgresCommentRepository) CountByPostID(postID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Comment{}).
		Scopes(visible("comments")).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}

// GetByUserID retrieves a user's visible comments on visible posts,
// newest first.
func (r *PostgresCommentRepository) GetByUserID(userID uint, limit, offset int) ([]models.UserComment, error) {
	var comments []models.UserComment
	err := r.db.Model(&models.Comment{}).
		Select("comments.id, comments.post_id, comments.user_id, comments.content, comments.created_at, posts.content AS post_content, posts.user_id AS post_user_id").
		Joins("JOIN posts ON posts.id = comments.post_id").
		Scopes(visible("comments"), visible("posts")).
		Where("comments.user_id = ?", userID).
		Order("comments.created_at DESC").
		Scopes(paginate(limit, offset)).
		Find(&comments).Error
	return comments, err
}

// Update rewrites the content of a comment owned by userID and returns the
// updated record, or nil when no row matched.
func (r *PostgresCommentRepository) Update(commentID, userID uint, content string) (*models.Comment, error) {
	res := r.db.Model(&models.Comment{}).
		Scopes(visible("comments")).
		Where("id = ? AND user_id = ?", commentID, userID).
		Update("content", content)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}

	var comment models.Comment
	if err := r.db.Take(&comment, commentID).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// SoftDelete marks a comment owned by userID as deleted. Already-deleted
// rows match nothing, so a repeat delete returns false.
func (r *PostgresCommentRepository) SoftDelete(commentID, userID uint) (bool, error) {
	res := r.db.Model(&models.Comment{}).
		Scopes(visible("comments")).
		Where("id = ? AND user_id = ?", commentID, userID).
		Update("is_deleted", true)
	return res.RowsAffected > 0, res.Error
}
