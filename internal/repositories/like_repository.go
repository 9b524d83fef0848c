package repositories

import (
	"github.com/adnanhq/social-media-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	Create(like *models.Like) (bool, error)
	Delete(postID, userID uint) (bool, error)
	GetByPostID(postID uint, limit, offset int) ([]models.LikeDetail, error)
	GetByUserID(userID uint, limit, offset int) ([]models.LikedPost, error)
	HasUserLiked(postID, userID uint) (bool, error)
	CountByPostID(postID uint) (int64, error)
}

// PostgresLikeRepository implements LikeRepository over GORM
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

// Create inserts a like with insert-or-ignore semantics. Returns false when
// the (post, user) pair already exists; the unique constraint is the final
// authority under concurrent requests.
func (r *PostgresLikeRepository) Create(like *models.Like) (bool, error) {
	res := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "post_id"}, {Name: "user_id"}},
		DoNothing: true,
	}).Create(like)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Delete removes a like. Likes are hard-deleted.
func (r *PostgresLikeRepository) Delete(postID, userID uint) (bool, error) {
	res := r.db.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&models.Like{})
	return res.RowsAffected > 0, res.Error
}

// GetByPostID retrieves a post's likes with user info, newest first.
func (r *PostgresLikeRepository) GetByPostID(postID uint, limit, offset int) ([]models.LikeDetail, error) {
	var likes []models.LikeDetail
	err := r.db.Model(&models.Like{}).
		Select("likes.id, likes.post_id, likes.user_id, likes.created_at, users.username, users.full_name").
		Joins("JOIN users ON users.id = likes.user_id").
		Where("likes.post_id = ?", postID).
		Order("likes.created_at DESC").
		Scopes(paginate(limit, offset)).
		Find(&likes).Error
	return likes, err
}

// GetByUserID retrieves the visible posts a user has liked, most recently
// liked first.
func (r *PostgresLikeRepository) GetByUserID(userID uint, limit, offset int) ([]models.LikedPost, error) {
	var posts []models.LikedPost
	err := r.db.Model(&models.Like{}).
		Select(`likes.id AS like_id, likes.created_at AS liked_at,
			posts.id, posts.user_id, posts.content, posts.media_url, posts.comments_enabled, posts.created_at,
			users.username, users.full_name`).
		Joins("JOIN posts ON posts.id = likes.post_id").
		Joins("JOIN users ON users.id = posts.user_id").
		Scopes(visible("posts")).
		Where("likes.user_id = ?", userID).
		Order("likes.created_at DESC").
		Scopes(paginate(limit, offset)).
		Find(&posts).Error
	return posts, err
}

// HasUserLiked reports whether the user already liked the post.
func (r *PostgresLikeRepository) HasUserLiked(postID, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Like{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error
	return count > 0, err
}

// CountByPostID counts a post's likes.
func (r *PostgresLikeRepository) CountByPostID(postID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Like{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}
