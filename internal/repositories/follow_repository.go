package repositories

import (
	"github.com/adnanhq/social-media-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FollowRepository defines the interface for follow data operations
type FollowRepository interface {
	Create(follow *models.Follow) (bool, error)
	Delete(followerID, followingID uint) (bool, error)
	GetFollowing(userID uint, limit, offset int) ([]models.FollowEdge, error)
	GetFollowers(userID uint, limit, offset int) ([]models.FollowEdge, error)
	Stats(userID uint) (*models.FollowStats, error)
	IsFollowing(followerID, followingID uint) (bool, error)
}

// PostgresFollowRepository implements FollowRepository over GORM
type PostgresFollowRepository struct {
	db *gorm.DB
}

// NewPostgresFollowRepository creates a new PostgresFollowRepository
func NewPostgresFollowRepository(db *gorm.DB) *PostgresFollowRepository {
	return &PostgresFollowRepository{db: db}
}

// Create inserts a follow edge with insert-or-ignore semantics. Self-follow
// is rejected with models.ErrSelfFollow; an existing edge returns false.
func (r *PostgresFollowRepository) Create(follow *models.Follow) (bool, error) {
	if follow.FollowerID == follow.FollowingID {
		return false, models.ErrSelfFollow
	}

	res := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "follower_id"}, {Name: "following_id"}},
		DoNothing: true,
	}).Create(follow)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Delete removes a follow edge. Follows are hard-deleted.
func (r *PostgresFollowRepository) Delete(followerID, followingID uint) (bool, error) {
	res := r.db.Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&models.Follow{})
	return res.RowsAffected > 0, res.Error
}

// GetFollowing lists the visible users that userID follows, most recently
// followed first.
func (r *PostgresFollowRepository) GetFollowing(userID uint, limit, offset int) ([]models.FollowEdge, error) {
	var edges []models.FollowEdge
	err := r.db.Model(&models.Follow{}).
		Select("follows.id AS follow_id, follows.created_at AS followed_at, users.id, users.username, users.email, users.full_name").
		Joins("JOIN users ON users.id = follows.following_id").
		Scopes(visible("users")).
		Where("follows.follower_id = ?", userID).
		Order("follows.created_at DESC").
		Scopes(paginate(limit, offset)).
		Find(&edges).Error
	return edges, err
}

// GetFollowers lists the visible users following userID, most recent first.
func (r *PostgresFollowRepository) GetFollowers(userID uint, limit, offset int) ([]models.FollowEdge, error) {
	var edges []models.FollowEdge
	err := r.db.Model(&models.Follow{}).
		Select("follows.id AS follow_id, follows.created_at AS followed_at, users.id, users.username, users.email, users.full_name").
		Joins("JOIN users ON users.id = follows.follower_id").
		Scopes(visible("users")).
		Where("follows.following_id = ?", userID).
		Order("follows.created_at DESC").
		Scopes(paginate(limit, offset)).
		Find(&edges).Error
	return edges, err
}

// Stats returns follower and following counts for a user.
func (r *PostgresFollowRepository) Stats(userID uint) (*models.FollowStats, error) {
	var stats models.FollowStats
	if err := r.db.Model(&models.Follow{}).Where("following_id = ?", userID).Count(&stats.FollowerCount).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Follow{}).Where("follower_id = ?", userID).Count(&stats.FollowingCount).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}

// IsFollowing reports whether followerID follows followingID.
func (r *PostgresFollowRepository) IsFollowing(followerID, followingID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	return count > 0, err
}
