package repositories

import (
	"github.com/adnanhq/social-media-api/internal/models"
	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id uint) (*models.PostDetail, error)
	GetByUserID(userID uint, limit, offset int) ([]models.PostDetail, error)
	GetFeed(userID uint, limit, offset int) ([]models.PostDetail, error)
	Search(term string, limit, offset int) ([]models.PostDetail, error)
	Update(postID, userID uint, updates map[string]interface{}) (*models.Post, error)
	SoftDelete(postID, userID uint) (bool, error)
}

// postDetailColumns selects post rows with author info and per-post counts.
const postDetailColumns = `posts.id, posts.user_id, posts.content, posts.media_url,
	posts.comments_enabled, posts.created_at, users.username, users.full_name,
	(SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id) AS like_count,
	(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id AND comments.is_deleted = ?) AS comment_count`

// PostgresPostRepository implements PostRepository over GORM
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

func (r *PostgresPostRepository) detailQuery() *gorm.DB {
	return r.db.Model(&models.Post{}).
		Select(postDetailColumns, false).
		Joins("JOIN users ON users.id = posts.user_id").
		Scopes(visible("posts"))
}

// Create inserts a new post.
func (r *PostgresPostRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

// GetByID retrieves a visible post with author and counts.
func (r *PostgresPostRepository) GetByID(id uint) (*models.PostDetail, error) {
	var detail models.PostDetail
	if err := r.detailQuery().Where("posts.id = ?", id).Take(&detail).Error; err != nil {
		return nil, err
	}
	return &detail, nil
}

// GetByUserID retrieves a user's visible posts, newest first.
func (r *PostgresPostRepository) GetByUserID(userID uint, limit, offset int) ([]models.PostDetail, error) {
	var details []models.PostDetail
	err := r.detailQuery().
		Where("posts.user_id = ?", userID).
		Order("posts.created_at DESC").
		Scopes(paginate(limit, offset)).
		Find(&details).Error
	return details, err
}

// GetFeed retrieves the requester's own posts plus those of accounts they
// follow, newest first.
func (r *PostgresPostRepository) GetFeed(userID uint, limit, offset int) ([]models.PostDetail, error) {
	var details []models.PostDetail
	followees := r.db.Model(&models.Follow{}).
		Select("following_id").
		Where("follower_id = ?", userID)

	err := r.detailQuery().
		Where("posts.user_id = ? OR posts.user_id IN (?)", userID, followees).
		Order("posts.created_at DESC").
		Scopes(paginate(limit, offset)).
		Find(&details).Error
	return details, err
}

// Search finds visible posts whose content matches the term, newest first.
func (r *PostgresPostRepository) Search(term string, limit, offset int) ([]models.PostDetail, error) {
	var details []models.PostDetail
	err := r.detailQuery().
		Where("LOWER(posts.content) LIKE LOWER(?)", "%"+term+"%").
		Order("posts.created_at DESC").
		Scopes(paginate(limit, offset)).
		Find(&details).Error
	return details, err
}

// Update applies the given column updates to a post owned by userID and
// returns the updated record, or nil when no row matched. A missing post and
// a foreign owner are deliberately indistinguishable here.
func (r *PostgresPostRepository) Update(postID, userID uint, updates map[string]interface{}) (*models.Post, error) {
	if len(updates) == 0 {
		return nil, nil
	}

	res := r.db.Model(&models.Post{}).
		Scopes(visible("posts")).
		Where("id = ? AND user_id = ?", postID, userID).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}

	var post models.Post
	if err := r.db.Take(&post, postID).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// SoftDelete marks a post owned by userID as deleted. Already-deleted rows
// match nothing, so a repeat delete returns false.
func (r *PostgresPostRepository) SoftDelete(postID, userID uint) (bool, error) {
	res := r.db.Model(&models.Post{}).
		Scopes(visible("posts")).
		Where("id = ? AND user_id = ?", postID, userID).
		Update("is_deleted", true)
	return res.RowsAffected > 0, res.Error
}
