package repositories

import (
	"github.com/adnanhq/social-media-api/internal/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	UsernameExists(username string) (bool, error)
	Search(term string, limit, offset int) ([]models.PublicUser, error)
	GetProfile(id uint) (*models.UserProfile, error)
	UpdateProfile(id uint, updates map[string]interface{}) (*models.User, error)
	SoftDelete(id uint) (bool, error)
}

// PostgresUserRepository implements UserRepository over GORM
type PostgresUserRepository struct {
	db *gorm.DB
}

// NewPostgresUserRepository creates a new PostgresUserRepository
func NewPostgresUserRepository(db *gorm.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// Create inserts a new user. Unique violations on username or email surface
// as gorm.ErrDuplicatedKey.
func (r *PostgresUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// GetByID retrieves a visible user by ID.
func (r *PostgresUserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.Scopes(visible("users")).Take(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername retrieves a visible user by username, including the
// password hash for credential checks.
func (r *PostgresUserRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Scopes(visible("users")).Where("username = ?", username).Take(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a visible user by email.
func (r *PostgresUserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Scopes(visible("users")).Where("email = ?", email).Take(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UsernameExists reports whether any row holds the username, soft-deleted
// rows included: those still occupy the unique index.
func (r *PostgresUserRepository) UsernameExists(username string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

// Search finds users whose username or full name matches the term
// (case-insensitive), ordered by username.
func (r *PostgresUserRepository) Search(term string, limit, offset int) ([]models.PublicUser, error) {
	var users []models.PublicUser
	pattern := "%" + term + "%"
	err := r.db.Model(&models.User{}).
		Select("users.id, users.username, users.email, users.full_name, users.created_at").
		Scopes(visible("users")).
		Where("LOWER(full_name) LIKE LOWER(?) OR LOWER(username) LIKE LOWER(?)", pattern, pattern).
		Order("username").
		Scopes(paginate(limit, offset)).
		Find(&users).Error
	return users, err
}

// GetProfile retrieves a user together with follower, following and post
// counts computed via correlated subqueries.
func (r *PostgresUserRepository) GetProfile(id uint) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := r.db.Model(&models.User{}).
		Select(`users.id, users.username, users.email, users.full_name, users.created_at,
			(SELECT COUNT(*) FROM follows WHERE follows.following_id = users.id) AS follower_count,
			(SELECT COUNT(*) FROM follows WHERE follows.follower_id = users.id) AS following_count,
			(SELECT COUNT(*) FROM posts WHERE posts.user_id = users.id AND posts.is_deleted = ?) AS post_count`, false).
		Scopes(visible("users")).
		Where("users.id = ?", id).
		Take(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile applies the given column updates to a visible user and
// returns the updated record, or nil when no row matched.
func (r *PostgresUserRepository) UpdateProfile(id uint, updates map[string]interface{}) (*models.User, error) {
	if len(updates) == 0 {
		return nil, nil
	}

	res := r.db.Model(&models.User{}).
		Scopes(visible("users")).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.GetByID(id)
}

// SoftDelete marks a user as deleted, keeping the row for foreign keys.
// Already-deleted rows match nothing, so a repeat delete returns false.
func (r *PostgresUserRepository) SoftDelete(id uint) (bool, error) {
	res := r.db.Model(&models.User{}).
		Scopes(visible("users")).
		Where("id = ?", id).
		Update("is_deleted", true)
	return res.RowsAffected > 0, res.Error
}
