package repositories

import (
	"testing"

	"github.com/adnanhq/social-media-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCommentRepositoryCreate(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresCommentRepository(db)

	alice := seedUser(t, db, "alice")
	post := seedPost(t, db, alice.ID, "a post")

	comment := &models.Comment{PostID: post.ID, UserID: alice.ID, Content: "nice"}
	require.NoError(t, repo.Create(comment))
	assert.NotZero(t, comment.ID)
}

func TestCommentRepositoryCreateOnMissingPost(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresCommentRepository(db)

	alice := seedUser(t, db, "alice")

	err := repo.Create(&models.Comment{PostID: 9999, UserID: alice.ID, Content: "hi"})
	assert.ErrorIs(t, err, models.ErrPostNotFound)
}

func TestCommentRepositoryCreateOnDeletedPost(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresCommentRepository(db)

	alice := seedUser(t, db, "alice")
	post := seedPost(t, db, alice.ID, "gone")
	require.NoError(t, db.Model(post).Update("is_deleted", true).Error)

	err := repo.Create(&models.Comment{PostID: post.ID, UserID: alice.ID, Content: "hi"})
	assert.ErrorIs(t, err, models.ErrPostNotFound)
}

func TestCommentRepositoryCreateWhenCommentsDisabled(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresCommentRepository(db)

	alice := seedUser(t, db, "alice")
	post := &models.Post{UserID: alice.ID, Content: "quiet", CommentsEnabled: false}
	require.NoError(t, db.Create(post).Error)

	err := repo.Create(&models.Comment{PostID: post.ID, UserID: alice.ID, Content: "hi"})
	assert.ErrorIs(t, err, models.ErrCommentsDisabled)

	var count int64
	require.NoError(t, db.Model(&models.Comment{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCommentRepositoryListingAndCount(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresCommentRepository(db)

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	post := seedPost(t, db, alice.ID, "discuss")

	require.NoError(t, repo.Create(&models.Comment{PostID: post.ID, UserID: alice.ID, Content: "first"}))
	require.NoError(t, repo.Create(&models.Comment{PostID: post.ID, UserID: bob.ID, Content: "second"}))
	hidden := &models.Comment{PostID: post.ID, UserID: bob.ID, Content: "removed", IsDeleted: true}
	require.NoError(t, db.Create(hidden).Error)

	comments, err := repo.GetByPostID(post.ID, 50, 0)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	// Oldest first
	assert.Equal(t, "first", comments[0].Content)
	assert.Equal(t, "alice", comments[0].Username)
	assert.Equal(t, "second", comments[1].Content)

	total, err := repo.CountByPostID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestCommentRepositoryGetByUserIDJoinsPost(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresCommentRepository(db)

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	post := seedPost(t, db, alice.ID, "alice's post")
	require.NoError(t, repo.Create(&models.Comment{PostID: post.ID, UserID: bob.ID, Content: "from bob"}))

	comments, err := repo.GetByUserID(bob.ID, 50, 0)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "from bob", comments[0].Content)
	assert.Equal(t, "alice's post", comments[0].PostContent)
	assert.Equal(t, alice.ID, comments[0].PostUserID)
}

func TestCommentRepositoryUpdateScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresCommentRepository(db)

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	post := seedPost(t, db, alice.ID, "a post")
	comment := &models.Comment{PostID: post.ID, UserID: alice.ID, Content: "draft"}
	require.NoError(t, repo.Create(comment))

	updated, err := repo.Update(comment.ID, alice.ID, "final")
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "final", updated.Content)

	stolen, err := repo.Update(comment.ID, bob.ID, "hijacked")
	require.NoError(t, err)
	assert.Nil(t, stolen)
}

func TestCommentRepositorySoftDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresCommentRepository(db)

	alice := seedUser(t, db, "alice")
	post := seedPost(t, db, alice.ID, "a post")
	comment := &models.Comment{PostID: post.ID, UserID: alice.ID, Content: "temp"}
	require.NoError(t, repo.Create(comment))

	ok, err := repo.SoftDelete(comment.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = repo.GetByID(comment.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	ok, err = repo.SoftDelete(comment.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}
