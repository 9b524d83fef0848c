package repositories

import (
	"testing"

	"github.com/adnanhq/social-media-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeRepositoryCreateIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresLikeRepository(db)

	alice := seedUser(t, db, "alice")
	post := seedPost(t, db, alice.ID, "likable")

	created, err := repo.Create(&models.Like{PostID: post.ID, UserID: alice.ID})
	require.NoError(t, err)
	assert.True(t, created)

	// Second like is a silent no-op, not an error
	created, err = repo.Create(&models.Like{PostID: post.ID, UserID: alice.ID})
	require.NoError(t, err)
	assert.False(t, created)

	var count int64
	require.NoError(t, db.Model(&models.Like{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestLikeRepositoryDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresLikeRepository(db)

	alice := seedUser(t, db, "alice")
	post := seedPost(t, db, alice.ID, "likable")
	_, err := repo.Create(&models.Like{PostID: post.ID, UserID: alice.ID})
	require.NoError(t, err)

	ok, err := repo.Delete(post.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Delete(post.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLikeRepositoryHasUserLikedAndCount(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresLikeRepository(db)

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	post := seedPost(t, db, alice.ID, "likable")

	_, err := repo.Create(&models.Like{PostID: post.ID, UserID: bob.ID})
	require.NoError(t, err)

	liked, err := repo.HasUserLiked(post.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	liked, err = repo.HasUserLiked(post.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, liked)

	total, err := repo.CountByPostID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestLikeRepositoryGetByPostIDJoinsUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresLikeRepository(db)

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	post := seedPost(t, db, alice.ID, "likable")

	_, err := repo.Create(&models.Like{PostID: post.ID, UserID: bob.ID})
	require.NoError(t, err)

	likes, err := repo.GetByPostID(post.ID, 50, 0)
	require.NoError(t, err)
	require.Len(t, likes, 1)
	assert.Equal(t, bob.ID, likes[0].UserID)
	assert.Equal(t, "bob", likes[0].Username)
}

func TestLikeRepositoryGetByUserIDSkipsDeletedPosts(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresLikeRepository(db)

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	visiblePost := seedPost(t, db, alice.ID, "still here")
	gonePost := seedPost(t, db, alice.ID, "soon gone")

	_, err := repo.Create(&models.Like{PostID: visiblePost.ID, UserID: bob.ID})
	require.NoError(t, err)
	_, err = repo.Create(&models.Like{PostID: gonePost.ID, UserID: bob.ID})
	require.NoError(t, err)
	require.NoError(t, db.Model(gonePost).Update("is_deleted", true).Error)

	posts, err := repo.GetByUserID(bob.ID, 20, 0)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "still here", posts[0].Content)
	assert.Equal(t, "alice", posts[0].Username)
	assert.NotZero(t, posts[0].LikeID)
}
