package database

import (
	"testing"

	"chirp/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupMigratedDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func TestMigrate_RetweetUniqueness(t *testing.T) {
	db := setupMigratedDB(t)

	author := models.User{Email: "a@example.com", Nickname: "a", Password: "pw"}
	retweeter := models.User{Email: "b@example.com", Nickname: "b", Password: "pw"}
	require.NoError(t, db.Create(&author).Error)
	require.NoError(t, db.Create(&retweeter).Error)

	original := models.Post{Content: "original", UserID: author.ID}
	require.NoError(t, db.Create(&original).Error)

	first := models.Post{Content: models.RetweetMarker, UserID: retweeter.ID, RetweetID: &original.ID}
	require.NoError(t, db.Create(&first).Error)

	// A second live retweet of the same original by the same user violates
	// the partial unique index.
	dup := models.Post{Content: models.RetweetMarker, UserID: retweeter.ID, RetweetID: &original.ID}
	err := db.Create(&dup).Error
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	// Soft-deleting the first retweet frees the slot.
	require.NoError(t, db.Delete(&first).Error)
	again := models.Post{Content: models.RetweetMarker, UserID: retweeter.ID, RetweetID: &original.ID}
	assert.NoError(t, db.Create(&again).Error)
}

func TestMigrate_NonRetweetPostsUnconstrained(t *testing.T) {
	db := setupMigratedDB(t)

	author := models.User{Email: "a@example.com", Nickname: "a", Password: "pw"}
	require.NoError(t, db.Create(&author).Error)

	// Plain posts carry a NULL retweet_id and never collide on the index.
	for i := 0; i < 3; i++ {
		post := models.Post{Content: "plain", UserID: author.ID}
		require.NoError(t, db.Create(&post).Error)
	}
}

func TestMigrate_EdgeUniqueness(t *testing.T) {
	db := setupMigratedDB(t)

	a := models.User{Email: "a@example.com", Nickname: "a", Password: "pw"}
	b := models.User{Email: "b@example.com", Nickname: "b", Password: "pw"}
	require.NoError(t, db.Create(&a).Error)
	require.NoError(t, db.Create(&b).Error)

	post := models.Post{Content: "p", UserID: a.ID}
	require.NoError(t, db.Create(&post).Error)

	require.NoError(t, db.Create(&models.Like{UserID: b.ID, PostID: post.ID}).Error)
	assert.ErrorIs(t, db.Create(&models.Like{UserID: b.ID, PostID: post.ID}).Error, gorm.ErrDuplicatedKey)

	require.NoError(t, db.Create(&models.Follow{FollowerID: b.ID, FolloweeID: a.ID}).Error)
	assert.ErrorIs(t, db.Create(&models.Follow{FollowerID: b.ID, FolloweeID: a.ID}).Error, gorm.ErrDuplicatedKey)
}
