package repository

import (
	"context"

	"chirp/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SocialRepository defines the interface for like and follow edge operations.
// Both edge kinds are idempotent sets: adding an existing edge is a no-op and
// removing a missing one deletes zero rows.
type SocialRepository interface {
	AddLike(ctx context.Context, userID, postID uint) error
	RemoveLike(ctx context.Context, userID, postID uint) error
	AddFollow(ctx context.Context, followerID, followeeID uint) error
	RemoveFollow(ctx context.Context, followerID, followeeID uint) error
	ListFollowers(ctx context.Context, userID uint) ([]models.User, error)
	ListFollowings(ctx context.Context, userID uint) ([]models.User, error)
}

type socialRepository struct {
	db *gorm.DB
}

// NewSocialRepository creates a new social repository.
func NewSocialRepository(db *gorm.DB) SocialRepository {
	return &socialRepository{db: db}
}

func (r *socialRepository) AddLike(ctx context.Context, userID, postID uint) error {
	like := models.Like{UserID: userID, PostID: postID}
	// ON CONFLICT DO NOTHING absorbs concurrent duplicate inserts.
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&like).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *socialRepository) RemoveLike(ctx context.Context, userID, postID uint) error {
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&models.Like{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *socialRepository) AddFollow(ctx context.Context, followerID, followeeID uint) error {
	follow := models.Follow{FollowerID: followerID, FolloweeID: followeeID}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&follow).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *socialRepository) RemoveFollow(ctx context.Context, followerID, followeeID uint) error {
	if err := r.db.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&models.Follow{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *socialRepository) ListFollowers(ctx context.Context, userID uint) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Table("users").
		Select("users.id", "users.nickname").
		Joins("JOIN follows f ON users.id = f.follower_id").
		Where("f.followee_id = ? AND users.deleted_at IS NULL", userID).
		Order("f.id ASC").
		Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

func (r *socialRepository) ListFollowings(ctx context.Context, userID uint) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Table("users").
		Select("users.id", "users.nickname").
		Joins("JOIN follows f ON users.id = f.followee_id").
		Where("f.follower_id = ? AND users.deleted_at IS NULL", userID).
		Order("f.id ASC").
		Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}
