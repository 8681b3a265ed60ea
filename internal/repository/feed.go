package repository

import (
	"context"

	"chirp/internal/models"

	"gorm.io/gorm"
)

// FeedRepository reads pages of the global reverse-chronological timeline.
type FeedRepository interface {
	List(ctx context.Context, lastID *uint, limit int) ([]*models.Post, error)
}

type feedRepository struct {
	db *gorm.DB
}

// NewFeedRepository creates a new feed repository.
func NewFeedRepository(db *gorm.DB) FeedRepository {
	return &feedRepository{db: db}
}

// List returns up to limit posts ordered newest-first. The cursor is keyset
// style: when lastID is set, only posts with a strictly smaller ID qualify.
// IDs are monotone with creation order, so consecutive pages never overlap or
// skip rows even as new posts arrive between requests.
func (r *feedRepository) List(ctx context.Context, lastID *uint, limit int) ([]*models.Post, error) {
	var posts []*models.Post

	q := hydrate(r.db.WithContext(ctx))
	if lastID != nil {
		q = q.Where("posts.id < ?", *lastID)
	}
	if err := q.
		Order("posts.created_at DESC").
		Limit(limit).
		Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	if err := attachLikerIDs(ctx, r.db, posts); err != nil {
		return nil, err
	}
	return posts, nil
}
