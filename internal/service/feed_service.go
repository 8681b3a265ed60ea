package service

import (
	"context"

	"chirp/internal/models"
	"chirp/internal/repository"
)

const (
	defaultFeedPageSize = 10
	maxFeedPageSize     = 100
)

// FeedService pages the global timeline.
type FeedService struct {
	feedRepo repository.FeedRepository
}

func NewFeedService(feedRepo repository.FeedRepository) *FeedService {
	return &FeedService{feedRepo: feedRepo}
}

// GetFeed returns one page of posts, newest first. lastID is the exclusive
// keyset cursor from the previous page's oldest post; nil means start from
// the top. pageSize outside [1, 100] falls back to the default of 10.
func (s *FeedService) GetFeed(ctx context.Context, lastID *uint, pageSize int) ([]*models.Post, error) {
	if pageSize <= 0 || pageSize > maxFeedPageSize {
		pageSize = defaultFeedPageSize
	}
	return s.feedRepo.List(ctx, lastID, pageSize)
}
