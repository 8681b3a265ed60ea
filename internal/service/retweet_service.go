package service

import (
	"context"
	"errors"

	"chirp/internal/models"
	"chirp/internal/repository"
)

// RetweetService creates retweet posts.
type RetweetService struct {
	postRepo repository.PostRepository
}

type RetweetInput struct {
	UserID uint
	PostID uint
}

func NewRetweetService(postRepo repository.PostRepository) *RetweetService {
	return &RetweetService{postRepo: postRepo}
}

// Retweet creates a new post that references an original. Retweets always
// point at the ultimate original: retweeting a retweet collapses to its
// target, so chains never form. A user cannot retweet their own post, a post
// whose ultimate original is their own, or the same original twice.
func (s *RetweetService) Retweet(ctx context.Context, in RetweetInput) (*models.Post, error) {
	target, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}

	if target.UserID == in.UserID {
		return nil, models.NewForbiddenError("You cannot retweet your own post")
	}

	originalID := target.ID
	if target.RetweetID != nil {
		// The preload only loads live rows, so a nil Retweet alongside a set
		// RetweetID means the original was deleted. There is nothing left to
		// retweet, and skipping the ownership check below would let authors
		// retweet their own deleted posts.
		if target.Retweet == nil {
			return nil, models.NewNotFoundError("Post", *target.RetweetID)
		}
		originalID = *target.RetweetID
		if target.Retweet.UserID == in.UserID {
			return nil, models.NewForbiddenError("You cannot retweet your own post")
		}
	}

	exists, err := s.postRepo.ExistsRetweetBy(ctx, in.UserID, originalID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.NewConflictError("You already retweeted this post")
	}

	retweet := &models.Post{
		Content:   models.RetweetMarker,
		UserID:    in.UserID,
		RetweetID: &originalID,
	}
	if err := s.postRepo.Create(ctx, retweet); err != nil {
		// A concurrent retweet of the same original may land between the
		// existence check and the insert; the unique index turns that race
		// into a conflict from the repository.
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Code == models.CodeConflict {
			return nil, models.NewConflictError("You already retweeted this post")
		}
		return nil, err
	}

	return s.postRepo.GetHydrated(ctx, retweet.ID)
}
