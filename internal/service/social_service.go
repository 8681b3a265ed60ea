package service

import (
	"context"

	"chirp/internal/models"
	"chirp/internal/repository"
)

// SocialService manages like and follow edges.
type SocialService struct {
	socialRepo repository.SocialRepository
	postRepo   repository.PostRepository
	userRepo   repository.UserRepository
}

// LikeResult identifies the like edge acted on.
type LikeResult struct {
	PostID uint `json:"PostId"`
	UserID uint `json:"UserId"`
}

// FollowResult identifies the user on the other end of the follow edge.
type FollowResult struct {
	UserID uint `json:"UserId"`
}

func NewSocialService(
	socialRepo repository.SocialRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
) *SocialService {
	return &SocialService{
		socialRepo: socialRepo,
		postRepo:   postRepo,
		userRepo:   userRepo,
	}
}

// LikePost records that userID likes postID. Liking an already-liked post is
// a no-op that still succeeds.
func (s *SocialService) LikePost(ctx context.Context, userID, postID uint) (*LikeResult, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	if err := s.socialRepo.AddLike(ctx, userID, postID); err != nil {
		return nil, err
	}
	return &LikeResult{PostID: postID, UserID: userID}, nil
}

// UnlikePost removes the like edge; removing a missing edge still succeeds.
func (s *SocialService) UnlikePost(ctx context.Context, userID, postID uint) (*LikeResult, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	if err := s.socialRepo.RemoveLike(ctx, userID, postID); err != nil {
		return nil, err
	}
	return &LikeResult{PostID: postID, UserID: userID}, nil
}

// Follow makes followerID follow followeeID. Re-following is a no-op.
func (s *SocialService) Follow(ctx context.Context, followerID, followeeID uint) (*FollowResult, error) {
	if _, err := s.userRepo.GetByID(ctx, followeeID); err != nil {
		return nil, err
	}
	if err := s.socialRepo.AddFollow(ctx, followerID, followeeID); err != nil {
		return nil, err
	}
	return &FollowResult{UserID: followeeID}, nil
}

// Unfollow removes the follow edge; removing a missing edge still succeeds.
func (s *SocialService) Unfollow(ctx context.Context, followerID, followeeID uint) (*FollowResult, error) {
	if _, err := s.userRepo.GetByID(ctx, followeeID); err != nil {
		return nil, err
	}
	if err := s.socialRepo.RemoveFollow(ctx, followerID, followeeID); err != nil {
		return nil, err
	}
	return &FollowResult{UserID: followeeID}, nil
}

// Followers lists the public identities of the users following userID.
func (s *SocialService) Followers(ctx context.Context, userID uint) ([]models.PublicIdentity, error) {
	users, err := s.socialRepo.ListFollowers(ctx, userID)
	if err != nil {
		return nil, err
	}
	return identities(users), nil
}

// Followings lists the public identities of the users userID follows.
func (s *SocialService) Followings(ctx context.Context, userID uint) ([]models.PublicIdentity, error) {
	users, err := s.socialRepo.ListFollowings(ctx, userID)
	if err != nil {
		return nil, err
	}
	return identities(users), nil
}

func identities(users []models.User) []models.PublicIdentity {
	out := make([]models.PublicIdentity, 0, len(users))
	for i := range users {
		out = append(out, users[i].Public())
	}
	return out
}
