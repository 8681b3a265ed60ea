package service

import (
	"context"
	"unicode/utf8"

	"chirp/internal/models"
	"chirp/internal/repository"
)

const (
	maxPostLen    = 10000
	maxCommentLen = 280
)

// PostService implements post and comment creation and post deletion.
type PostService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	indexer     *HashtagIndexer
}

type CreatePostInput struct {
	UserID  uint
	Content string
	Images  []string
}

type CreateCommentInput struct {
	UserID  uint
	PostID  uint
	Content string
}

type DeletePostInput struct {
	UserID uint
	PostID uint
}

// DeletePostResult echoes the targeted post ID back to the caller.
type DeletePostResult struct {
	PostID uint `json:"PostId"`
}

func NewPostService(
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
	indexer *HashtagIndexer,
) *PostService {
	return &PostService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		indexer:     indexer,
	}
}

// CreatePost validates the body, resolves its hashtags, and persists the post
// with its images and tag links in one insert. The returned post carries the
// full hydrated read shape.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if in.Content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if utf8.RuneCountInString(in.Content) > maxPostLen {
		return nil, models.NewValidationError("Post too long (max 10000 characters)")
	}

	post := &models.Post{
		Content: in.Content,
		UserID:  in.UserID,
	}
	for _, src := range in.Images {
		post.Images = append(post.Images, models.Image{Src: src})
	}

	if err := s.indexer.ExtractAndLink(ctx, post, in.Content); err != nil {
		return nil, err
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return s.postRepo.GetHydrated(ctx, post.ID)
}

// CreateComment attaches a comment to an existing post and returns it with
// the author identity loaded.
func (s *PostService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if in.Content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if utf8.RuneCountInString(in.Content) > maxCommentLen {
		return nil, models.NewValidationError("Comment too long (max 280 characters)")
	}

	if _, err := s.postRepo.GetByID(ctx, in.PostID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Content: in.Content,
		UserID:  in.UserID,
		PostID:  in.PostID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return s.commentRepo.GetByID(ctx, comment.ID)
}

// ListComments returns a post's comments, newest first.
func (s *PostService) ListComments(ctx context.Context, postID uint) ([]models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByPost(ctx, postID)
}

// DeletePost removes the post when it belongs to the caller. The delete is
// scoped by owner in a single statement; a missing post or a non-owner both
// fall through to zero affected rows, and the call still reports the target
// ID as removed.
func (s *PostService) DeletePost(ctx context.Context, in DeletePostInput) (*DeletePostResult, error) {
	if _, err := s.postRepo.DeleteOwned(ctx, in.PostID, in.UserID); err != nil {
		return nil, err
	}
	return &DeletePostResult{PostID: in.PostID}, nil
}
