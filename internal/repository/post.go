package repository

import (
	"context"
	"errors"

	"chirp/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	GetHydrated(ctx context.Context, id uint) (*models.Post, error)
	ExistsRetweetBy(ctx context.Context, userID, originalID uint) (bool, error)
	DeleteOwned(ctx context.Context, id, userID uint) (int64, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// selectIdentity trims joined author rows down to the public identity fields.
func selectIdentity(db *gorm.DB) *gorm.DB {
	return db.Select("id", "nickname")
}

// hydrate loads the full read shape of a post: author identity, images,
// comments (newest first, each with its author identity), hashtags, and for
// retweets the referenced original with its own author and images.
func hydrate(db *gorm.DB) *gorm.DB {
	return db.
		Preload("User", selectIdentity).
		Preload("Images").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at DESC")
		}).
		Preload("Comments.User", selectIdentity).
		Preload("Hashtags").
		Preload("Retweet").
		Preload("Retweet.User", selectIdentity).
		Preload("Retweet.Images")
}

// Create persists the post together with any pre-attached Images and Hashtags
// in a single GORM create, which runs as one transaction. A duplicate-key
// failure here means a concurrent insert hit the (user_id, retweet_id) unique
// index first.
func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewConflictError("Post already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).Preload("Retweet").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

func (r *postRepository) GetHydrated(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := hydrate(r.db.WithContext(ctx)).First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, models.NewInternalError(err)
	}
	if err := attachLikerIDs(ctx, r.db, []*models.Post{&post}); err != nil {
		return nil, err
	}
	return &post, nil
}

// ExistsRetweetBy reports whether userID already has a live retweet of
// originalID.
func (r *postRepository) ExistsRetweetBy(ctx context.Context, userID, originalID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("user_id = ? AND retweet_id = ?", userID, originalID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// DeleteOwned soft-deletes the post only when it belongs to userID. The
// ownership predicate lives in the WHERE clause, so a mismatched owner simply
// deletes zero rows; callers read the returned count if they care.
func (r *postRepository) DeleteOwned(ctx context.Context, id, userID uint) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Post{})
	if result.Error != nil {
		return 0, models.NewInternalError(result.Error)
	}
	return result.RowsAffected, nil
}

// attachLikerIDs fills the transient LikerIDs slice on each post from the
// likes table in one query.
func attachLikerIDs(ctx context.Context, db *gorm.DB, posts []*models.Post) error {
	if len(posts) == 0 {
		return nil
	}

	ids := make([]uint, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}

	var likes []models.Like
	if err := db.WithContext(ctx).
		Where("post_id IN ?", ids).
		Order("id ASC").
		Find(&likes).Error; err != nil {
		return models.NewInternalError(err)
	}

	byPost := make(map[uint][]uint, len(posts))
	for _, l := range likes {
		byPost[l.PostID] = append(byPost[l.PostID], l.UserID)
	}
	for _, p := range posts {
		p.LikerIDs = byPost[p.ID]
	}
	return nil
}
