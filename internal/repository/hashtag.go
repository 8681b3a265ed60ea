package repository

import (
	"context"

	"chirp/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// HashtagRepository defines the interface for hashtag data operations.
type HashtagRepository interface {
	FindOrCreate(ctx context.Context, name string) (*models.Hashtag, error)
	Link(ctx context.Context, post *models.Post, tags []*models.Hashtag) error
}

type hashtagRepository struct {
	db *gorm.DB
}

// NewHashtagRepository creates a new hashtag repository.
func NewHashtagRepository(db *gorm.DB) HashtagRepository {
	return &hashtagRepository{db: db}
}

// FindOrCreate resolves a tag name to its single row. The insert uses
// ON CONFLICT DO NOTHING on the name index, so two concurrent calls for the
// same name both succeed and converge on one row; when the insert was a no-op
// the row is re-read to pick up the winner's ID.
func (r *hashtagRepository) FindOrCreate(ctx context.Context, name string) (*models.Hashtag, error) {
	tag := models.Hashtag{Name: name}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(&tag).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	if tag.ID == 0 {
		if err := r.db.WithContext(ctx).Where("name = ?", name).First(&tag).Error; err != nil {
			return nil, models.NewInternalError(err)
		}
	}
	return &tag, nil
}

// Link associates tags with an already persisted post. Append on the
// many2many relation skips pairs that are already present.
func (r *hashtagRepository) Link(ctx context.Context, post *models.Post, tags []*models.Hashtag) error {
	if len(tags) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Model(post).Association("Hashtags").Append(tags); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
