// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"chirp/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var hashtagPool = []string{
	"golang", "coffee", "music", "travel", "gaming", "fitness",
	"books", "movies", "food", "photography", "devlife", "weekend",
}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	opts Options
	rng  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:   db,
		opts: opts,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUser constructs and persists a sample user. Optional override
// functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Email:    gofakeit.Email(),
		Nickname: gofakeit.Username(),
	}

	// Password handling: allow skipping bcrypt in dev fast mode
	if f.opts.SkipBcrypt {
		user.Password = "password123"
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user.Password = string(hashedPassword)
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("seed user: %w", err)
	}
	return user, nil
}

// CreatePost persists a post for the user. Roughly half the posts carry one
// or two hashtags from a small pool so tag pages have overlap, and some carry
// images. CreatedAt is spread over the past weeks so the feed looks lived-in.
func (f *Factory) CreatePost(user *models.User, overrides ...func(*models.Post)) (*models.Post, error) {
	content := gofakeit.Sentence(f.rng.Intn(12) + 3)
	if f.rng.Intn(2) == 0 {
		tags := []string{"#" + hashtagPool[f.rng.Intn(len(hashtagPool))]}
		if f.rng.Intn(3) == 0 {
			tags = append(tags, "#"+hashtagPool[f.rng.Intn(len(hashtagPool))])
		}
		content = content + " " + strings.Join(tags, " ")
	}

	post := &models.Post{
		Content:   content,
		UserID:    user.ID,
		CreatedAt: time.Now().Add(-time.Duration(f.rng.Intn(30*24)) * time.Hour),
	}

	if f.rng.Intn(4) == 0 {
		post.Images = append(post.Images, models.Image{
			Src: fmt.Sprintf("https://picsum.photos/seed/%s/800/600", gofakeit.UUID()),
		})
	}

	for _, override := range overrides {
		override(post)
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, fmt.Errorf("seed post: %w", err)
	}
	return post, nil
}

// CreateComment persists a comment by user on post.
func (f *Factory) CreateComment(user *models.User, post *models.Post) (*models.Comment, error) {
	comment := &models.Comment{
		Content: gofakeit.Sentence(f.rng.Intn(8) + 2),
		UserID:  user.ID,
		PostID:  post.ID,
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, fmt.Errorf("seed comment: %w", err)
	}
	return comment, nil
}

// Retweet persists a retweet of post by user, pointing at the ultimate
// original. It skips silently when user already retweeted it or owns it.
func (f *Factory) Retweet(user *models.User, post *models.Post) (*models.Post, error) {
	originalID := post.ID
	if post.RetweetID != nil {
		originalID = *post.RetweetID
	}
	if post.UserID == user.ID {
		return nil, nil
	}

	var existing int64
	if err := f.db.Model(&models.Post{}).
		Where("user_id = ? AND retweet_id = ?", user.ID, originalID).
		Count(&existing).Error; err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, nil
	}

	retweet := &models.Post{
		Content:   models.RetweetMarker,
		UserID:    user.ID,
		RetweetID: &originalID,
	}
	if err := f.db.Create(retweet).Error; err != nil {
		return nil, fmt.Errorf("seed retweet: %w", err)
	}
	return retweet, nil
}
