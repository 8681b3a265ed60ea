package seed

import (
	"context"
	"fmt"
	"log"

	"chirp/internal/models"
	"chirp/internal/repository"
	"chirp/internal/service"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
	SkipBcrypt  bool
}

// Run populates the database with a connected sample graph: users, posts
// with hashtags, comments, likes, follows, and retweets.
func Run(db *gorm.DB, opts Options) error {
	if opts.NumUsers <= 0 {
		opts.NumUsers = 10
	}
	if opts.NumPosts <= 0 {
		opts.NumPosts = 50
	}

	if opts.ShouldClean {
		if err := clean(db); err != nil {
			return err
		}
	}

	ctx := context.Background()
	f := NewFactory(db, opts)
	indexer := service.NewHashtagIndexer(repository.NewHashtagRepository(db))

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return err
		}
		users = append(users, user)
	}
	log.Printf("seeded %d users", len(users))

	posts := make([]*models.Post, 0, opts.NumPosts)
	for i := 0; i < opts.NumPosts; i++ {
		author := users[f.rng.Intn(len(users))]
		post, err := f.CreatePost(author)
		if err != nil {
			return err
		}
		if err := indexer.ExtractAndLink(ctx, post, post.Content); err != nil {
			return err
		}
		posts = append(posts, post)
	}
	log.Printf("seeded %d posts", len(posts))

	// Comments: a couple per post on average.
	comments := 0
	for _, post := range posts {
		for i := 0; i < f.rng.Intn(4); i++ {
			commenter := users[f.rng.Intn(len(users))]
			if _, err := f.CreateComment(commenter, post); err != nil {
				return err
			}
			comments++
		}
	}
	log.Printf("seeded %d comments", comments)

	// Likes and follows go through ON CONFLICT DO NOTHING so repeats collapse.
	for _, post := range posts {
		for i := 0; i < f.rng.Intn(5); i++ {
			liker := users[f.rng.Intn(len(users))]
			like := models.Like{UserID: liker.ID, PostID: post.ID}
			if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&like).Error; err != nil {
				return fmt.Errorf("seed like: %w", err)
			}
		}
	}

	for _, follower := range users {
		for i := 0; i < f.rng.Intn(len(users)); i++ {
			followee := users[f.rng.Intn(len(users))]
			follow := models.Follow{FollowerID: follower.ID, FolloweeID: followee.ID}
			if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&follow).Error; err != nil {
				return fmt.Errorf("seed follow: %w", err)
			}
		}
	}

	// A sprinkling of retweets.
	retweets := 0
	for i := 0; i < len(posts)/4; i++ {
		user := users[f.rng.Intn(len(users))]
		post := posts[f.rng.Intn(len(posts))]
		rt, err := f.Retweet(user, post)
		if err != nil {
			return err
		}
		if rt != nil {
			retweets++
		}
	}
	log.Printf("seeded %d retweets", retweets)

	return nil
}

func clean(db *gorm.DB) error {
	// Delete in dependency order; edges and children before parents.
	for _, stmt := range []string{
		"DELETE FROM post_hashtags",
		"DELETE FROM likes",
		"DELETE FROM follows",
		"DELETE FROM comments",
		"DELETE FROM images",
		"DELETE FROM posts",
		"DELETE FROM hashtags",
		"DELETE FROM users",
	} {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("clean: %w", err)
		}
	}
	return nil
}
