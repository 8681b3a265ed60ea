package models

import (
	"time"

	"gorm.io/gorm"
)

// RetweetMarker is the fixed placeholder stored as the content of a retweet
// post; a retweet carries no user text of its own.
const RetweetMarker = "retweet"

// Post represents a message on the feed. A post with RetweetID set is a
// retweet; RetweetID always points at the ultimate original post (never at
// another retweet), so retweet references are depth-1 by construction.
//
// The (user_id, retweet_id) pair is unique for live retweet rows; the partial
// index is created in database.Migrate because it cannot be expressed in tags.
type Post struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Content   string `gorm:"type:text;not null" json:"content"`
	UserID    uint   `gorm:"not null;index" json:"user_id"`
	User      User   `gorm:"foreignKey:UserID" json:"user"`
	RetweetID *uint  `gorm:"index" json:"retweet_id,omitempty"`
	Retweet   *Post  `gorm:"foreignKey:RetweetID" json:"retweet,omitempty"`

	Images   []Image   `gorm:"foreignKey:PostID" json:"images"`
	Comments []Comment `gorm:"foreignKey:PostID" json:"comments"`
	Hashtags []Hashtag `gorm:"many2many:post_hashtags;" json:"hashtags,omitempty"`

	// LikerIDs is not persisted; populated at query time from the likes edge table.
	LikerIDs []uint `gorm:"-" json:"liker_ids"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// IsRetweet reports whether the post is a retweet of another post.
func (p *Post) IsRetweet() bool {
	return p.RetweetID != nil
}
