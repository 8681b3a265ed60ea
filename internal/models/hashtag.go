package models

import "time"

// Hashtag is a canonical tag record. Name is stored lowercase and is globally
// unique; case variants of the same tag collapse to one row. Hashtags are
// independent of any single post (many-to-many through post_hashtags) and are
// never garbage collected.
type Hashtag struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	Posts     []Post    `gorm:"many2many:post_hashtags;" json:"posts,omitempty"`
}
