package models

import "time"

// Image records an uploaded image attached to a post. Src is an opaque
// reference string (a filename under the upload directory); the binary itself
// lives outside the data model.
type Image struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Src       string    `gorm:"not null" json:"src"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}
