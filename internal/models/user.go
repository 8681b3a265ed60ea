// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a registered account. Email is globally unique; the
// password field holds an opaque bcrypt hash and is never serialized.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Email     string         `gorm:"uniqueIndex;not null" json:"email"`
	Nickname  string         `gorm:"not null" json:"nickname"`
	Password  string         `gorm:"not null" json:"-"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Posts     []Post         `gorm:"foreignKey:UserID" json:"posts,omitempty"`
}

// PublicIdentity is the reduced view of a user embedded in post and comment
// responses.
type PublicIdentity struct {
	ID       uint   `json:"id"`
	Nickname string `json:"nickname"`
}

// Public returns the user's public identity.
func (u *User) Public() PublicIdentity {
	return PublicIdentity{ID: u.ID, Nickname: u.Nickname}
}
