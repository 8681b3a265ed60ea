package models

import "time"

// Follow is the directed edge follower -> followee.
// The combination of FollowerID and FolloweeID must be unique; rows are hard
// deleted on unfollow.
type Follow struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FollowerID uint      `gorm:"not null;uniqueIndex:idx_follow_edge" json:"follower_id"`
	FolloweeID uint      `gorm:"not null;uniqueIndex:idx_follow_edge" json:"followee_id"`
	CreatedAt  time.Time `json:"created_at"`

	Follower User `gorm:"foreignKey:FollowerID" json:"follower,omitempty"`
	Followee User `gorm:"foreignKey:FolloweeID" json:"followee,omitempty"`
}
