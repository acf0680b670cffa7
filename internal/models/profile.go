// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Profile is a one-to-one extension of a User account.
type Profile struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID uint   `gorm:"not null;uniqueIndex" json:"user_id"`
	User   User   `gorm:"foreignKey:UserID" json:"user"`
	Bio    string `gorm:"type:text" json:"bio"`
	Avatar string `json:"avatar"`
	// FollowersCount is not persisted; computed at query time
	FollowersCount int64     `gorm:"-" json:"followers_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ProfileFollower is the join table linking a profile to the users following it.
// The pair is the primary key so a user can follow a profile at most once.
type ProfileFollower struct {
	ProfileID uint      `gorm:"primaryKey;autoIncrement:false" json:"profile_id"`
	UserID    uint      `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM.
func (ProfileFollower) TableName() string {
	return "profile_followers"
}
