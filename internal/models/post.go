// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Post represents a plant photo post. Username, UserAvatar and IsVerified
// are snapshots of the author's profile taken at creation time, so the
// feed renders without joining users.
type Post struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	UserID      uint    `gorm:"not null;index" json:"user_id"`
	User        User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Username    string  `json:"username"`
	UserAvatar  string  `json:"user_avatar"`
	PlantName   string  `gorm:"not null" json:"plant_name"`
	PlantImage  string  `gorm:"not null" json:"plant_image"`
	Description *string `gorm:"type:text" json:"description"`
	IsVerified  bool    `json:"is_verified"`
	// LikesCount is not persisted; computed at query time
	LikesCount int `gorm:"->" json:"likes_count"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int            `gorm:"->" json:"comments_count"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
