package entity

import "time"

// AuthToken is the opaque bearer token handed out at login. One token
// per user; re-requesting returns the existing key.
type AuthToken struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	Key       string    `gorm:"size:64;uniqueIndex;not null" json:"key"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
