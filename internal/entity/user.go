package entity

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:150;uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	FirstName    string    `gorm:"size:100" json:"first_name"`
	LastName     string    `gorm:"size:100" json:"last_name"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	IsAdmin      bool      `gorm:"default:false" json:"is_admin"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	Profile      *Profile  `gorm:"constraint:OnDelete:CASCADE" json:"profile,omitempty"`
}

func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Profile carries the contact and address data collected at
// registration. Timestamps are unix seconds managed by BeforeSave: the
// first write stamps both, later writes touch only updated_at.
type Profile struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	UserID    uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	Address   string `gorm:"type:text" json:"address"`
	PhoneNo   int64  `gorm:"not null" json:"phone_no" validate:"required,digitlen=10"`
	City      string `gorm:"size:100" json:"city"`
	State     string `gorm:"size:100" json:"state"`
	Country   string `gorm:"size:100" json:"country"`
	PinCode   int64  `gorm:"not null" json:"pin_code" validate:"required,digitlen=6"`
	CreatedAt int64  `gorm:"default:0;autoCreateTime:false" json:"created_at"`
	UpdatedAt int64  `gorm:"default:0;autoUpdateTime:false" json:"updated_at"`
}

func (p *Profile) BeforeSave(tx *gorm.DB) error {
	now := time.Now().Unix()
	if p.CreatedAt == 0 {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	return nil
}
