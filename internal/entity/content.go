package entity

import (
	"time"

	"gorm.io/gorm"
)

// Category is a plain named tag. Titles are unique and never case
// normalized; resolution is get-or-create by exact title.
type Category struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Title string `gorm:"size:50;uniqueIndex;not null" json:"title"`
}

// Content is a titled document record owned by exactly one user and
// tagged with at least one category at creation. Default ordering is
// newest-id-first.
type Content struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	UserID     uint       `gorm:"not null;index" json:"user_id"`
	User       User       `gorm:"constraint:OnDelete:CASCADE" json:"user"`
	Title      string     `gorm:"size:30;not null" json:"title" validate:"required,max=30"`
	Body       string     `gorm:"size:300;not null" json:"body" validate:"required,max=300"`
	Summary    string     `gorm:"size:60;not null" json:"summary" validate:"required,max=60"`
	Pdf        string     `gorm:"type:text;not null" json:"pdf" validate:"required"`
	Categories []Category `gorm:"many2many:content_categories;constraint:OnDelete:CASCADE" json:"categories"`
	CreatedAt  int64      `gorm:"default:0;autoCreateTime:false" json:"created_at"`
	UpdatedAt  int64      `gorm:"default:0;autoUpdateTime:false" json:"updated_at"`
}

func (c *Content) BeforeSave(tx *gorm.DB) error {
	now := time.Now().Unix()
	if c.CreatedAt == 0 {
		c.CreatedAt = now
	}
	c.UpdatedAt = now
	return nil
}
