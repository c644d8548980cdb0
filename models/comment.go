package models

import (
	"time"

	"gorm.io/gorm"
)

// MaxCommentLength bounds the comment body before persistence.
const MaxCommentLength = 250

type Comment struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	Body      string         `json:"body" gorm:"type:varchar(250);not null"`
	PostID    uint           `json:"post_id" gorm:"not null"`
	Post      *Post          `json:"post,omitempty" gorm:"foreignKey:PostID"`
	UserID    uint           `json:"user_id" gorm:"not null"`
	User      User           `json:"user" gorm:"foreignKey:UserID"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
