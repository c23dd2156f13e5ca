package model

import "time"

// Comment — комментарий к посту.
type Comment struct {
	ID     int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	PostID int64 `gorm:"not null;index" json:"post"`
	UserID int64 `gorm:"not null;index" json:"user"`

	Post *Post `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	Content string `gorm:"type:text;not null" json:"content"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
