package model

import "time"

// Diary — запись дневника, видна только владельцу.
type Diary struct {
	ID     int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID int64 `gorm:"not null;index" json:"user"`

	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	Content   string    `gorm:"type:text;not null" json:"content"`
	WriteDate time.Time `gorm:"not null;index" json:"write_date"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
