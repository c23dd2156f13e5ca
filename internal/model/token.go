package model

import "time"

// Token — непрозрачный ключ доступа. У пользователя не больше одного токена (uniqueIndex по user_id).
type Token struct {
	Key    string `gorm:"primaryKey;size:64"`
	UserID int64  `gorm:"not null;uniqueIndex"`

	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}
