package model

import "time"

// Token — API-токен пользователя. У пользователя не бывает больше одного
// живого токена: uniqueIndex на user_id закрепляет это в хранилище.
type Token struct {
	Key    string `gorm:"primaryKey;size:40"`
	UserID int64  `gorm:"uniqueIndex;not null"`

	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}
