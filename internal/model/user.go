package model

import "time"

// User — зарегистрированный пользователь сервиса.
// Password хранит bcrypt-хеш, наружу не сериализуется.
type User struct {
	ID       int64  `gorm:"primaryKey"`
	Username string `gorm:"uniqueIndex;not null;size:150"`
	Email    string `gorm:"not null"`
	Password string `gorm:"not null"`

	FirstName string
	LastName  string

	// Связи
	Bookmarks []Bookmark `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
