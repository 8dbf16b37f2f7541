package model

import "time"

// Bookmark — закладка пользователя. Пара (user_id, url) уникальна:
// один и тот же адрес нельзя сохранить дважды.
type Bookmark struct {
	ID     int64 `gorm:"primaryKey"`
	UserID int64 `gorm:"not null;index;uniqueIndex:idx_owner_url"`
	URL    string `gorm:"not null;size:1000;uniqueIndex:idx_owner_url"`

	Title   string `gorm:"size:1000"`
	Comment string

	// Связи
	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Tags []Tag `gorm:"many2many:bookmark_tags"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TagNames возвращает имена привязанных тегов в порядке загрузки.
func (b *Bookmark) TagNames() []string {
	names := make([]string, 0, len(b.Tags))
	for _, t := range b.Tags {
		names = append(names, t.Name)
	}
	return names
}
