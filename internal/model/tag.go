package model

// Tag — общая для всех пользователей метка. Имя служит первичным ключом,
// поэтому дубликаты отсекаются на уровне хранилища. Теги никогда не удаляются.
type Tag struct {
	Name string `gorm:"primaryKey;size:100"`
}
