package repo

import (
	"Booklets/internal/model"
	"context"

	"gorm.io/gorm"
)

// BookmarkRepository — хранилище закладок и их связей с тегами.
// Уникальность (user_id, url) обеспечивает составной индекс, а не
// проверка перед вставкой: гонка между check и insert исключена.
type BookmarkRepository interface {
	// Create сохраняет закладку. apperr.ErrDuplicate при повторном url владельца.
	Create(ctx context.Context, b *model.Bookmark) error

	// GetByID возвращает закладку с тегами и владельцем или apperr.ErrNotFound.
	GetByID(ctx context.Context, id int64) (*model.Bookmark, error)

	// ListByUser возвращает закладки только указанного пользователя.
	ListByUser(ctx context.Context, userID int64) ([]model.Bookmark, error)

	// UpdateScalars перезаписывает url, title и comment безусловно:
	// пустая строка — тоже валидное новое значение.
	UpdateScalars(ctx context.Context, id int64, url, title, comment string) error

	// Delete удаляет закладку вместе со связями bookmark_tags; сами теги не трогает.
	Delete(ctx context.Context, b *model.Bookmark) error

	// AttachTag добавляет связь закладка—тег (существующая связь не дублируется).
	AttachTag(ctx context.Context, b *model.Bookmark, t *model.Tag) error

	// DetachTag убирает связь закладка—тег; строка тега остаётся в реестре.
	DetachTag(ctx context.Context, b *model.Bookmark, t *model.Tag) error

	// Transaction выполняет fn в одной транзакции хранилища: ошибка
	// откатывает все сделанные внутри изменения.
	Transaction(ctx context.Context, fn func(BookmarkRepository) error) error
}

type bookmarkRepo struct {
	db *gorm.DB
}

// NewBookmarkRepository создаёт реализацию репозитория закладок.
func NewBookmarkRepository(db *gorm.DB) BookmarkRepository {
	return &bookmarkRepo{db: db}
}

func (r *bookmarkRepo) Create(ctx context.Context, b *model.Bookmark) error {
	return translate(r.db.WithContext(ctx).Omit("Tags", "User").Create(b).Error)
}

func (r *bookmarkRepo) GetByID(ctx context.Context, id int64) (*model.Bookmark, error) {
	var b model.Bookmark
	err := r.db.WithContext(ctx).
		Preload("Tags", func(db *gorm.DB) *gorm.DB { return db.Order("name asc") }).
		Preload("User").
		First(&b, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

func (r *bookmarkRepo) ListByUser(ctx context.Context, userID int64) ([]model.Bookmark, error) {
	var list []model.Bookmark
	err := r.db.WithContext(ctx).
		Preload("Tags", func(db *gorm.DB) *gorm.DB { return db.Order("name asc") }).
		Preload("User").
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&list).Error
	if err != nil {
		return nil, translate(err)
	}
	return list, nil
}

func (r *bookmarkRepo) UpdateScalars(ctx context.Context, id int64, url, title, comment string) error {
	tx := r.db.WithContext(ctx).Model(&model.Bookmark{}).Where("id = ?", id).
		Updates(map[string]any{"url": url, "title": title, "comment": comment})
	if tx.Error != nil {
		return translate(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *bookmarkRepo) Delete(ctx context.Context, b *model.Bookmark) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(b).Association("Tags").Clear(); err != nil {
			return translate(err)
		}
		return translate(tx.Delete(b).Error)
	})
}

func (r *bookmarkRepo) AttachTag(ctx context.Context, b *model.Bookmark, t *model.Tag) error {
	return translate(r.db.WithContext(ctx).Model(b).Omit("Tags.*").Association("Tags").Append(t))
}

func (r *bookmarkRepo) DetachTag(ctx context.Context, b *model.Bookmark, t *model.Tag) error {
	return translate(r.db.WithContext(ctx).Model(b).Association("Tags").Delete(t))
}

func (r *bookmarkRepo) Transaction(ctx context.Context, fn func(BookmarkRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&bookmarkRepo{db: tx})
	})
}
