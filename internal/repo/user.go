package repo

import (
	"Booklets/internal/model"
	"context"

	"gorm.io/gorm"
)

// UserRepository — хранилище пользователей.
type UserRepository interface {
	// Create сохраняет пользователя. apperr.ErrDuplicate при занятом username.
	Create(ctx context.Context, u *model.User) error

	// GetByID возвращает пользователя или apperr.ErrNotFound.
	GetByID(ctx context.Context, id int64) (*model.User, error)

	// GetByUsername возвращает пользователя или apperr.ErrNotFound.
	GetByUsername(ctx context.Context, username string) (*model.User, error)

	// Update перезаписывает профильные поля и хеш пароля.
	Update(ctx context.Context, u *model.User) error

	// Delete удаляет пользователя каскадно: связи закладок с тегами,
	// сами закладки и токен. Теги остаются в реестре.
	Delete(ctx context.Context, id int64) error
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepository создаёт реализацию репозитория пользователей.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, u *model.User) error {
	return translate(r.db.WithContext(ctx).Omit("Bookmarks").Create(u).Error)
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Preload("Bookmarks").First(&u, id).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).First(&u, "username = ?", username).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *userRepo) Update(ctx context.Context, u *model.User) error {
	return translate(r.db.WithContext(ctx).Omit("Bookmarks").Save(u).Error)
}

func (r *userRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var bookmarks []model.Bookmark
		if err := tx.Where("user_id = ?", id).Find(&bookmarks).Error; err != nil {
			return translate(err)
		}
		for i := range bookmarks {
			if err := tx.Model(&bookmarks[i]).Association("Tags").Clear(); err != nil {
				return translate(err)
			}
		}
		if err := tx.Where("user_id = ?", id).Delete(&model.Bookmark{}).Error; err != nil {
			return translate(err)
		}
		if err := tx.Where("user_id = ?", id).Delete(&model.Token{}).Error; err != nil {
			return translate(err)
		}
		res := tx.Delete(&model.User{}, id)
		if res.Error != nil {
			return translate(res.Error)
		}
		if res.RowsAffected == 0 {
			return translate(gorm.ErrRecordNotFound)
		}
		return nil
	})
}
