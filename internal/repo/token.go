package repo

import (
	"Booklets/internal/model"
	"context"

	"gorm.io/gorm"
)

// TokenRepository — хранилище API-токенов, по одному живому на пользователя.
type TokenRepository interface {
	// GetByKey возвращает токен по ключу или apperr.ErrNotFound.
	GetByKey(ctx context.Context, key string) (*model.Token, error)

	// GetByUser возвращает живой токен пользователя или apperr.ErrNotFound.
	GetByUser(ctx context.Context, userID int64) (*model.Token, error)

	// Replace атомарно удаляет прежний токен пользователя (если был)
	// и вставляет новый. Конкурентный GetByKey не увидит ни нуля,
	// ни двух живых токенов одного пользователя.
	Replace(ctx context.Context, userID int64, key string) (*model.Token, error)
}

type tokenRepo struct {
	db *gorm.DB
}

// NewTokenRepository создаёт реализацию репозитория токенов.
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepo{db: db}
}

func (r *tokenRepo) GetByKey(ctx context.Context, key string) (*model.Token, error) {
	var t model.Token
	err := r.db.WithContext(ctx).Preload("User").First(&t, "key = ?", key).Error
	if err != nil {
		return nil, translate(err)
	}
	return &t, nil
}

func (r *tokenRepo) GetByUser(ctx context.Context, userID int64) (*model.Token, error) {
	var t model.Token
	err := r.db.WithContext(ctx).Preload("User").First(&t, "user_id = ?", userID).Error
	if err != nil {
		return nil, translate(err)
	}
	return &t, nil
}

func (r *tokenRepo) Replace(ctx context.Context, userID int64, key string) (*model.Token, error) {
	t := &model.Token{Key: key, UserID: userID}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&model.Token{}).Error; err != nil {
			return err
		}
		return tx.Omit("User").Create(t).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return t, nil
}
