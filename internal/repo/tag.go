package repo

import (
	"Booklets/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TagRepository — доступ к общему реестру тегов. Удаления здесь нет
// намеренно: политика "теги не удаляются" закреплена контрактом.
type TagRepository interface {
	// GetOrCreate возвращает существующий тег либо создаёт новый;
	// второй результат — true, если строка была вставлена этим вызовом.
	// Безопасен при конкурентных вызовах с одним именем.
	GetOrCreate(ctx context.Context, name string) (*model.Tag, bool, error)

	// GetByName возвращает тег или apperr.ErrNotFound.
	GetByName(ctx context.Context, name string) (*model.Tag, error)

	// List возвращает все теги в лексикографическом порядке имён.
	List(ctx context.Context) ([]model.Tag, error)
}

type tagRepo struct {
	db *gorm.DB
}

// NewTagRepository создаёт реализацию репозитория тегов.
func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepo{db: db}
}

// GetOrCreate делает вставку с ON CONFLICT DO NOTHING и затем читает строку.
// Атомарность обеспечивает первичный ключ по имени, без блокировок в процессе;
// RowsAffected вставки различает "создан" и "уже был" без гонки check-then-act.
func (r *tagRepo) GetOrCreate(ctx context.Context, name string) (*model.Tag, bool, error) {
	t := &model.Tag{Name: name}
	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(t)
	if tx.Error != nil {
		return nil, false, translate(tx.Error)
	}
	if tx.RowsAffected > 0 {
		return t, true, nil
	}
	got, err := r.GetByName(ctx, name)
	return got, false, err
}

func (r *tagRepo) GetByName(ctx context.Context, name string) (*model.Tag, error) {
	var t model.Tag
	if err := r.db.WithContext(ctx).First(&t, "name = ?", name).Error; err != nil {
		return nil, translate(err)
	}
	return &t, nil
}

func (r *tagRepo) List(ctx context.Context) ([]model.Tag, error) {
	var tags []model.Tag
	if err := r.db.WithContext(ctx).Order("name asc").Find(&tags).Error; err != nil {
		return nil, translate(err)
	}
	return tags, nil
}
