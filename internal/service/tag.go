package service

import (
	"Booklets/internal/apperr"
	"Booklets/internal/model"
	"Booklets/internal/repo"
	"context"
	"fmt"
	"strings"
)

// TagService — операции над общим реестром тегов.
type TagService struct {
	tags repo.TagRepository
}

// NewTagService создаёт сервис тегов.
func NewTagService(tags repo.TagRepository) *TagService {
	return &TagService{tags: tags}
}

// GetOrCreate возвращает тег по имени, создавая его при первом упоминании.
func (s *TagService) GetOrCreate(ctx context.Context, name string) (*model.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("tag name is required: %w", apperr.ErrValidation)
	}
	t, _, err := s.tags.GetOrCreate(ctx, name)
	return t, err
}

// Create создаёт новый тег; существующее имя — ошибка дубликата.
// Это путь POST /api/tags/, в отличие от неявного создания при закладке.
// Классификацию даёт сама вставка, а не проверка перед ней: два
// конкурентных создания одного имени получат ровно один успех.
func (s *TagService) Create(ctx context.Context, name string) (*model.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("tag name is required: %w", apperr.ErrValidation)
	}
	t, created, err := s.tags.GetOrCreate(ctx, name)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, fmt.Errorf("tag %q: %w", name, apperr.ErrDuplicate)
	}
	return t, nil
}

// Get возвращает тег по имени.
func (s *TagService) Get(ctx context.Context, name string) (*model.Tag, error) {
	return s.tags.GetByName(ctx, name)
}

// List возвращает все теги, отсортированные по имени.
func (s *TagService) List(ctx context.Context) ([]model.Tag, error) {
	return s.tags.List(ctx)
}

// Delete всегда отказывает: созданный тег не удаляется никем.
func (s *TagService) Delete(ctx context.Context, name string) error {
	return fmt.Errorf("delete on tag is not allowed: %w", apperr.ErrPolicyViolation)
}
