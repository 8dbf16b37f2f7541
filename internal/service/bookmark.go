package service

import (
	"Booklets/internal/apperr"
	"Booklets/internal/model"
	"Booklets/internal/repo"
	"context"
	"fmt"
	"strings"
)

// BookmarkService — закладки и сверка их тегов с запрошенным списком.
type BookmarkService struct {
	bookmarks repo.BookmarkRepository
	tags      repo.TagRepository
}

// NewBookmarkService создаёт сервис закладок.
func NewBookmarkService(bookmarks repo.BookmarkRepository, tags repo.TagRepository) *BookmarkService {
	return &BookmarkService{bookmarks: bookmarks, tags: tags}
}

// Create сохраняет закладку владельца и привязывает запрошенные теги.
// Вставка и привязки идут в одной транзакции; повторный url того же
// владельца — apperr.ErrDuplicate от хранилища.
func (s *BookmarkService) Create(ctx context.Context, ownerID int64, url, title, comment string, tagNames []string) (*model.Bookmark, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, fmt.Errorf("url is required: %w", apperr.ErrValidation)
	}

	tags, err := s.resolveTags(ctx, tagNames)
	if err != nil {
		return nil, err
	}

	b := &model.Bookmark{UserID: ownerID, URL: url, Title: title, Comment: comment}
	err = s.bookmarks.Transaction(ctx, func(r repo.BookmarkRepository) error {
		if err := r.Create(ctx, b); err != nil {
			return err
		}
		for _, t := range tags {
			if err := r.AttachTag(ctx, b, t); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.bookmarks.GetByID(ctx, b.ID)
}

// Get возвращает закладку владельца. Чужая закладка неотличима от
// отсутствующей: в обоих случаях apperr.ErrNotFound.
func (s *BookmarkService) Get(ctx context.Context, principalID, id int64) (*model.Bookmark, error) {
	b, err := s.bookmarks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.UserID != principalID {
		return nil, apperr.ErrNotFound
	}
	return b, nil
}

// List возвращает только закладки самого пользователя. Фильтр по владельцу
// применяется в запросе, а не после выборки.
func (s *BookmarkService) List(ctx context.Context, principalID int64) ([]model.Bookmark, error) {
	return s.bookmarks.ListByUser(ctx, principalID)
}

// Update полностью перезаписывает скалярные поля и приводит набор тегов
// к запрошенному списку. Отсутствующий в запросе список тегов означает
// пустой: клиент всегда присылает желаемый набор целиком.
// Скаляры и сверка тегов идут в одной транзакции: ошибка на любом шаге
// (например, конфликт нового url) откатывает и изменения связей.
func (s *BookmarkService) Update(ctx context.Context, principalID, id int64, url, title, comment string, tagNames []string) (*model.Bookmark, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, fmt.Errorf("url is required: %w", apperr.ErrValidation)
	}

	b, err := s.bookmarks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := Authorize(principalID, OwnedBy(b.UserID)); err != nil {
		return nil, err
	}

	requested, err := s.resolveTags(ctx, tagNames)
	if err != nil {
		return nil, err
	}

	err = s.bookmarks.Transaction(ctx, func(r repo.BookmarkRepository) error {
		if err := r.UpdateScalars(ctx, b.ID, url, title, comment); err != nil {
			return err
		}
		return reconcileTags(ctx, r, b, requested)
	})
	if err != nil {
		return nil, err
	}
	return s.bookmarks.GetByID(ctx, b.ID)
}

// Delete удаляет закладку владельца вместе со связями тегов.
func (s *BookmarkService) Delete(ctx context.Context, principalID, id int64) error {
	b, err := s.bookmarks.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := Authorize(principalID, OwnedBy(b.UserID)); err != nil {
		return err
	}
	return s.bookmarks.Delete(ctx, b)
}

// resolveTags разрешает имена через get-or-create до открытия транзакции
// закладки: реестр тегов монотонен, созданный тег не откатывается.
// Дубликаты во входе схлопываются с сохранением порядка.
func (s *BookmarkService) resolveTags(ctx context.Context, names []string) ([]*model.Tag, error) {
	seen := make(map[string]bool, len(names))
	out := make([]*model.Tag, 0, len(names))
	for _, name := range normalizeTagNames(names) {
		if seen[name] {
			continue
		}
		seen[name] = true
		t, _, err := s.tags.GetOrCreate(ctx, name)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// reconcileTags применяет симметрическую разность между текущим и
// запрошенным наборами: лишние связи отцепляются, недостающие создаются.
// Связи вне дельты не трогаются, их метаданные не сбрасываются.
// Кандидаты на отцепление снимаются заранее: detach правит b.Tags по месту.
func reconcileTags(ctx context.Context, r repo.BookmarkRepository, b *model.Bookmark, requested []*model.Tag) error {
	want := make(map[string]bool, len(requested))
	for _, t := range requested {
		want[t.Name] = true
	}

	current := make(map[string]bool, len(b.Tags))
	detach := make([]model.Tag, 0, len(b.Tags))
	for _, t := range b.Tags {
		current[t.Name] = true
		if !want[t.Name] {
			detach = append(detach, t)
		}
	}

	for i := range detach {
		if err := r.DetachTag(ctx, b, &detach[i]); err != nil {
			return err
		}
	}
	for _, t := range requested {
		if current[t.Name] {
			continue
		}
		if err := r.AttachTag(ctx, b, t); err != nil {
			return err
		}
	}
	return nil
}

// normalizeTagNames убирает пустые элементы и пробелы по краям.
func normalizeTagNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n != "" {
			out = append(out, n)
		}
	}
	return out
}
