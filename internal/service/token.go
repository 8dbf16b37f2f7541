package service

import (
	"Booklets/internal/apperr"
	"Booklets/internal/model"
	"Booklets/internal/repo"
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
)

// TokenService — жизненный цикл API-токенов: выпуск, ротация, проверка.
// У пользователя в любой момент не больше одного живого ключа, поэтому
// ротация молча разлогинивает всех остальных держателей старого ключа.
type TokenService struct {
	tokens repo.TokenRepository
	users  repo.UserRepository
}

// NewTokenService создаёт сервис токенов.
func NewTokenService(tokens repo.TokenRepository, users repo.UserRepository) *TokenService {
	return &TokenService{tokens: tokens, users: users}
}

// IssueOrRotate выпускает токен пользователю. Если живой токен уже есть,
// он атомарно заменяется новым, и старый ключ перестаёт действовать
// сразу же, без переходного окна.
func (s *TokenService) IssueOrRotate(ctx context.Context, userID int64) (*model.Token, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	key, err := newTokenKey()
	if err != nil {
		return nil, err
	}
	return s.tokens.Replace(ctx, userID, key)
}

// Get возвращает метаданные живого токена пользователя.
func (s *TokenService) Get(ctx context.Context, userID int64) (*model.Token, error) {
	return s.tokens.GetByUser(ctx, userID)
}

// Validate находит пользователя по ключу. Любой промах при поиске —
// apperr.ErrUnauthenticated, деталей наружу не выдаём.
func (s *TokenService) Validate(ctx context.Context, key string) (*model.User, error) {
	if key == "" {
		return nil, apperr.ErrUnauthenticated
	}
	t, err := s.tokens.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.ErrUnauthenticated
		}
		return nil, err
	}
	if t.User == nil {
		return nil, apperr.ErrUnauthenticated
	}
	return t.User, nil
}

// newTokenKey генерирует ключ: 20 случайных байт в hex, 40 символов.
func newTokenKey() (string, error) {
	b := make([]byte, 20)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
