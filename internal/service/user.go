package service

import (
	"Booklets/internal/apperr"
	"Booklets/internal/model"
	"Booklets/internal/repo"
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

// UserService — регистрация, аутентификация и профиль пользователя.
type UserService struct {
	users    repo.UserRepository
	validate *validator.Validate
}

// NewUserService создаёт сервис пользователей.
func NewUserService(users repo.UserRepository) *UserService {
	return &UserService{users: users, validate: validator.New()}
}

// RegisterInput — данные регистрации. Email обязателен, требований
// к длине пароля нет.
type RegisterInput struct {
	Username  string `validate:"required,max=150"`
	Email     string `validate:"required,email"`
	Password  string `validate:"required"`
	FirstName string
	LastName  string
}

// Register создаёт пользователя с bcrypt-хешем пароля.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%s: %w", err, apperr.ErrValidation)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &model.User{
		Username:  in.Username,
		Email:     in.Email,
		Password:  string(hash),
		FirstName: in.FirstName,
		LastName:  in.LastName,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Authenticate проверяет пару логин/пароль. Несуществующий пользователь
// и неверный пароль неразличимы для вызывающего.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.ErrUnauthenticated
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return nil, apperr.ErrUnauthenticated
	}
	return u, nil
}

// Get возвращает пользователя по id.
func (s *UserService) Get(ctx context.Context, id int64) (*model.User, error) {
	return s.users.GetByID(ctx, id)
}

// UpdateInput — изменяемые поля профиля. Пустой Password означает
// "пароль не менять".
type UpdateInput struct {
	Email     string `validate:"required,email"`
	Password  string
	FirstName string
	LastName  string
}

// Update перезаписывает профильные поля; непустой пароль перехешируется.
func (s *UserService) Update(ctx context.Context, id int64, in UpdateInput) (*model.User, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%s: %w", err, apperr.ErrValidation)
	}
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	u.Email = in.Email
	u.FirstName = in.FirstName
	u.LastName = in.LastName
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.Password = string(hash)
	}
	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Delete удаляет пользователя и каскадно его закладки; общие теги остаются.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.users.Delete(ctx, id)
}

// List всегда отказывает: перечисление пользователей не поддерживается
// ни для кого, это структурный запрет, а не вопрос прав.
func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return nil, fmt.Errorf("listing users is not supported: %w", apperr.ErrPolicyViolation)
}
