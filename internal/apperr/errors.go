// Package apperr содержит доменные ошибки ядра. Хендлеры отображают их
// в HTTP-статусы через errors.Is, сервисы и репозитории только оборачивают.
package apperr

import "errors"

var (
	// ErrValidation — некорректный или неполный ввод.
	ErrValidation = errors.New("validation failed")
	// ErrDuplicate — нарушение уникальности (имя тега, пара owner+url).
	ErrDuplicate = errors.New("duplicate resource")
	// ErrNotFound — ресурс с таким идентификатором отсутствует.
	ErrNotFound = errors.New("not found")
	// ErrNotOwner — аутентифицирован, но ресурс принадлежит другому.
	ErrNotOwner = errors.New("not the owner")
	// ErrPolicyViolation — операция запрещена структурно, независимо от прав.
	ErrPolicyViolation = errors.New("operation not allowed")
	// ErrUnauthenticated — запрос без валидных учётных данных.
	ErrUnauthenticated = errors.New("authentication required")
)
