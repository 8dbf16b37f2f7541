package service

import (
	"Booklets/internal/apperr"
	"fmt"
)

// Owned — ресурс с единственным владельцем. Владение — единственный вид
// авторизационного отношения в ядре.
type Owned interface {
	OwnerID() int64
}

// ownedResource адаптирует идентификатор владельца под Owned
// без методов на самих моделях.
type ownedResource int64

func (o ownedResource) OwnerID() int64 { return int64(o) }

// OwnedBy оборачивает идентификатор владельца ресурса.
func OwnedBy(ownerID int64) Owned { return ownedResource(ownerID) }

// Authorize проверяет владение: principal должен совпадать с владельцем,
// класс операции роли не играет. Несовпадение — apperr.ErrNotOwner,
// существование ресурса при этом не раскрывается.
func Authorize(principalID int64, res Owned) error {
	if principalID == 0 {
		return apperr.ErrUnauthenticated
	}
	if principalID != res.OwnerID() {
		return fmt.Errorf("principal %d: %w", principalID, apperr.ErrNotOwner)
	}
	return nil
}
