package service_test

import (
	"Booklets/internal/apperr"
	"Booklets/internal/service"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserService_RegisterValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// без email регистрации нет
	_, err := env.users.Register(ctx, service.RegisterInput{Username: "john", Password: "p"})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = env.users.Register(ctx, service.RegisterInput{Username: "john", Email: "not-an-email", Password: "p"})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	u, err := env.users.Register(ctx, service.RegisterInput{Username: "john", Email: "john@example.com", Password: "p"})
	assert.NoError(t, err)
	assert.NotZero(t, u.ID)
	// пароль сохранён хешем
	assert.NotEqual(t, "p", u.Password)

	// повторный username
	_, err = env.users.Register(ctx, service.RegisterInput{Username: "john", Email: "j2@example.com", Password: "p"})
	assert.ErrorIs(t, err, apperr.ErrDuplicate)
}

func TestUserService_Authenticate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.register(t, "alice")

	u, err := env.users.Authenticate(ctx, "alice", "secret")
	assert.NoError(t, err)
	assert.Equal(t, "alice", u.Username)

	// неверный пароль и неизвестный логин неразличимы
	_, err = env.users.Authenticate(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
	_, err = env.users.Authenticate(ctx, "ghost", "secret")
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
}

func TestUserService_UpdateRehashesPassword(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.register(t, "alice")

	_, err := env.users.Update(ctx, alice.ID, service.UpdateInput{Email: "new@example.com", Password: "changed"})
	assert.NoError(t, err)

	_, err = env.users.Authenticate(ctx, "alice", "secret")
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
	u, err := env.users.Authenticate(ctx, "alice", "changed")
	assert.NoError(t, err)
	assert.Equal(t, "new@example.com", u.Email)

	// пустой пароль означает "не менять"
	_, err = env.users.Update(ctx, alice.ID, service.UpdateInput{Email: "new@example.com"})
	assert.NoError(t, err)
	_, err = env.users.Authenticate(ctx, "alice", "changed")
	assert.NoError(t, err)
}

func TestUserService_ListUnsupported(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.users.List(context.Background())
	assert.ErrorIs(t, err, apperr.ErrPolicyViolation)
}

func TestAuthorize(t *testing.T) {
	// владелец проходит, чужой — нет, аноним — отдельная ошибка
	assert.NoError(t, service.Authorize(7, service.OwnedBy(7)))
	assert.ErrorIs(t, service.Authorize(7, service.OwnedBy(8)), apperr.ErrNotOwner)
	assert.ErrorIs(t, service.Authorize(0, service.OwnedBy(8)), apperr.ErrUnauthenticated)
}
