package service_test

import (
	"Booklets/internal/apperr"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenService_IssueAndValidate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.register(t, "alice")

	tok, err := env.tokens.IssueOrRotate(ctx, alice.ID)
	assert.NoError(t, err)
	assert.Len(t, tok.Key, 40)

	u, err := env.tokens.Validate(ctx, tok.Key)
	assert.NoError(t, err)
	assert.Equal(t, alice.ID, u.ID)

	// выпуск для несуществующего пользователя
	_, err = env.tokens.IssueOrRotate(ctx, 9999)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestTokenService_RotationInvalidatesOldKey(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.register(t, "alice")

	first, err := env.tokens.IssueOrRotate(ctx, alice.ID)
	assert.NoError(t, err)
	second, err := env.tokens.IssueOrRotate(ctx, alice.ID)
	assert.NoError(t, err)
	assert.NotEqual(t, first.Key, second.Key)

	// старый ключ гаснет сразу, без переходного окна
	_, err = env.tokens.Validate(ctx, first.Key)
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)

	u, err := env.tokens.Validate(ctx, second.Key)
	assert.NoError(t, err)
	assert.Equal(t, alice.ID, u.ID)

	// метаданные отражают только живой ключ
	got, err := env.tokens.Get(ctx, alice.ID)
	assert.NoError(t, err)
	assert.Equal(t, second.Key, got.Key)
}

func TestTokenService_ValidateFailsClosed(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.tokens.Validate(ctx, "")
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)

	_, err = env.tokens.Validate(ctx, "nosuchkey")
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
}
