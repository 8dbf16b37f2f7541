package service_test

import (
	"Booklets/internal/model"
	"Booklets/internal/repo"
	"Booklets/internal/service"
	"context"
	"fmt"
	"strings"
	"testing"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// testEnv — сервисы поверх настоящих репозиториев и in-memory SQLite:
// логика сверки тегов и ротации токенов проверяется вместе с constraint'ами.
type testEnv struct {
	db        *gorm.DB
	tags      *service.TagService
	bookmarks *service.BookmarkService
	tokens    *service.TokenService
	users     *service.UserService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	db, err := gorm.Open(dial, &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.Tag{}, &model.Bookmark{}, &model.Token{}); err != nil {
		t.Fatalf("failed to automigrate: %v", err)
	}

	userRepo := repo.NewUserRepository(db)
	tagRepo := repo.NewTagRepository(db)
	bookmarkRepo := repo.NewBookmarkRepository(db)
	tokenRepo := repo.NewTokenRepository(db)

	return &testEnv{
		db:        db,
		tags:      service.NewTagService(tagRepo),
		bookmarks: service.NewBookmarkService(bookmarkRepo, tagRepo),
		tokens:    service.NewTokenService(tokenRepo, userRepo),
		users:     service.NewUserService(userRepo),
	}
}

func (e *testEnv) register(t *testing.T, username string) *model.User {
	t.Helper()
	u, err := e.users.Register(context.Background(), service.RegisterInput{
		Username: username,
		Email:    username + "@example.com",
		Password: "secret",
	})
	if err != nil {
		t.Fatalf("failed to register %s: %v", username, err)
	}
	return u
}
