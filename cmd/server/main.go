package main

import (
	"Booklets/internal/config"
	"Booklets/internal/handlers"
	"Booklets/internal/middleware"
	"Booklets/internal/repo"
	"Booklets/internal/service"
	"net/http"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	userRepo := repo.NewUserRepository(gormDB)
	tagRepo := repo.NewTagRepository(gormDB)
	bookmarkRepo := repo.NewBookmarkRepository(gormDB)
	tokenRepo := repo.NewTokenRepository(gormDB)

	userService := service.NewUserService(userRepo)
	tagService := service.NewTagService(tagRepo)
	bookmarkService := service.NewBookmarkService(bookmarkRepo, tagRepo)
	tokenService := service.NewTokenService(tokenRepo, userRepo)

	h := handlers.NewHandler(userService, tagService, bookmarkService, tokenService, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"DatabaseDSN", cfg.DatabaseDSN,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
