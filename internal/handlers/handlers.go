package handlers

import (
	"Booklets/internal/config"
	"Booklets/internal/middleware"
	"Booklets/internal/model"
	"Booklets/internal/service"
	"context"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// authAdapter связывает мидлварь аутентификации с сервисами.
type authAdapter struct {
	tokens *service.TokenService
	users  *service.UserService
}

func (a *authAdapter) ValidateToken(ctx context.Context, key string) (*model.User, error) {
	return a.tokens.Validate(ctx, key)
}

func (a *authAdapter) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	return a.users.Authenticate(ctx, username, password)
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	tagService *service.TagService,
	bookmarkService *service.BookmarkService,
	tokenService *service.TokenService,
	logger *zap.SugaredLogger,
	cfg *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))
	r.Use(chimw.StripSlashes)
	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(cfg.AuthSecret, &authAdapter{tokens: tokenService, users: userService}))

	// Handlers
	tagHandler := NewTagHandler(tagService, logger)
	bookmarkHandler := NewBookmarkHandler(bookmarkService, logger)
	userHandler := NewUserHandler(userService, tokenService, logger, cfg)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", userHandler.APIRoot)

		// Tags
		r.Get("/tags", tagHandler.List)
		r.Post("/tags", tagHandler.Create)
		r.Get("/tags/{name}", tagHandler.Get)
		r.Delete("/tags/{name}", tagHandler.Delete)

		// Bookmarks
		r.Get("/bookmarks", bookmarkHandler.List)
		r.Post("/bookmarks", bookmarkHandler.Create)
		r.Get("/bookmarks/{id}", bookmarkHandler.Get)
		r.Put("/bookmarks/{id}", bookmarkHandler.Update)
		r.Delete("/bookmarks/{id}", bookmarkHandler.Delete)

		// Users and tokens
		r.Get("/users", userHandler.List)
		r.Post("/users", userHandler.Register)
		r.Get("/users/{id}", userHandler.Get)
		r.Put("/users/{id}", userHandler.Update)
		r.Delete("/users/{id}", userHandler.Delete)
		r.Get("/users/{id}/token", userHandler.GetToken)
		r.Post("/users/{id}/token", userHandler.IssueToken)

		// Сессионный вход для браузера/отладки
		r.Post("/auth/login", userHandler.Login)
	})

	return &Handler{Router: r}
}
