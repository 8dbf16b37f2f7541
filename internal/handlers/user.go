package handlers

import (
	"Booklets/internal/apperr"
	"Booklets/internal/config"
	"Booklets/internal/middleware"
	"Booklets/internal/model"
	"Booklets/internal/service"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// UserHandler обрабатывает регистрацию, профиль и API-токены.
type UserHandler struct {
	Users  *service.UserService
	Tokens *service.TokenService
	Logger *zap.SugaredLogger
	Config *config.Config
}

// NewUserHandler создаёт хендлер пользователей.
func NewUserHandler(users *service.UserService, tokens *service.TokenService, logger *zap.SugaredLogger, cfg *config.Config) *UserHandler {
	return &UserHandler{Users: users, Tokens: tokens, Logger: logger, Config: cfg}
}

// UserRequest — тело create/update. Password только на запись,
// в ответах его нет.
type UserRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// UserDTO — представление пользователя в API. Bookmarks — ссылки
// на детальные ресурсы закладок.
type UserDTO struct {
	ID        int64    `json:"id"`
	Username  string   `json:"username"`
	Bookmarks []string `json:"bookmarks"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Email     string   `json:"email"`
}

// TokenDTO — метаданные токена в GET-ответе.
type TokenDTO struct {
	User    string `json:"user"`
	Key     string `json:"key"`
	Created string `json:"created"`
}

func (h *UserHandler) toUserDTO(u *model.User) UserDTO {
	links := make([]string, 0, len(u.Bookmarks))
	for _, b := range u.Bookmarks {
		links = append(links, fmt.Sprintf("%s/api/bookmarks/%d/", h.Config.ServerURL, b.ID))
	}
	return UserDTO{
		ID:        u.ID,
		Username:  u.Username,
		Bookmarks: links,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}

// APIRoot отдаёт точки входа API.
func (h *UserHandler) APIRoot(w http.ResponseWriter, r *http.Request) {
	base := h.Config.ServerURL
	writeJSON(w, http.StatusOK, map[string]string{
		"users":     base + "/api/users/",
		"tags":      base + "/api/tags/",
		"bookmarks": base + "/api/bookmarks/",
	})
}

// Register создаёт пользователя. Открыт для анонимных.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req UserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	u, err := h.Users.Register(r.Context(), service.RegisterInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	h.Logger.Infow("user registered", "user_id", u.ID, "username", u.Username)
	writeJSON(w, http.StatusCreated, h.toUserDTO(u))
}

// List всегда отвечает 400: перечисление пользователей не поддерживается.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	_, err := h.Users.List(r.Context())
	writeError(w, err)
}

// Get возвращает профиль. Только сам пользователь, несовпадение — 403.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := h.requireSelf(r)
	if err != nil {
		writeError(w, err)
		return
	}

	u, err := h.Users.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.toUserDTO(u))
}

// Update меняет профильные поля; непустой password перехешируется.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := h.requireSelf(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req UserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	u, err := h.Users.Update(r.Context(), id, service.UpdateInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.toUserDTO(u))
}

// Delete удаляет аккаунт вместе с закладками.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := h.requireSelf(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.Users.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	h.Logger.Infow("user deleted", "user_id", id)
	w.WriteHeader(http.StatusNoContent)
}

// GetToken отдаёт метаданные живого токена пользователя.
func (h *UserHandler) GetToken(w http.ResponseWriter, r *http.Request) {
	id, err := h.requireSelf(r)
	if err != nil {
		writeError(w, err)
		return
	}

	t, err := h.Tokens.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	username := ""
	if t.User != nil {
		username = t.User.Username
	}
	writeJSON(w, http.StatusOK, TokenDTO{
		User:    username,
		Key:     t.Key,
		Created: t.CreatedAt.UTC().Format(time.RFC3339),
	})
}

// IssueToken выпускает токен, при живом — ротация: старый ключ гаснет
// сразу, все прочие сессии с ним разлогиниваются.
func (h *UserHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	id, err := h.requireSelf(r)
	if err != nil {
		writeError(w, err)
		return
	}

	t, err := h.Tokens.IssueOrRotate(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	h.Logger.Infow("token issued", "user_id", id)
	writeJSON(w, http.StatusCreated, map[string]string{"token": t.Key})
}

// LoginRequest — тело сессионного входа.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login проверяет пару логин/пароль и ставит сессионную cookie.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	u, err := h.Users.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := middleware.SetLoginCookie(w, u.ID, h.Config.AuthSecret); err != nil {
		h.Logger.Errorw("login cookie failed", "user_id", u.ID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, h.toUserDTO(u))
}

// requireSelf парсит {id} и сверяет его с principal: профиль и токен
// доступны только самому пользователю.
func (h *UserHandler) requireSelf(r *http.Request) (int64, error) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		return 0, fmt.Errorf("no credentials: %w", apperr.ErrUnauthenticated)
	}
	id, err := parseID(r)
	if err != nil {
		return 0, fmt.Errorf("invalid id: %w", apperr.ErrValidation)
	}
	if err := service.Authorize(userID, service.OwnedBy(id)); err != nil {
		return 0, err
	}
	return id, nil
}
