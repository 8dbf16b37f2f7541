package handlers

import (
	"Booklets/internal/middleware"
	"Booklets/internal/service"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// TagHandler обрабатывает операции над общим реестром тегов.
type TagHandler struct {
	Tags   *service.TagService
	Logger *zap.SugaredLogger
}

// NewTagHandler создаёт хендлер тегов.
func NewTagHandler(tags *service.TagService, logger *zap.SugaredLogger) *TagHandler {
	return &TagHandler{Tags: tags, Logger: logger}
}

// TagDTO — представление тега в API.
type TagDTO struct {
	Name string `json:"name"`
}

// List отдаёт все теги в порядке имён. Доступен анонимно.
func (h *TagHandler) List(w http.ResponseWriter, r *http.Request) {
	tags, err := h.Tags.List(r.Context())
	if err != nil {
		h.Logger.Errorw("tag list failed", "error", err)
		writeError(w, err)
		return
	}
	out := make([]TagDTO, 0, len(tags))
	for _, t := range tags {
		out = append(out, TagDTO{Name: t.Name})
	}
	writeJSON(w, http.StatusOK, out)
}

// Create создаёт тег. Требует аутентификации; повторное имя — 400.
func (h *TagHandler) Create(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUserIDFromContext(r.Context()); !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req TagDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	t, err := h.Tags.Create(r.Context(), req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, TagDTO{Name: t.Name})
}

// Get возвращает тег по имени.
func (h *TagHandler) Get(w http.ResponseWriter, r *http.Request) {
	t, err := h.Tags.Get(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, TagDTO{Name: t.Name})
}

// Delete всегда отвечает 400: удаление тега запрещено структурно.
func (h *TagHandler) Delete(w http.ResponseWriter, r *http.Request) {
	writeError(w, h.Tags.Delete(r.Context(), chi.URLParam(r, "name")))
}
