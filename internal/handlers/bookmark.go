package handlers

import (
	"Booklets/internal/middleware"
	"Booklets/internal/service"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BookmarkHandler обрабатывает CRUD закладок.
type BookmarkHandler struct {
	Bookmarks *service.BookmarkService
	Logger    *zap.SugaredLogger
}

// NewBookmarkHandler создаёт хендлер закладок.
func NewBookmarkHandler(bookmarks *service.BookmarkService, logger *zap.SugaredLogger) *BookmarkHandler {
	return &BookmarkHandler{Bookmarks: bookmarks, Logger: logger}
}

// BookmarkRequest — тело create/update. Поле tags — всегда полный
// желаемый набор; отсутствие поля равносильно пустому списку.
type BookmarkRequest struct {
	URL     string   `json:"url"`
	Title   string   `json:"title"`
	Comment string   `json:"comment"`
	Tags    []string `json:"tags"`
}

// List отдаёт закладки только самого пользователя.
func (h *BookmarkHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	list, err := h.Bookmarks.List(r.Context(), userID)
	if err != nil {
		h.Logger.Errorw("bookmark list failed", "user_id", userID, "error", err)
		writeError(w, err)
		return
	}
	out := make([]BookmarkDTO, 0, len(list))
	for i := range list {
		out = append(out, toBookmarkDTO(&list[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// Create сохраняет закладку и разрешает её теги через get-or-create.
func (h *BookmarkHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req BookmarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	b, err := h.Bookmarks.Create(r.Context(), userID, req.URL, req.Title, req.Comment, req.Tags)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toBookmarkDTO(b))
}

// Get возвращает закладку владельца; чужая выглядит как 404.
func (h *BookmarkHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	b, err := h.Bookmarks.Get(r.Context(), userID, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toBookmarkDTO(b))
}

// Update перезаписывает скалярные поля и сверяет набор тегов с присланным.
func (h *BookmarkHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req BookmarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	b, err := h.Bookmarks.Update(r.Context(), userID, id, req.URL, req.Title, req.Comment, req.Tags)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toBookmarkDTO(b))
}

// Delete удаляет закладку владельца.
func (h *BookmarkHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.Bookmarks.Delete(r.Context(), userID, id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
