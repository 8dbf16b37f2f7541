package handlers

import (
	"Booklets/internal/apperr"
	"Booklets/internal/model"
	"encoding/json"
	"errors"
	"net/http"
	"time"
)

// errorResponse — единый формат тела ошибки.
type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError отображает доменные ошибки в статусы. Причина уходит клиенту
// в читаемом виде, внутренние ошибки наружу не детализируются.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperr.ErrValidation),
		errors.Is(err, apperr.ErrDuplicate),
		errors.Is(err, apperr.ErrPolicyViolation):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: reason(err)})
	case errors.Is(err, apperr.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: reason(err)})
	case errors.Is(err, apperr.ErrNotOwner):
		writeJSON(w, http.StatusForbidden, errorResponse{Error: reason(err)})
	case errors.Is(err, apperr.ErrUnauthenticated):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: reason(err)})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func reason(err error) string {
	return err.Error()
}

// BookmarkDTO — представление закладки в API.
type BookmarkDTO struct {
	ID      int64    `json:"id"`
	Title   string   `json:"title"`
	URL     string   `json:"url"`
	Comment string   `json:"comment"`
	Tags    []string `json:"tags"`
	Added   string   `json:"added"`
	Updated string   `json:"updated"`
	User    string   `json:"user"`
}

func toBookmarkDTO(b *model.Bookmark) BookmarkDTO {
	username := ""
	if b.User != nil {
		username = b.User.Username
	}
	return BookmarkDTO{
		ID:      b.ID,
		Title:   b.Title,
		URL:     b.URL,
		Comment: b.Comment,
		Tags:    b.TagNames(),
		Added:   b.CreatedAt.UTC().Format(time.RFC3339),
		Updated: b.UpdatedAt.UTC().Format(time.RFC3339),
		User:    username,
	}
}
