package handlers_test

import (
	"Booklets/internal/handlers"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserRegisterAndProfile(t *testing.T) {
	ts := newTestServer(t)

	// регистрация открыта анонимам
	resp, data := ts.do(t, http.MethodPost, "/api/users/", "", map[string]string{
		"username": "carol", "email": "carol@example.com", "password": "secret",
		"first_name": "Carol", "last_name": "Jones",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeJSON[handlers.UserDTO](t, data)
	assert.Equal(t, "carol", created.Username)
	assert.Empty(t, created.Bookmarks)

	// без email — 400
	resp, _ = ts.do(t, http.MethodPost, "/api/users/", "", map[string]string{
		"username": "noemail", "password": "secret",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// повторный username — 400
	resp, _ = ts.do(t, http.MethodPost, "/api/users/", "", map[string]string{
		"username": "carol", "email": "c2@example.com", "password": "secret",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUserListingUnsupported(t *testing.T) {
	ts := newTestServer(t)
	_, key := ts.registerWithToken(t, "alice")

	resp, data := ts.do(t, http.MethodGet, "/api/users/", key, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeJSON[map[string]string](t, data)
	assert.Contains(t, body["error"], "listing users is not supported")
}

// Профиль доступен только самому пользователю; чужой — 403, а не 404.
func TestUserProfileSelfOnly(t *testing.T) {
	ts := newTestServer(t)
	alice, aliceKey := ts.registerWithToken(t, "alice")
	_, bobKey := ts.registerWithToken(t, "bob")
	path := fmt.Sprintf("/api/users/%d/", alice.ID)

	resp, data := ts.do(t, http.MethodGet, path, aliceKey, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	profile := decodeJSON[handlers.UserDTO](t, data)
	assert.Equal(t, "alice", profile.Username)

	resp, _ = ts.do(t, http.MethodGet, path, bobKey, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = ts.do(t, http.MethodGet, path, "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = ts.do(t, http.MethodPut, path, bobKey, map[string]string{"email": "x@example.com"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = ts.do(t, http.MethodDelete, path, bobKey, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestUserUpdateAndDelete(t *testing.T) {
	ts := newTestServer(t)
	alice, key := ts.registerWithToken(t, "alice")
	path := fmt.Sprintf("/api/users/%d/", alice.ID)

	resp, data := ts.do(t, http.MethodPut, path, key, map[string]string{
		"email": "new@example.com", "first_name": "Alice",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decodeJSON[handlers.UserDTO](t, data)
	assert.Equal(t, "new@example.com", updated.Email)
	assert.Equal(t, "Alice", updated.FirstName)

	resp, _ = ts.do(t, http.MethodDelete, path, key, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	// токен удалённого пользователя больше не работает
	resp, _ = ts.do(t, http.MethodGet, "/api/bookmarks/", key, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestTokenEndpoints(t *testing.T) {
	ts := newTestServer(t)
	alice, key := ts.registerWithToken(t, "alice")
	_, bobKey := ts.registerWithToken(t, "bob")
	path := fmt.Sprintf("/api/users/%d/token/", alice.ID)

	resp, data := ts.do(t, http.MethodGet, path, key, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	meta := decodeJSON[handlers.TokenDTO](t, data)
	assert.Equal(t, key, meta.Key)
	assert.Equal(t, "alice", meta.User)
	assert.NotEmpty(t, meta.Created)

	// ротация: новый ключ работает, старый гаснет
	resp, data = ts.do(t, http.MethodPost, path, key, nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	rotated := decodeJSON[map[string]string](t, data)
	newKey := rotated["token"]
	assert.Len(t, newKey, 40)
	assert.NotEqual(t, key, newKey)

	resp, _ = ts.do(t, http.MethodGet, "/api/bookmarks/", key, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp, _ = ts.do(t, http.MethodGet, "/api/bookmarks/", newKey, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// чужой токен недоступен даже на чтение
	resp, _ = ts.do(t, http.MethodGet, path, bobKey, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp, _ = ts.do(t, http.MethodPost, path, bobKey, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestTagPolicy(t *testing.T) {
	ts := newTestServer(t)
	_, key := ts.registerWithToken(t, "alice")

	// создание требует аутентификации
	resp, _ := ts.do(t, http.MethodPost, "/api/tags/", "", map[string]string{"name": "anon"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = ts.do(t, http.MethodPost, "/api/tags/", key, map[string]string{"name": "golang"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	// повтор — 400
	resp, _ = ts.do(t, http.MethodPost, "/api/tags/", key, map[string]string{"name": "golang"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, data := ts.do(t, http.MethodGet, "/api/tags/golang/", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	tag := decodeJSON[handlers.TagDTO](t, data)
	assert.Equal(t, "golang", tag.Name)

	resp, _ = ts.do(t, http.MethodGet, "/api/tags/missing/", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// удаление запрещено структурно — даже для существующего тега
	resp, data = ts.do(t, http.MethodDelete, "/api/tags/golang/", key, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeJSON[map[string]string](t, data)
	assert.Contains(t, body["error"], "delete on tag is not allowed")
}

// Сессионный вход: cookie из логина аутентифицирует следующий запрос.
func TestLoginCookieFlow(t *testing.T) {
	ts := newTestServer(t)
	alice, _ := ts.registerWithToken(t, "alice")

	resp, data := ts.do(t, http.MethodPost, "/api/auth/login/", "", map[string]string{
		"username": "alice", "password": "secret",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	me := decodeJSON[handlers.UserDTO](t, data)
	assert.Equal(t, alice.ID, me.ID)

	var cookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == "auth_token" {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatalf("login must set the auth_token cookie")
	}

	req, err := http.NewRequest(http.MethodGet, ts.srv.URL+fmt.Sprintf("/api/users/%d/", alice.ID), nil)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.AddCookie(cookie)
	got, err := ts.srv.Client().Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer got.Body.Close()
	assert.Equal(t, http.StatusOK, got.StatusCode)

	// неверный пароль — 401 без cookie
	resp, _ = ts.do(t, http.MethodPost, "/api/auth/login/", "", map[string]string{
		"username": "alice", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Empty(t, resp.Cookies())
}
