package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
)

// Auth — способ подписать исходящий запрос.
type Auth func(*http.Request)

// TokenAuth подписывает запрос API-токеном: "Authorization: token <key>".
func TokenAuth(key string) Auth {
	return func(r *http.Request) {
		if key != "" {
			r.Header.Set("Authorization", "token "+key)
		}
	}
}

// BasicAuth подписывает запрос парой логин/пароль.
func BasicAuth(username, password string) Auth {
	return func(r *http.Request) {
		r.SetBasicAuth(username, password)
	}
}

// NoAuth — анонимный запрос.
func NoAuth() Auth {
	return func(*http.Request) {}
}

// Do выполняет запрос с JSON-телом (payload может быть nil) и читает ответ.
func Do(ctx context.Context, method, url string, payload any, auth Auth) (*http.Response, []byte, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, nil, err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	auth(req)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()
	respBody, _ := io.ReadAll(resp.Body)
	return resp, respBody, nil
}

// PostJSON — POST с JSON-телом.
func PostJSON(ctx context.Context, url string, payload any, auth Auth) (*http.Response, []byte, error) {
	return Do(ctx, http.MethodPost, url, payload, auth)
}

// GetJSON — GET.
func GetJSON(ctx context.Context, url string, auth Auth) (*http.Response, []byte, error) {
	return Do(ctx, http.MethodGet, url, nil, auth)
}

// PutJSON — PUT с JSON-телом.
func PutJSON(ctx context.Context, url string, payload any, auth Auth) (*http.Response, []byte, error) {
	return Do(ctx, http.MethodPut, url, payload, auth)
}

// Delete — DELETE.
func Delete(ctx context.Context, url string, auth Auth) (*http.Response, []byte, error) {
	return Do(ctx, http.MethodDelete, url, nil, auth)
}
