package commands

import (
	"Booklets/internal/cli/api"
	"Booklets/internal/cli/repo/fs"
	"Booklets/internal/config"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

type registerCmd struct{}

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "Create an account and obtain an API token" }
func (registerCmd) Usage() string       { return "register <username> <email> <password>" }

func (registerCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 3 {
		return ErrUsage
	}
	username, email, password := args[0], args[1], args[2]

	payload := map[string]string{"username": username, "email": email, "password": password}
	resp, body, err := api.PostJSON(ctx, endpoint(cfg.ServerURL, "/api/users/"), payload, api.NoAuth())
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusCreated {
		return serverError(body)
	}
	var created struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(body, &created); err != nil {
		return err
	}

	token, err := fetchToken(ctx, cfg.ServerURL, created.ID, api.BasicAuth(username, password))
	if err != nil {
		return err
	}

	if err := store(cfg).Save(&fs.ClientConfig{
		Server:   cfg.ServerURL,
		Username: username,
		UserID:   created.ID,
		Token:    token,
	}); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	fmt.Fprintf(Out, "Registered as %s, token saved\n", username)
	return nil
}

// fetchToken выпускает (или ротирует) API-токен пользователя.
func fetchToken(ctx context.Context, server string, userID int64, auth api.Auth) (string, error) {
	url := endpoint(server, fmt.Sprintf("/api/users/%d/token/", userID))
	resp, body, err := api.PostJSON(ctx, url, nil, auth)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusCreated {
		return "", serverError(body)
	}
	var out struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

func init() { RegisterCmd(registerCmd{}) }
