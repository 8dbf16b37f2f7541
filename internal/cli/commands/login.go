package commands

import (
	"Booklets/internal/cli/api"
	"Booklets/internal/cli/repo/fs"
	"Booklets/internal/config"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Authenticate and store the API token" }
func (loginCmd) Usage() string       { return "login <username> <password>" }

func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	username, password := args[0], args[1]

	payload := map[string]string{"username": username, "password": password}
	resp, body, err := api.PostJSON(ctx, endpoint(cfg.ServerURL, "/api/auth/login/"), payload, api.NoAuth())
	if err != nil {
		return err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return errors.New("invalid username or password")
	}
	if resp.StatusCode != http.StatusOK {
		return serverError(body)
	}
	var me struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(body, &me); err != nil {
		return err
	}

	// Логин ротирует токен: прежний ключ перестаёт действовать,
	// другие устройства с ним будут разлогинены.
	token, err := fetchToken(ctx, cfg.ServerURL, me.ID, api.BasicAuth(username, password))
	if err != nil {
		return err
	}

	if err := store(cfg).Save(&fs.ClientConfig{
		Server:   cfg.ServerURL,
		Username: username,
		UserID:   me.ID,
		Token:    token,
	}); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	fmt.Fprintln(Out, "Logged in successfully")
	return nil
}

func init() { RegisterCmd(loginCmd{}) }
