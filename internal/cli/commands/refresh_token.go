package commands

import (
	"Booklets/internal/cli/api"
	"Booklets/internal/config"
	"context"
	"fmt"
)

type refreshTokenCmd struct{}

func (refreshTokenCmd) Name() string        { return "refresh-token" }
func (refreshTokenCmd) Description() string { return "Rotate the API token (logs out other sessions)" }
func (refreshTokenCmd) Usage() string       { return "refresh-token" }

func (refreshTokenCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	cc, err := loadClientConfig(cfg)
	if err != nil {
		return err
	}

	// Ротация гасит старый ключ мгновенно: все остальные держатели
	// прежнего токена будут разлогинены.
	token, err := fetchToken(ctx, cc.Server, cc.UserID, api.TokenAuth(cc.Token))
	if err != nil {
		return err
	}
	cc.Token = token
	if err := store(cfg).Save(cc); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	fmt.Fprintln(Out, "Token rotated; previous key is no longer valid")
	return nil
}

func init() { RegisterCmd(refreshTokenCmd{}) }
