package commands

import (
	"Booklets/internal/config"
	"context"
	"fmt"
)

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Show saved client context" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	cc, err := store(cfg).Load()
	if err != nil {
		fmt.Fprintln(Out, "not configured: run 'bk register' or 'bk login'")
		return nil
	}
	tokenState := "absent"
	if cc.Token != "" {
		tokenState = "saved"
	}
	fmt.Fprintf(Out, "server:   %s\nusername: %s\ntoken:    %s\n", cc.Server, cc.Username, tokenState)
	return nil
}

func init() { RegisterCmd(statusCmd{}) }
