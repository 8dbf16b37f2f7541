package commands

import (
	"Booklets/internal/cli/api"
	"Booklets/internal/config"
	"context"
	"fmt"
	"net/http"
	"strconv"
)

type rmCmd struct{}

func (rmCmd) Name() string        { return "rm" }
func (rmCmd) Description() string { return "Delete a bookmark by id" }
func (rmCmd) Usage() string       { return "rm <id>" }

func (rmCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return ErrUsage
	}

	cc, err := loadClientConfig(cfg)
	if err != nil {
		return err
	}

	url := endpoint(cc.Server, fmt.Sprintf("/api/bookmarks/%d/", id))
	resp, body, err := api.Delete(ctx, url, api.TokenAuth(cc.Token))
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusNoContent {
		return serverError(body)
	}
	fmt.Fprintf(Out, "Deleted bookmark %d\n", id)
	return nil
}

func init() { RegisterCmd(rmCmd{}) }
