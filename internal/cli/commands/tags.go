package commands

import (
	"Booklets/internal/cli/api"
	"Booklets/internal/config"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

type tagsCmd struct{}

func (tagsCmd) Name() string        { return "tags" }
func (tagsCmd) Description() string { return "List all tags" }
func (tagsCmd) Usage() string       { return "tags" }

func (tagsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	// Список тегов открыт анонимно; сервер берём из конфига, если он есть
	server := cfg.ServerURL
	if cc, err := store(cfg).Load(); err == nil && cc.Server != "" {
		server = cc.Server
	}

	resp, body, err := api.GetJSON(ctx, endpoint(server, "/api/tags/"), api.NoAuth())
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return serverError(body)
	}

	var tags []struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(body, &tags); err != nil {
		return err
	}
	for _, t := range tags {
		fmt.Fprintln(Out, t.Name)
	}
	return nil
}

func init() { RegisterCmd(tagsCmd{}) }
