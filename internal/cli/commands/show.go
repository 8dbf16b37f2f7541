package commands

import (
	"Booklets/internal/cli/api"
	"Booklets/internal/config"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

type showCmd struct{}

func (showCmd) Name() string        { return "show" }
func (showCmd) Description() string { return "List your bookmarks" }
func (showCmd) Usage() string       { return "show" }

func (showCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	cc, err := loadClientConfig(cfg)
	if err != nil {
		return err
	}

	resp, body, err := api.GetJSON(ctx, endpoint(cc.Server, "/api/bookmarks/"), api.TokenAuth(cc.Token))
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return serverError(body)
	}

	var list []struct {
		ID    int64    `json:"id"`
		URL   string   `json:"url"`
		Title string   `json:"title"`
		Tags  []string `json:"tags"`
	}
	if err := json.Unmarshal(body, &list); err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(Out, "no bookmarks yet")
		return nil
	}
	for _, b := range list {
		title := b.Title
		if title == "" {
			title = "-"
		}
		fmt.Fprintf(Out, "%-6d %-40s %-24s [%s]\n", b.ID, b.URL, title, strings.Join(b.Tags, ", "))
	}
	return nil
}

func init() { RegisterCmd(showCmd{}) }
