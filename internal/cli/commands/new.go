package commands

import (
	"Booklets/internal/cli/api"
	"Booklets/internal/cli/draft"
	"Booklets/internal/config"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"strings"
)

type newCmd struct{}

func (newCmd) Name() string        { return "new" }
func (newCmd) Description() string { return "Create a bookmark (opens $EDITOR on a draft)" }
func (newCmd) Usage() string       { return "new [url [tag,tag,...]]" }

func (c newCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	cc, err := loadClientConfig(cfg)
	if err != nil {
		return err
	}

	var d *draft.Draft
	if len(args) > 0 {
		// Быстрый путь без редактора: url и необязательные теги
		d = &draft.Draft{URL: args[0]}
		if len(args) > 1 {
			for _, t := range strings.Split(args[1], ",") {
				t = strings.TrimSpace(t)
				if t != "" {
					d.Tags = append(d.Tags, t)
				}
			}
		}
	} else {
		d, err = editDraft(ctx, cfg.Editor)
		if err != nil {
			return err
		}
	}

	payload := map[string]any{
		"url":     d.URL,
		"title":   d.Title,
		"comment": d.Comment,
		"tags":    d.Tags,
	}
	resp, body, err := api.PostJSON(ctx, endpoint(cc.Server, "/api/bookmarks/"), payload, api.TokenAuth(cc.Token))
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusCreated {
		return serverError(body)
	}
	var created struct {
		ID   int64    `json:"id"`
		URL  string   `json:"url"`
		Tags []string `json:"tags"`
	}
	if err := json.Unmarshal(body, &created); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Created bookmark %d: %s [%s]\n", created.ID, created.URL, strings.Join(created.Tags, ", "))
	return nil
}

// editDraft открывает редактор на временном файле с шаблоном и разбирает результат.
func editDraft(ctx context.Context, editor string) (*draft.Draft, error) {
	tmp, err := os.CreateTemp("", "booklets-*.txt")
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(draft.Template); err != nil {
		tmp.Close()
		return nil, err
	}
	if err := tmp.Close(); err != nil {
		return nil, err
	}

	cmd := exec.CommandContext(ctx, editor, tmp.Name())
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("editor: %w", err)
	}

	f, err := os.Open(tmp.Name())
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d, err := draft.Parse(f)
	if errors.Is(err, draft.ErrNoURL) {
		return nil, errors.New("draft has no url, bookmark not created")
	}
	return d, err
}

func init() { RegisterCmd(newCmd{}) }
