package commands

import (
	"Booklets/internal/cli/repo/fs"
	"Booklets/internal/config"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// store возвращает файловое хранилище конфига клиента.
func store(cfg *config.Config) fs.ConfigFSStore {
	return fs.ConfigFSStore{Path: cfg.ConfigFile}
}

// loadClientConfig читает сохранённый контекст; без токена работать нельзя.
func loadClientConfig(cfg *config.Config) (*fs.ClientConfig, error) {
	cc, err := store(cfg).Load()
	if err != nil {
		return nil, errors.New("not logged in: run 'bk login' or 'bk register' first")
	}
	if cc.Token == "" {
		return nil, errors.New("no saved token: run 'bk login' first")
	}
	return cc, nil
}

// endpoint склеивает адрес сервера и путь API.
func endpoint(base, path string) string {
	return strings.TrimRight(base, "/") + path
}

// serverError достаёт поле error из тела ответа, если оно там есть.
func serverError(body []byte) error {
	var e struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &e) == nil && e.Error != "" {
		return errors.New(e.Error)
	}
	return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
}
