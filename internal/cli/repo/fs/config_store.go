package fs

import (
	"encoding/json"
	"errors"
	"os"
)

// ClientConfig — сохранённый контекст клиента: адрес сервера,
// пользователь и его API-токен.
type ClientConfig struct {
	Server   string `json:"server"`
	Username string `json:"username"`
	UserID   int64  `json:"user_id"`
	Token    string `json:"token"`
}

// ConfigFSStore — файловое хранилище конфига клиента (~/.booklets.json).
type ConfigFSStore struct {
	Path string
}

// Load читает конфиг из файла.
func (s ConfigFSStore) Load() (*ClientConfig, error) {
	if s.Path == "" {
		return nil, errors.New("config path is empty")
	}
	b, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, err
	}
	var cfg ClientConfig
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save пишет конфиг в файл с правами 0600: в нём лежит токен.
func (s ConfigFSStore) Save(cfg *ClientConfig) error {
	if s.Path == "" {
		return errors.New("config path is empty")
	}
	b, err := json.MarshalIndent(cfg, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.Path, b, 0o600)
}
