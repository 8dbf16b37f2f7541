package fs

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestConfigFSStore_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "booklets.json")
	store := ConfigFSStore{Path: path}

	want := &ClientConfig{
		Server:   "http://localhost:8080",
		Username: "alice",
		UserID:   7,
		Token:    "0123456789abcdef0123456789abcdef01234567",
	}
	if err := store.Save(want); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *got != *want {
		t.Errorf("roundtrip mismatch: got %+v, want %+v", got, want)
	}

	// в файле лежит токен — права должны быть только у владельца
	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat failed: %v", err)
		}
		if perm := info.Mode().Perm(); perm != 0o600 {
			t.Errorf("config file perm: got %o, want 600", perm)
		}
	}
}

func TestConfigFSStore_LoadMissing(t *testing.T) {
	store := ConfigFSStore{Path: filepath.Join(t.TempDir(), "absent.json")}
	if _, err := store.Load(); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestConfigFSStore_EmptyPath(t *testing.T) {
	store := ConfigFSStore{}
	if _, err := store.Load(); err == nil {
		t.Fatal("expected error for empty path")
	}
	if err := store.Save(&ClientConfig{}); err == nil {
		t.Fatal("expected error for empty path")
	}
}
