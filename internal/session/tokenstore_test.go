package session

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "token")
	store := NewFileStore(path)

	if err := store.Save("abc123"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != "abc123" {
		t.Fatalf("Load = %q", got)
	}

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat: %v", err)
		}
		if perm := info.Mode().Perm(); perm != 0o600 {
			t.Fatalf("token file mode = %o, want 600", perm)
		}
	}
}

func TestFileStoreLoadMissing(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "token"))
	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != "" {
		t.Fatalf("Load = %q, want empty", got)
	}
}

func TestFileStoreClearMissing(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "token"))
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear on missing file: %v", err)
	}
}

func TestFileStoreTrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	if err := os.WriteFile(path, []byte("  tok\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := NewFileStore(path).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != "tok" {
		t.Fatalf("Load = %q", got)
	}
}
