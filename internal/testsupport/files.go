package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WritePlaylist writes a playlist fixture under dir and returns its path.
func WritePlaylist(t testing.TB, dir, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for fixture %s: %v", name, err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write fixture %s: %v", name, err)
	}
	return path
}
