package testsupport

import (
	"testing"

	"playtally/internal/config"
	"playtally/internal/logging"
	"playtally/internal/snapshot"
)

// MustOpenStore opens a snapshot.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *snapshot.Store {
	t.Helper()

	store, err := snapshot.Open(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("snapshot.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}
