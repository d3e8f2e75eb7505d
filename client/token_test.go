package client

import (
	"path/filepath"
	"testing"
)

func TestFileTokenStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session", "token")
	store := NewFileTokenStore(path)

	if got := store.Load(); got != "" {
		t.Fatalf("Load on missing file = %q, want empty", got)
	}
	if err := store.Save("tok-123"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if got := store.Load(); got != "tok-123" {
		t.Fatalf("Load = %q, want tok-123", got)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if got := store.Load(); got != "" {
		t.Fatalf("Load after Clear = %q, want empty", got)
	}
	// Clearing an already empty store is fine.
	if err := store.Clear(); err != nil {
		t.Fatalf("second Clear failed: %v", err)
	}
}
