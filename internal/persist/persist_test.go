package persist

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".cur.rent")

	if err := Save(path, State{TotalSeverity: 42, TotalLines: 17}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	state, ok, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !ok {
		t.Fatalf("expected ok=true for a file that was just written")
	}
	if state.TotalSeverity != 42 || state.TotalLines != 17 {
		t.Errorf("got %+v, want {42 17}", state)
	}
}

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist")

	state, ok, err := Load(path)
	if err != nil {
		t.Fatalf("expected no error for a missing file, got %v", err)
	}
	if ok {
		t.Fatalf("expected ok=false for a missing file")
	}
	if state != (State{}) {
		t.Errorf("expected zero state, got %+v", state)
	}
}

func TestLoad_MalformedContentsIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".cur.rent")
	if err := os.WriteFile(path, []byte("not-a-valid-state"), 0o644); err != nil {
		t.Fatalf("failed to set up test fixture: %v", err)
	}

	if _, _, err := Load(path); err == nil {
		t.Fatalf("expected an error for malformed state file contents")
	}
}
