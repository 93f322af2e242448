package tui

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultPrefs(t *testing.T) {
	if DefaultPrefs().Highlight {
		t.Error("DefaultPrefs().Highlight should be false")
	}
}

func TestLoadPrefs_NoFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	if LoadPrefs().Highlight {
		t.Error("LoadPrefs() with no file should return defaults")
	}
}

func TestSaveAndLoadPrefs(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)

	if err := SavePrefs(Prefs{Highlight: true}); err != nil {
		t.Fatalf("SavePrefs failed: %v", err)
	}

	st, err := os.Stat(filepath.Join(tmpDir, ".installguard", prefsFile))
	if err != nil {
		t.Fatalf("prefs file was not created: %v", err)
	}
	if perm := st.Mode().Perm(); perm != 0o600 {
		t.Errorf("prefs file mode = %o, want 600", perm)
	}

	if !LoadPrefs().Highlight {
		t.Error("Loaded prefs should have Highlight=true")
	}

	if err := SavePrefs(Prefs{Highlight: false}); err != nil {
		t.Fatalf("SavePrefs failed: %v", err)
	}
	if LoadPrefs().Highlight {
		t.Error("Loaded prefs should have Highlight=false")
	}
}

func TestLoadPrefs_Corrupt(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	dir := filepath.Join(tmpDir, ".installguard")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "tui_prefs.json"), []byte("{"), 0o600); err != nil {
		t.Fatal(err)
	}
	if LoadPrefs() != DefaultPrefs() {
		t.Error("corrupt prefs should fall back to defaults")
	}
}
