package static

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
)

func TestInstall(t *testing.T) {
	dataHome := t.TempDir()

	t.Setenv("XDG_DATA_HOME", dataHome)
	xdg.Reload()

	t.Cleanup(xdg.Reload)

	err := Install("tomate")
	if err != nil {
		t.Fatalf("Install: unexpected error: %v", err)
	}

	icon := filepath.Join(dataHome, "tomate", "icon.png")

	info, err := os.Stat(icon)
	if err != nil {
		t.Fatalf("icon not installed: %v", err)
	}

	if info.Size() == 0 {
		t.Fatal("installed icon is empty")
	}

	// existing files are not overwritten
	err = os.WriteFile(icon, []byte("custom"), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	err = Install("tomate")
	if err != nil {
		t.Fatalf("second Install: unexpected error: %v", err)
	}

	b, err := os.ReadFile(icon)
	if err != nil {
		t.Fatal(err)
	}

	if string(b) != "custom" {
		t.Errorf("existing icon was overwritten")
	}
}
