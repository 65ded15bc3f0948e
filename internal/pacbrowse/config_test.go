package pacbrowse

import (
	"os"
	"path/filepath"
	"testing"
)

func resetGlobals(t *testing.T) {
	t.Helper()
	oldPacman, oldSudo, oldHelper, oldDebug := pacmanBin, sudoBin, helperBin, Debug
	t.Cleanup(func() {
		pacmanBin, sudoBin, helperBin, Debug = oldPacman, oldSudo, oldHelper, oldDebug
	})
}

func TestLoadConfigParsesKeyValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pacbrowse.conf")
	content := `
# comment
PACBROWSE_PACMAN = /usr/local/bin/pacman
PACBROWSE_AUR_HELPER="yay"
PACBROWSE_DEBUG='1'

malformed line without equals
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if got := cfg.Values["PACBROWSE_PACMAN"]; got != "/usr/local/bin/pacman" {
		t.Errorf("PACBROWSE_PACMAN = %q", got)
	}
	if got := cfg.Values["PACBROWSE_AUR_HELPER"]; got != "yay" {
		t.Errorf("PACBROWSE_AUR_HELPER = %q (quotes must be stripped)", got)
	}
	if got := cfg.Values["PACBROWSE_DEBUG"]; got != "1" {
		t.Errorf("PACBROWSE_DEBUG = %q", got)
	}
}

func TestLoadConfigMissingFileIsFine(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "does-not-exist.conf"))
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg == nil {
		t.Fatal("nil config")
	}
}

func TestEnvOverridesWinOverFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pacbrowse.conf")
	if err := os.WriteFile(path, []byte("PACBROWSE_AUR_HELPER=paru\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PACBROWSE_AUR_HELPER", "yay")

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if got := cfg.Values["PACBROWSE_AUR_HELPER"]; got != "yay" {
		t.Fatalf("PACBROWSE_AUR_HELPER = %q, want env override yay", got)
	}
}

func TestInitConfigDefaults(t *testing.T) {
	resetGlobals(t)

	initConfig(&Config{Values: map[string]string{}})
	if pacmanBin != "pacman" || sudoBin != "sudo" {
		t.Fatalf("defaults = %q/%q, want pacman/sudo", pacmanBin, sudoBin)
	}
	if helperBin != "" {
		t.Fatalf("helperBin = %q, want unresolved", helperBin)
	}
	if Debug {
		t.Fatal("Debug should default to off")
	}

	initConfig(&Config{Values: map[string]string{
		"PACBROWSE_PACMAN": "/opt/pacman",
		"PACBROWSE_SUDO":   "doas",
		"PACBROWSE_DEBUG":  "1",
	}})
	if pacmanBin != "/opt/pacman" || sudoBin != "doas" || !Debug {
		t.Fatalf("overrides not applied: %q %q %v", pacmanBin, sudoBin, Debug)
	}
}
