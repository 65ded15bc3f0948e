package pacbrowse

import (
	"errors"
	"strings"
	"testing"
)

func TestMissingPacmanReportsHint(t *testing.T) {
	resetGlobals(t)
	pacmanBin = "pacbrowse-test-no-such-pacman"

	err := checkDependencies()
	if err == nil {
		t.Skip("a binary by that name exists on this system")
	}
	var dep *MissingDependencyError
	if !errors.As(err, &dep) {
		t.Fatalf("error type = %T, want *MissingDependencyError", err)
	}
	if dep.Tool != pacmanBin {
		t.Fatalf("Tool = %q, want %q", dep.Tool, pacmanBin)
	}
	if !strings.Contains(err.Error(), "pacman") {
		t.Fatalf("hint does not name the tool: %v", err)
	}
}

func TestConfiguredHelperMustExist(t *testing.T) {
	resetGlobals(t)
	helperBin = "pacbrowse-test-no-such-helper"

	err := resolveHelper()
	if err == nil {
		t.Fatal("expected an error for a nonexistent configured helper")
	}
	var dep *MissingDependencyError
	if !errors.As(err, &dep) {
		t.Fatalf("error type = %T, want *MissingDependencyError", err)
	}
	if !strings.Contains(err.Error(), "pacbrowse-test-no-such-helper") {
		t.Fatalf("error does not name the configured helper: %v", err)
	}
}
