package pacbrowse

import (
	"fmt"
	"os/exec"
)

// MissingDependencyError names an absent external tool together with a
// remediation hint. It is the only error that exits the process nonzero.
type MissingDependencyError struct {
	Tool string
	Hint string
}

func (e *MissingDependencyError) Error() string {
	return fmt.Sprintf("required tool %q not found. %s", e.Tool, e.Hint)
}

// resolveHelper picks the AUR helper: an explicit config choice wins,
// otherwise paru is preferred with yay as fallback.
func resolveHelper() error {
	if helperBin != "" {
		if _, err := exec.LookPath(helperBin); err != nil {
			return &MissingDependencyError{
				Tool: helperBin,
				Hint: "PACBROWSE_AUR_HELPER names a helper that is not installed; install it or unset the option.",
			}
		}
		return nil
	}
	for _, candidate := range []string{"paru", "yay"} {
		if _, err := exec.LookPath(candidate); err == nil {
			helperBin = candidate
			return nil
		}
	}
	return &MissingDependencyError{
		Tool: "paru",
		Hint: "no AUR helper found; install paru (or yay) to manage foreign packages.",
	}
}

// checkDependencies verifies every external collaborator before any UI
// appears. Each missing tool gets its own remediation hint.
func checkDependencies() error {
	if _, err := exec.LookPath(pacmanBin); err != nil {
		return &MissingDependencyError{
			Tool: pacmanBin,
			Hint: "pacbrowse delegates all package operations to pacman; it only works on pacman-based systems.",
		}
	}
	if _, err := exec.LookPath(sudoBin); err != nil {
		return &MissingDependencyError{
			Tool: sudoBin,
			Hint: "native update/remove/reinstall actions need sudo for elevation; install sudo or set PACBROWSE_SUDO.",
		}
	}
	return resolveHelper()
}
