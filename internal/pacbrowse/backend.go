package pacbrowse

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// queryFlag maps a source to the pacman query that lists explicitly
// installed, non-dependency packages of that universe.
func queryFlag(src Source) string {
	if src == SourceForeign {
		return "-Qem"
	}
	return "-Qen"
}

// parseList splits raw query output into entries, one per line, dropping
// blanks. Each line is "<name> <version-and-flags>"; only the name token is
// ever parsed further.
func parseList(out []byte) []string {
	var entries []string
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			entries = append(entries, line)
		}
	}
	return entries
}

// pacmanQueries answers list and detail queries from the installed-package
// database. Queries are read-only and never elevate.
type pacmanQueries struct {
	bin string
}

func newPacmanQueries() *pacmanQueries {
	return &pacmanQueries{bin: pacmanBin}
}

func (p *pacmanQueries) List(src Source) ([]string, error) {
	cmd := exec.Command(p.bin, queryFlag(src))
	var out, errOut bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errOut

	if err := cmd.Run(); err != nil {
		// pacman exits nonzero when a query matches nothing; an empty
		// result is a valid, empty list rather than an error.
		if out.Len() == 0 && errOut.Len() == 0 {
			return nil, nil
		}
		return nil, fmt.Errorf("%s %s failed: %v\n%s", p.bin, queryFlag(src), err, errOut.String())
	}
	return parseList(out.Bytes()), nil
}

func (p *pacmanQueries) Info(name string) ([]string, error) {
	cmd := exec.Command(p.bin, "-Qi", name)
	var out, errOut bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errOut

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(errOut.String())
		if msg == "" {
			msg = err.Error()
		}
		return nil, fmt.Errorf("%s", msg)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	return lines, nil
}

// nativeRunner drives pacman through the elevating executor. Mutating
// pacman actions need root, so Elevates reports true and Elevate validates
// the sudo ticket before the action runs.
type nativeRunner struct {
	bin  string
	exec *Executor
}

func newNativeRunner(e *Executor) *nativeRunner {
	return &nativeRunner{bin: pacmanBin, exec: e}
}

func (r *nativeRunner) Install(name string) error {
	return r.exec.Run(exec.Command(r.bin, "-S", name))
}

func (r *nativeRunner) Remove(name string) error {
	return r.exec.Run(exec.Command(r.bin, "-Rns", name))
}

func (r *nativeRunner) Elevates() bool { return true }

func (r *nativeRunner) Elevate() error { return r.exec.ensureSudo() }

// helperRunner drives the AUR helper as the invoking user. paru and yay
// call sudo themselves when a transaction needs it, so no elevation check
// happens on our side.
type helperRunner struct {
	bin  string
	exec *Executor
}

func newHelperRunner(e *Executor) *helperRunner {
	return &helperRunner{bin: helperBin, exec: e}
}

func (r *helperRunner) Install(name string) error {
	return r.exec.Run(exec.Command(r.bin, "-S", name))
}

func (r *helperRunner) Remove(name string) error {
	return r.exec.Run(exec.Command(r.bin, "-Rns", name))
}

func (r *helperRunner) Elevates() bool { return false }

func (r *helperRunner) Elevate() error { return nil }
