package pacbrowse

import (
	"strings"
	"testing"
)

func TestQueryFlagPerSource(t *testing.T) {
	if got := queryFlag(SourceNative); got != "-Qen" {
		t.Fatalf("native flag = %q, want -Qen", got)
	}
	if got := queryFlag(SourceForeign); got != "-Qem" {
		t.Fatalf("foreign flag = %q, want -Qem", got)
	}
}

func TestParseList(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"single", "vim 9.0-1\n", []string{"vim 9.0-1"}},
		{"multiple", "vim 9.0-1 [installed]\ngit 2.40-1 [installed]\n", []string{"vim 9.0-1 [installed]", "git 2.40-1 [installed]"}},
		{"blank lines", "\nvim 9.0-1\n\n\ngit 2.40-1\n", []string{"vim 9.0-1", "git 2.40-1"}},
		{"surrounding space", "  vim 9.0-1  \n", []string{"vim 9.0-1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseList([]byte(tt.in))
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Fatalf("parseList(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNameToken(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"vim 9.0-1 [installed]", "vim"},
		{"git 2.40-1", "git"},
		{"solo", "solo"},
		{"", ""},
		{"   ", ""},
		{"  padded 1.0", "padded"},
	}
	for _, tt := range tests {
		if got := nameToken(tt.in); got != tt.want {
			t.Errorf("nameToken(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// pacman exits nonzero when a query matches nothing; `false` reproduces
// that shape (exit 1, no output) without needing pacman installed.
func TestListTreatsSilentFailureAsEmpty(t *testing.T) {
	p := &pacmanQueries{bin: "false"}
	entries, err := p.List(SourceForeign)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("entries = %v, want none", entries)
	}
}

func TestInfoSurfacesFailure(t *testing.T) {
	p := &pacmanQueries{bin: "false"}
	if _, err := p.Info("ghost"); err == nil {
		t.Fatal("expected an error from a failing detail query")
	}
}
