package pacbrowse

import (
	"strings"
	"testing"
)

func TestConfirmFromDefaultsToNo(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"lowercase y", "y\n", true},
		{"uppercase y", "Y\n", true},
		{"yes", "yes\n", true},
		{"empty defaults to no", "\n", false},
		{"n", "n\n", false},
		{"anything else", "sure\n", false},
		{"eof", "", false},
		{"padded yes", "  y  \n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := confirmFrom(strings.NewReader(tt.input), nil, "Remove vim?")
			if got != tt.want {
				t.Fatalf("confirmFrom(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
