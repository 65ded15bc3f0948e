package pacbrowse

import (
	"strings"
	"testing"
)

func TestKeyLegendListsEveryBinding(t *testing.T) {
	legend := keyLegend()
	for _, key := range []string{"Tab", "?", "Up/Down", "Enter", "u", "d", "r", "Esc"} {
		if !strings.Contains(legend, key) {
			t.Errorf("legend is missing %q:\n%s", key, legend)
		}
	}
	// The legend doubles as the help preview; keep it plain text.
	if strings.Contains(legend, "[::") {
		t.Fatalf("legend must not carry markup:\n%s", legend)
	}
}
