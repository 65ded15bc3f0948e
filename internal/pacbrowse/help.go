package pacbrowse

import (
	"fmt"
	"strings"

	"github.com/gookit/color"
)

// keyLegend returns the keybinding legend shown in the help preview and by
// the hidden --print-keys mode. Plain text so it renders the same in both.
func keyLegend() string {
	type binding struct {
		Key  string
		Desc string
	}
	keys := []binding{
		{"Tab", "switch source (native <-> foreign)"},
		{"?", "toggle help/info preview"},
		{"Up/Down", "navigate (resets preview to info)"},
		{"Enter", "view full details of the highlighted package"},
		{"u", "update/upgrade selected package"},
		{"d", "remove selected package (asks for confirmation)"},
		{"r", "reinstall selected package"},
		{"Esc", "exit"},
	}

	var b strings.Builder
	b.WriteString("Keys\n\n")
	for _, k := range keys {
		fmt.Fprintf(&b, "  %-8s %s\n", k.Key, k.Desc)
	}
	return b.String()
}

// printHelp prints the commands table
func printHelp() {
	colSuccess.Println("Usage: pacbrowse [command]")
	colSuccess.Println("Without a command, pacbrowse starts the interactive package browser")
	fmt.Println()
	color.Info.Println("Available Commands:")

	type cmdInfo struct {
		Cmd  string
		Desc string
	}
	cmds := []cmdInfo{
		{"version, --version", "Version information"},
		{"help, -h, --help", "Show this help"},
	}

	maxLen := 0
	for _, c := range cmds {
		if len(c.Cmd) > maxLen {
			maxLen = len(c.Cmd)
		}
	}
	columnWidth := maxLen + 4

	for _, c := range cmds {
		fmt.Print("  ")
		color.Bold.Print(c.Cmd)
		pad := columnWidth - len(c.Cmd)
		if pad < 1 {
			pad = 1
		}
		fmt.Print(strings.Repeat(" ", pad))
		color.Info.Println(c.Desc)
	}

	fmt.Println()
	color.Info.Println("Interactive keys:")
	fmt.Print(keyLegend())
}
