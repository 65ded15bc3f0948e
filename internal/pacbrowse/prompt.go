package pacbrowse

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// interactiveMu ensures only one interactive prompt reads stdin at a time.
var interactiveMu sync.Mutex

// confirmFrom reads one reply and reports whether it affirms. Only y/yes
// count; an empty reply or anything else means no.
func confirmFrom(r io.Reader, p colorPrinter, prompt string) bool {
	reader := bufio.NewReader(r)
	cPrintf(p, "%s [y/N]: ", prompt)

	response, err := reader.ReadString('\n')
	if err != nil {
		return false // On error (like Ctrl+D), default to "no"
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}

// askForRemoval asks a destructive yes/no question on stdin, defaulting to
// no on empty input.
func askForRemoval(prompt string) bool {
	interactiveMu.Lock()
	defer interactiveMu.Unlock()
	return confirmFrom(os.Stdin, colWarn, prompt)
}

// pressEnterToContinue blocks until the user acknowledges the output of the
// last action, so it is readable before the selector redraws the screen.
func pressEnterToContinue() {
	interactiveMu.Lock()
	defer interactiveMu.Unlock()

	colArrow.Print("-> ")
	colNote.Print("Press Enter to continue ")
	reader := bufio.NewReader(os.Stdin)
	if _, err := reader.ReadString('\n'); err != nil {
		fmt.Println()
	}
}
