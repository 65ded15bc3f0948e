package pacbrowse

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gookit/color"
)

// Main is the CLI entrypoint for cmd invocation.
func Main() {
	// 1. CONTEXT AND SIGNAL SETUP
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)

	// 2. SIGNAL HANDLING GOROUTINE
	// First signal cancels the context so a running pacman/helper child is
	// cleaned up; a second one forces immediate exit.
	go func() {
		for {
			select {
			case sig := <-sigs:
				colArrow.Print("\n-> ")
				color.Danger.Printf("Received %v. Cancelling\n", sig)
				cancel()

				select {
				case <-sigs:
					colArrow.Print("\n-> ")
					color.Danger.Printf("Second interrupt received. Forcing immediate exit.\n")
					os.Exit(130)
				case <-time.After(2 * time.Second):
					os.Exit(0)
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	// 3. CONFIGURATION
	configPath := ConfigFile
	if p := os.Getenv("PACBROWSE_CONFIG"); p != "" {
		configPath = p
	}
	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not read %s: %v\n", configPath, err)
	}
	initConfig(cfg)

	// 4. COMMAND DISPATCH
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--print-keys":
			// Internal mode so a preview pane can shell out for the help
			// text; intentionally absent from the help table.
			fmt.Print(keyLegend())
			return
		case "version", "--version":
			fmt.Printf("pacbrowse %s (%s), built %s\n", version, arch, buildDate)
			return
		case "help", "-h", "--help":
			printHelp()
			return
		default:
			colWarn.Printf("Unknown command: %s\n\n", os.Args[1])
			printHelp()
			return
		}
	}

	// 5. DEPENDENCY CHECK
	// Runs before any UI appears; each missing tool carries its own hint.
	if err := checkDependencies(); err != nil {
		colError.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	// 6. INITIALIZE EXECUTORS
	UserExec = &Executor{
		Context:         ctx,
		ShouldRunAsRoot: false,
		Interactive:     true,
	}
	RootExec = &Executor{
		Context:         ctx,
		ShouldRunAsRoot: true,
		Interactive:     true,
	}

	// 7. INTERACTIVE SESSION
	queries := newPacmanQueries()
	sess := NewSession(queries, queries, newNativeRunner(RootExec), newHelperRunner(UserExec))
	if err := sess.Run(); err != nil {
		// Collaborator failures are reported but never turn into a nonzero
		// exit; only a missing dependency does that.
		colError.Printf("Error: %v\n", err)
	}
}
