package pacbrowse

import (
	"runtime"

	"github.com/gookit/color"
)

// Global variables
var (
	pacmanBin  string
	sudoBin    string
	helperBin  string // resolved AUR helper (paru/yay or config override)
	Debug      bool
	ConfigFile = "/etc/pacbrowse.conf"
	version    = "dev" // default version; overridden at build time
	arch       = runtime.GOARCH
	buildDate  = "unknown" // overridden at build time
	// Global executors (declared, to be assigned in Main)
	UserExec *Executor
	RootExec *Executor
)

// color helpers
var (
	colInfo    = color.Info // style provided by gookit/color
	colWarn    = color.Warn
	colError   = color.Error
	colSuccess = color.HEX("#1976D2")
	colArrow   = color.HEX("#FFEB3B")
	colNote    = color.Tag("notice")
)
