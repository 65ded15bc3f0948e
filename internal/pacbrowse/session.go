package pacbrowse

import (
	"fmt"
	"strings"
)

// Source selects which package universe is listed.
type Source int

const (
	SourceNative Source = iota
	SourceForeign
)

func (s Source) String() string {
	if s == SourceForeign {
		return "foreign"
	}
	return "native"
}

// Toggle flips between the two package universes.
func (s Source) Toggle() Source {
	if s == SourceNative {
		return SourceForeign
	}
	return SourceNative
}

// PreviewMode selects what the detail pane renders.
type PreviewMode int

const (
	PreviewInfo PreviewMode = iota
	PreviewHelp
)

// Toggle flips between package info and the keybinding legend.
func (m PreviewMode) Toggle() PreviewMode {
	if m == PreviewInfo {
		return PreviewHelp
	}
	return PreviewInfo
}

// ActionKey is the key the user pressed to terminate a selector pass.
// ActionNone means plain confirm (Enter).
type ActionKey int

const (
	ActionNone ActionKey = iota
	ActionUpdate
	ActionRemove
	ActionReinstall
)

func (k ActionKey) String() string {
	switch k {
	case ActionUpdate:
		return "update"
	case ActionRemove:
		return "remove"
	case ActionReinstall:
		return "reinstall"
	}
	return "detail"
}

// Selection is the outcome of one selector pass. Cancelled means the user
// escaped without confirming anything.
type Selection struct {
	Key       ActionKey
	Line      string
	Cancelled bool
}

// ListProvider returns the installed, non-dependency packages of a source,
// one "<name> <version-and-flags>" entry per line. An empty result is valid.
type ListProvider interface {
	List(src Source) ([]string, error)
}

// DetailQuerier returns the full metadata lines for an installed package.
// Lookups always go against the system's installed-package database, since
// foreign packages are registered there too once installed.
type DetailQuerier interface {
	Info(name string) ([]string, error)
}

// ActionRunner executes the mutating package actions for one source.
// Implementations stream the underlying tool's output straight to the user.
type ActionRunner interface {
	Install(name string) error
	Remove(name string) error
	// Elevates reports whether mutating actions need a local credential
	// check first. AUR helpers self-elevate, so their runner returns false.
	Elevates() bool
	Elevate() error
}

// Session drives the list → select → act → confirm cycle until the user
// exits. source and previewMode live as plain fields and reach the selector
// through closures; nothing persists beyond the process.
type Session struct {
	Provider ListProvider
	Detail   DetailQuerier
	Native   ActionRunner
	Foreign  ActionRunner

	// Select runs one selector pass over the given entries. Overridable in
	// tests; the default is the tview selector wired via newSelector.
	Select func(entries []string) (Selection, error)
	// Confirm asks a yes/no question, defaulting to no on empty input.
	Confirm func(prompt string) bool
	// Pause blocks until the user acknowledges the last action's output.
	Pause func()
	// Page displays multi-line detail output.
	Page func(title string, lines []string) error

	source      Source
	previewMode PreviewMode
}

// NewSession wires a session around the real selector, prompts and pager.
func NewSession(provider ListProvider, detail DetailQuerier, native, foreign ActionRunner) *Session {
	s := &Session{
		Provider: provider,
		Detail:   detail,
		Native:   native,
		Foreign:  foreign,
		Confirm:  askForRemoval,
		Pause:    pressEnterToContinue,
		Page:     RunPager,
	}
	s.Select = func(entries []string) (Selection, error) {
		return s.newSelector(entries).Run()
	}
	return s
}

// Run loops until the user cancels. Every external failure is reported and
// the cycle continues; only cancellation ends the loop.
func (s *Session) Run() error {
	for {
		entries, err := s.Provider.List(s.source)
		if err != nil {
			return fmt.Errorf("listing %s packages: %w", s.source, err)
		}

		sel, err := s.Select(entries)
		if err != nil {
			colError.Printf("Error: %v\n", err)
			continue
		}

		if sel.Cancelled {
			colArrow.Print("-> ")
			cPrintln(colNote, "No action taken.")
			return nil
		}

		name := nameToken(sel.Line)
		if name == "" {
			colWarn.Println("Nothing selected.")
			continue
		}

		s.dispatch(sel.Key, name)
		s.Pause()
	}
}

// runner returns the action executor matching the current source.
func (s *Session) runner() ActionRunner {
	if s.source == SourceForeign {
		return s.Foreign
	}
	return s.Native
}

// dispatch performs the action for one terminated selector pass. Failures of
// the underlying tools are shown verbatim and never abort the session.
func (s *Session) dispatch(key ActionKey, name string) {
	debugf("dispatch: %s %s (source=%s)\n", key, name, s.source)
	switch key {
	case ActionNone:
		s.showDetail(name)

	case ActionUpdate, ActionReinstall:
		verb := "Updating"
		if key == ActionReinstall {
			verb = "Reinstalling"
		}
		r := s.runner()
		if r.Elevates() {
			if err := r.Elevate(); err != nil {
				colError.Printf("Elevation failed: %v\n", err)
				return
			}
		}
		colArrow.Print("-> ")
		colSuccess.Printf("%s %s\n", verb, name)
		if err := r.Install(name); err != nil {
			colError.Printf("Error: %v\n", err)
		}

	case ActionRemove:
		colArrow.Print("-> ")
		colWarn.Printf("Selected %s for removal (including unused dependencies and config files)\n", name)
		if !s.Confirm(fmt.Sprintf("Remove %s?", name)) {
			colNote.Println("Removal cancelled.")
			return
		}
		r := s.runner()
		if r.Elevates() {
			if err := r.Elevate(); err != nil {
				colError.Printf("Elevation failed: %v\n", err)
				return
			}
		}
		if err := r.Remove(name); err != nil {
			colError.Printf("Error: %v\n", err)
		}
	}
}

// showDetail handles plain confirm: a read-only metadata dump. This always
// queries the installed-package database, regardless of the current source.
func (s *Session) showDetail(name string) {
	lines, err := s.Detail.Info(name)
	if err != nil {
		colError.Printf("Error: %v\n", err)
		return
	}
	if err := s.Page(name, lines); err != nil {
		colError.Printf("Error: %v\n", err)
	}
}

// toggleSource flips the listed package universe. The preview mode is left
// alone; only navigation resets it.
func (s *Session) toggleSource() {
	s.source = s.source.Toggle()
}

func (s *Session) togglePreview() {
	s.previewMode = s.previewMode.Toggle()
}

// navigated is called on every Up/Down movement; navigation always exits the
// help view.
func (s *Session) navigated() {
	s.previewMode = PreviewInfo
}

// headerLine renders the selector header for the current source.
func (s *Session) headerLine() string {
	return fmt.Sprintf("[::b]%s[::-] packages  [gray](Tab: switch source, ?: help, Esc: quit)[-]",
		strings.ToUpper(s.source.String()))
}

// previewFor renders the detail pane for the highlighted entry. The content
// is a pure function of (source, previewMode, highlighted name).
func (s *Session) previewFor(name string) string {
	if s.previewMode == PreviewHelp {
		return keyLegend()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "source: %s\n\n", s.source)
	if name == "" {
		b.WriteString("nothing to show")
		return b.String()
	}
	lines, err := s.Detail.Info(name)
	if err != nil {
		fmt.Fprintf(&b, "no info for %s:\n%v", name, err)
		return b.String()
	}
	b.WriteString(strings.Join(lines, "\n"))
	return b.String()
}

// newSelector binds the tview selector to this session's state.
func (s *Session) newSelector(entries []string) *Selector {
	return &Selector{
		Entries: func() ([]string, error) {
			return s.Provider.List(s.source)
		},
		Header:          s.headerLine,
		Preview:         s.previewFor,
		OnToggleSource:  s.toggleSource,
		OnTogglePreview: s.togglePreview,
		OnNavigate:      s.navigated,
		initial:         entries,
	}
}
