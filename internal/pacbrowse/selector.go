package pacbrowse

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/rivo/tview"
)

// Selector presents entries in a fuzzy-searchable list with a side preview
// pane. All session state reaches it through callbacks; the selector itself
// holds nothing beyond the current pass.
type Selector struct {
	// Entries reloads the list for the current source (called after a
	// source toggle).
	Entries func() ([]string, error)
	// Header renders the header line for the current source.
	Header func() string
	// Preview renders the detail pane for the highlighted entry's name.
	Preview func(name string) string

	OnToggleSource  func()
	OnTogglePreview func()
	OnNavigate      func()

	initial []string
}

// filterEntries narrows entries with case-insensitive fuzzy matching,
// best match first. An empty query keeps the provider's order.
func filterEntries(entries []string, query string) []string {
	query = strings.TrimSpace(query)
	if query == "" {
		return entries
	}
	ranks := fuzzy.RankFindFold(query, entries)
	sort.Stable(ranks)
	out := make([]string, 0, len(ranks))
	for _, r := range ranks {
		out = append(out, r.Target)
	}
	return out
}

// Run drives one selector pass and returns once the user confirms, presses
// an action key, or cancels with Esc.
func (s *Selector) Run() (Selection, error) {
	app := tview.NewApplication()

	header := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)
	header.SetText(s.Header())

	input := tview.NewInputField().
		SetLabel("> ").
		SetFieldBackgroundColor(tcell.ColorDefault)

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	preview := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true)
	preview.SetBorder(true)

	entries := s.initial
	filtered := entries

	// currentLine reads from the filtered slice, not the widget: item text
	// is tag-escaped for display and must not leak into results.
	currentLine := func() string {
		idx := list.GetCurrentItem()
		if idx < 0 || idx >= len(filtered) {
			return ""
		}
		return filtered[idx]
	}

	refreshPreview := func() {
		preview.SetText(tview.Escape(s.Preview(nameToken(currentLine()))))
	}

	repopulate := func() {
		list.Clear()
		for _, e := range filtered {
			list.AddItem(tview.Escape(e), "", 0, nil)
		}
		refreshPreview()
	}

	applyFilter := func(query string) {
		filtered = filterEntries(entries, query)
		repopulate()
	}

	input.SetChangedFunc(applyFilter)

	// Recompute the preview on every highlight change.
	list.SetChangedFunc(func(int, string, string, rune) {
		refreshPreview()
	})

	left := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(header, 1, 0, false).
		AddItem(input, 1, 0, true).
		AddItem(list, 0, 1, false)

	flex := tview.NewFlex().
		AddItem(left, 0, 1, true).
		AddItem(preview, 0, 1, false)

	var result Selection
	var reloadErr error

	stop := func(sel Selection) {
		result = sel
		app.Stop()
	}

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyTab:
			// Switch source and reload in place. The preview mode is
			// deliberately left untouched.
			s.OnToggleSource()
			next, err := s.Entries()
			if err != nil {
				reloadErr = err
				app.Stop()
				return nil
			}
			entries = next
			header.SetText(s.Header())
			applyFilter(input.GetText())
			return nil

		case tcell.KeyUp, tcell.KeyDown:
			// Navigation always exits the help view.
			s.OnNavigate()
			if n := list.GetItemCount(); n > 0 {
				idx := list.GetCurrentItem()
				if event.Key() == tcell.KeyUp {
					idx--
				} else {
					idx++
				}
				if idx < 0 {
					idx = 0
				}
				if idx >= n {
					idx = n - 1
				}
				list.SetCurrentItem(idx)
			}
			refreshPreview()
			return nil

		case tcell.KeyEnter:
			stop(Selection{Key: ActionNone, Line: currentLine()})
			return nil

		case tcell.KeyEscape:
			stop(Selection{Cancelled: true})
			return nil

		case tcell.KeyRune:
			switch event.Rune() {
			case '?':
				s.OnTogglePreview()
				refreshPreview()
				return nil
			case 'u':
				stop(Selection{Key: ActionUpdate, Line: currentLine()})
				return nil
			case 'd':
				stop(Selection{Key: ActionRemove, Line: currentLine()})
				return nil
			case 'r':
				stop(Selection{Key: ActionReinstall, Line: currentLine()})
				return nil
			}
		}
		return event
	})

	repopulate()

	if err := app.SetRoot(flex, true).SetFocus(input).Run(); err != nil {
		return Selection{}, fmt.Errorf("selector failed: %w", err)
	}
	if reloadErr != nil {
		return Selection{}, reloadErr
	}
	return result, nil
}
