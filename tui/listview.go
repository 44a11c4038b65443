package tui

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"

	"github.com/hoijui/rdfconvert/internal/planapp"
)

func newEntryList() list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true
	delegate.SetSpacing(0)
	delegate.Styles.NormalTitle = headerStyle.Copy().Faint(true)
	delegate.Styles.SelectedTitle = headerStyle.Copy()
	delegate.Styles.NormalDesc = helperTextStyle
	delegate.Styles.SelectedDesc = helperTextStyle.Copy().Foreground(lipgloss.Color("252"))

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Conversion Plan"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.Styles.Title = headerStyle
	l.Styles.NoItems = helperTextStyle
	return l
}

type entryItem struct {
	entry planapp.Entry
}

func (e entryItem) Title() string {
	return filepath.Base(e.entry.InputPath)
}

func (e entryItem) Description() string {
	if e.entry.Problem != "" {
		return truncate("! "+e.entry.Problem, 90)
	}
	target := e.entry.TargetPath
	if target == "" {
		target = "(stdout)"
	}
	suffix := ""
	if e.entry.TargetExists {
		suffix = " [exists]"
	}
	return truncate(fmt.Sprintf("%d statements -> %s%s", e.entry.Statements, target, suffix), 90)
}

func (e entryItem) FilterValue() string { return e.entry.InputPath }

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit-1] + "…"
}
