package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/muesli/reflow/wordwrap"

	"github.com/hoijui/rdfconvert/internal/planapp"
)

func newDetailViewport() viewport.Model {
	vp := viewport.New(0, 0)
	km := viewport.DefaultKeyMap()
	km.Up = key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up"))
	km.Down = key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down"))
	km.PageUp = key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("PgUp/b", "page up"))
	km.PageDown = key.NewBinding(key.WithKeys("pgdown", "f"), key.WithHelp("PgDn/f", "page down"))
	vp.KeyMap = km
	return vp
}

// renderEntryDetail builds the text shown in the detail viewport for one
// plan entry.
func renderEntryDetail(entry planapp.Entry, width int) string {
	if width <= 0 {
		width = 78
	}

	var b strings.Builder
	writeField := func(label, value string) {
		b.WriteString(labelStyle.Render(label+": ") + valueStyle.Render(value) + "\n")
	}

	writeField("Input", entry.InputPath)
	target := entry.TargetPath
	if target == "" {
		target = "(stdout)"
	}
	writeField("Target", target)

	if entry.Problem != "" {
		b.WriteString("\n" + problemStyle.Render("Problem") + "\n")
		b.WriteString(wordwrap.String(entry.Problem, width) + "\n")
		return b.String()
	}

	writeField("Statements", fmt.Sprintf("%d", entry.Statements))
	writeField("Subjects", fmt.Sprintf("%d", entry.Subjects))
	if entry.TargetExists {
		writeField("Note", "target file already exists, converting would prompt")
	}

	if len(entry.Sample) > 0 {
		b.WriteString("\n" + labelStyle.Render("Sample statements") + "\n")
		for _, line := range entry.Sample {
			b.WriteString(wordwrap.String(line, width) + "\n")
		}
		if entry.Statements > len(entry.Sample) {
			b.WriteString(helperTextStyle.Render(fmt.Sprintf("… and %d more", entry.Statements-len(entry.Sample))) + "\n")
		}
	}
	return b.String()
}
