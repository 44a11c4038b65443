// Package tui implements the rdfbrowse terminal UI: a searchable list of
// planned conversions with a per-file detail view.
package tui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hoijui/rdfconvert/internal/planapp"
)

type state int

const (
	stateLoading state = iota
	stateList
	stateDetail
)

type planLoadedMsg struct {
	plan *planapp.Plan
	err  error
}

// PlanLoader produces the conversion plan shown by the browser. It runs in a
// Bubble Tea command so discovery and parsing do not block the first render.
type PlanLoader func() (*planapp.Plan, error)

// Model is the Bubble Tea program state.
type Model struct {
	state       state
	load        PlanLoader
	plan        *planapp.Plan
	filtered    []planapp.Entry
	list        list.Model
	searching   bool
	searchInput textinput.Model
	detail      planapp.Entry
	viewport    viewport.Model
	width       int
	height      int
	err         error
}

// NewModel initializes the browser over the given plan loader.
func NewModel(load PlanLoader) Model {
	ti := textinput.New()
	ti.Placeholder = "Search by path"
	ti.CharLimit = 128
	ti.Prompt = "/ "

	return Model{
		state:       stateLoading,
		load:        load,
		list:        newEntryList(),
		searchInput: ti,
		viewport:    newDetailViewport(),
		width:       80,
		height:      24,
	}
}

// Init kicks off plan loading.
func (m Model) Init() tea.Cmd {
	return tea.Batch(loadPlanCmd(m.load), tea.EnterAltScreen)
}

func loadPlanCmd(load PlanLoader) tea.Cmd {
	return func() tea.Msg {
		plan, err := load()
		return planLoadedMsg{plan: plan, err: err}
	}
}

// Update handles Bubble Tea messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.list.SetSize(msg.Width-4, max(5, msg.Height-5))
		m.viewport.Width = max(20, msg.Width-6)
		m.viewport.Height = max(5, msg.Height-6)
	case planLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.plan = msg.plan
		m.applyFilter("")
		m.state = stateList
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if !m.searching {
				return m, tea.Quit
			}
		case "/":
			if m.state == stateList && !m.searching {
				m.searching = true
				m.searchInput.Reset()
				m.searchInput.Focus()
				m.applyFilter("")
				return m, nil
			}
		case "esc":
			if m.searching {
				m.searching = false
				m.searchInput.Reset()
				m.searchInput.Blur()
				m.applyFilter("")
				return m, nil
			}
			if m.state == stateDetail {
				m.state = stateList
				return m, nil
			}
		case "enter":
			if m.searching {
				m.searching = false
				m.searchInput.Blur()
				return m, nil
			}
			if m.state == stateList && len(m.filtered) > 0 {
				if item, ok := m.list.SelectedItem().(entryItem); ok {
					m.detail = item.entry
					m.viewport.SetContent(renderEntryDetail(item.entry, m.viewport.Width))
					m.viewport.GotoTop()
					m.state = stateDetail
					return m, nil
				}
			}
		}
	}

	var cmd tea.Cmd
	switch {
	case m.searching:
		m.searchInput, cmd = m.searchInput.Update(msg)
		m.applyFilter(m.searchInput.Value())
	case m.state == stateList:
		m.list, cmd = m.list.Update(msg)
	case m.state == stateDetail:
		m.viewport, cmd = m.viewport.Update(msg)
	}
	return m, cmd
}

func (m *Model) applyFilter(query string) {
	if m.plan == nil {
		return
	}
	m.filtered = planapp.Filter(m.plan.Entries, query)
	items := make([]list.Item, len(m.filtered))
	for i, entry := range m.filtered {
		items[i] = entryItem{entry: entry}
	}
	m.list.SetItems(items)
	if len(items) > 0 {
		m.list.Select(0)
	}
}

// View renders the current state.
func (m Model) View() string {
	if m.err != nil {
		return problemStyle.Render("error: "+m.err.Error()) + "\n"
	}

	switch m.state {
	case stateLoading:
		return helperTextStyle.Render("Loading conversion plan…") + "\n"
	case stateDetail:
		title := headerStyle.Render("Planned Conversion")
		body := panelStyle.Width(max(24, m.width-2)).Render(m.viewport.View())
		help := helperTextStyle.Render("esc back · q quit")
		return lipgloss.JoinVertical(lipgloss.Left, title, body, help)
	default:
		title := headerStyle.Render("Conversion Plan " + m.planSummary())
		var search string
		if m.searching {
			search = searchStyle.Render(m.searchInput.View())
		} else {
			search = helperTextStyle.Render("enter detail · / search · q quit")
		}
		return lipgloss.JoinVertical(lipgloss.Left, title, m.list.View(), search)
	}
}

func (m Model) planSummary() string {
	if m.plan == nil {
		return ""
	}
	return "(" + m.plan.From + " → " + m.plan.To + ")"
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
