package tui

import "github.com/charmbracelet/lipgloss"

var (
	accentColor     = lipgloss.Color("99")
	subtleColor     = lipgloss.Color("245")
	panelStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accentColor).Padding(1, 2)
	labelStyle      = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	valueStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	problemStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	headerStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	helperTextStyle = lipgloss.NewStyle().Foreground(subtleColor)
	searchStyle     = lipgloss.NewStyle().Foreground(accentColor).PaddingLeft(1)
)
