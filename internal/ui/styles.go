package ui

import "github.com/charmbracelet/lipgloss"

var (
	TitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	PromptStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	ActiveStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	SelectedStyle = lipgloss.NewStyle().Background(lipgloss.Color("7")).Foreground(lipgloss.Color("0"))
	DimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)
