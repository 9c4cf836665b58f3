// Package ui carries the small terminal theme ndctl renders with,
// trimmed from the teacher's internal/ui/themes.go down to the single
// dark palette ndctl actually uses.
package ui

import "github.com/charmbracelet/lipgloss"

// Theme groups the lipgloss styles ndctl's batch and tui output share.
type Theme struct {
	Primary   lipgloss.Style
	Secondary lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
}

// Dark is ndctl's only theme; the teacher's light/dark selection logic
// is dropped since the demonstrator has no user-facing theme flag.
var Dark = Theme{
	Primary:   lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
	Secondary: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("82")),
	Warning:   lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
}
