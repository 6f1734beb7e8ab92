package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderSettings() string {
	width := a.layoutWidth()
	cfg := a.state.config
	var b strings.Builder

	// Title
	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Settings")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, title))
	b.WriteString("\n\n")

	refine := "off"
	if cfg.Refine {
		refine = "on"
	}
	timeout := "none"
	if cfg.Timeout > 0 {
		timeout = cfg.Timeout.String()
	}
	path := cfg.Path()
	if path == "" {
		path = "not saved"
	}

	configLines := []string{
		fmt.Sprintf("  Backend:  %s", truncate(cfg.APIURL, 44)),
		fmt.Sprintf("  Refine:   %s (default)", refine),
		fmt.Sprintf("  Theme:    %s", cfg.Theme),
		fmt.Sprintf("  Timeout:  %s", timeout),
		fmt.Sprintf("  File:     %s", truncate(path, 44)),
	}

	configBox := styleBox.Copy().
		Width(60).
		Render(strings.Join(configLines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, configBox))
	b.WriteString("\n\n")

	if a.state.editingURL {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, a.renderURLInput()))
		b.WriteString("\n\n")
		if a.state.urlError != "" {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, styleError.Render(a.state.urlError)))
			b.WriteString("\n\n")
		}
		instructions := styleStatusBar.Render("[Enter] Save  [Esc] Cancel")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, instructions))
		return a.centerVertically(b.String())
	}

	actions := []string{
		"  [u] Change backend URL",
		"  [r] Toggle default refine",
	}
	actionsBox := styleBox.Copy().
		Width(60).
		Render(strings.Join(actions, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, actionsBox))
	b.WriteString("\n\n")

	if a.state.urlError != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, styleError.Render(a.state.urlError)))
		b.WriteString("\n\n")
	}

	instructions := styleStatusBar.Render("[Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, instructions))

	return a.centerVertically(b.String())
}
