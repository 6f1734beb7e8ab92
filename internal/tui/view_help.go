package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderHelp() string {
	width := a.layoutWidth()
	var b strings.Builder

	// Title
	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Help")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, title))
	b.WriteString("\n\n")

	commands := []string{
		"  Ctrl+S     Generate a signature from the prompt",
		"  Ctrl+E     Pick an example prompt",
		"  Ctrl+R     Toggle refine for this session",
		"  Ctrl+Y     Copy the generated code",
		"  Ctrl+O     Save the generated code to a file",
		"  PgUp/PgDn  Scroll the generated code",
		"  Tab        Switch between code and info",
		"  F2         Settings",
		"  F1         This help",
		"  Esc        Back",
		"  Ctrl+C     Quit",
	}

	commandsBox := styleBox.Copy().
		Width(60).
		Render(strings.Join(commands, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, commandsBox))
	b.WriteString("\n\n")

	instructions := styleStatusBar.Render("[Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, instructions))

	return a.centerVertically(b.String())
}
