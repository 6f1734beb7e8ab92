package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderSetup() string {
	width := a.layoutWidth()
	var b strings.Builder

	// Header
	header := styleTitle.Render("Prompt to Signature")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, header))
	b.WriteString("\n\n")

	title := lipgloss.NewStyle().
		Foreground(colorWhite).
		Bold(true).
		Render("Where is the signature backend running?")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, title))
	b.WriteString("\n\n")

	hint := styleSubtitle.Render("Leave empty for " + a.state.urlInput.Placeholder)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, hint))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, a.renderURLInput()))
	b.WriteString("\n\n")

	if a.state.urlError != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, styleError.Render(a.state.urlError)))
		b.WriteString("\n\n")
	}

	instructions := styleStatusBar.Render("[Enter] Continue  [Esc] Quit")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, instructions))

	return a.centerVertically(b.String())
}

func (a *App) renderURLInput() string {
	return styleBox.Copy().
		Width(60).
		BorderForeground(colorSecondary).
		Render(a.state.urlInput.View())
}

func (a *App) centerVertically(content string) string {
	lines := strings.Count(content, "\n") + 1
	padding := (a.height - lines) / 2
	if padding < 0 {
		padding = 0
	}
	return strings.Repeat("\n", padding) + content
}
