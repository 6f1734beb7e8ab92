package tui

import (
	_ "embed"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sant0-9/promptsig/internal/logging"
)

//go:embed info.md
var infoMarkdown string

func (a *App) renderInfo() string {
	width := a.layoutWidth()
	boxWidth := a.boxWidth()
	var b strings.Builder

	title := styleTitle.Render("About Signatures")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, title))
	b.WriteString("\n\n")

	body, err := a.markdown.Render(infoMarkdown, boxWidth-4)
	if err != nil {
		logging.S().Debugw("markdown render failed", "error", err)
		body = infoMarkdown
	}
	box := styleBox.Copy().
		Width(boxWidth).
		Render(body)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, box))
	b.WriteString("\n\n")

	instructions := styleStatusBar.Render("[Tab] Back to code  [F1] Help  [Ctrl+C] Quit")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, instructions))

	return b.String()
}
