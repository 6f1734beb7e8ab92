package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sant0-9/promptsig/internal/examples"
)

const (
	promptHeight  = 6
	minViewHeight = 5
)

func (a *App) layoutWidth() int {
	if a.width <= 0 {
		return 80
	}
	return a.width
}

func (a *App) boxWidth() int {
	return max(30, min(100, a.layoutWidth()-4))
}

// resize fits the prompt and result panes to the window.
func (a *App) resize() {
	inner := a.boxWidth() - 4
	a.state.prompt.SetWidth(inner)

	height := a.height
	if height <= 0 {
		height = 40
	}
	// header, prompt box, status lines, result frame, status bar
	vh := height - promptHeight - 14
	a.state.viewport.Width = inner
	a.state.viewport.Height = max(minViewHeight, vh)
	a.refreshResult()
}

func (a *App) renderCode() string {
	width := a.layoutWidth()
	boxWidth := a.boxWidth()
	var b strings.Builder

	// Header
	title := styleTitle.Render("Prompt to Signature")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, title))
	b.WriteString("\n")
	subtitle := styleSubtitle.Render("Convert natural language prompts into signatures")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, subtitle))
	b.WriteString("\n\n")

	// Prompt
	label := "Prompt"
	if i := examples.ActiveIndex(a.state.prompt.Value()); i >= 0 {
		e, _ := examples.Get(i)
		label += styleSelected.Render("  [example: " + e.Name + "]")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, lipgloss.NewStyle().Width(boxWidth).Render(label)))
	b.WriteString("\n")

	border := colorMuted
	if a.state.focus == focusPrompt {
		border = colorPrimary
	}
	promptBox := styleBox.Copy().
		Width(boxWidth).
		BorderForeground(border).
		Render(a.state.prompt.View())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, promptBox))
	b.WriteString("\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, lipgloss.NewStyle().Width(boxWidth).Render(a.statusLine())))
	b.WriteString("\n\n")

	// Examples picker or result
	if a.state.focus == focusExamples {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, a.renderExamples(boxWidth)))
		b.WriteString("\n\n")
	} else if a.state.result.Text != "" {
		heading := "Generated Code"
		if a.state.copied {
			heading += "  " + styleSuccess.Render("Copied!")
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, lipgloss.NewStyle().Width(boxWidth).Render(heading)))
		b.WriteString("\n")

		resultBox := styleBox.Copy().
			Width(boxWidth).
			BorderForeground(colorSecondary).
			Render(a.state.viewport.View())
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, resultBox))
		b.WriteString("\n\n")
	}

	// Status bar
	var status string
	switch {
	case a.state.focus == focusExamples:
		status = "[j/k] Navigate  [Enter] Use example  [Esc] Back"
	case a.state.result.Text != "":
		status = "[Ctrl+S] Generate  [Ctrl+Y] Copy  [Ctrl+O] Save  [Ctrl+E] Examples  [Tab] Info  [F1] Help"
	default:
		status = "[Ctrl+S] Generate  [Ctrl+E] Examples  [Ctrl+R] Refine  [Tab] Info  [F1] Help  [Ctrl+C] Quit"
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, styleStatusBar.Render(status)))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, a.backendLine()))

	return b.String()
}

// statusLine shows refine, loading, the last error or a notice.
func (a *App) statusLine() string {
	refine := "refine: off"
	if a.state.refine {
		refine = "refine: on"
	}
	parts := []string{styleSubtitle.Render(refine)}

	switch {
	case a.state.loading:
		parts = append(parts, a.state.spinner.View()+" "+styleSelected.Render("Generating..."))
	case a.state.errMsg != "":
		parts = append(parts, styleError.Render(a.state.errMsg))
	case a.state.notice != "":
		parts = append(parts, styleSubtitle.Render(truncate(a.state.notice, 70)))
	}
	return strings.Join(parts, "   ")
}

func (a *App) backendLine() string {
	api := truncate(a.state.config.APIURL, 50)
	switch {
	case a.state.backendReady:
		return styleStatusBar.Render("backend ") + styleSuccess.Render("ready") + styleStatusBar.Render(" at "+api)
	case a.state.backendError != nil:
		return styleError.Render("backend unreachable: " + truncate(a.state.backendError.Error(), 60))
	default:
		return styleStatusBar.Render("checking backend at " + api + "...")
	}
}

func (a *App) renderExamples(boxWidth int) string {
	active := examples.ActiveIndex(a.state.prompt.Value())

	var lines []string
	for i, e := range examples.All() {
		cursor := "  "
		if i == a.state.exampleCursor {
			cursor = "> "
		}
		mark := "[ ]"
		if i == active {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s%s %2d. %-20s %s", cursor, mark, i+1, e.Name, e.Description)
		line = truncate(line, boxWidth-4)
		if i == a.state.exampleCursor {
			line = styleSelected.Render(line)
		} else {
			line = styleSubtitle.Render(line)
		}
		lines = append(lines, line)
	}

	return styleBox.Copy().
		Width(boxWidth).
		BorderForeground(colorSecondary).
		Render("Examples (replaces the current prompt)\n\n" + strings.Join(lines, "\n"))
}
