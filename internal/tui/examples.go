package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sant0-9/promptsig/internal/examples"
)

func (a *App) openExamples() {
	a.state.focus = focusExamples
	a.state.prompt.Blur()
	if i := examples.ActiveIndex(a.state.prompt.Value()); i >= 0 {
		a.state.exampleCursor = i
	}
}

func (a *App) closeExamples() {
	a.state.focus = focusPrompt
	a.state.prompt.Focus()
}

func (a *App) handleExamplesKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Up):
		if a.state.exampleCursor > 0 {
			a.state.exampleCursor--
		}
	case key.Matches(msg, keys.Down):
		if a.state.exampleCursor < examples.Len()-1 {
			a.state.exampleCursor++
		}
	case key.Matches(msg, keys.Enter):
		a.selectExample(a.state.exampleCursor)
		a.closeExamples()
	case key.Matches(msg, keys.Back, keys.Examples):
		a.closeExamples()
	}
	return nil
}

// selectExample replaces the prompt with template i. Nothing is merged.
func (a *App) selectExample(i int) bool {
	e, ok := examples.Get(i)
	if !ok {
		return false
	}
	a.state.prompt.SetValue(e.Body)
	return true
}
