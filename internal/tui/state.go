package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/sant0-9/promptsig/internal/config"
	"github.com/sant0-9/promptsig/internal/signature"
)

type focus int

const (
	focusPrompt focus = iota
	focusExamples
)

type state struct {
	// Config
	config     *config.Config
	needsSetup bool

	// Setup / settings URL entry
	urlInput   textinput.Model
	urlError   string
	editingURL bool

	// Compose
	prompt        textarea.Model
	focus         focus
	exampleCursor int
	refine        bool

	// Submission
	tracker signature.Tracker
	loading bool
	errMsg  string
	spinner spinner.Model

	// Result
	result   signature.Result
	viewport viewport.Model
	copied   bool
	copySeq  int
	notice   string

	// Backend
	client       Generator
	pingSeq      int
	backendReady bool
	backendError error
}

func newState(cfg *config.Config) *state {
	prompt := textarea.New()
	prompt.Placeholder = "Describe the task, e.g. extract the patient name and diagnosis from clinical notes..."
	prompt.CharLimit = 0
	prompt.MaxHeight = 0
	prompt.ShowLineNumbers = false
	prompt.SetHeight(promptHeight)
	prompt.SetWidth(70)

	url := textinput.New()
	url.Placeholder = config.DefaultAPIURL
	url.CharLimit = 300
	url.Width = 50
	url.SetValue(cfg.APIURL)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styleSelected

	return &state{
		config:   cfg,
		prompt:   prompt,
		urlInput: url,
		refine:   cfg.Refine,
		spinner:  sp,
		viewport: viewport.New(70, 12),
	}
}
