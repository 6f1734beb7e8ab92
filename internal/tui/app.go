package tui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sant0-9/promptsig/internal/config"
	"github.com/sant0-9/promptsig/internal/logging"
	"github.com/sant0-9/promptsig/internal/render"
	"github.com/sant0-9/promptsig/internal/signature"
	"github.com/sant0-9/promptsig/internal/writer"
)

type view int

const (
	viewCode view = iota
	viewInfo
	viewSetup
	viewSettings
	viewHelp
)

const pingTimeout = 5 * time.Second

// Generator is the backend the app talks to.
type Generator interface {
	Generate(ctx context.Context, req signature.Request) (signature.Result, error)
	Ping(ctx context.Context) error
}

// Options wires the app's collaborators. Zero values get working defaults.
type Options struct {
	Config     *config.Config
	NeedsSetup bool
	NewClient  func(cfg *config.Config) Generator
	Clipboard  func(text string) error
	Writer     *writer.Writer
	Highlight  *render.Highlighter
	Markdown   *render.Markdown
}

type App struct {
	width    int
	height   int
	view     view
	lastView view
	state    *state
	quitting bool

	ctx       context.Context
	cancel    context.CancelFunc
	newClient func(cfg *config.Config) Generator
	clipboard func(text string) error
	writer    *writer.Writer
	highlight *render.Highlighter
	markdown  *render.Markdown
}

// DefaultClient builds the HTTP backend client from config.
func DefaultClient(cfg *config.Config) Generator {
	return signature.NewClient(cfg.APIURL, signature.WithTimeout(cfg.Timeout))
}

func NewApp(opts Options) *App {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	a := &App{
		view:      viewCode,
		state:     newState(cfg),
		newClient: opts.NewClient,
		clipboard: opts.Clipboard,
		writer:    opts.Writer,
		highlight: opts.Highlight,
		markdown:  opts.Markdown,
	}
	if a.newClient == nil {
		a.newClient = DefaultClient
	}
	if a.clipboard == nil {
		a.clipboard = clipboard.WriteAll
	}
	if a.writer == nil {
		a.writer = writer.New(".")
	}
	if a.highlight == nil {
		a.highlight = render.NewHighlighter(cfg.Theme, "terminal256")
	}
	if a.markdown == nil {
		a.markdown = render.NewMarkdown("dark")
	}
	a.ctx, a.cancel = context.WithCancel(context.Background())

	a.state.needsSetup = opts.NeedsSetup
	if a.state.needsSetup {
		a.view = viewSetup
		a.state.urlInput.Focus()
	} else {
		a.state.client = a.newClient(cfg)
		a.state.prompt.Focus()
	}

	return a
}

func (a *App) Init() tea.Cmd {
	if a.state.needsSetup {
		return tea.Batch(tea.WindowSize(), textinput.Blink)
	}

	return tea.Batch(
		tea.WindowSize(),
		textarea.Blink,
		a.pingBackend(),
	)
}

// pingBackend checks the current client. Replies from earlier pings are
// ignored once the client changes.
func (a *App) pingBackend() tea.Cmd {
	a.state.pingSeq++
	seq := a.state.pingSeq
	client := a.state.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
		defer cancel()

		if err := client.Ping(ctx); err != nil {
			return backendErrorMsg{seq: seq, err: err}
		}
		return backendReadyMsg{seq: seq}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, handled := a.handleKey(msg)
		if handled {
			return a, cmd
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.resize()

	case tea.MouseMsg:
		if a.view == viewCode {
			var cmd tea.Cmd
			a.state.viewport, cmd = a.state.viewport.Update(msg)
			return a, cmd
		}
		return a, nil

	case setupCompleteMsg:
		a.state.needsSetup = false
		a.state.editingURL = false
		a.state.client = a.newClient(a.state.config)
		a.state.backendReady = false
		a.state.backendError = nil
		a.state.urlInput.Blur()
		if a.view == viewSetup {
			a.view = viewCode
		}
		a.state.prompt.Focus()
		logging.S().Infow("backend configured", "api_url", a.state.config.APIURL, "path", a.state.config.Path())
		return a, tea.Batch(textarea.Blink, a.pingBackend())

	case setupErrorMsg:
		a.state.urlError = msg.Error()
		return a, nil

	case backendReadyMsg:
		if msg.seq != a.state.pingSeq {
			return a, nil
		}
		a.state.backendReady = true
		a.state.backendError = nil
		logging.S().Infow("backend reachable", "api_url", a.state.config.APIURL)
		return a, nil

	case backendErrorMsg:
		if msg.seq != a.state.pingSeq {
			return a, nil
		}
		a.state.backendReady = false
		a.state.backendError = msg.err
		logging.S().Warnw("backend ping failed", "api_url", a.state.config.APIURL, "error", msg.err)
		return a, nil

	case generatedMsg:
		return a, a.handleGenerated(msg)

	case spinner.TickMsg:
		if !a.state.loading {
			return a, nil
		}
		var cmd tea.Cmd
		a.state.spinner, cmd = a.state.spinner.Update(msg)
		return a, cmd

	case copyResetMsg:
		if msg.seq == a.state.copySeq {
			a.state.copied = false
		}
		return a, nil

	case savedMsg:
		if msg.err != nil {
			a.state.notice = "Save failed: " + msg.err.Error()
			logging.S().Warnw("save failed", "error", msg.err)
		} else {
			a.state.notice = "Saved to " + msg.path
			logging.S().Infow("result saved", "path", msg.path)
		}
		return a, nil
	}

	// Forward remaining messages to the focused input
	switch {
	case a.view == viewSetup || (a.view == viewSettings && a.state.editingURL):
		var cmd tea.Cmd
		a.state.urlInput, cmd = a.state.urlInput.Update(msg)
		cmds = append(cmds, cmd)
	case a.view == viewCode && a.state.focus == focusPrompt:
		var cmd tea.Cmd
		a.state.prompt, cmd = a.state.prompt.Update(msg)
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

// handleKey returns handled=false when the key should reach the focused input.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if key.Matches(msg, keys.Quit) {
		return a.quit(), true
	}

	switch a.view {
	case viewSetup:
		return a.handleSetupKey(msg)
	case viewSettings:
		return a.handleSettingsKey(msg)
	case viewHelp:
		if key.Matches(msg, keys.Back, keys.Help) {
			a.view = a.lastView
			return nil, true
		}
		return nil, true
	}

	// Code and info views share the global bindings
	switch {
	case key.Matches(msg, keys.Tab):
		a.toggleView()
		return nil, true
	case key.Matches(msg, keys.Help):
		a.lastView = a.view
		a.view = viewHelp
		return nil, true
	case key.Matches(msg, keys.Settings):
		a.lastView = a.view
		a.view = viewSettings
		return nil, true
	case key.Matches(msg, keys.Submit):
		return a.submit(), true
	case key.Matches(msg, keys.Copy):
		return a.copyResult(), true
	case key.Matches(msg, keys.Save):
		return a.saveResult(), true
	case key.Matches(msg, keys.Refine):
		a.state.refine = !a.state.refine
		return nil, true
	}

	if a.view == viewInfo {
		if key.Matches(msg, keys.Back) {
			a.view = viewCode
		}
		return nil, true
	}

	if a.state.focus == focusExamples {
		return a.handleExamplesKey(msg), true
	}

	switch {
	case key.Matches(msg, keys.Examples):
		a.openExamples()
		return nil, true
	case key.Matches(msg, keys.PageUp, keys.PageDown):
		var cmd tea.Cmd
		a.state.viewport, cmd = a.state.viewport.Update(msg)
		return cmd, true
	}

	return nil, false
}

// toggleView switches between code and info. Prompt and result are untouched.
func (a *App) toggleView() {
	if a.view == viewCode {
		a.view = viewInfo
		a.state.prompt.Blur()
		return
	}
	a.view = viewCode
	if a.state.focus == focusPrompt {
		a.state.prompt.Focus()
	}
}

func (a *App) quit() tea.Cmd {
	a.state.tracker.Cancel()
	a.cancel()
	a.quitting = true
	return tea.Quit
}

func (a *App) handleSetupKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.Back):
		return a.quit(), true
	case key.Matches(msg, keys.Enter):
		return a.applyURL(), true
	}
	return nil, false
}

func (a *App) handleSettingsKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if a.state.editingURL {
		switch {
		case key.Matches(msg, keys.Back):
			a.state.editingURL = false
			a.state.urlError = ""
			a.state.urlInput.SetValue(a.state.config.APIURL)
			a.state.urlInput.Blur()
			return nil, true
		case key.Matches(msg, keys.Enter):
			return a.applyURL(), true
		}
		return nil, false
	}

	switch {
	case key.Matches(msg, keys.Back, keys.Settings):
		a.view = a.lastView
		return nil, true
	case msg.String() == "u":
		a.state.editingURL = true
		a.state.urlError = ""
		a.state.urlInput.SetValue(a.state.config.APIURL)
		a.state.urlInput.CursorEnd()
		a.state.urlInput.Focus()
		return textinput.Blink, true
	case msg.String() == "r":
		refine := !a.state.config.Refine
		a.state.config.Refine = refine
		a.state.refine = refine
		return a.saveConfig(func(c *config.Config) { c.Refine = refine }), true
	}
	return nil, true
}

// applyURL validates the typed backend URL and persists it.
func (a *App) applyURL() tea.Cmd {
	candidate := *a.state.config
	candidate.APIURL = a.state.urlInput.Value()
	if candidate.APIURL == "" {
		candidate.APIURL = config.DefaultAPIURL
	}
	if err := candidate.Validate(); err != nil {
		a.state.urlError = err.Error()
		return nil
	}

	a.state.urlError = ""
	a.state.config.APIURL = candidate.APIURL
	return a.saveConfig(func(c *config.Config) { c.APIURL = candidate.APIURL })
}

// saveConfig applies edit to the file as stored on disk, so env and flag
// overrides held in memory are never persisted.
func (a *App) saveConfig(edit func(c *config.Config)) tea.Cmd {
	path := a.state.config.Path()
	return func() tea.Msg {
		onDisk, err := config.LoadFrom(path)
		if err != nil {
			return setupErrorMsg{err}
		}
		if onDisk == nil {
			onDisk = config.DefaultConfig()
			onDisk.SetPath(path)
		}
		edit(onDisk)
		if err := onDisk.Save(); err != nil {
			return setupErrorMsg{err}
		}
		return setupCompleteMsg{}
	}
}

type setupCompleteMsg struct{}
type setupErrorMsg struct{ error }
type backendReadyMsg struct{ seq int }

type backendErrorMsg struct {
	seq int
	err error
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	switch a.view {
	case viewSetup:
		return a.renderSetup()
	case viewSettings:
		return a.renderSettings()
	case viewHelp:
		return a.renderHelp()
	case viewInfo:
		return a.renderInfo()
	default:
		return a.renderCode()
	}
}
