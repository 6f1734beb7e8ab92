package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sant0-9/promptsig/internal/logging"
	"github.com/sant0-9/promptsig/internal/render"
	"github.com/sant0-9/promptsig/internal/signature"
)

const (
	copiedDuration  = 2 * time.Second
	genericErrorMsg = "An error occurred"
)

type generatedMsg struct {
	seq    uint64
	result signature.Result
	err    error
	took   time.Duration
}

type copyResetMsg struct{ seq int }

type savedMsg struct {
	path string
	err  error
}

// submit validates the prompt and starts one generation request.
func (a *App) submit() tea.Cmd {
	if a.state.loading {
		return nil
	}

	prompt := a.state.prompt.Value()
	if strings.TrimSpace(prompt) == "" {
		a.state.errMsg = signature.ErrEmptyPrompt.Error()
		return nil
	}

	a.state.errMsg = ""
	a.state.notice = ""
	a.setResult(signature.Result{})
	a.state.loading = true

	seq, ctx := a.state.tracker.Begin(a.ctx)
	req := signature.Request{Prompt: prompt, Refine: a.state.refine}
	client := a.state.client

	logging.S().Infow("submitting prompt", "seq", seq, "prompt_len", len(prompt), "refine", req.Refine)

	return tea.Batch(a.state.spinner.Tick, func() tea.Msg {
		start := time.Now()
		res, err := client.Generate(ctx, req)
		return generatedMsg{seq: seq, result: res, err: err, took: time.Since(start)}
	})
}

func (a *App) handleGenerated(msg generatedMsg) tea.Cmd {
	if !a.state.tracker.Finish(msg.seq) {
		logging.S().Debugw("dropping stale response", "seq", msg.seq, "current", a.state.tracker.Current())
		return nil
	}

	a.state.loading = false
	if msg.err != nil {
		a.state.errMsg = errorMessage(msg.err)
		a.setResult(signature.Result{})
		logging.S().Warnw("generation failed", "seq", msg.seq, "error", msg.err, "duration", msg.took)
		return nil
	}

	a.setResult(msg.result)
	logging.S().Infow("generation done", "seq", msg.seq, "kind", msg.result.Kind.String(), "bytes", len(msg.result.Text), "duration", msg.took)
	return nil
}

// errorMessage is what the user sees for a failed submission.
func errorMessage(err error) string {
	if err == nil || errors.Is(err, context.Canceled) {
		return ""
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return genericErrorMsg
}

func (a *App) setResult(res signature.Result) {
	a.state.result = res
	a.state.copied = false
	a.refreshResult()
}

// refreshResult re-renders the result into the viewport.
func (a *App) refreshResult() {
	text := a.state.result.Text
	if text == "" {
		a.state.viewport.SetContent("")
		return
	}

	out, err := a.highlight.Code(text, render.DetectLanguage(text))
	if err != nil {
		logging.S().Debugw("highlight failed", "error", err)
		out = render.Gutter(strings.Split(text, "\n"))
	}
	a.state.viewport.SetContent(out)
	a.state.viewport.GotoTop()
}

// copyResult puts the exact result on the clipboard. Failures are only logged.
func (a *App) copyResult() tea.Cmd {
	text := a.state.result.Text
	if text == "" {
		return nil
	}

	if err := a.clipboard(text); err != nil {
		logging.S().Warnw("clipboard write failed", "error", err)
		return nil
	}

	a.state.copySeq++
	a.state.copied = true
	seq := a.state.copySeq
	return tea.Tick(copiedDuration, func(time.Time) tea.Msg {
		return copyResetMsg{seq: seq}
	})
}

func (a *App) saveResult() tea.Cmd {
	res := a.state.result
	if res.Text == "" {
		return nil
	}

	w := a.writer
	return func() tea.Msg {
		path, err := w.Save(res)
		return savedMsg{path: path, err: err}
	}
}
