package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{text: `{"a": 1}`, want: "json"},
		{text: "  [1, 2]\n", want: "json"},
		{text: "class QA(dspy.Signature):\n    question: str = dspy.InputField()", want: "python"},
		{text: "", want: "python"},
		{text: "{broken", want: "python"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DetectLanguage(tt.text), "text %q", tt.text)
	}
}

func TestCodeKeepsTextAndNumbersLines(t *testing.T) {
	h := NewHighlighter("monokai", "noop")

	got, err := h.Code("class QA:\n    pass", "python")
	require.NoError(t, err)

	lines := strings.Split(got, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "1 │ class QA:", lines[0])
	assert.Equal(t, "2 │     pass", lines[1])
}

func TestCodeGutterWidth(t *testing.T) {
	h := NewHighlighter("monokai", "noop")

	text := strings.TrimSuffix(strings.Repeat("x = 1\n", 12), "\n")
	got, err := h.Code(text, "python")
	require.NoError(t, err)

	lines := strings.Split(got, "\n")
	require.Len(t, lines, 12)
	assert.Equal(t, " 1 │ x = 1", lines[0])
	assert.Equal(t, "12 │ x = 1", lines[11])
}

func TestCodeTrailingNewlineAndBlankLines(t *testing.T) {
	h := NewHighlighter("monokai", "noop")

	got, err := h.Code("{\n\n  \"a\": 1\n}\n", "json")
	require.NoError(t, err)
	assert.Equal(t, []string{"1 │ {", "2 │ ", "3 │   \"a\": 1", "4 │ }"}, strings.Split(got, "\n"))
}

func TestCodeEmpty(t *testing.T) {
	got, err := NewHighlighter("monokai", "noop").Code("", "json")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCodeUnknownLanguageAndStyle(t *testing.T) {
	h := NewHighlighter("no-such-style", "no-such-formatter")
	got, err := h.Code("plain", "no-such-lang")
	require.NoError(t, err)
	assert.Contains(t, got, "plain")
}

func TestMarkdown(t *testing.T) {
	md := NewMarkdown("notty")

	out, err := md.Render("# Title\n\nSome *body* text.", 60)
	require.NoError(t, err)
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "body")

	// Renderer is rebuilt for a new width.
	out, err = md.Render("short", 30)
	require.NoError(t, err)
	assert.Contains(t, out, "short")
	assert.Equal(t, 30, md.width)
}

func TestCodeColoredTrimsTrailingLines(t *testing.T) {
	h := NewHighlighter("monokai", "terminal256")

	got, err := h.Code("a = 1\n\nb = 2\n", "python")
	require.NoError(t, err)
	assert.Contains(t, got, "\x1b[")
	assert.Equal(t, []string{"1 │ a = 1", "2 │ ", "3 │ b = 2"}, strings.Split(ansi.Strip(got), "\n"))
}
