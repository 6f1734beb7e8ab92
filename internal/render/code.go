package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var gutterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))

// Highlighter renders source code with syntax colors and a line-number gutter.
type Highlighter struct {
	style     *chroma.Style
	formatter chroma.Formatter
}

// NewHighlighter uses the named chroma style; unknown names fall back to
// chroma's default. formatter is a chroma formatter name such as
// "terminal256" or "noop".
func NewHighlighter(style, formatter string) *Highlighter {
	f := formatters.Get(formatter)
	if f == nil {
		f = formatters.TTY256
	}
	return &Highlighter{
		style:     styles.Get(style),
		formatter: f,
	}
}

// DetectLanguage picks a lexer for a backend result: JSON when the text
// parses as JSON, otherwise Python, which is what signature code is.
func DetectLanguage(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed != "" && json.Valid([]byte(trimmed)) {
		return "json"
	}
	return "python"
}

// Code highlights text line by line so colors never bleed into the gutter.
func (h *Highlighter) Code(text, lang string) (string, error) {
	if text == "" {
		return "", nil
	}

	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, text)
	if err != nil {
		return "", fmt.Errorf("tokenise: %w", err)
	}

	lines := chroma.SplitTokensIntoLines(it.Tokens())
	rendered := make([]string, 0, len(lines))
	for _, line := range lines {
		// Drop the line break before formatting so escape codes never wrap it.
		if n := len(line); n > 0 {
			line = append([]chroma.Token(nil), line...)
			line[n-1].Value = strings.TrimSuffix(line[n-1].Value, "\n")
		}
		var buf bytes.Buffer
		if err := h.formatter.Format(&buf, h.style, chroma.Literator(line...)); err != nil {
			return "", fmt.Errorf("format: %w", err)
		}
		rendered = append(rendered, strings.TrimRight(buf.String(), "\n"))
	}

	// The lexer may append a final newline the input never had.
	want := strings.Count(text, "\n") + 1
	if strings.HasSuffix(text, "\n") {
		want--
	}
	for len(rendered) > want && len(rendered) > 0 && strings.TrimSpace(ansi.Strip(rendered[len(rendered)-1])) == "" {
		rendered = rendered[:len(rendered)-1]
	}

	return Gutter(rendered), nil
}

// Gutter prefixes each line with a right-aligned line number.
func Gutter(lines []string) string {
	width := len(fmt.Sprint(len(lines)))
	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(gutterStyle.Render(fmt.Sprintf("%*d │", width, i+1)))
		b.WriteByte(' ')
		b.WriteString(line)
	}
	return b.String()
}
