package writer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sant0-9/promptsig/internal/signature"
)

// ErrEmptyResult is returned when there is nothing to save.
var ErrEmptyResult = errors.New("nothing to save")

const maxCollisions = 1000

// Writer saves generated signatures to disk.
type Writer struct {
	dir string
	now func() time.Time
}

// New creates a writer that saves into dir. An empty dir means the working directory.
func New(dir string) *Writer {
	if dir == "" {
		dir = "."
	}
	return &Writer{dir: dir, now: time.Now}
}

// Save writes the result to signature-<timestamp>.<ext> and returns the path.
// Existing files are never overwritten; a -N suffix is added instead.
func (w *Writer) Save(res signature.Result) (string, error) {
	if res.Text == "" {
		return "", ErrEmptyResult
	}

	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return "", err
	}

	content := res.Text
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}

	base := "signature-" + w.now().Format("20060102-150405")
	ext := Extension(res)
	for n := 0; n < maxCollisions; n++ {
		name := base + "." + ext
		if n > 0 {
			name = fmt.Sprintf("%s-%d.%s", base, n, ext)
		}
		path := filepath.Join(w.dir, name)

		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", err
		}
		if _, err := f.WriteString(content); err != nil {
			f.Close()
			return "", err
		}
		if err := f.Close(); err != nil {
			return "", err
		}
		return path, nil
	}
	return "", fmt.Errorf("no free file name for %s.%s in %s", base, ext, w.dir)
}

// Extension is "json" for structured results and "py" for signature code.
func Extension(res signature.Result) string {
	if res.Kind == signature.KindObject || json.Valid([]byte(strings.TrimSpace(res.Text))) {
		return "json"
	}
	return "py"
}
