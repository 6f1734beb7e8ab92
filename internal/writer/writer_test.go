package writer

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sant0-9/promptsig/internal/signature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedWriter(dir string) *Writer {
	w := New(dir)
	w.now = func() time.Time { return time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC) }
	return w
}

func TestSaveCode(t *testing.T) {
	dir := t.TempDir()
	res := signature.Result{Kind: signature.KindCode, Text: "class QA(dspy.Signature):\n    pass"}

	path, err := fixedWriter(dir).Save(res)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "signature-20260304-050607.py"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, res.Text+"\n", string(data))
}

func TestSaveObjectIntoNewDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	res := signature.Result{Kind: signature.KindObject, Text: "{\n  \"a\": 1\n}\n"}

	path, err := fixedWriter(dir).Save(res)
	require.NoError(t, err)
	assert.Equal(t, ".json", filepath.Ext(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, res.Text, string(data))
}

func TestSaveEmpty(t *testing.T) {
	_, err := New(t.TempDir()).Save(signature.Result{})
	assert.ErrorIs(t, err, ErrEmptyResult)
}

func TestExtension(t *testing.T) {
	assert.Equal(t, "py", Extension(signature.Result{Kind: signature.KindText, Text: "x = 1"}))
	assert.Equal(t, "json", Extension(signature.Result{Kind: signature.KindText, Text: `{"x": 1}`}))
	assert.Equal(t, "json", Extension(signature.Result{Kind: signature.KindObject, Text: "42"}))
}

func TestSaveSameSecondKeepsBoth(t *testing.T) {
	dir := t.TempDir()
	w := fixedWriter(dir)

	p1, err := w.Save(signature.Result{Kind: signature.KindText, Text: "first"})
	require.NoError(t, err)
	p2, err := w.Save(signature.Result{Kind: signature.KindText, Text: "second"})
	require.NoError(t, err)
	p3, err := w.Save(signature.Result{Kind: signature.KindText, Text: "third"})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "signature-20260304-050607.py"), p1)
	assert.Equal(t, filepath.Join(dir, "signature-20260304-050607-1.py"), p2)
	assert.Equal(t, filepath.Join(dir, "signature-20260304-050607-2.py"), p3)

	for path, want := range map[string]string{p1: "first\n", p2: "second\n", p3: "third\n"} {
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, want, string(data))
	}
}
