package examples

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorpusShape(t *testing.T) {
	all := All()
	require.Len(t, all, 10)

	wantSlugs := []string{
		"medical-record",
		"ecommerce-review",
		"legal-contract",
		"news-article",
		"support-ticket",
		"resume",
		"invoice",
		"content-moderation",
		"academic-paper",
		"customer-feedback",
	}
	for i, e := range all {
		assert.Equal(t, wantSlugs[i], e.Slug)
		assert.NotEmpty(t, e.Name)
		assert.NotEmpty(t, e.Description)
		assert.True(t, strings.HasPrefix(e.Body, "**INPUT FORMAT**"), "%s body starts with the input format", e.Slug)
		assert.Contains(t, e.Body, "**OUTPUT FORMAT**")
		assert.NotContains(t, e.Body, "\ndescription: ")
	}
}

func TestAllReturnsCopy(t *testing.T) {
	all := All()
	all[0].Body = "mutated"
	all[0].Name = "mutated"

	e, ok := Get(0)
	require.True(t, ok)
	assert.NotEqual(t, "mutated", e.Body)
	assert.NotEqual(t, "mutated", e.Name)
}

func TestGet(t *testing.T) {
	_, ok := Get(-1)
	assert.False(t, ok)
	_, ok = Get(Len())
	assert.False(t, ok)

	e, ok := Get(Len() - 1)
	require.True(t, ok)
	assert.Equal(t, "customer-feedback", e.Slug)
}

func TestFind(t *testing.T) {
	tests := []struct {
		key       string
		wantSlug  string
		wantIndex int
		wantOK    bool
	}{
		{key: "resume", wantSlug: "resume", wantIndex: 5, wantOK: true},
		{key: "Medical Record", wantSlug: "medical-record", wantIndex: 0, wantOK: true},
		{key: "medical record", wantSlug: "medical-record", wantIndex: 0, wantOK: true},
		{key: "1", wantSlug: "medical-record", wantIndex: 0, wantOK: true},
		{key: " 10 ", wantSlug: "customer-feedback", wantIndex: 9, wantOK: true},
		{key: "0", wantIndex: -1, wantOK: false},
		{key: "11", wantIndex: 10, wantOK: false},
		{key: "recipe", wantIndex: -1, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			e, i, ok := Find(tt.key)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantSlug, e.Slug)
				assert.Equal(t, tt.wantIndex, i)
			}
		})
	}
}

func TestActiveIndex(t *testing.T) {
	for i, e := range All() {
		assert.Equal(t, i, ActiveIndex(e.Body))
	}

	e, _ := Get(2)
	assert.Equal(t, -1, ActiveIndex(e.Body+" "), "any edit deactivates the example")
	assert.Equal(t, -1, ActiveIndex(strings.TrimSpace(e.Body)))
	assert.Equal(t, -1, ActiveIndex(""))
}

func TestParse(t *testing.T) {
	e, err := parse("03-widget.md", []byte("---\nname: Widget\ndescription: A widget\n---\nline one\n---\nline two\n"))
	require.NoError(t, err)
	assert.Equal(t, "widget", e.Slug)
	assert.Equal(t, "Widget", e.Name)
	assert.Equal(t, "A widget", e.Description)
	assert.Equal(t, "line one\n---\nline two\n", e.Body)
}

func TestParseWithoutFrontmatter(t *testing.T) {
	e, err := parse("plain.md", []byte("just a body"))
	require.NoError(t, err)
	assert.Equal(t, "plain", e.Slug)
	assert.Equal(t, "plain", e.Name)
	assert.Equal(t, "just a body", e.Body)
}

func TestParseUnterminatedFrontmatter(t *testing.T) {
	_, err := parse("01-bad.md", []byte("---\nname: Bad\nbody"))
	assert.Error(t, err)
}

func TestLoadOrdersByFilename(t *testing.T) {
	fsys := fstest.MapFS{
		"t/02-second.md": {Data: []byte("---\nname: Second\n---\nB")},
		"t/01-first.md":  {Data: []byte("---\nname: First\n---\nA")},
		"t/notes.txt":    {Data: []byte("ignored")},
	}

	entries, err := load(fsys, "t")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "First", entries[0].Name)
	assert.Equal(t, "A", entries[0].Body)
	assert.Equal(t, "second", entries[1].Slug)
}
