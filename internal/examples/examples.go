// Package examples holds the fixed library of example prompts. Each template
// is an embedded markdown file with a small YAML frontmatter block; the
// template body is everything after the closing "---" line, byte for byte.
package examples

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed templates/*.md
var templateFS embed.FS

// Entry is one example prompt.
type Entry struct {
	Slug        string `yaml:"-"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Body        string `yaml:"-"`
}

var corpus = mustLoad(templateFS, "templates")

func mustLoad(fsys fs.FS, dir string) []Entry {
	entries, err := load(fsys, dir)
	if err != nil {
		panic(fmt.Sprintf("examples: %v", err))
	}
	return entries
}

func load(fsys fs.FS, dir string) ([]Entry, error) {
	files, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(files))
	for _, f := range files {
		if !f.IsDir() && strings.HasSuffix(f.Name(), ".md") {
			names = append(names, f.Name())
		}
	}
	sort.Strings(names)

	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		data, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return nil, err
		}
		e, err := parse(name, data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// parse splits frontmatter from body. Files are named NN-slug.md.
func parse(filename string, data []byte) (Entry, error) {
	slug := strings.TrimSuffix(filename, ".md")
	if i := strings.IndexByte(slug, '-'); i > 0 {
		if _, err := strconv.Atoi(slug[:i]); err == nil {
			slug = slug[i+1:]
		}
	}

	content := string(data)
	e := Entry{Slug: slug, Name: slug, Body: content}

	if !strings.HasPrefix(content, "---\n") {
		return e, nil
	}
	end := strings.Index(content[4:], "\n---\n")
	if end < 0 {
		return Entry{}, fmt.Errorf("unterminated frontmatter")
	}
	if err := yaml.Unmarshal([]byte(content[4:4+end]), &e); err != nil {
		return Entry{}, err
	}
	e.Body = content[4+end+5:]
	if e.Name == "" {
		e.Name = slug
	}
	return e, nil
}

// All returns a copy of the corpus in display order.
func All() []Entry {
	out := make([]Entry, len(corpus))
	copy(out, corpus)
	return out
}

func Len() int {
	return len(corpus)
}

// Get returns entry i (zero-based).
func Get(i int) (Entry, bool) {
	if i < 0 || i >= len(corpus) {
		return Entry{}, false
	}
	return corpus[i], true
}

// Find looks an entry up by slug, by case-insensitive name, or by its
// one-based position. It returns the zero-based index.
func Find(key string) (Entry, int, bool) {
	key = strings.TrimSpace(key)
	if n, err := strconv.Atoi(key); err == nil {
		e, ok := Get(n - 1)
		return e, n - 1, ok
	}
	for i, e := range corpus {
		if e.Slug == key || strings.EqualFold(e.Name, key) {
			return e, i, true
		}
	}
	return Entry{}, -1, false
}

// ActiveIndex returns the index of the entry whose body equals prompt
// exactly, or -1.
func ActiveIndex(prompt string) int {
	for i, e := range corpus {
		if e.Body == prompt {
			return i
		}
	}
	return -1
}
