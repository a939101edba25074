package tmpl

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Templates holds all page templates, keyed by page name, plus the rendered
// markdown copy blocks they embed. Reload swaps both atomically.
type Templates struct {
	dir        string
	contentDir string
	assetVer   string
	md         goldmark.Markdown

	mu      sync.RWMutex
	pages   map[string]*template.Template
	content map[string]template.HTML
}

// ExecuteTemplate renders a page template by name. Partials are addressed
// as "partials/<file>.html" and render their {{define "<file>"}} block.
func (t *Templates) ExecuteTemplate(w io.Writer, name string, data any) error {
	t.mu.RLock()
	tmpl, ok := t.pages[name]
	t.mu.RUnlock()
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}
	if strings.HasPrefix(name, "partials/") {
		return tmpl.ExecuteTemplate(w, strings.TrimSuffix(filepath.Base(name), ".html"), data)
	}
	return tmpl.ExecuteTemplate(w, "layout", data)
}

// Has reports whether a page or partial is loaded.
func (t *Templates) Has(name string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.pages[name]
	return ok
}

// Load parses all templates under dir and renders the markdown under
// contentDir. Each page template gets its own clone of the shared templates
// (layout + partials) so {{define "content"}} doesn't collide.
func Load(dir, contentDir, assetVer string) (*Templates, error) {
	t := &Templates{
		dir:        dir,
		contentDir: contentDir,
		assetVer:   assetVer,
		md:         goldmark.New(goldmark.WithExtensions(extension.GFM, extension.Typographer)),
	}
	if err := t.Reload(); err != nil {
		return nil, err
	}
	return t, nil
}

// Reload re-reads every template and content file. On error the previous
// set stays in place.
func (t *Templates) Reload() error {
	content, err := t.loadContent()
	if err != nil {
		return err
	}
	pages, err := t.parse(content)
	if err != nil {
		return err
	}
	t.mu.Lock()
	t.pages, t.content = pages, content
	t.mu.Unlock()
	return nil
}

func (t *Templates) parse(content map[string]template.HTML) (map[string]*template.Template, error) {
	funcMap := t.funcMap(content)

	// Parse shared templates (layout + partials) as the base.
	base, err := template.New("base").Funcs(funcMap).ParseFiles(filepath.Join(t.dir, "layout.html"))
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	partialFiles, err := filepath.Glob(filepath.Join(t.dir, "partials", "*.html"))
	if err != nil {
		return nil, fmt.Errorf("glob partials: %w", err)
	}
	if len(partialFiles) > 0 {
		if _, err := base.ParseFiles(partialFiles...); err != nil {
			return nil, fmt.Errorf("parse partials: %w", err)
		}
	}

	// For each page template, clone the base and parse the page file on top.
	pages := map[string]*template.Template{}
	pageFiles, err := filepath.Glob(filepath.Join(t.dir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("glob pages: %w", err)
	}
	for _, f := range pageFiles {
		name := filepath.Base(f)
		if name == "layout.html" {
			continue
		}
		clone, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone base for %s: %w", name, err)
		}
		if _, err := clone.ParseFiles(f); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		pages[name] = clone
	}

	// Partials render on their own for htmx swaps.
	for _, f := range partialFiles {
		clone, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone base for %s: %w", f, err)
		}
		pages["partials/"+filepath.Base(f)] = clone
	}
	return pages, nil
}

func (t *Templates) loadContent() (map[string]template.HTML, error) {
	content := map[string]template.HTML{}
	if t.contentDir == "" {
		return content, nil
	}
	files, err := filepath.Glob(filepath.Join(t.contentDir, "*.md"))
	if err != nil {
		return nil, fmt.Errorf("glob content: %w", err)
	}
	for _, f := range files {
		src, err := os.ReadFile(f)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f, err)
		}
		var buf bytes.Buffer
		if err := t.md.Convert(src, &buf); err != nil {
			return nil, fmt.Errorf("render %s: %w", f, err)
		}
		content[strings.TrimSuffix(filepath.Base(f), ".md")] = template.HTML(buf.String())
	}
	return content, nil
}

// Content returns one rendered markdown block.
func (t *Templates) Content(name string) (template.HTML, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	h, ok := t.content[name]
	return h, ok
}
