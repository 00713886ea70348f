// Package content renders the site's markdown copy (about page, FAQ) into
// sanitized HTML once at startup.
package content

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func NewRenderer() *Renderer {
	md := goldmark.New(
		goldmark.WithRendererOptions(html.WithUnsafe()),
		goldmark.WithExtensions(extension.Strikethrough, extension.Table),
	)
	return &Renderer{md: md, policy: bluemonday.UGCPolicy()}
}

// Render converts markdown to HTML and strips anything UGCPolicy disallows.
func (r *Renderer) Render(markdown string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	safe := r.policy.Sanitize(strings.TrimSpace(buf.String()))
	return template.HTML(safe), nil
}

// LoadDir renders every .md file in dir, keyed by filename without the
// extension ("about.md" becomes "about"). A missing dir yields an empty map
// so the site still serves pages without their copy.
func (r *Renderer) LoadDir(dir string) (map[string]template.HTML, error) {
	pages := make(map[string]template.HTML)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return pages, nil
		}
		return nil, fmt.Errorf("failed to read content dir: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".md" {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", entry.Name(), err)
		}
		rendered, err := r.Render(string(raw))
		if err != nil {
			return nil, err
		}
		name := strings.TrimSuffix(entry.Name(), ".md")
		pages[name] = rendered
	}
	return pages, nil
}
