// Package site generates the default portfolio scaffold that folio uploads
// when the user brings no content of their own: an index page carrying the
// ICON footer, plus its stylesheet.
package site

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"
)

//go:embed templates/*.tmpl
var templateFiles embed.FS

const (
	indexTemplate  = "templates/index.html.tmpl"
	styleTemplate  = "templates/style.css.tmpl"
	defaultTitle   = "My Portfolio"
	indexPath      = "index.html"
	stylesheetPath = "assets/style.css"
)

// Data holds the values rendered into the scaffold
type Data struct {
	Title  string
	Author string
	Year   int
}

// File is one generated scaffold file, addressed by its repository-relative
// upload path
type File struct {
	Path    string
	Content []byte
}

// Generator renders the portfolio scaffold from embedded templates
type Generator struct {
	index *template.Template
	style []byte
}

// NewGenerator creates a new scaffold generator, loading the embedded
// templates eagerly so a broken build surfaces immediately
func NewGenerator() (*Generator, error) {
	indexContent, err := templateFiles.ReadFile(indexTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to load template %s: %w", indexTemplate, err)
	}

	index, err := template.New("index").Parse(string(indexContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", indexTemplate, err)
	}

	// The stylesheet carries no template actions, ship it as-is
	style, err := templateFiles.ReadFile(styleTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to load template %s: %w", styleTemplate, err)
	}

	return &Generator{index: index, style: style}, nil
}

// RenderIndex renders the index page for the given data. Empty fields fall
// back to sensible defaults.
func (g *Generator) RenderIndex(data Data) ([]byte, error) {
	if data.Title == "" {
		data.Title = defaultTitle
	}
	if data.Year == 0 {
		data.Year = time.Now().Year()
	}

	var buf bytes.Buffer
	if err := g.index.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render index template: %w", err)
	}

	return buf.Bytes(), nil
}

// Files returns the full scaffold in upload order
func (g *Generator) Files(data Data) ([]File, error) {
	index, err := g.RenderIndex(data)
	if err != nil {
		return nil, err
	}

	return []File{
		{Path: stylesheetPath, Content: g.style},
		{Path: indexPath, Content: index},
	}, nil
}
