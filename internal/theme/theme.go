// Package theme provides the page templates and static assets used to
// render the documentation site. The default theme is embedded; a theme
// directory on disk with the same structure can replace it, and a single
// custom layout file can override just the page container template.
package theme

import (
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"
)

// Template and static locations inside a theme.
const (
	LayoutName    = "layout.tmpl"
	TutorialName  = "tutorial.tmpl"
	templatesDir  = "templates"
	staticDirName = "static"
)

// Sentinel errors for theme loading.
var (
	ErrTemplateNotFound = errors.New("theme template not found")
	ErrTemplateParse    = errors.New("theme template parse failed")
	ErrInvalidThemeDir  = errors.New("invalid theme directory")
)

// Theme bundles the parsed page templates with the static asset tree
// copied verbatim into the output directory.
type Theme struct {
	Layout   *template.Template
	Tutorial *template.Template
	Static   fs.FS
}

// funcMap exposes the helpers the templates rely on. "safe" marks
// host-supplied description HTML as trusted; the host parser already
// sanitized it.
func funcMap() template.FuncMap {
	return template.FuncMap{
		"safe": func(s string) template.HTML { return template.HTML(s) },
	}
}

// Default loads the embedded theme.
func Default() (*Theme, error) {
	return fromFS(embedded)
}

// FromDir loads a theme from a directory laid out like the embedded one
// (templates/layout.tmpl, templates/tutorial.tmpl, static/).
func FromDir(dir string) (*Theme, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidThemeDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidThemeDir, dir)
	}
	return fromFS(os.DirFS(dir))
}

func fromFS(fsys fs.FS) (*Theme, error) {
	layout, err := parseTemplate(fsys, LayoutName)
	if err != nil {
		return nil, err
	}
	tutorial, err := parseTemplate(fsys, TutorialName)
	if err != nil {
		return nil, err
	}

	static, err := fs.Sub(fsys, staticDirName)
	if err != nil {
		return nil, fmt.Errorf("%w: missing static directory", ErrInvalidThemeDir)
	}

	return &Theme{Layout: layout, Tutorial: tutorial, Static: static}, nil
}

func parseTemplate(fsys fs.FS, name string) (*template.Template, error) {
	content, err := fs.ReadFile(fsys, templatesDir+"/"+name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}
	tmpl, err := template.New(name).Funcs(funcMap()).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateParse, name, err)
	}
	return tmpl, nil
}

// OverrideLayout replaces the page container template with a custom
// layout file, keeping the rest of the theme.
func (t *Theme) OverrideLayout(path string) error {
	content, err := os.ReadFile(path) // #nosec G304 -- operator-supplied layout path
	if err != nil {
		return fmt.Errorf("%w: %s", ErrTemplateNotFound, path)
	}
	tmpl, err := template.New(LayoutName).Funcs(funcMap()).Parse(string(content))
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrTemplateParse, path, err)
	}
	t.Layout = tmpl
	return nil
}
