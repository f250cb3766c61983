package minami

import (
	"fmt"
	"html/template"

	"github.com/edwellbrook/minami/internal/markdown"
)

// Tutorial content types.
const (
	TutorialMarkdown = "markdown"
	TutorialHTML     = "html"
)

// Tutorial is one node of the narrative documentation tree supplied by
// the host. Nodes form a single-parent tree, so traversal cannot cycle.
type Tutorial struct {
	Name     string
	Title    string
	Content  string
	Type     string
	Children []*Tutorial
	Parent   *Tutorial
}

// AddChild appends a child node and sets its parent pointer.
func (t *Tutorial) AddChild(child *Tutorial) {
	child.Parent = t
	t.Children = append(t.Children, child)
}

// HTML parses the node's content for display. Markdown converts through
// goldmark; HTML content passes through verbatim.
func (t *Tutorial) HTML(conv *markdown.Converter) (template.HTML, error) {
	switch t.Type {
	case TutorialHTML, "":
		return template.HTML(t.Content), nil
	case TutorialMarkdown:
		out, err := conv.ToHTML(t.Content)
		if err != nil {
			return "", fmt.Errorf("tutorial %q: %w", t.Name, err)
		}
		return template.HTML(out), nil
	}
	return "", fmt.Errorf("tutorial %q: unknown content type %q", t.Name, t.Type)
}
