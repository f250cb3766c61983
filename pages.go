package minami

import (
	"bytes"
	"fmt"
	"html"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/edwellbrook/minami/internal/highlight"
)

// pageData is the object handed to the layout template.
type pageData struct {
	Type     string
	Title    string
	Docs     []*Doclet
	Nav      template.HTML
	Readme   template.HTML
	Encoding string
}

// tutorialData is the object handed to the tutorial template.
type tutorialData struct {
	Title    string
	Header   string
	Content  template.HTML
	Children []template.HTML
	Nav      template.HTML
	Encoding string
}

// generate renders one page through the layout template and writes it to
// the output directory. When resolveLinks is set, inline
// cross-reference markup in the rendered HTML is rewritten into anchors.
func (p *Publisher) generate(title, pageType string, docs []*Doclet, outFile string, resolveLinks bool) error {
	data := pageData{
		Type:     pageType,
		Title:    title,
		Docs:     docs,
		Nav:      p.nav,
		Readme:   p.readme,
		Encoding: p.opts.encoding(),
	}
	if pageType != "home" {
		data.Readme = ""
	}

	var buf bytes.Buffer
	if err := p.theme.Layout.Execute(&buf, data); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrRenderPage, outFile, err)
	}

	content := buf.String()
	if resolveLinks {
		content = p.registry.ResolveLinks(content)
	}
	return p.writePage(outFile, content)
}

// writePage writes one output file under the destination directory.
func (p *Publisher) writePage(name, content string) error {
	path := filepath.Join(p.opts.Destination, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

// generateContainerPages writes one page per distinct longname for each
// container kind. The page carries the container doclet followed by its
// non-container members, which the sorted collection keeps in stable
// order.
func (p *Publisher) generateContainerPages(c *Collection) error {
	seen := make(map[string]bool)
	for _, d := range c.Find(ByKind(containerKinds...)) {
		if seen[d.Longname] {
			continue
		}
		seen[d.Longname] = true

		docs := []*Doclet{d}
		for _, member := range c.Find(ByMemberof(d.Longname)) {
			if isContainer(member.Kind) {
				continue
			}
			docs = append(docs, member)
		}

		title := containerTitle(d)
		if err := p.generate(title, d.Kind, docs, p.registry.FileName(d.Longname), true); err != nil {
			return err
		}
	}
	return nil
}

// kindTitles maps container kinds to their page title prefix.
var kindTitles = map[string]string{
	KindModule:    "Module",
	KindClass:     "Class",
	KindNamespace: "Namespace",
	KindMixin:     "Mixin",
	KindExternal:  "External",
	KindInterface: "Interface",
}

func containerTitle(d *Doclet) string {
	name := d.Name
	if d.Kind == KindModule {
		name = d.ModuleName()
	}
	if prefix, ok := kindTitles[d.Kind]; ok {
		return prefix + ": " + name
	}
	return name
}

// generateGlobalPage writes the globals page when global-scope members
// exist; otherwise no page is emitted.
func (p *Publisher) generateGlobalPage(m *Members) error {
	if len(m.Globals) == 0 {
		return nil
	}
	return p.generate("Global", "global", m.Globals, globalsFile, true)
}

// generateHomePage writes the index page: the readme (if any) plus any
// package records.
func (p *Publisher) generateHomePage(c *Collection) error {
	title := p.opts.MainPageTitle
	if title == "" {
		title = "Home"
	}
	return p.generate(title, "home", c.Find(ByKind(KindPackage)), indexFile, true)
}

// generateSourcePages writes one listing page per source file. An
// unreadable file is logged and omitted; generation continues.
func (p *Publisher) generateSourcePages(files map[string]*SourceFile) error {
	for _, f := range sortedSourceFiles(files) {
		content, err := os.ReadFile(f.Resolved) // #nosec G304 -- paths come from host doclet metadata
		if err != nil {
			p.log.Error("unable to read source file for listing",
				"file", f.Resolved, "error", err)
			continue
		}

		doclet := &Doclet{
			Kind: KindSource,
			Code: template.HTML(highlight.Source(f.Shortened, string(content))),
		}
		if err := p.generate("Source: "+f.Shortened, KindSource, []*Doclet{doclet}, f.OutFile, false); err != nil {
			return err
		}
	}
	return nil
}

// generateTutorials walks the tutorial tree and writes one page per
// node. The tree is single-parent, so recursion terminates.
func (p *Publisher) generateTutorials(t *Tutorial) error {
	if t == nil {
		return nil
	}
	for _, child := range t.Children {
		if err := p.generateTutorialPage(child); err != nil {
			return err
		}
		if err := p.generateTutorials(child); err != nil {
			return err
		}
	}
	return nil
}

func (p *Publisher) generateTutorialPage(t *Tutorial) error {
	content, err := t.HTML(p.md)
	if err != nil {
		return err
	}

	children := make([]template.HTML, 0, len(t.Children))
	for _, child := range t.Children {
		children = append(children, p.registry.TutorialLink(child.Name, child.Title))
	}

	data := tutorialData{
		Title:    "Tutorial: " + t.Title,
		Header:   t.Title,
		Content:  content,
		Children: children,
		Nav:      p.nav,
		Encoding: p.opts.encoding(),
	}

	outFile := p.registry.RegisterTutorial(t.Name)
	var buf bytes.Buffer
	if err := p.theme.Tutorial.Execute(&buf, data); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrRenderPage, outFile, err)
	}
	return p.writePage(outFile, p.registry.ResolveLinks(buf.String()))
}

// buildNav renders the navigation column shared by every page.
func (p *Publisher) buildNav(m *Members, tutorials *Tutorial) template.HTML {
	var sb strings.Builder
	sb.WriteString(`<h2><a href="index.html">Home</a></h2>`)

	p.navSection(&sb, "Modules", m.Modules)
	p.navSection(&sb, "Externals", m.Externals)
	p.navSection(&sb, "Classes", m.Classes)
	p.navSection(&sb, "Namespaces", m.Namespaces)
	p.navSection(&sb, "Mixins", m.Mixins)
	p.navSection(&sb, "Interfaces", m.Interfaces)

	if tutorials != nil && len(tutorials.Children) > 0 {
		sb.WriteString("<h3>Tutorials</h3><ul>")
		for _, t := range tutorials.Children {
			sb.WriteString("<li>")
			sb.WriteString(string(p.registry.TutorialLink(t.Name, t.Title)))
			sb.WriteString("</li>")
		}
		sb.WriteString("</ul>")
	}

	if len(m.Globals) > 0 {
		sb.WriteString(`<h3><a href="global.html">Global</a></h3>`)
	}

	return template.HTML(sb.String())
}

func (p *Publisher) navSection(sb *strings.Builder, title string, docs []*Doclet) {
	if len(docs) == 0 {
		return
	}
	sb.WriteString("<h3>")
	sb.WriteString(html.EscapeString(title))
	sb.WriteString("</h3><ul>")
	seen := make(map[string]bool)
	for _, d := range docs {
		if seen[d.Longname] {
			continue
		}
		seen[d.Longname] = true
		sb.WriteString("<li>")
		sb.WriteString(string(p.registry.Linkto(d.Longname, p.navText(d))))
		sb.WriteString("</li>")
	}
	sb.WriteString("</ul>")
}

// navText derives the display name for one navigation entry, honoring
// the longname display mode and depth bound.
func (p *Publisher) navText(d *Doclet) string {
	if !p.opts.UseLongnameInNav {
		if d.Kind == KindExternal {
			return strings.Trim(d.Name, `"`)
		}
		return d.Name
	}

	text := strings.TrimPrefix(d.Longname, "module:")
	if p.opts.NavDepth > 0 {
		parts := strings.Split(text, ".")
		if len(parts) > p.opts.NavDepth {
			text = strings.Join(parts[len(parts)-p.opts.NavDepth:], ".")
		}
	}
	return text
}
