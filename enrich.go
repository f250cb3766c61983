package minami

import (
	"fmt"
	"html/template"
	"strings"
)

// Output filenames fixed by the site structure.
const (
	indexFile   = "index.html"
	globalsFile = "global.html"
)

// globalLongname is the registry key for the globals page.
const globalLongname = "global"

func isContainer(kind string) bool {
	for _, k := range containerKinds {
		if kind == k {
			return true
		}
	}
	return false
}

// registerLinks allocates output URLs for every doclet, source file and
// tutorial before any page renders. Container kinds get their own file;
// members point into the file of their nearest container ancestor;
// globals and members with no container ancestor point into the globals
// page. Anchor ids are unique per page, disambiguated the same way
// FileName disambiguates filenames. The collection must already be
// sorted so allocation is deterministic.
func (p *Publisher) registerLinks(c *Collection, files map[string]*SourceFile, tutorials *Tutorial) {
	p.registry.Register(globalLongname, globalsFile)

	containers := make(map[string]bool)
	byLongname := make(map[string]*Doclet)
	for _, d := range c.All() {
		if _, ok := byLongname[d.Longname]; !ok {
			byLongname[d.Longname] = d
		}
		if isContainer(d.Kind) {
			containers[d.Longname] = true
			p.registry.Register(d.Longname, p.registry.FileName(d.Longname))
		}
	}

	usedIDs := make(map[string]map[string]int)
	for _, d := range c.All() {
		if isContainer(d.Kind) || d.Kind == KindPackage {
			continue
		}
		file := globalsFile
		if d.Scope != ScopeGlobal {
			file = p.containerPage(containers, byLongname, d.Memberof)
		}
		d.ID = allocID(usedIDs, file, d.Name)
		p.registry.Register(d.Longname, file+"#"+d.ID)
	}

	if p.opts.OutputSourceFiles {
		for _, f := range sortedSourceFiles(files) {
			f.OutFile = p.registry.FileName(f.Shortened)
			p.registry.Register(f.Shortened, f.OutFile)
		}
	}

	if tutorials != nil {
		registerTutorialLinks(p.registry, tutorials)
	}
}

// containerPage walks the memberof chain and returns the page of the
// nearest container ancestor. A chain that never reaches a container
// resolves to the globals page, so no member ever links into a page
// that is never written.
func (p *Publisher) containerPage(containers map[string]bool, byLongname map[string]*Doclet, memberof string) string {
	for memberof != "" {
		if containers[memberof] {
			return p.registry.FileName(memberof)
		}
		parent, ok := byLongname[memberof]
		if !ok {
			break
		}
		memberof = parent.Memberof
	}
	return globalsFile
}

// allocID returns a page-unique anchor id for name, suffixing repeats
// with a counter.
func allocID(used map[string]map[string]int, file, name string) string {
	ids := used[file]
	if ids == nil {
		ids = make(map[string]int)
		used[file] = ids
	}

	id := name
	if n := ids[id]; n > 0 {
		ids[id] = n + 1
		id = fmt.Sprintf("%s_%d", name, n)
	}
	ids[id]++
	return id
}

func registerTutorialLinks(r *LinkRegistry, t *Tutorial) {
	for _, child := range t.Children {
		r.RegisterTutorial(child.Name)
		registerTutorialLinks(r, child)
	}
}

// enrich computes every derived display field. It must complete before
// any page referencing the collection renders; rendering is a pure read
// of the enriched records.
func (p *Publisher) enrich(c *Collection, files map[string]*SourceFile) {
	for _, d := range c.All() {
		d.FormattedExamples = formatExamples(d.Examples)
		d.SeeLinks = seeLinks(p.registry, d.See)
		d.AugmentsLinks = linkedTypes(p.registry, d.Augments)
		d.Ancestors = p.ancestorLinks(c, d)

		for _, param := range d.Params {
			if param.Type != nil {
				param.TypeLinks = linkedTypes(p.registry, param.Type.Names)
			}
		}
		for _, ret := range d.Returns {
			if ret.Type != nil {
				ret.TypeLinks = linkedTypes(p.registry, ret.Type.Names)
			}
		}
		for _, prop := range d.Properties {
			if prop.Type != nil {
				prop.TypeLinks = linkedTypes(p.registry, prop.Type.Names)
			}
		}

		p.buildSignature(d)

		if p.opts.OutputSourceFiles {
			d.SourceLink = sourceLink(files, d.Meta)
		}
	}
}

// seeLinks resolves see-references: inline link markup resolves through
// the registry, bare longnames link directly.
func seeLinks(r *LinkRegistry, refs []string) []template.HTML {
	if len(refs) == 0 {
		return nil
	}
	out := make([]template.HTML, 0, len(refs))
	for _, ref := range refs {
		if strings.Contains(ref, "{@link") {
			out = append(out, template.HTML(r.ResolveLinks(ref)))
			continue
		}
		out = append(out, r.Linkto(ref, ref))
	}
	return out
}

// ancestorLinks walks the memberof chain and returns one link per
// ancestor, outermost first, each followed by the scope punctuation
// joining it to the next name.
func (p *Publisher) ancestorLinks(c *Collection, d *Doclet) []template.HTML {
	var chain []*Doclet
	memberof := d.Memberof
	for memberof != "" {
		found := c.Find(ByLongname(memberof))
		if len(found) == 0 {
			break
		}
		chain = append([]*Doclet{found[0]}, chain...)
		memberof = found[0].Memberof
	}

	if len(chain) == 0 {
		return nil
	}

	links := make([]template.HTML, len(chain))
	for i, ancestor := range chain {
		child := d
		if i+1 < len(chain) {
			child = chain[i+1]
		}
		punc := scopePunc[child.Scope]
		if punc == "" {
			punc = "."
		}
		links[i] = p.registry.Linkto(ancestor.Longname, ancestor.Name) + template.HTML(punc)
	}
	return links
}

// sourceLink builds the "file, line N" link into a listing page.
func sourceLink(files map[string]*SourceFile, meta *Meta) template.HTML {
	if meta == nil {
		return ""
	}
	f, ok := files[meta.Resolved()]
	if !ok || f.OutFile == "" {
		return ""
	}
	return template.HTML(fmt.Sprintf(`<a href="%s#line-%d">%s, line %d</a>`,
		f.OutFile, meta.Lineno, template.HTMLEscapeString(f.Shortened), meta.Lineno))
}
