package minami

import (
	"sort"
	"strings"
)

// containerKinds are the kinds that receive their own output page, one
// per distinct longname.
var containerKinds = []string{
	KindModule,
	KindClass,
	KindNamespace,
	KindMixin,
	KindExternal,
	KindInterface,
}

// globalKinds are the member kinds that appear on the globals page when
// declared with global scope.
var globalKinds = []string{
	KindMember,
	KindFunction,
	KindConstant,
	KindTypedef,
}

// Predicate selects doclets by a field match.
type Predicate func(*Doclet) bool

// ByKind matches doclets whose kind is any of kinds.
func ByKind(kinds ...string) Predicate {
	return func(d *Doclet) bool {
		for _, k := range kinds {
			if d.Kind == k {
				return true
			}
		}
		return false
	}
}

// ByLongname matches doclets with the given longname.
func ByLongname(longname string) Predicate {
	return func(d *Doclet) bool { return d.Longname == longname }
}

// ByMemberof matches doclets that are members of the given longname.
func ByMemberof(longname string) Predicate {
	return func(d *Doclet) bool { return d.Memberof == longname }
}

// ByScope matches doclets with the given scope.
func ByScope(scope string) Predicate {
	return func(d *Doclet) bool { return d.Scope == scope }
}

// Collection is the queryable record set handed over by the host. Query
// results share the underlying records; the publisher decorates them in
// place.
type Collection struct {
	doclets []*Doclet
}

// NewCollection wraps the given doclets. The slice is retained, not
// copied.
func NewCollection(doclets []*Doclet) *Collection {
	return &Collection{doclets: doclets}
}

// All returns every doclet in collection order.
func (c *Collection) All() []*Doclet {
	return c.doclets
}

// Len returns the number of doclets.
func (c *Collection) Len() int {
	return len(c.doclets)
}

// Find returns the doclets matching every given predicate, in collection
// order.
func (c *Collection) Find(preds ...Predicate) []*Doclet {
	var out []*Doclet
	for _, d := range c.doclets {
		if matchesAll(d, preds) {
			out = append(out, d)
		}
	}
	return out
}

func matchesAll(d *Doclet, preds []Predicate) bool {
	for _, p := range preds {
		if !p(d) {
			return false
		}
	}
	return true
}

// Prune removes records that never render: undocumented doclets, doclets
// tagged ignore, and members of anonymous scopes. Package records stay;
// the home page lists them.
func (c *Collection) Prune() {
	kept := c.doclets[:0]
	for _, d := range c.doclets {
		if d.Undocumented || d.Ignore {
			continue
		}
		if strings.HasPrefix(d.Memberof, anonPrefix) {
			continue
		}
		kept = append(kept, d)
	}
	c.doclets = kept
}

const anonPrefix = "<anonymous>"

// Sort orders doclets by longname, then version, then since, giving the
// generator a deterministic iteration order.
func (c *Collection) Sort() {
	sort.SliceStable(c.doclets, func(i, j int) bool {
		a, b := c.doclets[i], c.doclets[j]
		if a.Longname != b.Longname {
			return a.Longname < b.Longname
		}
		if a.Version != b.Version {
			return a.Version < b.Version
		}
		return a.Since < b.Since
	})
}

// Members groups the collection into the sets the navigation and page
// generator iterate over.
type Members struct {
	Classes    []*Doclet
	Externals  []*Doclet
	Globals    []*Doclet
	Interfaces []*Doclet
	Mixins     []*Doclet
	Modules    []*Doclet
	Namespaces []*Doclet
}

// Members partitions the collection by kind. Globals are member-like
// doclets declared with global scope.
func (c *Collection) Members() *Members {
	m := &Members{}
	for _, d := range c.doclets {
		switch d.Kind {
		case KindClass:
			m.Classes = append(m.Classes, d)
		case KindExternal:
			m.Externals = append(m.Externals, d)
		case KindInterface:
			m.Interfaces = append(m.Interfaces, d)
		case KindMixin:
			m.Mixins = append(m.Mixins, d)
		case KindModule:
			m.Modules = append(m.Modules, d)
		case KindNamespace:
			m.Namespaces = append(m.Namespaces, d)
		}
		if d.Scope == ScopeGlobal {
			for _, k := range globalKinds {
				if d.Kind == k {
					m.Globals = append(m.Globals, d)
					break
				}
			}
		}
	}
	return m
}
