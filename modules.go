package minami

import "strings"

// attachModuleSymbols attaches every class or function doclet whose
// longname matches a module's longname to that module's Modules display
// list. Symbols without a description are filtered out, except classes,
// which are kept so the constructor heading always renders. Attached
// symbols are shallow-copied before their display name is rewritten to
// the require() call form, so the rewrite never leaks back into the
// shared collection.
func attachModuleSymbols(c *Collection) {
	symbols := make(map[string][]*Doclet)
	for _, d := range c.Find(ByKind(KindClass, KindFunction)) {
		symbols[d.Longname] = append(symbols[d.Longname], d)
	}

	for _, module := range c.Find(ByKind(KindModule)) {
		var attached []*Doclet
		for _, symbol := range symbols[module.Longname] {
			if symbol.Description == "" && symbol.Kind != KindClass {
				continue
			}
			copied := *symbol
			copied.Name = requireName(copied.Name)
			attached = append(attached, &copied)
		}
		module.Modules = attached
	}
}

// requireName rewrites a module symbol name to its require() call form:
// "module:foo/bar" becomes `(require("foo/bar"))`.
func requireName(name string) string {
	return strings.Replace(name, "module:", `(require("`, 1) + `"))`
}
