package minami

import (
	"html"
	"html/template"
	"strings"
)

// needsSignature reports whether a doclet receives a call signature.
// Classes and functions always do; typedefs only when their declared
// type list names a function type (case-insensitive).
func needsSignature(d *Doclet) bool {
	switch d.Kind {
	case KindClass, KindFunction:
		return true
	case KindTypedef:
		return d.Type.HasName("function")
	}
	return false
}

// needsSignatureTypes reports whether a doclet receives a type-signature
// suffix listing its declared types.
func needsSignatureTypes(d *Doclet) bool {
	if d.Kind == KindMember || d.Kind == KindConstant {
		return d.Type != nil && len(d.Type.Names) > 0
	}
	return false
}

// buildSignature attaches the derived Signature and Attribs display
// fields to a doclet. It is a pure read of the record plus the link
// registry; repeated invocations produce identical output.
func (p *Publisher) buildSignature(d *Doclet) {
	switch {
	case needsSignature(d):
		var sb strings.Builder
		sb.WriteString(`<span class="signature">(`)
		sb.WriteString(strings.Join(signatureParams(d), ", "))
		sb.WriteString(`)</span>`)
		if ret := p.signatureReturns(d); ret != "" {
			sb.WriteString(`<span class="type-signature"> &rarr; `)
			sb.WriteString(ret)
			sb.WriteString(`</span>`)
		}
		d.Signature = template.HTML(sb.String())
	case needsSignatureTypes(d):
		d.Signature = template.HTML(
			`<span class="type-signature"> :` + joinLinked(p.registry, d.Type.Names) + `</span>`)
	}

	if attribs := docletAttribs(d); len(attribs) > 0 {
		d.Attribs = template.HTML(
			`<span class="type-signature">(` + strings.Join(attribs, ", ") + `) </span>`)
	}

	if d.Type != nil {
		d.TypeLinks = linkedTypes(p.registry, d.Type.Names)
	}
}

// signatureParams formats the top-level parameter names. Dotted
// sub-properties are excluded; optional, nullable and repeatable
// parameters carry their markers inline.
func signatureParams(d *Doclet) []string {
	var out []string
	for _, param := range d.Params {
		if param.Name == "" || strings.Contains(param.Name, ".") {
			continue
		}
		name := html.EscapeString(param.Name)
		if attribs := paramAttribs(param); len(attribs) > 0 {
			name += `<span class="signature-attributes">` + strings.Join(attribs, ", ") + `</span>`
		}
		out = append(out, name)
	}
	return out
}

// signatureReturns derives the return-type union, or "" when return docs
// are absent or suppressed by configuration.
func (p *Publisher) signatureReturns(d *Doclet) string {
	if p.opts.SuppressReturns || len(d.Returns) == 0 {
		return ""
	}
	var names []string
	for _, ret := range d.Returns {
		if ret.Type != nil {
			names = append(names, ret.Type.Names...)
		}
	}
	if len(names) == 0 {
		return ""
	}
	return "{" + joinLinked(p.registry, names) + "}"
}

// paramAttribs lists the display markers for one parameter.
func paramAttribs(param *Param) []string {
	var out []string
	if param.Optional {
		out = append(out, "opt")
	}
	if param.Nullable != nil {
		if *param.Nullable {
			out = append(out, "nullable")
		} else {
			out = append(out, "non-null")
		}
	}
	if param.Variable {
		out = append(out, "repeatable")
	}
	return out
}

// docletAttribs lists the display markers rendered ahead of a doclet's
// name. The order is fixed so repeated rendering is byte-identical.
func docletAttribs(d *Doclet) []string {
	var out []string
	if d.Async {
		out = append(out, "async")
	}
	if d.Generator {
		out = append(out, "generator")
	}
	if d.Virtual {
		out = append(out, "abstract")
	}
	if d.Access != "" && d.Access != "public" {
		out = append(out, d.Access)
	}
	if d.Memberof != "" && (d.Scope == ScopeStatic || d.Scope == ScopeInner) {
		out = append(out, d.Scope)
	}
	if d.Readonly && d.Kind == KindMember {
		out = append(out, "readonly")
	}
	if d.Kind == KindConstant {
		out = append(out, "constant")
	}
	if d.Nullable != nil {
		if *d.Nullable {
			out = append(out, "nullable")
		} else {
			out = append(out, "non-null")
		}
	}
	return out
}

// linkedTypes resolves each type name to a hyperlink via the registry.
func linkedTypes(r *LinkRegistry, names []string) []template.HTML {
	out := make([]template.HTML, 0, len(names))
	for _, n := range names {
		out = append(out, r.Linkto(n, n))
	}
	return out
}

// joinLinked renders a type-name union with each name linked.
func joinLinked(r *LinkRegistry, names []string) string {
	linked := linkedTypes(r, names)
	parts := make([]string, len(linked))
	for i, l := range linked {
		parts[i] = string(l)
	}
	return strings.Join(parts, "|")
}
