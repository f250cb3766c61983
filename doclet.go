package minami

import (
	"encoding/json"
	"html/template"
	"strings"
)

// Doclet kinds recognized by the publisher. The host parser produces
// these; the publisher only reads them.
const (
	KindClass     = "class"
	KindConstant  = "constant"
	KindEvent     = "event"
	KindExternal  = "external"
	KindFunction  = "function"
	KindInterface = "interface"
	KindMember    = "member"
	KindMixin     = "mixin"
	KindModule    = "module"
	KindNamespace = "namespace"
	KindPackage   = "package"
	KindSource    = "source"
	KindTypedef   = "typedef"
)

// Doclet scopes.
const (
	ScopeGlobal   = "global"
	ScopeInner    = "inner"
	ScopeInstance = "instance"
	ScopeStatic   = "static"
)

// scopePunc maps a member scope to the punctuation used between an
// ancestor name and the member name in displayed longnames.
var scopePunc = map[string]string{
	ScopeStatic:   ".",
	ScopeInner:    "~",
	ScopeInstance: "#",
}

// TypeExpr is a parsed type annotation: a union of type names.
type TypeExpr struct {
	Names []string `json:"names"`
}

// HasName reports whether the expression contains name, compared
// case-insensitively.
func (t *TypeExpr) HasName(name string) bool {
	if t == nil {
		return false
	}
	for _, n := range t.Names {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}

// Param documents one parameter or property of an entity.
type Param struct {
	Name        string    `json:"name"`
	Type        *TypeExpr `json:"type"`
	Description string    `json:"description"`
	Optional    bool      `json:"optional"`
	Nullable    *bool     `json:"nullable"`
	Variable    bool      `json:"variable"`
	Default     string    `json:"defaultvalue"`

	// TypeLinks is computed during enrichment.
	TypeLinks []template.HTML `json:"-"`
}

// Return documents one return value of a function.
type Return struct {
	Type        *TypeExpr `json:"type"`
	Description string    `json:"description"`

	// TypeLinks is computed during enrichment.
	TypeLinks []template.HTML `json:"-"`
}

// CodeInfo carries the parser's view of the documented code expression.
type CodeInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Meta locates a doclet in its source file.
type Meta struct {
	Path     string   `json:"path"`
	Filename string   `json:"filename"`
	Lineno   int      `json:"lineno"`
	Code     CodeInfo `json:"code"`

	// Shortpath is computed during enrichment: Filename relative to the
	// common prefix of every referenced source path.
	Shortpath string `json:"-"`
}

// Resolved returns the full resolved path of the source file, or the
// empty string when location metadata is absent.
func (m *Meta) Resolved() string {
	if m == nil || m.Filename == "" {
		return ""
	}
	if m.Path == "" {
		return m.Filename
	}
	return m.Path + "/" + m.Filename
}

// Deprecation carries the deprecated tag, which the host emits either as
// a bare boolean or as an explanatory string.
type Deprecation struct {
	Deprecated bool
	Note       string
}

// UnmarshalJSON accepts both encodings of the deprecated tag.
func (d *Deprecation) UnmarshalJSON(b []byte) error {
	var flag bool
	if err := json.Unmarshal(b, &flag); err == nil {
		d.Deprecated = flag
		return nil
	}
	var note string
	if err := json.Unmarshal(b, &note); err != nil {
		return err
	}
	d.Deprecated = true
	d.Note = note
	return nil
}

// Example is one formatted usage example, split into an optional caption
// and the code body.
type Example struct {
	Caption string
	Code    string
}

// Doclet is one documentation record handed over by the host parser.
// The publisher decorates it in place with computed display fields but
// never restructures it.
type Doclet struct {
	Kind        string    `json:"kind"`
	Name        string    `json:"name"`
	Longname    string    `json:"longname"`
	Memberof    string    `json:"memberof"`
	Scope       string    `json:"scope"`
	Description string    `json:"description"`
	Classdesc   string    `json:"classdesc"`
	Summary     string    `json:"summary"`
	Alias       string    `json:"alias"`
	Params      []*Param  `json:"params"`
	Returns     []*Return `json:"returns"`
	Properties  []*Param  `json:"properties"`
	Type        *TypeExpr `json:"type"`
	Augments    []string  `json:"augments"`
	Implements  []string  `json:"implements"`
	Mixes       []string  `json:"mixes"`
	Requires    []string  `json:"requires"`
	Fires       []string  `json:"fires"`

	Access     string      `json:"access"`
	Virtual    bool        `json:"virtual"`
	Readonly   bool        `json:"readonly"`
	Nullable   *bool       `json:"nullable"`
	Async      bool        `json:"async"`
	Generator  bool        `json:"generator"`
	IsEnum     bool        `json:"isEnum"`
	Deprecated Deprecation `json:"deprecated"`

	Examples []string `json:"examples"`
	See      []string `json:"see"`
	Todo     []string `json:"todo"`
	Version  string   `json:"version"`
	Since    string   `json:"since"`

	Ignore       bool  `json:"ignore"`
	Undocumented bool  `json:"undocumented"`
	Meta         *Meta `json:"meta"`

	// Computed display fields, attached during enrichment.
	ID                string          `json:"-"`
	Signature         template.HTML   `json:"-"`
	Attribs           template.HTML   `json:"-"`
	Ancestors         []template.HTML `json:"-"`
	FormattedExamples []Example       `json:"-"`
	SeeLinks          []template.HTML `json:"-"`
	Modules           []*Doclet       `json:"-"`
	Code              template.HTML   `json:"-"`
	TypeLinks         []template.HTML `json:"-"`
	AugmentsLinks     []template.HTML `json:"-"`
	SourceLink        template.HTML   `json:"-"`
}

// ModuleName returns the bare module name for module-kind longnames:
// "module:foo/bar" yields "foo/bar". Non-module longnames are returned
// unchanged.
func (d *Doclet) ModuleName() string {
	return strings.TrimPrefix(d.Longname, "module:")
}
