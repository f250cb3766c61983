package minami

import (
	"encoding/json"
	"testing"
)

func TestTypeExprHasName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		expr *TypeExpr
		q    string
		want bool
	}{
		{
			name: "exact match",
			expr: &TypeExpr{Names: []string{"function"}},
			q:    "function",
			want: true,
		},
		{
			name: "case-insensitive match",
			expr: &TypeExpr{Names: []string{"Function"}},
			q:    "function",
			want: true,
		},
		{
			name: "no match",
			expr: &TypeExpr{Names: []string{"Object", "string"}},
			q:    "function",
			want: false,
		},
		{
			name: "nil expr",
			expr: nil,
			q:    "function",
			want: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.expr.HasName(tt.q); got != tt.want {
				t.Errorf("HasName(%q) = %v, want %v", tt.q, got, tt.want)
			}
		})
	}
}

func TestModuleName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		longname string
		want     string
	}{
		{"module:foo", "foo"},
		{"module:foo/bar", "foo/bar"},
		{"NotAModule", "NotAModule"},
	}

	for _, tt := range tests {
		tt := tt
		d := &Doclet{Longname: tt.longname}
		if got := d.ModuleName(); got != tt.want {
			t.Errorf("ModuleName(%q) = %q, want %q", tt.longname, got, tt.want)
		}
	}
}

func TestMetaResolved(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		meta *Meta
		want string
	}{
		{
			name: "path and filename",
			meta: &Meta{Path: "/a/b", Filename: "x.js"},
			want: "/a/b/x.js",
		},
		{
			name: "filename only",
			meta: &Meta{Filename: "x.js"},
			want: "x.js",
		},
		{
			name: "nil meta",
			meta: nil,
			want: "",
		},
		{
			name: "no filename",
			meta: &Meta{Path: "/a"},
			want: "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.meta.Resolved(); got != tt.want {
				t.Errorf("Resolved() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDeprecationUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    Deprecation
		wantErr bool
	}{
		{
			name:  "boolean flag",
			input: `true`,
			want:  Deprecation{Deprecated: true},
		},
		{
			name:  "false flag",
			input: `false`,
			want:  Deprecation{},
		},
		{
			name:  "explanatory string",
			input: `"use v2 instead"`,
			want:  Deprecation{Deprecated: true, Note: "use v2 instead"},
		},
		{
			name:    "other json rejected",
			input:   `{"x":1}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got Deprecation
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				if err == nil {
					t.Error("expected unmarshal error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Unmarshal = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDocletDumpDecoding(t *testing.T) {
	t.Parallel()

	const dump = `[{
		"kind": "function",
		"name": "area",
		"longname": "Shape#area",
		"memberof": "Shape",
		"scope": "instance",
		"params": [{"name": "unit", "type": {"names": ["string"]}, "optional": true}],
		"returns": [{"type": {"names": ["number"]}}],
		"deprecated": "use measure()",
		"meta": {"path": "/src", "filename": "shape.js", "lineno": 12}
	}]`

	var doclets []*Doclet
	if err := json.Unmarshal([]byte(dump), &doclets); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	if len(doclets) != 1 {
		t.Fatalf("decoded %d doclets, want 1", len(doclets))
	}

	d := doclets[0]
	if d.Kind != KindFunction || d.Longname != "Shape#area" {
		t.Errorf("decoded doclet = %+v", d)
	}
	if len(d.Params) != 1 || !d.Params[0].Optional || !d.Params[0].Type.HasName("string") {
		t.Errorf("decoded params = %+v", d.Params)
	}
	if !d.Deprecated.Deprecated || d.Deprecated.Note != "use measure()" {
		t.Errorf("decoded deprecation = %+v", d.Deprecated)
	}
	if d.Meta.Resolved() != "/src/shape.js" {
		t.Errorf("resolved source = %q", d.Meta.Resolved())
	}
}
