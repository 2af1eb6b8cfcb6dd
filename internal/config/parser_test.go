package config

import (
	"go/ast"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/origadmin/enumfrom/internal/diag"
	"github.com/origadmin/enumfrom/internal/model"
)

func TestParser_Parse(t *testing.T) {
	tests := []struct {
		name string
		text string
		want model.Directive
	}{
		{
			name: "single derive",
			text: `//go:enumfrom:derive=EnumFrom`,
			want: model.Directive{Kind: model.DirectiveDerive, Key: KeyDerive, Derives: model.DeriveEnumFrom},
		},
		{
			name: "derive list with spaces",
			text: `//go:enumfrom:derive=EnumFromWrapped, EnumIntoWrapped`,
			want: model.Directive{
				Kind:    model.DirectiveDerive,
				Key:     KeyDerive,
				Derives: model.DeriveEnumFromWrapped | model.DeriveEnumIntoWrapped,
			},
		},
		{
			name: "quoted pattern",
			text: `//go:enumfrom:str="hi"`,
			want: model.Directive{Kind: model.DirectiveStr, Key: KeyStr, Pattern: "hi"},
		},
		{
			name: "pattern with escapes",
			text: `//go:enumfrom:str="a\tb=c"`,
			want: model.Directive{Kind: model.DirectiveStr, Key: KeyStr, Pattern: "a\tb=c"},
		},
		{
			name: "raw pattern",
			text: "//go:enumfrom:str=`\\d`",
			want: model.Directive{Kind: model.DirectiveStr, Key: KeyStr, Pattern: `\d`},
		},
		{
			name: "inner",
			text: `//go:enumfrom:inner`,
			want: model.Directive{Kind: model.DirectiveInner, Key: KeyInner},
		},
		{
			name: "str-inner",
			text: `//go:enumfrom:str-inner=zero`,
			want: model.Directive{Kind: model.DirectiveStrInner, Key: KeyStrInner, Policy: model.StrZero},
		},
	}

	p := NewParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comment := &ast.Comment{Text: tt.text}
			got, err := p.Parse(comment)
			require.NoError(t, err)
			tt.want.Comment = comment
			assert.Equal(t, &tt.want, got)
		})
	}
}

func TestParser_ParseInvalid(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		reason string
	}{
		{"unknown key", `//go:enumfrom:rename=foo`, "unknown directive"},
		{"empty key", `//go:enumfrom:`, "missing directive key"},
		{"unknown derivation", `//go:enumfrom:derive=EnumFrom,Debug`, `unknown derivation "Debug"`},
		{"empty derive", `//go:enumfrom:derive=`, "missing derivation list"},
		{"trailing comma", `//go:enumfrom:derive=EnumFrom,`, `unknown derivation ""`},
		{"unquoted pattern", `//go:enumfrom:str=hi`, "pattern must be a quoted Go string, got hi"},
		{"missing pattern", `//go:enumfrom:str`, "missing pattern"},
		{"empty pattern", `//go:enumfrom:str=""`, "pattern must not be empty"},
		{"inner with value", `//go:enumfrom:inner=true`, "takes no value"},
		{"unknown policy", `//go:enumfrom:str-inner=default`, `got "default"`},
	}

	p := NewParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Parse(&ast.Comment{Text: tt.text})
			require.Error(t, err)
			assert.ErrorIs(t, err, diag.ErrInvalidDirectiveTarget)
			assert.Contains(t, err.Error(), tt.reason)
		})
	}
}

func TestDirectiveScanner(t *testing.T) {
	s := NewDirectiveScanner()
	group := &ast.CommentGroup{List: []*ast.Comment{
		{Text: "// Greeting is a salutation."},
		{Text: "//go:enumfrom:derive=EnumFrom"},
		{Text: "//go:generate stringer"},
		{Text: "//go:enumfrom:str-inner=zero"},
	}}

	got := s.Directives(group)
	require.Len(t, got, 2)
	assert.Equal(t, "//go:enumfrom:derive=EnumFrom", got[0].Text)
	assert.Equal(t, "//go:enumfrom:str-inner=zero", got[1].Text)
	assert.Nil(t, s.Directives(nil))

	file := &ast.File{Comments: []*ast.CommentGroup{group, {List: []*ast.Comment{{Text: "//go:enumfrom:inner"}}}}}
	assert.Len(t, s.DiscoverDirectives(file), 3)

	spec := &ast.TypeSpec{Name: ast.NewIdent("Greeting")}
	decl := &ast.GenDecl{Doc: group, Specs: []ast.Spec{spec}}
	assert.Same(t, group, s.TypeDoc(decl, spec))

	decl.Lparen = 10
	assert.Nil(t, s.TypeDoc(decl, spec))
}
