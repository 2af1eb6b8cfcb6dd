// Package generator renders the functions derived for the enums of a package
// into a single jennifer file.
package generator

import (
	"bytes"
	"fmt"
	"go/types"
	"io"
	"log/slog"

	"github.com/dave/jennifer/jen"

	"github.com/origadmin/enumfrom/internal/config"
	"github.com/origadmin/enumfrom/internal/model"
	"github.com/origadmin/enumfrom/internal/naming"
)

const (
	// RuntimePath is the import path of the error types used by generated code.
	RuntimePath = "github.com/origadmin/enumfrom"
	// Header marks generated files.
	Header = "Code generated by " + config.Application + ". DO NOT EDIT."
	// BuildConstraint keeps generated files out of the packages loaded for
	// generation.
	BuildConstraint = "//go:build !" + config.BuildTag
)

// Generator emits the derived functions of the enums of one package.
type Generator struct {
	pkg   *types.Package
	namer *naming.Namer
	file  *jen.File
	funcs int
}

// NewGenerator creates a generator emitting into pkg.
func NewGenerator(pkg *types.Package) *Generator {
	f := jen.NewFilePathName(pkg.Path(), pkg.Name())
	f.HeaderComment(Header)
	f.HeaderComment(BuildConstraint)
	f.ImportName(RuntimePath, "enumfrom")
	return &Generator{
		pkg:   pkg,
		namer: naming.NewNamer(pkg),
		file:  f,
	}
}

// Add emits every function derived for enum: parsing and formatting, then
// wrapping, then unwrapping with its variant name helper.
func (g *Generator) Add(enum *model.EnumDeclaration) {
	before := g.funcs
	if enum.EmitsParse() {
		g.genParse(enum)
	}
	if enum.Formattable() {
		g.genFormat(enum)
	}
	for _, v := range enum.WrapVariants() {
		g.genWrap(enum, v)
	}
	if enum.EmitsVariantName() {
		g.genVariantName(enum)
	}
	for _, v := range enum.UnwrapVariants() {
		g.genUnwrap(enum, v)
	}
	slog.Debug("Generated enum functions", "package", g.pkg.Path(), "enum", enum.Name, "funcs", g.funcs-before)
}

// Funcs returns the number of functions emitted so far.
func (g *Generator) Funcs() int {
	return g.funcs
}

// Render writes the formatted file to w.
func (g *Generator) Render(w io.Writer) error {
	return g.file.Render(w)
}

// Generate renders the functions derived for enums. It returns nil when
// nothing is derived.
func Generate(pkg *types.Package, enums []*model.EnumDeclaration) ([]byte, error) {
	g := NewGenerator(pkg)
	for _, enum := range enums {
		g.Add(enum)
	}
	if g.Funcs() == 0 {
		return nil, nil
	}

	var buf bytes.Buffer
	if err := g.Render(&buf); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", pkg.Path(), err)
	}
	return buf.Bytes(), nil
}

// fn starts a function declaration preceded by its doc comment.
func (g *Generator) fn(name, format string, args ...any) *jen.Statement {
	g.funcs++
	g.file.Line()
	g.file.Comment(name + " " + fmt.Sprintf(format, args...))
	return g.file.Func().Id(name)
}

// named refers to a defined type.
func (g *Generator) named(t *types.Named) *jen.Statement {
	obj := t.Obj()
	if obj.Pkg() == nil {
		return jen.Id(obj.Name())
	}
	return jen.Qual(obj.Pkg().Path(), obj.Name())
}
