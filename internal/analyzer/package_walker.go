package analyzer

import (
	"errors"
	"go/ast"
	"go/token"
	"go/types"
	"log/slog"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/origadmin/enumfrom/internal/config"
	"github.com/origadmin/enumfrom/internal/diag"
	"github.com/origadmin/enumfrom/internal/model"
)

// typeDecl is a type declaration of the analyzed package with its parsed
// directives.
type typeDecl struct {
	spec       *ast.TypeSpec
	obj        *types.TypeName
	directives []*model.Directive

	// claimed is set once an enum deriving EnumFrom took over the variant
	// directives.
	claimed bool
}

func (d *typeDecl) enumDirectives() []*model.Directive {
	var ds []*model.Directive
	for _, dir := range d.directives {
		if dir.OnEnum() {
			ds = append(ds, dir)
		}
	}
	return ds
}

func (d *typeDecl) variantDirectives() []*model.Directive {
	var ds []*model.Directive
	for _, dir := range d.directives {
		if !dir.OnEnum() {
			ds = append(ds, dir)
		}
	}
	return ds
}

// PackageWalker is responsible for walking through the files of a package in
// declaration order and collecting its type declarations and directives.
type PackageWalker struct {
	pkg       *packages.Package
	scanner   *config.DirectiveScanner
	parser    *config.Parser
	generated map[*token.File]bool
}

// NewPackageWalker creates a new PackageWalker.
func NewPackageWalker(pkg *packages.Package) *PackageWalker {
	return &PackageWalker{
		pkg:       pkg,
		scanner:   config.NewDirectiveScanner(),
		parser:    config.NewParser(),
		generated: make(map[*token.File]bool),
	}
}

// files returns the syntax trees ordered by file name.
func (w *PackageWalker) files() []*ast.File {
	files := make([]*ast.File, len(w.pkg.Syntax))
	copy(files, w.pkg.Syntax)
	sort.SliceStable(files, func(i, j int) bool {
		return w.pkg.Fset.File(files[i].Pos()).Name() < w.pkg.Fset.File(files[j].Pos()).Name()
	})
	return files
}

// Walk collects the type declarations. Directives that fail to parse or are
// not attached to a type declaration are reported and left out.
func (w *PackageWalker) Walk() ([]*typeDecl, error) {
	var decls []*typeDecl
	var errs error
	for _, file := range w.files() {
		if isGeneratedOutput(file) {
			w.generated[w.pkg.Fset.File(file.Pos())] = true
			slog.Debug("Skipping generated file", "file", w.pkg.Fset.File(file.Pos()).Name())
			continue
		}

		attached := make(map[*ast.Comment]bool)
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				continue
			}
			for _, spec := range gen.Specs {
				ts := spec.(*ast.TypeSpec)
				comments := w.scanner.Directives(w.scanner.TypeDoc(gen, ts))
				for _, c := range comments {
					attached[c] = true
				}

				obj, _ := w.pkg.TypesInfo.Defs[ts.Name].(*types.TypeName)
				if obj == nil {
					slog.Warn("Type declaration without type information", "type", ts.Name.Name)
					continue
				}
				d := &typeDecl{spec: ts, obj: obj}
				for _, c := range comments {
					dir, err := w.parser.Parse(c)
					if err != nil {
						var ierr *diag.InvalidDirectiveTargetError
						if errors.As(err, &ierr) {
							ierr.Target = ts.Name.Name
						}
						errs = errors.Join(errs, diag.At(w.pkg.Fset, c, err))
						continue
					}
					d.directives = append(d.directives, dir)
				}
				decls = append(decls, d)
			}
		}

		for _, c := range w.scanner.DiscoverDirectives(file) {
			if attached[c] {
				continue
			}
			errs = errors.Join(errs, diag.At(w.pkg.Fset, c, &diag.InvalidDirectiveTargetError{
				Directive: directiveName(c.Text),
				Reason:    "not attached to a type declaration",
			}))
		}
	}
	return decls, errs
}

// IsGenerated reports whether pos lies in a file previously written by
// enumfrom.
func (w *PackageWalker) IsGenerated(pos token.Pos) bool {
	return w.generated[w.pkg.Fset.File(pos)]
}

// isGeneratedOutput reports whether file was written by enumfrom.
func isGeneratedOutput(file *ast.File) bool {
	if !ast.IsGenerated(file) {
		return false
	}
	for _, group := range file.Comments {
		if group.Pos() > file.Package {
			break
		}
		for _, c := range group.List {
			if strings.HasPrefix(c.Text, "// Code generated by "+config.Application+".") {
				return true
			}
		}
	}
	return false
}

// directiveName returns the directive prefix and key of a directive comment.
func directiveName(text string) string {
	key, _, _ := strings.Cut(strings.TrimPrefix(text, model.DirectivePrefix), "=")
	return model.DirectivePrefix + strings.TrimSpace(key)
}
