// Package testutil type-checks in-memory packages for the analyzer and
// generator tests.
package testutil

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"
)

// PkgPath is the import path of the packages built by Load.
const PkgPath = "example.com/enums"

// RuntimePath is the import path of the package referenced by generated code.
const RuntimePath = "github.com/origadmin/enumfrom"

// Load parses and type-checks files, keyed by file name, as one package.
func Load(t testing.TB, files map[string]string) *packages.Package {
	t.Helper()

	fset := token.NewFileSet()
	syntax := parseFiles(t, fset, files)
	info := &types.Info{
		Types: make(map[ast.Expr]types.TypeAndValue),
		Defs:  make(map[*ast.Ident]types.Object),
		Uses:  make(map[*ast.Ident]types.Object),
	}
	conf := types.Config{Importer: NewImporter(fset)}
	pkg, err := conf.Check(PkgPath, fset, syntax, info)
	require.NoError(t, err)

	var names []string
	for _, f := range syntax {
		names = append(names, fset.File(f.Pos()).Name())
	}
	return &packages.Package{
		ID:        PkgPath,
		Name:      pkg.Name(),
		PkgPath:   PkgPath,
		GoFiles:   names,
		Fset:      fset,
		Syntax:    syntax,
		Types:     pkg,
		TypesInfo: info,
	}
}

// Check type-checks files together with the generated source.
func Check(t testing.TB, files map[string]string, generated []byte) error {
	t.Helper()

	all := make(map[string]string, len(files)+1)
	for name, src := range files {
		all[name] = src
	}
	all["enumfrom_gen.go"] = string(generated)

	fset := token.NewFileSet()
	syntax := parseFiles(t, fset, all)
	conf := types.Config{Importer: NewImporter(fset)}
	_, err := conf.Check(PkgPath, fset, syntax, nil)
	return err
}

func parseFiles(t testing.TB, fset *token.FileSet, files map[string]string) []*ast.File {
	t.Helper()

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	var syntax []*ast.File
	for _, name := range names {
		f, err := parser.ParseFile(fset, name, files[name], parser.ParseComments)
		require.NoError(t, err, "parse %s", name)
		syntax = append(syntax, f)
	}
	return syntax
}

// Importer resolves the enumfrom runtime package from the module sources and
// everything else from the standard library export data.
type Importer struct {
	fset *token.FileSet
	std  types.Importer

	once    sync.Once
	runtime *types.Package
	err     error
}

// NewImporter creates an importer adding the runtime package to fset.
func NewImporter(fset *token.FileSet) *Importer {
	return &Importer{fset: fset, std: importer.Default()}
}

// Import implements types.Importer.
func (im *Importer) Import(path string) (*types.Package, error) {
	if path != RuntimePath {
		return im.std.Import(path)
	}
	im.once.Do(func() {
		im.runtime, im.err = im.checkRuntime()
	})
	return im.runtime, im.err
}

func (im *Importer) checkRuntime() (*types.Package, error) {
	root := ModuleRoot()
	matches, err := filepath.Glob(filepath.Join(root, "*.go"))
	if err != nil {
		return nil, err
	}
	var syntax []*ast.File
	for _, name := range matches {
		if strings.HasSuffix(name, "_test.go") {
			continue
		}
		src, err := os.ReadFile(name)
		if err != nil {
			return nil, err
		}
		f, err := parser.ParseFile(im.fset, name, src, 0)
		if err != nil {
			return nil, err
		}
		syntax = append(syntax, f)
	}
	conf := types.Config{Importer: im.std}
	return conf.Check(RuntimePath, im.fset, syntax, nil)
}

// ModuleRoot returns the directory of the enumfrom module.
func ModuleRoot() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..")
}
